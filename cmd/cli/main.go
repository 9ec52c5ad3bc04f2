package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/atm/infra/initializer"
	"github.com/amirasaad/atm/pkg/cli"
	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/service/session"
	"github.com/amirasaad/atm/pkg/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "atm:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	console := ui.New(os.Stdin, os.Stdout,
		ui.WithMaskedInput(cfg.Terminal.MaskPin),
		ui.WithColor(cfg.Terminal.Color),
	)
	svc := session.NewService(console, *deps)

	return cli.NewMenu(console, svc, deps.Logger).Run(context.Background())
}
