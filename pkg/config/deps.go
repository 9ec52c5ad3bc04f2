package config

import (
	"log/slog"

	"github.com/amirasaad/atm/pkg/eventbus"
)

// Deps holds the infrastructure dependencies a session is built from.
type Deps struct {
	EventBus eventbus.Bus
	Logger   *slog.Logger
	Config   *App
}
