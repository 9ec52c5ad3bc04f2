package initializer

import (
	"errors"
	"io"
	"log/slog"

	infra_eventbus "github.com/amirasaad/atm/infra/eventbus"
	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/handler"
)

// InitializeDependencies builds the logger and the event bus, and registers
// the audit log handlers. The logger is also installed as the slog default.
func InitializeDependencies(cfg *config.App, logOutput io.Writer) (*config.Deps, error) {
	if cfg == nil || cfg.Log == nil {
		return nil, errors.New("initializer: missing log configuration")
	}

	logger := setupLogger(cfg.Log, logOutput)
	slog.SetDefault(logger)

	bus := infra_eventbus.NewWithMemory(logger)
	handler.RegisterAuditLog(bus, logger)

	logger.Debug("dependencies initialized", "env", cfg.Env, "log_format", cfg.Log.Format)
	return &config.Deps{
		EventBus: bus,
		Logger:   logger,
		Config:   cfg,
	}, nil
}
