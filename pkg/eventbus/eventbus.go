package eventbus

import (
	"context"

	"github.com/amirasaad/atm/pkg/domain"
)

// HandlerFunc handles one event. A returned error is logged by the bus and
// never reaches the emitter.
type HandlerFunc func(ctx context.Context, event domain.Event) error

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Register(eventType string, handler HandlerFunc)
	Emit(ctx context.Context, event domain.Event) error
}
