package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/atm/pkg/domain"
	"github.com/amirasaad/atm/pkg/eventbus"
)

// MemoryEventBus is a synchronous in-memory implementation of eventbus.Bus.
// Handlers run on the emitter's goroutine in registration order.
type MemoryEventBus struct {
	handlers  map[string][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []domain.Event
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers:  make(map[string][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]domain.Event, 0),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit dispatches the event to all registered handlers for its type.
// Handler errors and panics are logged and swallowed.
func (b *MemoryEventBus) Emit(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	eventType := event.Type()

	b.mu.Lock()
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[eventType]...)
	b.published = append(b.published, event)
	b.mu.Unlock()

	for _, handler := range handlers {
		b.dispatch(ctx, handler, event)
	}
	return nil
}

func (b *MemoryEventBus) dispatch(ctx context.Context, handler eventbus.HandlerFunc, event domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic recovered in event handler", "type", event.Type(), "panic", r)
		}
	}()
	if err := handler(ctx, event); err != nil {
		b.logger.Error("failed to process event", "type", event.Type(), "error", err)
	}
}

// Published returns a copy of every event emitted so far. This is useful for testing.
func (b *MemoryEventBus) Published() []domain.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.Event(nil), b.published...)
}

// ClearPublished clears the list of published events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]domain.Event, 0)
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)
