package domain

// Event is implemented by every domain event published on the bus.
// Type returns the key handlers are registered under.
type Event interface {
	Type() string
}
