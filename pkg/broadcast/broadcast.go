// Package broadcast propagates cache-key change notifications between
// processes that share the same data origin, so every open instance of the
// site shows consistent content without a reload.
package broadcast

import "context"

// ChangeEvent notifies listeners that the value stored under a cache key
// changed. NewValue carries the serialized replacement value so listeners can
// apply it without a cache round trip.
type ChangeEvent struct {
	Key      string `json:"key"`
	NewValue string `json:"newValue"`
}

// Handler reacts to an inbound change event. Returned errors are logged by
// the broadcaster; they never stop the subscription.
type Handler func(ctx context.Context, event ChangeEvent) error

// Broadcaster publishes change events to, and receives them from, all other
// instances sharing the data origin. An instance never receives its own
// events.
type Broadcaster interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Subscribe(ctx context.Context, handler Handler) error
	Close() error
}
