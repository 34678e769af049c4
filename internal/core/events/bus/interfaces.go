package bus

import "time"

// AnyType subscribes a handler to every event type.
const AnyType = "*"

// EventBus is a thread-safe, in-process pub/sub bus.
//
// Delivery is synchronous: Publish calls handlers in the caller goroutine,
// in subscription order, and joins their errors. Handlers should be quick;
// the engine publishes from inside step resolution.
type EventBus interface {
	// Publish delivers the event to every active subscriber of event.Type()
	// and of AnyType.
	Publish(event Event) error
	// PublishWithFilters drops the event without error when any filter
	// rejects it.
	PublishWithFilters(event Event, filters ...EventFilter) error
	// PublishBatch publishes events in order and joins all handler errors.
	PublishBatch(events ...Event) error

	// Subscribe registers a handler for one event type, or AnyType.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the subscription. Nil is ignored.
	Unsubscribe(Subscription) error

	// Metrics returns a snapshot of the delivery counters.
	Metrics() Metrics
}

// Event is an immutable message carried by the bus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

type (
	// EventHandler is invoked once per delivered event.
	EventHandler func(event Event) error
	// EventFilter reports whether an event should be delivered.
	EventFilter func(event Event) bool
)

// Subscription is a registered handler.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler. Repeated calls are safe.
	Cancel() error
}

// Metrics counts bus activity since creation.
type Metrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	DroppedByFilters  uint64
	SubscribersActive uint64
}
