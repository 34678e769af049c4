package bus

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type simpleEvent struct {
	typeStr string
	source  string
	ts      time.Time
	data    any
}

func (e simpleEvent) Type() string         { return e.typeStr }
func (e simpleEvent) Source() string       { return e.source }
func (e simpleEvent) Timestamp() time.Time { return e.ts }
func (e simpleEvent) Data() any            { return e.data }

// NewEvent creates an Event stamped with the current time.
func NewEvent(typ, src string, data any) Event {
	return simpleEvent{typeStr: typ, source: src, ts: time.Now(), data: data}
}

type subscription struct {
	id        string
	eventType string
	handler   EventHandler
	active    atomic.Bool
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) IsActive() bool    { return s.active.Load() }
func (s *subscription) Cancel() error {
	if s.active.CompareAndSwap(true, false) && s.cancel != nil {
		s.cancel()
	}
	return nil
}

type inMemoryBus struct {
	mu sync.RWMutex
	// eventType -> subscriptions in registration order
	handlers map[string][]*subscription

	published atomic.Uint64
	delivered atomic.Uint64
	errs      atomic.Uint64
	dropped   atomic.Uint64
}

// New creates an empty EventBus.
func New() EventBus {
	return &inMemoryBus{handlers: make(map[string][]*subscription)}
}

func (b *inMemoryBus) Publish(event Event) error {
	if event == nil {
		return nil
	}
	return b.deliver(event)
}

func (b *inMemoryBus) PublishWithFilters(event Event, filters ...EventFilter) error {
	for _, f := range filters {
		if !f(event) {
			b.dropped.Add(1)
			return nil
		}
	}
	return b.Publish(event)
}

func (b *inMemoryBus) PublishBatch(events ...Event) error {
	var all error
	for _, e := range events {
		if err := b.Publish(e); err != nil {
			all = errors.Join(all, err)
		}
	}
	return all
}

func (b *inMemoryBus) Subscribe(eventType string, handler EventHandler) (Subscription, error) {
	if eventType == "" {
		return nil, errors.New("bus: event type is required")
	}
	if handler == nil {
		return nil, errors.New("bus: handler is required")
	}

	s := &subscription{id: uuid.NewString(), eventType: eventType, handler: handler}
	s.active.Store(true)
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[eventType] = slices.DeleteFunc(b.handlers[eventType], func(o *subscription) bool {
			return o.id == s.id
		})
		if len(b.handlers[eventType]) == 0 {
			delete(b.handlers, eventType)
		}
	}

	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], s)
	b.mu.Unlock()
	return s, nil
}

func (b *inMemoryBus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

func (b *inMemoryBus) Metrics() Metrics {
	b.mu.RLock()
	var active uint64
	for _, subs := range b.handlers {
		active += uint64(len(subs))
	}
	b.mu.RUnlock()

	return Metrics{
		Published:         b.published.Load(),
		DeliveredHandlers: b.delivered.Load(),
		Errors:            b.errs.Load(),
		DroppedByFilters:  b.dropped.Load(),
		SubscribersActive: active,
	}
}

func (b *inMemoryBus) deliver(event Event) error {
	etype := event.Type()

	b.mu.RLock()
	subs := make([]*subscription, 0, len(b.handlers[etype])+len(b.handlers[AnyType]))
	subs = append(subs, b.handlers[etype]...)
	if etype != AnyType {
		subs = append(subs, b.handlers[AnyType]...)
	}
	b.mu.RUnlock()

	b.published.Add(1)

	var all error
	for _, s := range subs {
		if !s.IsActive() {
			continue
		}
		b.delivered.Add(1)
		if err := s.handler(event); err != nil {
			all = errors.Join(all, err)
		}
	}
	if all != nil {
		b.errs.Add(1)
	}
	return all
}
