package bus

import (
	"github.com/zeusync/cubenet/internal/core/cube"
)

type busTracer struct {
	bus    EventBus
	source string
	onErr  func(error)
}

// Tracer publishes engine trace events on b. The event type is the trace
// kind ("cube.hop", ...) and the payload is the cube.TraceEvent. Handler
// errors go to onErr, which may be nil.
func Tracer(b EventBus, source string, onErr func(error)) cube.Tracer {
	return busTracer{bus: b, source: source, onErr: onErr}
}

func (t busTracer) Trace(e cube.TraceEvent) {
	if err := t.bus.Publish(NewEvent(e.Kind.String(), t.source, e)); err != nil && t.onErr != nil {
		t.onErr(err)
	}
}

// TraceEventOf extracts the engine event carried by a bus event.
func TraceEventOf(e Event) (cube.TraceEvent, bool) {
	te, ok := e.Data().(cube.TraceEvent)
	return te, ok
}
