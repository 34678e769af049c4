package cube

import (
	"github.com/zeusync/cubenet/internal/core/geometry"
	"github.com/zeusync/cubenet/internal/core/observability/log"
)

// EventKind identifies what a TraceEvent reports.
type EventKind uint8

const (
	EventLocate EventKind = iota + 1
	EventHop
	EventStep
)

func (k EventKind) String() string {
	switch k {
	case EventLocate:
		return "cube.locate"
	case EventHop:
		return "cube.hop"
	case EventStep:
		return "cube.step"
	}
	return "cube.unknown"
}

// TraceEvent describes one engine decision. Fields not relevant to Kind
// are left zero.
type TraceEvent struct {
	Kind EventKind

	// Locate
	Point geometry.Point
	Face  Face

	// Hop and step
	From       Position
	To         Position
	Transition AdjacencyEntry
	Hop        int
	Step       geometry.Vector

	Err error
}

// Tracer receives engine events. Implementations must be safe for
// concurrent use when the Surface is shared between goroutines.
type Tracer interface {
	Trace(TraceEvent)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(TraceEvent)

func (f TracerFunc) Trace(e TraceEvent) { f(e) }

type multiTracer []Tracer

func (m multiTracer) Trace(e TraceEvent) {
	for _, t := range m {
		t.Trace(e)
	}
}

// MultiTracer fans events out to every non-nil tracer.
func MultiTracer(tracers ...Tracer) Tracer {
	out := make(multiTracer, 0, len(tracers))
	for _, t := range tracers {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

type logTracer struct {
	logger log.Log
}

// LogTracer writes every event as a debug record.
func LogTracer(logger log.Log) Tracer {
	return logTracer{logger: logger}
}

func (l logTracer) Trace(e TraceEvent) {
	fields := make([]log.Field, 0, 6)
	switch e.Kind {
	case EventLocate:
		fields = append(fields, log.String("point", e.Point.String()))
		if e.Err == nil {
			fields = append(fields, log.Stringer("face", e.Face))
		}
	case EventHop:
		fields = append(fields,
			log.Int("hop", e.Hop),
			log.Stringer("transition", e.Transition),
			log.Stringer("from", e.From),
			log.Stringer("to", e.To),
		)
	case EventStep:
		fields = append(fields,
			log.Stringer("from", e.From),
			log.Stringer("step", e.Step),
			log.Int("hops", e.Hop),
		)
		if e.Err == nil {
			fields = append(fields, log.Stringer("to", e.To))
		}
	}
	if e.Err != nil {
		fields = append(fields, log.Error(e.Err))
	}
	l.logger.Debug(e.Kind.String(), fields...)
}
