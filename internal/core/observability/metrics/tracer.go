package metrics

import (
	"errors"

	"github.com/zeusync/cubenet/internal/core/cube"
)

const (
	LocateTotal = "cube_locate_total"
	HopsTotal   = "cube_hops_total"
	StepsTotal  = "cube_steps_total"
	StepMaxHops = "cube_step_max_hops"
)

type tracer struct {
	c       Collector
	maxHops Gauge
}

// Tracer counts engine events in c: locates and steps by result, hops by
// the edge they crossed, and the most hops any single step needed.
func Tracer(c Collector) cube.Tracer {
	return &tracer{c: c, maxHops: c.Gauge(StepMaxHops, nil)}
}

func (t *tracer) Trace(e cube.TraceEvent) {
	switch e.Kind {
	case cube.EventLocate:
		t.c.Counter(LocateTotal, map[string]string{"result": result(e.Err)}).Inc()
	case cube.EventHop:
		t.c.Counter(HopsTotal, map[string]string{
			"face": e.Transition.From.String(),
			"edge": e.Transition.Exit.String(),
		}).Inc()
	case cube.EventStep:
		t.c.Counter(StepsTotal, map[string]string{"result": result(e.Err)}).Inc()
		if e.Err == nil {
			t.maxHops.SetMax(float64(e.Hop))
		}
	}
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, cube.ErrStepTooLarge):
		return "step_too_large"
	case errors.Is(err, cube.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, cube.ErrNotFound):
		return "not_found"
	}
	return "error"
}
