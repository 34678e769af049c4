package cube

import (
	"fmt"
	"math"

	"github.com/zeusync/cubenet/internal/core/geometry"
)

// TakeStep moves from local on face by step, following the cube surface
// across as many edges as needed.
//
// local must lie on face (ErrOutOfBounds otherwise). A step longer than
// MaxHops times the largest face extent, or one needing more than MaxHops
// crossings, fails with ErrStepTooLarge.
//
// When a crossing happens exactly at a corner the east/west edge is crossed
// first and the north/south edge on the following hop. A step that ends on
// a seam belongs to the face being entered.
func (s *Surface) TakeStep(face Face, local geometry.Point, step geometry.Vector) (Position, error) {
	from := Position{Face: face, Local: local}
	to, hops, err := s.takeStep(from, step)
	s.trace(TraceEvent{Kind: EventStep, From: from, To: to, Step: step, Hop: hops, Err: err})
	return to, err
}

// Walk applies steps in order and returns the final position. It stops at
// the first failing step.
func (s *Surface) Walk(pos Position, steps ...geometry.Vector) (Position, error) {
	for i, step := range steps {
		next, err := s.TakeStep(pos.Face, pos.Local, step)
		if err != nil {
			return pos, fmt.Errorf("step %d %v from %v: %w", i, step, pos, err)
		}
		pos = next
	}
	return pos, nil
}

func (s *Surface) takeStep(from Position, step geometry.Vector) (Position, int, error) {
	if err := s.check(from.Face, from.Local); err != nil {
		return Position{}, 0, err
	}
	if !step.IsFinite() {
		return Position{}, 0, fmt.Errorf("%w: non-finite step %v", ErrStepTooLarge, step)
	}
	if limit := float64(s.config.MaxHops) * s.layout.LargestExtent(); step.Length() > limit {
		return Position{}, 0, fmt.Errorf("%w: |%v| exceeds %g", ErrStepTooLarge, step, limit)
	}

	to, hops, err := s.resolve(from, step)
	if err != nil {
		return Position{}, hops, err
	}
	if s.config.VerifyResults {
		if err := s.check(to.Face, to.Local); err != nil {
			return Position{}, hops, fmt.Errorf("step result: %w", err)
		}
	}
	return to, hops, nil
}

// resolve walks the remaining delta d face by face.
func (s *Surface) resolve(pos Position, d geometry.Vector) (Position, int, error) {
	for hop := 0; ; hop++ {
		size := s.layout.SizeOf(pos.Face)
		candidate := pos.Local.Add(d)
		if inside(candidate, size) {
			return s.settle(Position{Face: pos.Face, Local: candidate}), hop, nil
		}
		if d.IsZero() {
			return s.settle(pos), hop, nil
		}
		if hop >= s.config.MaxHops {
			return Position{}, hop, fmt.Errorf("%w: more than %d crossings", ErrStepTooLarge, s.config.MaxHops)
		}

		edge, t := exitEdge(pos.Local, d, candidate, size)
		boundary := pos.Local.Add(d.Scale(t))
		switch edge {
		case North:
			boundary.Y = 0
		case South:
			boundary.Y = size.Height
		case West:
			boundary.X = 0
		case East:
			boundary.X = size.Width
		}

		a, err := s.adjacency.Lookup(pos.Face, edge)
		if err != nil {
			return Position{}, hop, err
		}
		next := s.layout.SizeOf(a.To)
		exitLen := edgeLength(edge, size)
		along := clamp(tangential(edge, boundary), 0, exitLen)
		entered := Position{
			Face:  a.To,
			Local: entryPoint(a.Entry, a.MapTangential(along, exitLen, edgeLength(a.Entry, next)), next),
		}

		s.trace(TraceEvent{
			Kind:       EventHop,
			From:       Position{Face: pos.Face, Local: boundary},
			To:         entered,
			Transition: a,
			Hop:        hop + 1,
		})

		d = a.Rotation.Apply(d.Scale(1 - t))
		pos = entered
	}
}

// exitEdge finds the first edge the segment p -> candidate leaves the face
// through, and the fraction of d travelled when it does. East/west wins
// ties.
func exitEdge(p geometry.Point, d geometry.Vector, candidate geometry.Point, size geometry.Size) (Edge, float64) {
	edge, t := Edge(0), math.Inf(1)
	switch {
	case candidate.X >= size.Width:
		edge, t = East, param(size.Width-p.X, d.X)
	case candidate.X < 0:
		edge, t = West, param(-p.X, d.X)
	}
	var tv float64
	switch {
	case candidate.Y >= size.Height:
		tv = param(size.Height-p.Y, d.Y)
		if tv < t {
			edge, t = South, tv
		}
	case candidate.Y < 0:
		tv = param(-p.Y, d.Y)
		if tv < t {
			edge, t = North, tv
		}
	}
	return edge, clamp(t, 0, 1)
}

// param returns the fraction of delta needed to cover dist. A point
// already past the edge leaves immediately.
func param(dist, delta float64) float64 {
	if delta == 0 || dist/delta < 0 {
		return 0
	}
	return dist / delta
}

// settle moves a position lying on the far seam of its face to the last
// coordinate the face owns in global terms. Such seams are claimed by
// neither neighbour under the half-open rule, and rounding can push a
// locally contained point onto them when it is offset into the net.
func (s *Surface) settle(pos Position) Position {
	r := s.layout.RectOf(pos.Face)
	g := s.ToGlobal(pos)
	if g.X >= r.Right() {
		pos.Local.X = lastBefore(r.X, r.Right())
	}
	if g.Y >= r.Bottom() {
		pos.Local.Y = lastBefore(r.Y, r.Bottom())
	}
	return pos
}

// lastBefore returns the largest offset from origin whose sum with origin
// stays below end.
func lastBefore(origin, end float64) float64 {
	local := math.Nextafter(end, math.Inf(-1)) - origin
	for origin+local >= end {
		local = math.Nextafter(local, math.Inf(-1))
	}
	return local
}

func inside(p geometry.Point, size geometry.Size) bool {
	return p.X >= 0 && p.X < size.Width && p.Y >= 0 && p.Y < size.Height
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
