package cube

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/cubenet/internal/core/geometry"
)

func assertPos(t *testing.T, want, got Position) {
	t.Helper()
	assert.Equal(t, want.Face, got.Face, "face: want %v got %v", want, got)
	assert.InDelta(t, want.Local.X, got.Local.X, 1e-9, "x: want %v got %v", want, got)
	assert.InDelta(t, want.Local.Y, got.Local.Y, 1e-9, "y: want %v got %v", want, got)
}

func at(f Face, x, y float64) Position { return Position{Face: f, Local: geometry.Pt(x, y)} }

func TestZeroStepIsIdentity(t *testing.T) {
	s := newUnitSurface(t)
	for _, f := range Faces {
		for _, p := range []geometry.Point{geometry.Pt(0, 0), geometry.Pt(0.5, 0.5), geometry.Pt(0.999, 0.001)} {
			got, err := s.TakeStep(f, p, geometry.Vector{})
			require.NoError(t, err)
			assert.Equal(t, Position{Face: f, Local: p}, got)
		}
	}
}

func TestStepWithinFace(t *testing.T) {
	s := newUnitSurface(t)
	got, err := s.TakeStep(Back, geometry.Pt(0.2, 0.2), geometry.Vec(0.3, 0.5))
	require.NoError(t, err)
	assertPos(t, at(Back, 0.5, 0.7), got)
}

func TestStepOffFrontNorthLandsOnTop(t *testing.T) {
	s := newUnitSurface(t)
	got, err := s.TakeStep(Front, geometry.Pt(0.5, 0), geometry.Vec(0, -1))
	require.NoError(t, err)
	assertPos(t, at(Top, 0.5, 0), got)
}

func TestStepCrossings(t *testing.T) {
	s := newUnitSurface(t)

	tests := []struct {
		name string
		from Position
		step geometry.Vector
		want Position
	}{
		// Neighbours in the net.
		{"front east to right", at(Front, 0.75, 0.25), geometry.Vec(0.5, 0), at(Right, 0.25, 0.25)},
		{"front west to left", at(Front, 0.25, 0.25), geometry.Vec(-0.5, 0), at(Left, 0.75, 0.25)},
		{"front south to bottom", at(Front, 0.3, 0.75), geometry.Vec(0, 0.5), at(Bottom, 0.3, 0.25)},
		{"top south to front", at(Top, 0.3, 0.75), geometry.Vec(0, 0.5), at(Front, 0.3, 0.25)},
		{"left east wraps to front", at(Left, 0.75, 0.5), geometry.Vec(0.5, 0), at(Front, 0.25, 0.5)},
		{"back west to right", at(Back, 0.25, 0.1), geometry.Vec(-0.5, 0), at(Right, 0.75, 0.1)},

		// Neighbours that the net separates.
		{"top north to back", at(Top, 0.2, 0.25), geometry.Vec(0, -0.5), at(Back, 0.8, 0.25)},
		{"back north to top", at(Back, 0.8, 0.25), geometry.Vec(0, -0.5), at(Top, 0.2, 0.25)},
		{"top east to right", at(Top, 0.75, 0.2), geometry.Vec(0.5, 0), at(Right, 0.8, 0.25)},
		{"right north to top", at(Right, 0.8, 0.25), geometry.Vec(0, -0.5), at(Top, 0.75, 0.2)},
		{"top west to left", at(Top, 0.25, 0.2), geometry.Vec(-0.5, 0), at(Left, 0.2, 0.25)},
		{"left north to top", at(Left, 0.2, 0.25), geometry.Vec(0, -0.5), at(Top, 0.25, 0.2)},
		{"right south to bottom", at(Right, 0.3, 0.75), geometry.Vec(0, 0.5), at(Bottom, 0.75, 0.3)},
		{"bottom east to right", at(Bottom, 0.75, 0.3), geometry.Vec(0.5, 0), at(Right, 0.3, 0.75)},
		{"back south to bottom", at(Back, 0.2, 0.75), geometry.Vec(0, 0.5), at(Bottom, 0.8, 0.75)},
		{"bottom south to back", at(Bottom, 0.8, 0.75), geometry.Vec(0, 0.5), at(Back, 0.2, 0.75)},
		{"left south to bottom", at(Left, 0.3, 0.75), geometry.Vec(0, 0.5), at(Bottom, 0.25, 0.7)},
		{"bottom west to left", at(Bottom, 0.25, 0.7), geometry.Vec(-0.5, 0), at(Left, 0.3, 0.75)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.TakeStep(tt.from.Face, tt.from.Local, tt.step)
			require.NoError(t, err)
			assertPos(t, tt.want, got)
		})
	}
}

func TestStepAroundEquatorReturnsHome(t *testing.T) {
	s := newUnitSurface(t)
	start := at(Front, 0.5, 0.5)

	got, err := s.TakeStep(start.Face, start.Local, geometry.Vec(4, 0))
	require.NoError(t, err)
	assertPos(t, start, got)

	// Over the top and bottom: front, top, back, bottom, front.
	got, err = s.TakeStep(start.Face, start.Local, geometry.Vec(0, -4))
	require.NoError(t, err)
	assertPos(t, start, got)
}

func TestStepAcrossTopKeepsHeading(t *testing.T) {
	s := newUnitSurface(t)
	// Walking north from front crosses top and comes down the back, where
	// "north" in the net is now heading south in back's frame.
	got, err := s.TakeStep(Front, geometry.Pt(0.25, 0.5), geometry.Vec(0, -2))
	require.NoError(t, err)
	assertPos(t, at(Back, 0.75, 0.5), got)
}

func TestStepEndingOnSeam(t *testing.T) {
	s := newUnitSurface(t)

	// Exactly reaching an edge shared in the net belongs to the next face.
	got, err := s.TakeStep(Front, geometry.Pt(0.5, 0.5), geometry.Vec(0.5, 0))
	require.NoError(t, err)
	assertPos(t, at(Right, 0, 0.5), got)

	// Right's south edge meets bottom's east edge; neither owns it under
	// the half-open rule, so the result sits just inside bottom.
	got, err = s.TakeStep(Right, geometry.Pt(0.3, 0.5), geometry.Vec(0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, Bottom, got.Face)
	assert.Less(t, got.Local.X, 1.0)
	assert.InDelta(t, 1.0, got.Local.X, 1e-12)
	assert.InDelta(t, 0.3, got.Local.Y, 1e-12)

	face, err := s.Locate(s.ToGlobal(got))
	require.NoError(t, err)
	assert.Equal(t, Bottom, face)
}

func TestStepThroughCornerPrefersEastWest(t *testing.T) {
	s := newUnitSurface(t)
	// Leaves front exactly through its south-east corner.
	got, err := s.TakeStep(Front, geometry.Pt(0.9, 0.9), geometry.Vec(0.2, 0.2))
	require.NoError(t, err)
	assertPos(t, at(Bottom, 0.9, 0.1), got)

	again, err := s.TakeStep(Front, geometry.Pt(0.9, 0.9), geometry.Vec(0.2, 0.2))
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestStepDiagonalAcrossTwoEdges(t *testing.T) {
	s := newUnitSurface(t)
	// Crosses front's east edge first, then right's south edge.
	got, err := s.TakeStep(Front, geometry.Pt(0.8, 0.5), geometry.Vec(0.4, 0.6))
	require.NoError(t, err)
	assert.Equal(t, Bottom, got.Face)

	face, err := s.Locate(s.ToGlobal(got))
	require.NoError(t, err)
	assert.Equal(t, Bottom, face)
}

func TestStepOutOfBounds(t *testing.T) {
	s := newUnitSurface(t)

	for _, p := range []geometry.Point{
		geometry.Pt(1, 0.5),
		geometry.Pt(-0.1, 0.5),
		geometry.Pt(0.5, 1),
	} {
		_, err := s.TakeStep(Front, p, geometry.Vec(0.1, 0))
		assert.ErrorIs(t, err, ErrOutOfBounds, p.String())
	}
	_, err := s.TakeStep(Face(12), geometry.Pt(0.5, 0.5), geometry.Vector{})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, err, ErrInvalidFace)
}

func TestStepTooLarge(t *testing.T) {
	s := newUnitSurface(t, WithMaxHops(3))

	_, err := s.TakeStep(Front, geometry.Pt(0.5, 0.5), geometry.Vec(3.01, 0))
	assert.ErrorIs(t, err, ErrStepTooLarge)

	_, err = s.TakeStep(Front, geometry.Pt(0.5, 0.5), geometry.Vec(math.Inf(1), 0))
	assert.ErrorIs(t, err, ErrStepTooLarge)

	_, err = s.TakeStep(Front, geometry.Pt(0.5, 0.5), geometry.Vec(math.NaN(), 0))
	assert.ErrorIs(t, err, ErrStepTooLarge)

	// Short enough for the length bound, but spiralling through corners
	// needs four crossings.
	_, err = s.TakeStep(Front, geometry.Pt(0.95, 0.95), geometry.Vec(1.5, 1.5))
	assert.ErrorIs(t, err, ErrStepTooLarge)

	got, err := s.TakeStep(Front, geometry.Pt(0.99, 0.5), geometry.Vec(3, 0))
	require.NoError(t, err)
	assertPos(t, at(Left, 0.99, 0.5), got)

	got, err = s.TakeStep(Front, geometry.Pt(0.5, 0.5), geometry.Vec(2.4, 0))
	require.NoError(t, err)
	assertPos(t, at(Back, 0.9, 0.5), got)
}

func TestStepWithoutCrossings(t *testing.T) {
	s := newUnitSurface(t, WithMaxHops(0))

	_, err := s.TakeStep(Front, geometry.Pt(0.5, 0.5), geometry.Vec(0.1, 0))
	assert.ErrorIs(t, err, ErrStepTooLarge)

	got, err := s.TakeStep(Front, geometry.Pt(0.5, 0.5), geometry.Vector{})
	require.NoError(t, err)
	assertPos(t, at(Front, 0.5, 0.5), got)
}

func TestStepNonUniformScalesAlongEdge(t *testing.T) {
	sizes := UniformSizes(4, 4)
	sizes[Right] = geometry.Size{Width: 2, Height: 4}
	sizes[Top] = geometry.Size{Width: 4, Height: 2}
	s, err := New(sizes)
	require.NoError(t, err)

	// Top's east edge is 2 long, right's north edge is 2 long; reversed.
	got, err := s.TakeStep(Top, geometry.Pt(3.5, 0.5), geometry.Vec(1, 0))
	require.NoError(t, err)
	assertPos(t, at(Right, 1.5, 0.5), got)

	// Front's east edge (4) onto right's west edge (4).
	got, err = s.TakeStep(Front, geometry.Pt(3, 1), geometry.Vec(2, 0))
	require.NoError(t, err)
	assertPos(t, at(Right, 1, 1), got)
}

func TestWalk(t *testing.T) {
	s := newUnitSurface(t)
	steps := []geometry.Vector{
		geometry.Vec(0.5, 0),   // onto right
		geometry.Vec(0, -0.75), // over right's north edge onto top
		geometry.Vec(0, 0.75),  // top's frame is turned: this heads to front
		geometry.Vec(-0.5, 0),
	}
	got, err := s.Walk(at(Front, 0.75, 0.5), steps...)
	require.NoError(t, err)
	assertPos(t, at(Front, 0.25, 0.5), got)

	_, err = s.Walk(at(Front, 0.5, 0.5), geometry.Vec(0.1, 0), geometry.Vec(100, 0))
	assert.ErrorIs(t, err, ErrStepTooLarge)
}

func TestStepResultsAlwaysLocate(t *testing.T) {
	s := newUnitSurface(t)
	steps := []geometry.Vector{
		geometry.Vec(0.37, 0.11), geometry.Vec(-0.9, 0.4), geometry.Vec(0.05, -1.3),
		geometry.Vec(1.7, 1.7), geometry.Vec(-2.2, 0.3), geometry.Vec(0, 0.999),
	}
	for _, f := range Faces {
		pos := at(f, 0.5, 0.5)
		for i := 0; i < 50; i++ {
			next, err := s.TakeStep(pos.Face, pos.Local, steps[i%len(steps)])
			require.NoError(t, err, "from %v", pos)
			face, err := s.Locate(s.ToGlobal(next))
			require.NoError(t, err)
			require.Equal(t, next.Face, face)
			pos = next
		}
	}
}

func TestTracerReceivesEvents(t *testing.T) {
	var (
		mu     sync.Mutex
		events []TraceEvent
	)
	rec := TracerFunc(func(e TraceEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})
	s := newUnitSurface(t, WithTracer(MultiTracer(rec, nil)))

	_, err := s.TakeStep(Front, geometry.Pt(0.5, 0.5), geometry.Vec(1, 0))
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, EventHop, events[0].Kind)
	assert.Equal(t, AdjacencyEntry{Front, East, Right, West, Identity}, events[0].Transition)
	assert.Equal(t, EventStep, events[1].Kind)
	assert.Equal(t, 1, events[1].Hop)
	assert.Equal(t, Right, events[1].To.Face)

	events = nil
	_, err = s.Locate(geometry.Pt(9, 9))
	require.Error(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventLocate, events[0].Kind)
	assert.ErrorIs(t, events[0].Err, ErrNotFound)
}

func TestStepWithoutVerification(t *testing.T) {
	checked := newUnitSurface(t)
	unchecked := newUnitSurface(t, WithVerifyResults(false))
	assert.True(t, checked.Config().VerifyResults)
	assert.False(t, unchecked.Config().VerifyResults)

	for _, step := range []geometry.Vector{
		geometry.Vec(1, 0), geometry.Vec(0, -1), geometry.Vec(-2.5, 0.25), geometry.Vec(0.3, 1.7),
	} {
		want, err := checked.TakeStep(Front, geometry.Pt(0.5, 0.5), step)
		require.NoError(t, err)
		got, err := unchecked.TakeStep(Front, geometry.Pt(0.5, 0.5), step)
		require.NoError(t, err)
		assert.Equal(t, want, got, step.String())
	}

	// The precondition is still checked.
	_, err := unchecked.TakeStep(Front, geometry.Pt(2, 0.5), geometry.Vec(0, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
