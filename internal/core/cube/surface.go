package cube

import (
	"fmt"

	"github.com/zeusync/cubenet/internal/core/geometry"
)

// Surface is the navigable cube for one level. It never changes after New
// and is safe to share between goroutines.
type Surface struct {
	layout    *Layout
	adjacency *Adjacency
	config    Config
	tracer    Tracer

	arms    [faceCount]armMask
	inCross func(geometry.Point) bool
}

type armMask uint8

const (
	armVertical armMask = 1 << iota
	armHorizontal
)

// New builds the surface from level sizes.
func New(src SizeSource, opts ...Option) (*Surface, error) {
	o := options{config: DefaultConfig(), adjacency: foldedCube}
	for _, opt := range opts {
		opt(&o)
	}
	if o.config.MaxHops < 0 {
		return nil, fmt.Errorf("%w: negative hop limit %d", ErrInvalidGeometry, o.config.MaxHops)
	}

	layout, err := NewLayout(src)
	if err != nil {
		return nil, err
	}
	adjacency, err := NewAdjacency(o.adjacency)
	if err != nil {
		return nil, err
	}

	s := &Surface{
		layout:    layout,
		adjacency: adjacency,
		config:    o.config,
		tracer:    o.tracer,
		inCross: geometry.AnyOf(
			geometry.ContainedIn(layout.VerticalArm()),
			geometry.ContainedIn(layout.HorizontalArm()),
		),
	}
	for _, f := range verticalArm {
		s.arms[f] |= armVertical
	}
	for _, f := range horizontalArm {
		s.arms[f] |= armHorizontal
	}
	return s, nil
}

func (s *Surface) Layout() *Layout       { return s.layout }
func (s *Surface) Adjacency() *Adjacency { return s.adjacency }
func (s *Surface) Config() Config        { return s.config }

// Contains reports whether p falls inside either arm of the cross. It is
// the coarse test; Locate may still miss where arms are wider than faces.
func (s *Surface) Contains(p geometry.Point) bool { return s.inCross(p) }

// Locate returns the face owning the global point p, or ErrNotFound.
func (s *Surface) Locate(p geometry.Point) (Face, error) {
	face, err := s.locate(p)
	s.trace(TraceEvent{Kind: EventLocate, Point: p, Face: face, Err: err})
	return face, err
}

func (s *Surface) locate(p geometry.Point) (Face, error) {
	var hit armMask
	if s.layout.VerticalArm().Contains(p) {
		hit |= armVertical
	}
	if s.layout.HorizontalArm().Contains(p) {
		hit |= armHorizontal
	}
	if hit == 0 {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, p)
	}
	for _, f := range Faces {
		if s.arms[f]&hit == 0 {
			continue
		}
		if s.layout.rects[f].Contains(p) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %v lies in an arm but on no face", ErrNotFound, p)
}

// ToGlobal converts a face-local position to global net coordinates.
func (s *Surface) ToGlobal(pos Position) geometry.Point {
	origin := s.layout.RectOf(pos.Face).Origin()
	return origin.Add(geometry.Vec(pos.Local.X, pos.Local.Y))
}

// ToLocal locates p and expresses it in its face's frame.
func (s *Surface) ToLocal(p geometry.Point) (Position, error) {
	face, err := s.Locate(p)
	if err != nil {
		return Position{}, err
	}
	return Position{Face: face, Local: p.Offset(s.layout.RectOf(face).Origin())}, nil
}

// check verifies that local really is on face, via the locator.
func (s *Surface) check(face Face, local geometry.Point) error {
	if !face.Valid() {
		return fmt.Errorf("%w: %w", ErrOutOfBounds, ErrInvalidFace)
	}
	global := s.ToGlobal(Position{Face: face, Local: local})
	got, err := s.locate(global)
	if err != nil {
		return fmt.Errorf("%w: %s%v: %w", ErrOutOfBounds, face, local, err)
	}
	if got != face {
		return fmt.Errorf("%w: %s%v resolves to %s", ErrOutOfBounds, face, local, got)
	}
	return nil
}

func (s *Surface) trace(e TraceEvent) {
	if s.tracer != nil {
		s.tracer.Trace(e)
	}
}
