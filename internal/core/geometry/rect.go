package geometry

import (
	"errors"
	"fmt"
	"math"
)

var ErrNegativeExtent = errors.New("rect has negative width or height")

// Size is the extent of a rectangle.
type Size struct{ Width, Height float64 }

// Valid reports whether both dimensions are strictly positive and finite.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0 && !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// Rect is an axis-aligned region. The zero Rect owns no points.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectSpec describes a Rect with optional fields. Nil fields default to 0.
type RectSpec struct {
	X, Y          *float64
	Width, Height *float64
}

// F returns a pointer to v, for filling RectSpec literals.
func F(v float64) *float64 { return &v }

// NewRect builds a Rect from spec, substituting 0 for omitted fields.
func NewRect(spec RectSpec) (Rect, error) {
	r := Rect{
		X:      deref(spec.X),
		Y:      deref(spec.Y),
		Width:  deref(spec.Width),
		Height: deref(spec.Height),
	}
	if r.Width < 0 || r.Height < 0 {
		return Rect{}, fmt.Errorf("%w: %v", ErrNegativeExtent, r)
	}
	return r, nil
}

// R is a shorthand for a fully specified Rect.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Right returns the x coordinate one past the last owned column.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate one past the last owned row.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the extent of r.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether r owns no points.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies in [X, X+Width) x [Y, Y+Height).
// Rects sharing an edge never both claim a point on it.
func (r Rect) Contains(p Point) bool {
	x := p.X - r.X
	y := p.Y - r.Y
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// Overlaps reports whether r and o share any point.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Union returns the smallest Rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Max(r.Right(), o.Right()) - x,
		Height: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
}

// ContainedIn returns a predicate testing membership in r.
func ContainedIn(r Rect) func(Point) bool {
	return func(p Point) bool { return r.Contains(p) }
}

// ContainsPoint returns a predicate testing whether a Rect holds p.
func ContainsPoint(p Point) func(Rect) bool {
	return func(r Rect) bool { return r.Contains(p) }
}

// AnyOf combines predicates, matching when at least one matches.
func AnyOf(preds ...func(Point) bool) func(Point) bool {
	return func(p Point) bool {
		for _, pred := range preds {
			if pred(p) {
				return true
			}
		}
		return false
	}
}
