package geometry

import (
	"fmt"
	"math"
)

// Point is a position in a 2D plane. Whether it is measured in global net
// coordinates or relative to a face is decided by the caller holding it.
type Point struct{ X, Y float64 }

// Vector is a displacement between two points.
type Vector struct{ X, Y float64 }

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec is a convenience constructor for Vector.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

// Add returns p+v.
func (p Point) Add(v Vector) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the Vector which moves to p from q.
func (p Point) Sub(q Point) Vector { return Vector{X: p.X - q.X, Y: p.Y - q.Y} }

// Offset returns p shifted by the given origin, i.e. p expressed in the
// frame whose (0,0) is origin in p's frame.
func (p Point) Offset(origin Point) Point { return Point{X: p.X - origin.X, Y: p.Y - origin.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Add returns v+w.
func (v Vector) Add(w Vector) Vector { return Vector{X: v.X + w.X, Y: v.Y + w.Y} }

// Scale returns v multiplied by k.
func (v Vector) Scale(k float64) Vector { return Vector{X: v.X * k, Y: v.Y * k} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{X: -v.X, Y: -v.Y} }

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

// IsFinite reports whether both components are finite numbers.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func (v Vector) String() string { return fmt.Sprintf("<%g,%g>", v.X, v.Y) }

// Distance computes the Euclidean distance between two points.
func Distance(a, b Point) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }
