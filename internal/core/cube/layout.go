package cube

import (
	"fmt"
	"math"

	"github.com/zeusync/cubenet/internal/core/geometry"
)

//go:generate mockgen -destination=mock_cube/mocks.go -package=mock_cube github.com/zeusync/cubenet/internal/core/cube SizeSource,Tracer

// SizeSource supplies the tile-grid size of each face. Level data
// implements it; only sizes are read, once, at construction.
type SizeSource interface {
	FaceSize(face Face) (geometry.Size, bool)
}

// Sizes is a SizeSource backed by a plain map.
type Sizes map[Face]geometry.Size

func (s Sizes) FaceSize(face Face) (geometry.Size, bool) {
	size, ok := s[face]
	return size, ok
}

// UniformSizes returns a SizeSource where every face is w by h.
func UniformSizes(w, h float64) Sizes {
	s := make(Sizes, faceCount)
	for _, f := range Faces {
		s[f] = geometry.Size{Width: w, Height: h}
	}
	return s
}

// FaceRect binds a face to its rectangle in global net coordinates.
type FaceRect struct {
	Face Face
	Rect geometry.Rect
}

var (
	verticalArm   = []Face{Top, Front, Bottom}
	horizontalArm = []Face{Front, Right, Back, Left}
)

// Layout places the six faces on the cross-shaped net.
type Layout struct {
	rects      [faceCount]geometry.Rect
	vertical   geometry.Rect
	horizontal geometry.Rect
	largest    float64
}

// NewLayout sizes every face from src and positions it on the net.
func NewLayout(src SizeSource) (*Layout, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no level sizes", ErrInvalidGeometry)
	}
	var sizes [faceCount]geometry.Size
	for _, f := range Faces {
		size, ok := src.FaceSize(f)
		if !ok {
			return nil, fmt.Errorf("%w: missing size for %s", ErrInvalidGeometry, f)
		}
		if !size.Valid() {
			return nil, fmt.Errorf("%w: %s has size %gx%g", ErrInvalidGeometry, f, size.Width, size.Height)
		}
		sizes[f] = size
	}

	l := &Layout{}

	// Vertical arm: one column at x=0, stacked by height.
	var frontV geometry.Rect
	y := 0.0
	for _, f := range verticalArm {
		r := geometry.R(0, y, sizes[f].Width, sizes[f].Height)
		if f == Front {
			frontV = r
		}
		l.rects[f] = r
		l.vertical = l.vertical.Union(r)
		y += sizes[f].Height
	}

	// Horizontal arm: one row at front's y, stacked by width.
	row := sizes[Top].Height
	x := 0.0
	for _, f := range horizontalArm {
		r := geometry.R(x, row, sizes[f].Width, sizes[f].Height)
		if f == Front && r != frontV {
			return nil, fmt.Errorf("%w: front placed at %v by the vertical arm and %v by the horizontal arm",
				ErrInvalidGeometry, frontV, r)
		}
		l.rects[f] = r
		l.horizontal = l.horizontal.Union(r)
		x += sizes[f].Width
	}

	for i, a := range Faces {
		for _, b := range Faces[i+1:] {
			if l.rects[a].Overlaps(l.rects[b]) {
				return nil, fmt.Errorf("%w: %s %v overlaps %s %v",
					ErrInvalidGeometry, a, l.rects[a], b, l.rects[b])
			}
		}
		l.largest = math.Max(l.largest, math.Max(sizes[a].Width, sizes[a].Height))
	}
	return l, nil
}

// RectOf returns the rectangle of face in global net coordinates.
func (l *Layout) RectOf(face Face) geometry.Rect {
	if !face.Valid() {
		return geometry.Rect{}
	}
	return l.rects[face]
}

// SizeOf returns the extent of face.
func (l *Layout) SizeOf(face Face) geometry.Size { return l.RectOf(face).Size() }

// All returns every face with its rect in scan order.
func (l *Layout) All() []FaceRect {
	out := make([]FaceRect, 0, faceCount)
	for _, f := range Faces {
		out = append(out, FaceRect{Face: f, Rect: l.rects[f]})
	}
	return out
}

// VerticalArm returns the bounding box of top, front and bottom.
func (l *Layout) VerticalArm() geometry.Rect { return l.vertical }

// HorizontalArm returns the bounding box of front, right, back and left.
func (l *Layout) HorizontalArm() geometry.Rect { return l.horizontal }

// LargestExtent returns the longest side of any face.
func (l *Layout) LargestExtent() float64 { return l.largest }
