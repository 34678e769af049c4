package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/cubenet/internal/core/geometry"
)

func newUnitSurface(t *testing.T, opts ...Option) *Surface {
	t.Helper()
	s, err := New(UniformSizes(1, 1), opts...)
	require.NoError(t, err)
	return s
}

func TestLayoutUniform(t *testing.T) {
	s := newUnitSurface(t)
	l := s.Layout()

	want := map[Face]geometry.Rect{
		Top:    geometry.R(0, 0, 1, 1),
		Front:  geometry.R(0, 1, 1, 1),
		Bottom: geometry.R(0, 2, 1, 1),
		Right:  geometry.R(1, 1, 1, 1),
		Back:   geometry.R(2, 1, 1, 1),
		Left:   geometry.R(3, 1, 1, 1),
	}
	for f, r := range want {
		assert.Equal(t, r, l.RectOf(f), f.String())
	}
	assert.Equal(t, geometry.R(0, 0, 1, 3), l.VerticalArm())
	assert.Equal(t, geometry.R(0, 1, 4, 1), l.HorizontalArm())
	assert.Equal(t, 1.0, l.LargestExtent())

	order := make([]Face, 0, 6)
	for _, fr := range l.All() {
		order = append(order, fr.Face)
	}
	assert.Equal(t, []Face{Top, Front, Right, Back, Left, Bottom}, order)
}

func TestLayoutNonUniform(t *testing.T) {
	sizes := Sizes{
		Top:    {Width: 4, Height: 2},
		Front:  {Width: 4, Height: 3},
		Bottom: {Width: 4, Height: 2},
		Right:  {Width: 5, Height: 3},
		Back:   {Width: 4, Height: 3},
		Left:   {Width: 5, Height: 3},
	}
	l, err := NewLayout(sizes)
	require.NoError(t, err)

	assert.Equal(t, geometry.R(0, 0, 4, 2), l.RectOf(Top))
	assert.Equal(t, geometry.R(0, 2, 4, 3), l.RectOf(Front))
	assert.Equal(t, geometry.R(0, 5, 4, 2), l.RectOf(Bottom))
	assert.Equal(t, geometry.R(4, 2, 5, 3), l.RectOf(Right))
	assert.Equal(t, geometry.R(9, 2, 4, 3), l.RectOf(Back))
	assert.Equal(t, geometry.R(13, 2, 5, 3), l.RectOf(Left))
	assert.Equal(t, 5.0, l.LargestExtent())
	assert.Equal(t, geometry.Size{Width: 5, Height: 3}, l.SizeOf(Right))
}

func TestLayoutDisjoint(t *testing.T) {
	for _, src := range []SizeSource{
		UniformSizes(1, 1),
		UniformSizes(16, 16),
		Sizes{
			Top: {Width: 2, Height: 1}, Front: {Width: 2, Height: 2}, Bottom: {Width: 2, Height: 3},
			Right: {Width: 1, Height: 2}, Back: {Width: 3, Height: 2}, Left: {Width: 1, Height: 2},
		},
	} {
		l, err := NewLayout(src)
		require.NoError(t, err)
		all := l.All()
		for i := range all {
			for j := i + 1; j < len(all); j++ {
				assert.False(t, all[i].Rect.Overlaps(all[j].Rect), "%s overlaps %s", all[i].Face, all[j].Face)
			}
		}
	}
}

func TestLayoutInvalid(t *testing.T) {
	missing := UniformSizes(1, 1)
	delete(missing, Back)

	zero := UniformSizes(1, 1)
	zero[Left] = geometry.Size{Width: 0, Height: 1}

	negative := UniformSizes(1, 1)
	negative[Top] = geometry.Size{Width: 1, Height: -2}

	// A wide bottom reaches under a tall right face.
	overlapping := UniformSizes(1, 1)
	overlapping[Right] = geometry.Size{Width: 1, Height: 2}
	overlapping[Bottom] = geometry.Size{Width: 2, Height: 1}

	for name, src := range map[string]SizeSource{
		"nil":         nil,
		"missing":     missing,
		"zero":        zero,
		"negative":    negative,
		"overlapping": overlapping,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := New(src)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
		})
	}
}

func TestLocateExamples(t *testing.T) {
	s := newUnitSurface(t)

	face, err := s.Locate(geometry.Pt(0.5, 1.5))
	require.NoError(t, err)
	assert.Equal(t, Front, face)

	face, err = s.Locate(geometry.Pt(1.5, 1.5))
	require.NoError(t, err)
	assert.Equal(t, Right, face)

	_, err = s.Locate(geometry.Pt(0.5, 3))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocateHalfOpen(t *testing.T) {
	s := newUnitSurface(t)

	tests := []struct {
		p    geometry.Point
		want Face
	}{
		{geometry.Pt(0, 0), Top},
		{geometry.Pt(0, 1), Front},
		{geometry.Pt(1, 1), Right},
		{geometry.Pt(2, 1.5), Back},
		{geometry.Pt(3, 1.999), Left},
		{geometry.Pt(0.999, 2), Bottom},
	}
	for _, tt := range tests {
		got, err := s.Locate(tt.p)
		require.NoError(t, err, tt.p.String())
		assert.Equal(t, tt.want, got, tt.p.String())
	}

	for _, p := range []geometry.Point{
		geometry.Pt(4, 1.5),  // past left
		geometry.Pt(1, 0.5),  // missing corner beside top
		geometry.Pt(1.5, 2),  // missing corner beside bottom
		geometry.Pt(-0.1, 1), // west of front
		geometry.Pt(0.5, -1),
	} {
		_, err := s.Locate(p)
		assert.ErrorIs(t, err, ErrNotFound, p.String())
		assert.False(t, s.Contains(p), p.String())
	}
}

func TestLocateCoversArms(t *testing.T) {
	s, err := New(UniformSizes(3, 3))
	require.NoError(t, err)

	for _, arm := range []geometry.Rect{s.Layout().VerticalArm(), s.Layout().HorizontalArm()} {
		for x := arm.X; x < arm.Right(); x += 0.25 {
			for y := arm.Y; y < arm.Bottom(); y += 0.25 {
				p := geometry.Pt(x, y)
				face, err := s.Locate(p)
				require.NoError(t, err, p.String())

				owners := 0
				for _, fr := range s.Layout().All() {
					if fr.Rect.Contains(p) {
						owners++
						assert.Equal(t, fr.Face, face)
					}
				}
				assert.Equal(t, 1, owners, p.String())
			}
		}
	}
}

func TestLocateGapInWideArm(t *testing.T) {
	sizes := UniformSizes(2, 2)
	sizes[Top] = geometry.Size{Width: 1, Height: 2}
	s, err := New(sizes)
	require.NoError(t, err)

	// Inside the vertical arm's bounding box, right of the narrow top face.
	p := geometry.Pt(1.5, 0.5)
	assert.True(t, s.Contains(p))
	_, err = s.Locate(p)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToLocalAndBack(t *testing.T) {
	s := newUnitSurface(t)

	pos, err := s.ToLocal(geometry.Pt(2.25, 1.75))
	require.NoError(t, err)
	assert.Equal(t, Back, pos.Face)
	assert.Equal(t, geometry.Pt(0.25, 0.75), pos.Local)
	assert.Equal(t, geometry.Pt(2.25, 1.75), s.ToGlobal(pos))

	_, err = s.ToLocal(geometry.Pt(3, 3))
	assert.ErrorIs(t, err, ErrNotFound)
}
