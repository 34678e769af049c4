package cube

import (
	"fmt"

	"github.com/zeusync/cubenet/internal/core/geometry"
)

// Rotation re-expresses a direction measured in one face's frame in the
// frame of the face it crosses into. Frames have y pointing down, so a
// clockwise quarter turn takes north to east.
type Rotation uint8

const (
	Identity Rotation = iota
	CW90
	CCW90
	Rot180
	// Mirror reflects across the y axis. A consistently oriented cube never
	// needs it; it exists so tables from other foldings can be expressed.
	Mirror
)

var rotationNames = [...]string{"identity", "cw90", "ccw90", "rot180", "mirror"}

func (r Rotation) Valid() bool { return int(r) < len(rotationNames) }

func (r Rotation) String() string {
	if !r.Valid() {
		return fmt.Sprintf("rotation(%d)", uint8(r))
	}
	return rotationNames[r]
}

// Inverse returns the rotation undoing r.
func (r Rotation) Inverse() Rotation {
	switch r {
	case CW90:
		return CCW90
	case CCW90:
		return CW90
	}
	return r
}

// Then returns the rotation equivalent to applying r and then s. The
// boolean is false when the composition is a diagonal reflection, which
// the enumeration does not name.
func (r Rotation) Then(s Rotation) (Rotation, bool) {
	for _, c := range [...]Rotation{Identity, CW90, CCW90, Rot180, Mirror} {
		if s.Apply(r.Apply(probeA)) == c.Apply(probeA) && s.Apply(r.Apply(probeB)) == c.Apply(probeB) {
			return c, true
		}
	}
	return 0, false
}

var (
	probeA = geometry.Vec(1, 0)
	probeB = geometry.Vec(0, 1)
)

// Apply rotates v.
func (r Rotation) Apply(v geometry.Vector) geometry.Vector {
	switch r {
	case CW90:
		return geometry.Vec(-v.Y, v.X)
	case CCW90:
		return geometry.Vec(v.Y, -v.X)
	case Rot180:
		return geometry.Vec(-v.X, -v.Y)
	case Mirror:
		return geometry.Vec(-v.X, v.Y)
	}
	return v
}
