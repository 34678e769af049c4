package cube

import (
	"fmt"
	"strings"

	"github.com/zeusync/cubenet/internal/core/geometry"
)

// Face names one of the six faces of the cube.
//
// The net is laid out as a cross:
//
//	 _
//	|T|_ _ _
//	|F|R|B|L|
//	|D|
//
// T top, F front, R right, B back, L left, D bottom.
type Face uint8

const (
	Top Face = iota
	Front
	Right
	Back
	Left
	Bottom

	faceCount = 6
)

// Faces lists every face in the fixed scan order used by the locator.
var Faces = [faceCount]Face{Top, Front, Right, Back, Left, Bottom}

var faceNames = [faceCount]string{"top", "front", "right", "back", "left", "bottom"}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool { return f < faceCount }

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("face(%d)", uint8(f))
	}
	return faceNames[f]
}

// ParseFace resolves a face by name, case-insensitively.
func ParseFace(name string) (Face, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range faceNames {
		if s == n {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, name)
}

// MarshalText implements encoding.TextMarshaler.
func (f Face) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFace, uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Face) UnmarshalText(b []byte) error {
	v, err := ParseFace(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Edge is a side of a face in that face's own frame: x grows east, y grows
// south, as the face is drawn in the net.
type Edge uint8

const (
	North Edge = iota
	East
	South
	West

	edgeCount = 4
)

// Edges lists the four edges clockwise from north.
var Edges = [edgeCount]Edge{North, East, South, West}

var edgeNames = [edgeCount]string{"north", "east", "south", "west"}

func (e Edge) Valid() bool { return e < edgeCount }

func (e Edge) String() string {
	if !e.Valid() {
		return fmt.Sprintf("edge(%d)", uint8(e))
	}
	return edgeNames[e]
}

// Opposite returns the edge across the face.
func (e Edge) Opposite() Edge { return (e + 2) % edgeCount }

// Horizontal reports whether crossing e moves along the x axis.
func (e Edge) Horizontal() bool { return e == East || e == West }

// Outward returns the unit vector pointing out of the face through e.
func (e Edge) Outward() geometry.Vector {
	switch e {
	case North:
		return geometry.Vec(0, -1)
	case East:
		return geometry.Vec(1, 0)
	case South:
		return geometry.Vec(0, 1)
	case West:
		return geometry.Vec(-1, 0)
	}
	return geometry.Vector{}
}

// Tangent returns the unit vector along e in which the tangential
// coordinate grows: x for north/south, y for east/west.
func (e Edge) Tangent() geometry.Vector {
	if e.Horizontal() {
		return geometry.Vec(0, 1)
	}
	return geometry.Vec(1, 0)
}

// Position is a point expressed in the local frame of a face.
type Position struct {
	Face  Face
	Local geometry.Point
}

func (p Position) String() string { return fmt.Sprintf("%s%s", p.Face, p.Local) }
