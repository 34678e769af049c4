package cube

import (
	"fmt"

	"github.com/zeusync/cubenet/internal/core/geometry"
)

// AdjacencyEntry says where an agent leaving From through Exit arrives:
// on To, through Entry, with directions re-expressed by Rotation.
type AdjacencyEntry struct {
	From     Face
	Exit     Edge
	To       Face
	Entry    Edge
	Rotation Rotation
}

// Reversed reports whether the tangential coordinate runs the opposite way
// along the entry edge, i.e. a point near the start of the exit edge lands
// near the end of the entry edge.
func (a AdjacencyEntry) Reversed() bool {
	return a.Rotation.Apply(a.Exit.Tangent()) != a.Entry.Tangent()
}

// MapTangential converts a coordinate along the exit edge of length
// exitLen into the coordinate along the entry edge of length entryLen.
func (a AdjacencyEntry) MapTangential(s, exitLen, entryLen float64) float64 {
	frac := s / exitLen
	if a.Reversed() {
		frac = 1 - frac
	}
	return frac * entryLen
}

func (a AdjacencyEntry) String() string {
	return fmt.Sprintf("%s.%s->%s.%s(%s)", a.From, a.Exit, a.To, a.Entry, a.Rotation)
}

// Adjacency is the total face/edge transition table.
type Adjacency struct {
	entries [faceCount][edgeCount]AdjacencyEntry
}

// Lookup returns the transition for leaving face through edge.
func (t *Adjacency) Lookup(face Face, edge Edge) (AdjacencyEntry, error) {
	if !face.Valid() {
		return AdjacencyEntry{}, fmt.Errorf("%w: %s", ErrInvalidFace, face)
	}
	if !edge.Valid() {
		return AdjacencyEntry{}, fmt.Errorf("%w: %s", ErrInvalidEdge, edge)
	}
	return t.entries[face][edge], nil
}

// Entries returns all 24 transitions ordered by face then edge.
func (t *Adjacency) Entries() []AdjacencyEntry {
	out := make([]AdjacencyEntry, 0, faceCount*edgeCount)
	for _, f := range Faces {
		for _, e := range Edges {
			out = append(out, t.entries[f][e])
		}
	}
	return out
}

// foldedCube is the table for the cross net, obtained by folding the
// right/back/left strip around the front and closing top and bottom over it.
var foldedCube = []AdjacencyEntry{
	{Top, North, Back, North, Rot180},
	{Top, East, Right, North, CW90},
	{Top, South, Front, North, Identity},
	{Top, West, Left, North, CCW90},

	{Front, North, Top, South, Identity},
	{Front, East, Right, West, Identity},
	{Front, South, Bottom, North, Identity},
	{Front, West, Left, East, Identity},

	{Right, North, Top, East, CCW90},
	{Right, East, Back, West, Identity},
	{Right, South, Bottom, East, CW90},
	{Right, West, Front, East, Identity},

	{Back, North, Top, North, Rot180},
	{Back, East, Left, West, Identity},
	{Back, South, Bottom, South, Rot180},
	{Back, West, Right, East, Identity},

	{Left, North, Top, West, CW90},
	{Left, East, Front, West, Identity},
	{Left, South, Bottom, West, CCW90},
	{Left, West, Back, East, Identity},

	{Bottom, North, Front, South, Identity},
	{Bottom, East, Right, South, CCW90},
	{Bottom, South, Back, South, Rot180},
	{Bottom, West, Left, South, CW90},
}

// FoldedCubeEntries returns a copy of the built-in transition list.
func FoldedCubeEntries() []AdjacencyEntry {
	out := make([]AdjacencyEntry, len(foldedCube))
	copy(out, foldedCube)
	return out
}

// NewAdjacency builds a table from entries and checks that it is total,
// that every rotation carries the exit direction onto the entry direction,
// and that every transition has its inverse.
func NewAdjacency(entries []AdjacencyEntry) (*Adjacency, error) {
	t := &Adjacency{}
	var seen [faceCount][edgeCount]bool

	for _, a := range entries {
		if !a.From.Valid() || !a.To.Valid() {
			return nil, fmt.Errorf("%w: %v: %w", ErrInvalidGeometry, a, ErrInvalidFace)
		}
		if !a.Exit.Valid() || !a.Entry.Valid() {
			return nil, fmt.Errorf("%w: %v: %w", ErrInvalidGeometry, a, ErrInvalidEdge)
		}
		if !a.Rotation.Valid() {
			return nil, fmt.Errorf("%w: %v: unknown rotation", ErrInvalidGeometry, a)
		}
		if a.From == a.To {
			return nil, fmt.Errorf("%w: %v: face adjacent to itself", ErrInvalidGeometry, a)
		}
		if seen[a.From][a.Exit] {
			return nil, fmt.Errorf("%w: duplicate transition for %s.%s", ErrInvalidGeometry, a.From, a.Exit)
		}
		if a.Rotation.Apply(a.Exit.Outward()) != a.Entry.Outward().Neg() {
			return nil, fmt.Errorf("%w: %v: rotation does not lead into the entry edge", ErrInvalidGeometry, a)
		}
		seen[a.From][a.Exit] = true
		t.entries[a.From][a.Exit] = a
	}

	for _, f := range Faces {
		for _, e := range Edges {
			if !seen[f][e] {
				return nil, fmt.Errorf("%w: no transition for %s.%s", ErrInvalidGeometry, f, e)
			}
			a := t.entries[f][e]
			back := t.entries[a.To][a.Entry]
			if back.To != f || back.Entry != e || back.Rotation != a.Rotation.Inverse() {
				return nil, fmt.Errorf("%w: %v has no inverse (found %v)", ErrInvalidGeometry, a, back)
			}
		}
	}
	return t, nil
}

// entryPoint places the tangential coordinate s on edge e of a face of the
// given size.
func entryPoint(e Edge, s float64, size geometry.Size) geometry.Point {
	switch e {
	case North:
		return geometry.Pt(s, 0)
	case South:
		return geometry.Pt(s, size.Height)
	case West:
		return geometry.Pt(0, s)
	default:
		return geometry.Pt(size.Width, s)
	}
}

// tangential returns the coordinate of p along e.
func tangential(e Edge, p geometry.Point) float64 {
	if e.Horizontal() {
		return p.Y
	}
	return p.X
}

// edgeLength returns the length of e on a face of the given size.
func edgeLength(e Edge, size geometry.Size) float64 {
	if e.Horizontal() {
		return size.Height
	}
	return size.Width
}
