// Package level holds the per-face data of a cube level: the tile grid of
// each face and the size derived from it. The navigation core only reads
// the sizes.
package level

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/cubenet/internal/core/cube"
	"github.com/zeusync/cubenet/internal/core/geometry"
)

var ErrInvalidLevel = errors.New("invalid level")

// FaceData is one face of a level. Tiles are rows of runes, opaque to the
// navigation core. When Width or Height is zero it is taken from Tiles.
type FaceData struct {
	Width  int      `json:"width" yaml:"width"`
	Height int      `json:"height" yaml:"height"`
	Tiles  []string `json:"tiles,omitempty" yaml:"tiles,omitempty"`
}

// Level is a named set of six faces keyed by face name.
type Level struct {
	Name  string              `json:"name" yaml:"name"`
	Faces map[string]FaceData `json:"faces" yaml:"faces"`

	// keys that Normalize folded onto an already present face key
	collisions []string
}

var _ cube.SizeSource = (*Level)(nil)

// Uniform returns a level whose faces are all n by n with empty tiles.
func Uniform(name string, n int) *Level {
	l := &Level{Name: name, Faces: make(map[string]FaceData, len(cube.Faces))}
	for _, f := range cube.Faces {
		l.Faces[f.String()] = FaceData{Width: n, Height: n}
	}
	return l
}

// Normalize canonicalises face keys and fills sizes from tile grids. When
// several keys name the same face, the first in sorted order is kept and
// Validate reports the others.
func (l *Level) Normalize() {
	l.Name = strings.TrimSpace(l.Name)
	l.collisions = nil
	if l.Faces == nil {
		return
	}
	faces := make(map[string]FaceData, len(l.Faces))
	for _, name := range l.FaceNames() {
		fd := l.Faces[name]
		if fd.Height == 0 {
			fd.Height = len(fd.Tiles)
		}
		if fd.Width == 0 {
			for _, row := range fd.Tiles {
				fd.Width = max(fd.Width, utf8.RuneCountInString(row))
			}
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := faces[key]; dup {
			l.collisions = append(l.collisions, name)
			continue
		}
		faces[key] = fd
	}
	l.Faces = faces
}

// Validate checks that every face is present, known and sized, and that
// tile grids match the declared sizes.
func (l *Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidLevel)
	}
	if len(l.collisions) > 0 {
		return fmt.Errorf("%w: %w: face keys %q name a face twice", ErrInvalidLevel, cube.ErrInvalidGeometry, l.collisions)
	}
	for name := range l.Faces {
		if _, err := cube.ParseFace(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
		}
	}
	for _, f := range cube.Faces {
		fd, ok := l.Faces[f.String()]
		if !ok {
			return fmt.Errorf("%w: %w: face %s is missing", ErrInvalidLevel, cube.ErrInvalidGeometry, f)
		}
		if fd.Width <= 0 || fd.Height <= 0 {
			return fmt.Errorf("%w: %w: face %s has size %dx%d", ErrInvalidLevel, cube.ErrInvalidGeometry, f, fd.Width, fd.Height)
		}
		if len(fd.Tiles) == 0 {
			continue
		}
		if len(fd.Tiles) != fd.Height {
			return fmt.Errorf("%w: face %s has %d tile rows, want %d", ErrInvalidLevel, f, len(fd.Tiles), fd.Height)
		}
		for y, row := range fd.Tiles {
			if n := utf8.RuneCountInString(row); n != fd.Width {
				return fmt.Errorf("%w: face %s row %d has %d tiles, want %d", ErrInvalidLevel, f, y, n, fd.Width)
			}
		}
	}
	return nil
}

// FaceSize implements cube.SizeSource.
func (l *Level) FaceSize(face cube.Face) (geometry.Size, bool) {
	fd, ok := l.Faces[face.String()]
	if !ok {
		return geometry.Size{}, false
	}
	return geometry.Size{Width: float64(fd.Width), Height: float64(fd.Height)}, true
}

// Tile returns the tile under a face-local point. Faces without tiles
// report false.
func (l *Level) Tile(pos cube.Position) (rune, bool) {
	fd, ok := l.Faces[pos.Face.String()]
	if !ok || len(fd.Tiles) == 0 {
		return 0, false
	}
	x, y := int(pos.Local.X), int(pos.Local.Y)
	if pos.Local.X < 0 || pos.Local.Y < 0 || y >= len(fd.Tiles) {
		return 0, false
	}
	row := []rune(fd.Tiles[y])
	if x >= len(row) {
		return 0, false
	}
	return row[x], true
}

// Build constructs the navigable surface for this level.
func (l *Level) Build(opts ...cube.Option) (*cube.Surface, error) {
	return cube.New(l, opts...)
}

// Fingerprint hashes sizes and tiles in face order. Two levels with the
// same fingerprint build identical surfaces.
func (l *Level) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, f := range cube.Faces {
		fd := l.Faces[f.String()]
		_, _ = d.WriteString(f.String())
		binary.LittleEndian.PutUint32(buf[:4], uint32(fd.Width))
		binary.LittleEndian.PutUint32(buf[4:], uint32(fd.Height))
		_, _ = d.Write(buf[:])
		for _, row := range fd.Tiles {
			_, _ = d.WriteString(row)
			_, _ = d.Write([]byte{'\n'})
		}
	}
	return d.Sum64()
}

// FaceNames returns the face keys present in the level, sorted.
func (l *Level) FaceNames() []string {
	names := make([]string, 0, len(l.Faces))
	for name := range l.Faces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
