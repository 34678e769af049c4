package level

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadJSON reads a level from JSON, then normalises and validates it.
func LoadJSON(r io.Reader) (*Level, error) {
	var l Level
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return finish(&l)
}

// LoadYAML reads a level from YAML, then normalises and validates it.
func LoadYAML(r io.Reader) (*Level, error) {
	var l Level
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return finish(&l)
}

// Load reads a level file, choosing the format by extension. Anything but
// .json is read as YAML.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var l *Level
	if strings.EqualFold(filepath.Ext(path), ".json") {
		l, err = LoadJSON(f)
	} else {
		l, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return l, nil
}

func finish(l *Level) (*Level, error) {
	l.Normalize()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
