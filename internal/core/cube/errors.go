package cube

import "errors"

// Navigation errors
var (
	// ErrOutOfBounds means a position claimed to be on a face does not
	// resolve to that face. It signals a caller bug or corrupted level data.
	ErrOutOfBounds = errors.New("position is not on the claimed face")
	// ErrNotFound means a global point lies outside every face. Callers are
	// expected to check for it.
	ErrNotFound = errors.New("point is not on any face")
	// ErrStepTooLarge means a step needed more face crossings than allowed.
	// Splitting the step into smaller increments recovers.
	ErrStepTooLarge = errors.New("step crosses too many faces")
	// ErrInvalidGeometry is a construction-time failure of level sizes or
	// of the adjacency table.
	ErrInvalidGeometry = errors.New("invalid cube geometry")

	ErrInvalidFace = errors.New("invalid face")
	ErrInvalidEdge = errors.New("invalid edge")
)
