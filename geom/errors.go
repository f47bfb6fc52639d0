package geom

import "errors"

// Sentinel errors for invalid polygon input. No function in this package
// returns them.
var (
	// ErrEmptyPolygon indicates an operation required a non-empty polygon.
	ErrEmptyPolygon = errors.New("geom: polygon is empty")

	// ErrStartIndexOutOfRange indicates a start index fell outside [0, n).
	ErrStartIndexOutOfRange = errors.New("geom: start index out of range")
)
