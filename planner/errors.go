package planner

import "errors"

var (
	// ErrEmptyPolygon is returned when a queue operation requires a
	// non-empty polygon and is given one with zero vertices.
	ErrEmptyPolygon = errors.New("planner: empty polygon")

	// ErrStartIndexOutOfRange is returned when a start index falls outside
	// [0, len(poly)).
	ErrStartIndexOutOfRange = errors.New("planner: start index out of range")

	// ErrConfigConflict is returned when a queue operation's config
	// disagrees with the operation's travel/extrusion nature: a travel
	// operation queued with a non-travel config, or vice versa.
	ErrConfigConflict = errors.New("planner: config conflicts with operation kind")

	// ErrInvalidSettings is returned by NewSettings when a ConfigSettings
	// field is out of its valid range.
	ErrInvalidSettings = errors.New("planner: invalid settings")
)
