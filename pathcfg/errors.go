package pathcfg

import "errors"

// Sentinel errors returned by New and the Registry.
var (
	// ErrInvalidSpeed indicates a non-positive or non-finite speed.
	ErrInvalidSpeed = errors.New("pathcfg: speed must be finite and > 0")

	// ErrInvalidWidth indicates a negative extrusion width.
	ErrInvalidWidth = errors.New("pathcfg: line width must be >= 0")

	// ErrDuplicateName indicates Registry.Register was called twice for the
	// same name.
	ErrDuplicateName = errors.New("pathcfg: config name already registered")

	// ErrUnknownName indicates Registry.Get was called for a name that was
	// never registered.
	ErrUnknownName = errors.New("pathcfg: unknown config name")
)
