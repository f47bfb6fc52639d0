package pathrecord

import "errors"

// ErrSealViolation indicates an attempt to append to, or otherwise mutate,
// a Record after Seal has been called. This is a programmer error in the
// caller, not a recoverable input condition: the planner itself never
// triggers it, since it always opens a new Record instead of appending to a
// sealed one.
var ErrSealViolation = errors.New("pathrecord: cannot mutate a sealed record")
