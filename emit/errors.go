package emit

import "errors"

// ErrEmptyEmit is returned by Emit when the queue has no records. It is
// not a failure: callers may treat it as "nothing to do".
var ErrEmptyEmit = errors.New("emit: nothing to emit")
