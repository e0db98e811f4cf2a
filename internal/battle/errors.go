package battle

import "errors"

// ErrNotImplemented marks behaviour that is recognised but has no resolved
// semantics yet. It is never returned for a legal no-op.
var ErrNotImplemented = errors.New("not implemented")
