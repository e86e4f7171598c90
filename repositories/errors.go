package repositories

import "errors"

// ErrNotFound is returned in place of the driver's no-documents error so
// callers never depend on mongo internals.
var ErrNotFound = errors.New("document not found")
