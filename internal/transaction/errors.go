package transaction

import "errors"

// ErrNotFound is returned when a transaction does not exist or has
// been soft-deleted.
var ErrNotFound = errors.New("transaction not found")
