package repository

import "errors"

// ErrNotFound is returned when a record does not exist in its collection.
// Repositories wrap it with the record type for context.
var ErrNotFound = errors.New("not found")
