package domain

import "errors"

// ErrInvalid marks validation failures. Callers wrap it with a description
// of the rejected field; nothing is written to storage when it is returned.
var ErrInvalid = errors.New("invalid")
