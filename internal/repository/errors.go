package repository

import "errors"

// ErrNotFound is returned when a stored key or catalog entry does not exist.
var ErrNotFound = errors.New("not found")
