package domain

import "errors"

var (
	// ErrFormat marks a document or tag that matches none of the accepted shapes.
	ErrFormat = errors.New("invalid format")

	// ErrSubjectNotFound is returned when a subject id is absent from a career.
	ErrSubjectNotFound = errors.New("subject not found")
)
