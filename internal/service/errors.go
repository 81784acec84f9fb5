package service

import "errors"

var (
	// ErrImportDeclined is returned when the user refuses to overwrite a
	// stored progress record with an import.
	ErrImportDeclined = errors.New("import declined")

	// ErrDeleteDeclined is returned when the user refuses a catalog deletion.
	ErrDeleteDeclined = errors.New("delete declined")

	// ErrSuperseded is returned by a load that a newer load overtook.
	ErrSuperseded = errors.New("load superseded by a newer request")

	// ErrNoCareerSelected is returned by operations that need a career.
	ErrNoCareerSelected = errors.New("no career selected")

	// ErrNotCustom is returned when a catalog operation targets a built-in career.
	ErrNotCustom = errors.New("not a custom career")
)
