package domain

import "errors"

var (
	// ErrInvalidArgument is returned when a request parameter is out of range.
	// No partial result accompanies it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrImportValidation is returned when an imported dataset has no valid rows.
	ErrImportValidation = errors.New("no valid events found in import")
)
