package store

import "errors"

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRecord is returned when a record misses a required field.
	// The wrapped *model.ValidationError names the field.
	ErrInvalidRecord = errors.New("invalid record")
)
