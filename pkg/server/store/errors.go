package store

import "errors"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, e.g. two concurrent creates of the same organization name
	ErrDuplicate = errors.New("duplicate record")
)
