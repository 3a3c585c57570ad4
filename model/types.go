package model

import (
	"cmp"
	"fmt"
	"strings"
)

// ID is the user-facing stable identifier of a student.
type ID uint32

// Record represents a student.
type Record struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Major string `json:"major"`
}

// String returns a string representation of the Record.
func (r Record) String() string {
	return fmt.Sprintf("Record(%d, %q, %q)", r.ID, r.Name, r.Major)
}

// Validate reports whether the record carries every required field.
// The id is not checked: zero is a request for allocation.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(r.Major) == "" {
		return &ValidationError{Field: "major", Reason: "must not be empty"}
	}
	return nil
}

// Compare orders records by id.
func Compare(a, b Record) int {
	return cmp.Compare(a.ID, b.ID)
}

// ValidationError describes a record that is missing a required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
