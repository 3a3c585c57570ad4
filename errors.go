package studentdir

import (
	"errors"
	"fmt"

	"github.com/hupe1980/studentdir/model"
	"github.com/hupe1980/studentdir/store"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("not found")
)

// ErrInvalidRecord indicates a record that misses a required field.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidRecord struct {
	Field  string
	Reason string
	cause  error
}

func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid record: %s %s", e.Field, e.Reason)
}

func (e *ErrInvalidRecord) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return &ErrInvalidRecord{Field: ve.Field, Reason: ve.Reason, cause: err}
	}
	if errors.Is(err, store.ErrInvalidRecord) {
		return &ErrInvalidRecord{Reason: "rejected", cause: err}
	}

	return err
}
