package customerr

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError is returned for bad input. It is never retried automatically.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// NotFoundError means the target id is absent (or owned by another user).
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("expense %s not found", e.ID)
}

// StoreError wraps a transport or backend failure. Callers may retry.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return "store: " + e.Op + " failed"
	}
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DataIntegrityWarning describes a record excluded from aggregation.
type DataIntegrityWarning struct {
	RecordID string `json:"recordId"`
	Field    string `json:"field"`
	Reason   string `json:"reason"`
}

func (w DataIntegrityWarning) Error() string {
	return fmt.Sprintf("record %q: bad %s: %s", w.RecordID, w.Field, w.Reason)
}

func NewValidation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func NewNotFound(id string) error {
	return &NotFoundError{ID: id}
}

// NewStore classifies err as a StoreError unless it already carries a
// taxonomy type. A nil err stays nil.
func NewStore(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsNotFound(err) || IsStore(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &StoreError{Op: op, Err: errors.Wrap(err, "timed out")}
	}
	return &StoreError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target *StoreError
	return errors.As(err, &target)
}
