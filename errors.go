package criteria

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a clause cannot be generated because an
// input is malformed: an empty field name, a fields/values length mismatch,
// an invalid operator or direction, or a condition value of the wrong shape
// for its operator.
var ErrInvalidInput = errors.New("criteria: invalid input")

// InvalidInputError describes the malformed input that stopped clause
// generation. Generation is deterministic, so the caller must fix the
// input rather than retry.
type InvalidInputError struct {
	reason string
}

// Error returns the error string.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("criteria: invalid input: %s", e.reason)
}

// Is reports whether the target error matches InvalidInputError.
// This allows errors.Is(err, ErrInvalidInput) to return true.
func (e *InvalidInputError) Is(err error) bool {
	return err == ErrInvalidInput
}

// Reason returns the description of the malformed input.
func (e *InvalidInputError) Reason() string {
	return e.reason
}

// NewInvalidInputError returns a new InvalidInputError with the given reason.
func NewInvalidInputError(reason string) *InvalidInputError {
	return &InvalidInputError{reason: reason}
}

// IsInvalidInput returns true if the error is an InvalidInputError.
func IsInvalidInput(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidInputError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidInput)
}
