// Package entryerror defines the error taxonomy for entry and budget operations.
package entryerror

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned when deleting an ID that is not in the store.
// Callers treat it as a no-op.
var ErrEntryNotFound = errors.New("entry not found")

// InvalidEntryInputError represents input rejected at entry creation.
// No state is mutated when it is returned.
type InvalidEntryInputError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *InvalidEntryInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s='%s': %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidEntryInputError) Unwrap() error {
	return e.Err
}

// InvalidBudgetError represents a budget value that is negative or not a number
type InvalidBudgetError struct {
	Value  string
	Reason string
	Err    error
}

func (e *InvalidBudgetError) Error() string {
	return fmt.Sprintf("invalid budget '%s': %s", e.Value, e.Reason)
}

func (e *InvalidBudgetError) Unwrap() error {
	return e.Err
}

// NotFound wraps ErrEntryNotFound with the missing ID
func NotFound(id int64) error {
	return fmt.Errorf("remove entry %d: %w", id, ErrEntryNotFound)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidEntryInputError
func IsInvalidInput(err error) bool {
	var target *InvalidEntryInputError
	return errors.As(err, &target)
}
