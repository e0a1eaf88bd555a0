package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation or violates
	// a constraint (unknown foreign key, missing required column).
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrCreateFailed is returned when an insert cannot be persisted.
	ErrCreateFailed = errors.New("create failed")

	// ErrUpdateFailed is returned when an update cannot be persisted.
	ErrUpdateFailed = errors.New("update failed")

	// ErrDeleteFailed is returned when a delete cannot be persisted, including
	// a bulk delete that leaves rows behind.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrTransactionFailed is returned when a transaction cannot begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrProfileNotFound indicates that the requested profile does not exist.
	ErrProfileNotFound = fmt.Errorf("%w: profile", ErrNotFound)

	// ErrSkillNotFound indicates that the requested skill does not exist.
	ErrSkillNotFound = fmt.Errorf("%w: skill", ErrNotFound)

	// ErrEndorsementNotFound indicates that the requested endorsement does not exist.
	ErrEndorsementNotFound = fmt.Errorf("%w: endorsement", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "profile", "skill")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
