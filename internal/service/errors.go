package service

import (
	"errors"
	"fmt"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/store"
)

// Service errors. The API layer maps these with errors.Is.
var (
	// ErrEmptyCollection is returned by list operations when nothing is stored.
	// API layer should map this to HTTP 404 Not Found.
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrResidualRows is returned when rows remain after a bulk delete committed.
	// It always wraps store.ErrDeleteFailed.
	// API layer should map this to HTTP 422 Unprocessable Entity.
	ErrResidualRows = fmt.Errorf("%w: rows remain after bulk delete", store.ErrDeleteFailed)
)

// mutationError classifies a failed write. Not-found and validation errors
// keep their meaning; anything else is reported as the given failure kind
// with the cause still in the chain.
func mutationError(kind, err error) error {
	if err == nil {
		return nil
	}
	if store.IsNotFoundError(err) || errors.Is(err, domain.ErrValidation) || errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
