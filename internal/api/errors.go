package api

import (
	"errors"
	"net/http"

	"github.com/endorsa/endorsa-api/internal/api/shared"
	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/endorsa/endorsa-api/internal/service"
	"github.com/endorsa/endorsa-api/internal/service/auth"
	"github.com/endorsa/endorsa-api/internal/store"
)

// Messages sent to clients. Internal error text never leaves the server.
const (
	msgNotFound       = "Resource not found"
	msgUnprocessable  = "Unprocessable"
	msgInternalError  = "Internal server error"
	msgInvalidToken   = "Invalid token"
	msgExpiredToken   = "Token expired"
	msgMissingToken   = "Authorization header is expected"
	msgPermission     = "Permission not found"
	msgMethodNotAllow = "Method not allowed"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrPermissionDenied),
		errors.Is(err, auth.ErrSigningUnavailable):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrEmptyCollection):
		return http.StatusNotFound

	// Everything the client could have caused by sending different data.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrCreateFailed),
		errors.Is(err, store.ErrUpdateFailed),
		errors.Is(err, store.ErrDeleteFailed),
		errors.Is(err, shared.ErrMalformedBody):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgInternalError
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return msgMissingToken
	case errors.Is(err, auth.ErrExpiredToken):
		return msgExpiredToken
	case errors.Is(err, auth.ErrPermissionDenied):
		return msgPermission
	}

	switch MapErrorToStatusCode(err) {
	case http.StatusUnauthorized:
		return msgInvalidToken
	case http.StatusNotFound:
		return msgNotFound
	case http.StatusUnprocessableEntity:
		return msgUnprocessable
	default:
		return msgInternalError
	}
}

// HandleAPIError writes the error envelope for err and logs its redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// NotFound answers unknown routes with the error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowed answers known routes called with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllow)
}
