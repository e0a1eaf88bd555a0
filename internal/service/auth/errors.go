package auth

import "errors"

// Common authentication service errors. Every one of them is answered with
// 401 by the API layer.
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrPermissionDenied indicates a valid token that lacks the required permission
	ErrPermissionDenied = errors.New("permission not granted")

	// ErrSigningUnavailable indicates the service can verify but not mint tokens
	ErrSigningUnavailable = errors.New("token signing key not configured")
)
