package auth

import (
	"context"
	"slices"
	"time"
)

// JWTService defines operations for verifying and minting bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token for subject carrying permissions.
	// Returns ErrSigningUnavailable when no signing key is configured.
	GenerateToken(ctx context.Context, subject string, permissions []string) (string, error)

	// ValidateToken verifies signature, algorithm, issuer, audience and
	// expiry of tokenString and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of a token.
type Claims struct {
	Subject     string    `json:"sub,omitempty"`
	Issuer      string    `json:"iss,omitempty"`
	Audience    []string  `json:"aud,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
	IssuedAt    time.Time `json:"iat,omitempty"`
	ExpiresAt   time.Time `json:"exp,omitempty"`
	ID          string    `json:"jti,omitempty"`
}

// HasPermission reports whether the token grants permission.
func (c *Claims) HasPermission(permission string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Permissions, permission)
}
