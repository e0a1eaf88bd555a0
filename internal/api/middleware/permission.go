package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/endorsa/endorsa-api/internal/api/shared"
	"github.com/endorsa/endorsa-api/internal/platform/logger"
	"github.com/endorsa/endorsa-api/internal/service/auth"
)

// PermissionMiddleware gates routes on a permission carried by the bearer token.
type PermissionMiddleware struct {
	jwtService auth.JWTService
}

// NewPermissionMiddleware creates a new PermissionMiddleware with the given dependencies.
func NewPermissionMiddleware(jwtService auth.JWTService) *PermissionMiddleware {
	if jwtService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("jwtService cannot be nil")
	}
	return &PermissionMiddleware{jwtService: jwtService}
}

// RequirePermission returns middleware that lets a request through only
// when its token is valid and lists permission. Every failure is a 401.
// The verified claims are added to the request context.
func (m *PermissionMiddleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := m.authorize(r, permission)
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, authErrorMessage(err), err)
				return
			}

			logger.FromContext(r.Context()).Debug("request authorized",
				slog.String("subject", claims.Subject),
				slog.String("permission", permission))

			ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *PermissionMiddleware) authorize(r *http.Request, permission string) (*auth.Claims, error) {
	token, err := bearerToken(r)
	if err != nil {
		return nil, err
	}

	claims, err := m.jwtService.ValidateToken(r.Context(), token)
	if err != nil {
		return nil, err
	}

	if !claims.HasPermission(permission) {
		return nil, auth.ErrPermissionDenied
	}
	return claims, nil
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization header is expected"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrPermissionDenied):
		return "Permission not found"
	default:
		return "Invalid token"
	}
}

// GetClaims extracts the verified claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok
}
