package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/endorsa/endorsa-api/internal/api/shared"
	"github.com/endorsa/endorsa-api/internal/config"
	"github.com/endorsa/endorsa-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		Algorithm:            "HS256",
		JWTSecret:            "middleware-test-secret-of-sufficient-length",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return svc
}

func mintToken(t *testing.T, svc auth.JWTService, permissions ...string) string {
	t.Helper()
	token, err := svc.GenerateToken(context.Background(), "tester", permissions)
	require.NoError(t, err)
	return token
}

func TestRequirePermission(t *testing.T) {
	svc := newTestJWTService(t)
	mw := NewPermissionMiddleware(svc)

	var gotClaims *auth.Claims
	protected := mw.RequirePermission(auth.PermEditUser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaims(r)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"valid token with permission", "Bearer " + mintToken(t, svc, auth.PermEditUser), http.StatusOK, ""},
		{"lower-case scheme", "bearer " + mintToken(t, svc, auth.PermEditUser), http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "Authorization header is expected"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "Invalid token"},
		{"no token", "Bearer", http.StatusUnauthorized, "Invalid token"},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, "Invalid token"},
		{"missing permission", "Bearer " + mintToken(t, svc, auth.PermReadUser), http.StatusUnauthorized, "Permission not found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotClaims = nil
			r := httptest.NewRequest(http.MethodDelete, "/users", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, r)

			require.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				require.NotNil(t, gotClaims)
				assert.Equal(t, "tester", gotClaims.Subject)
				return
			}

			assert.Nil(t, gotClaims, "handler must not run")
			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, http.StatusUnauthorized, body.Error)
			assert.Equal(t, tc.wantMsg, body.Message)
		})
	}
}

func TestNewPermissionMiddlewarePanicsWithoutService(t *testing.T) {
	assert.Panics(t, func() { NewPermissionMiddleware(nil) })
}

func TestGetClaimsAbsent(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	claims, ok := GetClaims(r)
	assert.False(t, ok)
	assert.Nil(t, claims)
}
