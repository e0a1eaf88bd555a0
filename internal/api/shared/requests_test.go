package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	FirstName string  `json:"first_name" validate:"required"`
	Location  *string `json:"location"`
}

func newBodyRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
}

func TestDecodeAndValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var p testPayload
		require.NoError(t, DecodeAndValidate(newBodyRequest(`{"first_name":"Vincent","location":"California"}`), &p))
		assert.Equal(t, "Vincent", p.FirstName)
		require.NotNil(t, p.Location)
	})

	t.Run("empty body", func(t *testing.T) {
		var p testPayload
		err := DecodeAndValidate(newBodyRequest(""), &p)
		assert.ErrorIs(t, err, ErrMalformedBody)
		assert.ErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("syntax error", func(t *testing.T) {
		var p testPayload
		assert.ErrorIs(t, DecodeAndValidate(newBodyRequest(`{"first_name":`), &p), ErrMalformedBody)
	})

	t.Run("wrong type", func(t *testing.T) {
		var p testPayload
		assert.ErrorIs(t, DecodeAndValidate(newBodyRequest(`{"first_name":42}`), &p), ErrMalformedBody)
	})

	t.Run("missing required field", func(t *testing.T) {
		var p testPayload
		err := DecodeAndValidate(newBodyRequest(`{"location":"California"}`), &p)
		assert.ErrorIs(t, err, domain.ErrValidation)

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "first_name", vErr.Field)
		assert.Contains(t, vErr.Message, "required")
	})
}

type testPatch struct {
	FirstName *string `json:"first_name"`
}

func TestDecodePatchAndValidate(t *testing.T) {
	t.Run("empty body is an empty patch", func(t *testing.T) {
		var p testPatch
		require.NoError(t, DecodePatchAndValidate(newBodyRequest(""), &p))
		assert.Nil(t, p.FirstName)
	})

	t.Run("nil body is an empty patch", func(t *testing.T) {
		req := newBodyRequest("")
		req.Body = nil
		var p testPatch
		require.NoError(t, DecodePatchAndValidate(req, &p))
		assert.Nil(t, p.FirstName)
	})

	t.Run("present field", func(t *testing.T) {
		var p testPatch
		require.NoError(t, DecodePatchAndValidate(newBodyRequest(`{"first_name":"Mia"}`), &p))
		require.NotNil(t, p.FirstName)
		assert.Equal(t, "Mia", *p.FirstName)
	})

	t.Run("syntax error is still rejected", func(t *testing.T) {
		var p testPatch
		err := DecodePatchAndValidate(newBodyRequest(`{"first_name":`), &p)
		assert.ErrorIs(t, err, ErrMalformedBody)
		assert.NotErrorIs(t, err, ErrEmptyBody)
	})
}
