package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/endorsa/endorsa-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

// maxBodyBytes caps request bodies; every payload here is a handful of fields.
const maxBodyBytes = 1 << 20

// ErrMalformedBody is returned when a request body is not the expected JSON.
var ErrMalformedBody = errors.New("malformed request body")

// ErrEmptyBody is returned when a request carries no body at all.
var ErrEmptyBody = fmt.Errorf("%w: empty body", ErrMalformedBody)

// Global validator instance for reuse
var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
// Empty, oversized or syntactically invalid bodies wrap ErrMalformedBody;
// a missing body is reported as ErrEmptyBody.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
// Failures wrap domain.ErrValidation.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return domain.NewValidationError(
				first.Field(),
				fmt.Sprintf("failed on the '%s' rule", first.Tag()),
				err,
			)
		}
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return nil
}

// DecodeAndValidate decodes the body into v and validates it.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return ValidateRequest(v)
}

// DecodePatchAndValidate is DecodeAndValidate for partial updates, where a
// missing body is an empty patch and leaves v untouched.
func DecodePatchAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil && !errors.Is(err, ErrEmptyBody) {
		return err
	}
	return ValidateRequest(v)
}
