package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validate is the global validator instance, shared across handlers.
var Validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidationDetails converts a validator error into field-level detail
// entries suitable for an ErrorResponse. Non-validator errors yield nil.
func ValidationDetails(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: validationTagMessage(fe.Tag()),
		})
	}
	return details
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "too small"
	case "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
