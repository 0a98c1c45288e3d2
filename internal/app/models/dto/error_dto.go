package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/contribtrack/internal/pkg/validation"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeTokenNotFound      ErrorCode = "AUTH_007"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_008"
	ErrorCodeForbidden          ErrorCode = "AUTH_009"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Request errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// HandleValidationError converts binding errors from validator/v10 into
// field errors keyed by the JSON field name
func HandleValidationError(err error) []validation.FieldError {
	var fieldErrors []validation.FieldError

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fieldErrors
	}

	for _, e := range verrs {
		fieldErrors = append(fieldErrors, validation.FieldError{
			Field:   jsonFieldName(e),
			Message: formatValidationError(e),
		})
	}
	return fieldErrors
}

func jsonFieldName(e validator.FieldError) string {
	name := e.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := jsonFieldName(e)
	switch e.Tag() {
	case "required":
		return field + " is required."
	case "required_if":
		return field + " is required for this role."
	case "min":
		return field + " must be at least " + e.Param() + " characters."
	case "email":
		return field + " must be a valid email address."
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ") + "."
	case "uuid":
		return field + " must be a valid id."
	case "dive":
		return field + " contains an invalid entry."
	default:
		return field + " is invalid."
	}
}
