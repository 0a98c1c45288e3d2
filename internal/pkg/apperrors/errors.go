package apperrors

import "errors"

// Error categories. Every error returned to the HTTP layer unwraps to one of these.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrValidationFailed   = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
)

// Token errors
var (
	ErrTokenMissing = &CustomError{Err: ErrUnauthorized, Message: "Authorization token missing."}
	ErrTokenInvalid = &CustomError{Err: ErrUnauthorized, Message: "Invalid or expired token."}
)

// Resource errors. These are shared sentinels: never call the With* helpers on
// them, use the New* constructors for errors that need extra context.
var (
	ErrUserNotFound         = &CustomError{Err: ErrResourceNotFound, Message: "User not found."}
	ErrDepartmentNotFound   = &CustomError{Err: ErrResourceNotFound, Message: "Department not found."}
	ErrEmployeeNotFound     = &CustomError{Err: ErrResourceNotFound, Message: "Employee not found."}
	ErrContributionNotFound = &CustomError{Err: ErrResourceNotFound, Message: "Contribution not found."}

	ErrEmailAlreadyExists      = &CustomError{Err: ErrConflict, Message: "Email already in use."}
	ErrDepartmentAlreadyExists = &CustomError{Err: ErrConflict, Message: "Department with this name already exists."}
	ErrEmployeeAlreadyExists   = &CustomError{Err: ErrConflict, Message: "Employee with this empId already exists."}
	ErrContributionExists      = &CustomError{Err: ErrConflict, Message: "Contribution for this department and cycle already exists. Use the update endpoint instead."}
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) *CustomError {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) *CustomError {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation failure carrying field-level errors
func NewValidationError(message string, fieldErrors interface{}) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Errors:  fieldErrors,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
	// Errors holds field-level validation errors
	Errors interface{}
	// Data is echoed back in the response body, e.g. the existing record on a conflict
	Data interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithData attaches a payload to be returned alongside the error
func (e *CustomError) WithData(data interface{}) *CustomError {
	e.Data = data
	return e
}

// Wrap returns a copy of a sentinel CustomError that is safe to decorate with
// With* helpers. errors.Is keeps matching both the sentinel and its category.
func Wrap(sentinel *CustomError) *CustomError {
	return &CustomError{
		Err:     sentinelError{sentinel},
		Message: sentinel.Message,
		Code:    sentinel.Code,
	}
}

// sentinelError lets a copied CustomError unwrap to the original sentinel first,
// then to the sentinel's category.
type sentinelError struct {
	sentinel *CustomError
}

func (s sentinelError) Error() string { return s.sentinel.Error() }

func (s sentinelError) Unwrap() error { return s.sentinel }
