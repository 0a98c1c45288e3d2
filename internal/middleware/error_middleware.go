package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
	"github.com/yigit/contribtrack/internal/pkg/logger"
)

const internalErrorMessage = "Internal server error."

type errorMapping struct {
	category error
	status   int
	code     dto.ErrorCode
	message  string
}

// Order matters: specific categories before the ones they could shadow.
var errorMappings = []errorMapping{
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed."},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request."},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials."},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required."},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied."},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found."},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists."},
}

// ErrorResponseFor maps err to an HTTP status and response envelope.
// Errors outside the known categories become a 500 without detail.
func ErrorResponseFor(err error) (int, dto.APIResponse) {
	var customErr *apperrors.CustomError
	hasCustom := errors.As(err, &customErr)

	for _, m := range errorMappings {
		if !errors.Is(err, m.category) {
			continue
		}

		resp := dto.NewErrorResponse(m.code, m.message)
		if hasCustom {
			if customErr.Message != "" {
				resp.Message = customErr.Message
			}
			if customErr.Code != "" {
				resp.Code = dto.ErrorCode(customErr.Code)
			}
			resp.Errors = customErr.Errors
			resp.Details = customErr.Details
			resp.Data = customErr.Data
		}
		return m.status, resp
	}

	return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, internalErrorMessage)
}

// HandleAPIError writes the error envelope for err and aborts the request
func HandleAPIError(c *gin.Context, err error) {
	status, resp := ErrorResponseFor(err)
	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
	}
	c.AbortWithStatusJSON(status, resp)
}

// NotFoundHandler answers unknown routes
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Resource not found.")
		resp.Details = map[string]interface{}{"path": c.Request.URL.Path}
		c.AbortWithStatusJSON(http.StatusNotFound, resp)
	}
}

// Recovery turns a panic into the 500 envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, internalErrorMessage))
	})
}
