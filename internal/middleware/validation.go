package middleware

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

// BindJSON decodes the request body into obj and runs its binding rules.
// An empty body decodes as an empty object. On failure the error response
// has already been written and false is returned.
func BindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		HandleAPIError(c, apperrors.NewValidationError("Validation failed.", dto.HandleValidationError(verrs)))
		return false
	}

	HandleAPIError(c, apperrors.NewBadRequestError("Invalid request body."))
	return false
}
