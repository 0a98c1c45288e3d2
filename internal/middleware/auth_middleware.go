package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appauth "github.com/yigit/contribtrack/internal/app/auth"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
	"github.com/yigit/contribtrack/internal/pkg/auth"
)

const callerKey = "caller"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	authz      *appauth.AuthorizationService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, authz *appauth.AuthorizationService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		authz:      authz,
	}
}

// JWTAuth requires a valid "Authorization: Bearer <token>" header and stores
// the caller in the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			HandleAPIError(c, apperrors.Wrap(apperrors.ErrTokenMissing).WithCode(string(dto.ErrorCodeTokenNotFound)))
			return
		}

		tokenString, err := auth.ExtractBearerToken(header)
		if err != nil {
			HandleAPIError(c, apperrors.Wrap(apperrors.ErrTokenMissing).WithCode(string(dto.ErrorCodeTokenNotFound)))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
			}
			HandleAPIError(c, apperrors.Wrap(apperrors.ErrTokenInvalid).WithCode(string(code)))
			return
		}

		caller, err := callerFromClaims(claims)
		if err != nil {
			HandleAPIError(c, apperrors.Wrap(apperrors.ErrTokenInvalid).WithCode(string(dto.ErrorCodeInvalidToken)))
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

func callerFromClaims(claims *auth.Claims) (*appauth.Caller, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}
	caller := &appauth.Caller{
		UserID: userID,
		Role:   models.Role(claims.Role),
	}
	if claims.DepartmentID != nil && *claims.DepartmentID != "" {
		departmentID, err := uuid.Parse(*claims.DepartmentID)
		if err != nil {
			return nil, err
		}
		caller.DepartmentID = &departmentID
	}
	return caller, nil
}

// CallerFromContext returns the caller stored by JWTAuth
func CallerFromContext(c *gin.Context) (*appauth.Caller, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return nil, false
	}
	caller, ok := value.(*appauth.Caller)
	return caller, ok && caller != nil
}

// RoleRequired allows the request only for the listed roles
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := CallerFromContext(c)
		if err := m.authz.RequireRole(caller, roles...); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Next()
	}
}

// DepartmentScope restricts an HOD to their own department. The department
// is read from the path parameter param, then the JSON body field
// "department", then the "department" query parameter.
func (m *AuthMiddleware) DepartmentScope(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := CallerFromContext(c)
		if err := m.authz.RequireDepartment(caller, requestedDepartment(c, param)); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Next()
	}
}

func requestedDepartment(c *gin.Context, param string) string {
	if value := c.Param(param); value != "" {
		return value
	}
	if value := peekBodyDepartment(c); value != "" {
		return value
	}
	return c.Query("department")
}

// maxPeekBytes bounds how much of a body DepartmentScope buffers
const maxPeekBytes = 1 << 20

// peekBodyDepartment reads the body and puts it back for the handler. Bodies
// over maxPeekBytes are passed through unread.
func peekBodyDepartment(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	body := c.Request.Body
	raw, err := io.ReadAll(io.LimitReader(body, maxPeekBytes+1))
	if len(raw) > maxPeekBytes {
		c.Request.Body = readCloser{io.MultiReader(bytes.NewReader(raw), body), body}
		return ""
	}
	body.Close()
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Department interface{} `json:"department"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if s, ok := payload.Department.(string); ok {
		return s
	}
	return ""
}

type readCloser struct {
	io.Reader
	io.Closer
}
