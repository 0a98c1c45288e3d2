package auth

import (
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

// Authorization failures
var (
	ErrRoleDenied = &apperrors.CustomError{
		Err:     apperrors.ErrPermissionDenied,
		Message: "You do not have permission to perform this action.",
	}
	ErrDepartmentDenied = &apperrors.CustomError{
		Err:     apperrors.ErrPermissionDenied,
		Message: "You are not allowed to access this department resource.",
	}
	ErrDepartmentRequired = &apperrors.CustomError{
		Err:     apperrors.ErrBadRequest,
		Message: "Department identifier is required.",
	}
	ErrInvalidDepartmentID = &apperrors.CustomError{
		Err:     apperrors.ErrBadRequest,
		Message: "Invalid department id.",
	}
	ErrUnauthenticated = &apperrors.CustomError{
		Err:     apperrors.ErrUnauthorized,
		Message: "Authentication required.",
	}
)

// Caller is the authenticated identity attached to a request
type Caller struct {
	UserID       uuid.UUID
	Role         models.Role
	DepartmentID *uuid.UUID
}

// OwnsDepartment reports whether the caller is linked to departmentID
func (c *Caller) OwnsDepartment(departmentID uuid.UUID) bool {
	return c.DepartmentID != nil && *c.DepartmentID == departmentID
}

// AuthorizationService makes every role based decision. Each method switches
// exhaustively over models.Role; an unknown role is always denied.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// RequireRole allows the caller only when its role is among allowed
func (s *AuthorizationService) RequireRole(caller *Caller, allowed ...models.Role) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	if !caller.Role.Valid() {
		return ErrRoleDenied
	}
	for _, role := range allowed {
		if caller.Role == role {
			return nil
		}
	}
	return ErrRoleDenied
}

// CanAccessDepartment reports whether the caller may read or write resources
// of departmentID
func (s *AuthorizationService) CanAccessDepartment(caller *Caller, departmentID uuid.UUID) bool {
	if caller == nil {
		return false
	}
	switch caller.Role {
	case models.RoleAdmin:
		return true
	case models.RoleHOD:
		return caller.OwnsDepartment(departmentID)
	default:
		return false
	}
}

// RequireDepartmentAccess is CanAccessDepartment as an error
func (s *AuthorizationService) RequireDepartmentAccess(caller *Caller, departmentID uuid.UUID) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	if !s.CanAccessDepartment(caller, departmentID) {
		return ErrDepartmentDenied
	}
	return nil
}

// RequireDepartment checks a raw department identifier taken from a request.
// Admins pass unconditionally. An HOD must supply a well-formed identifier
// equal to their own department.
func (s *AuthorizationService) RequireDepartment(caller *Caller, rawDepartmentID string) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleHOD:
		raw := strings.TrimSpace(rawDepartmentID)
		if raw == "" {
			return ErrDepartmentRequired
		}
		departmentID, err := uuid.Parse(raw)
		if err != nil {
			return ErrInvalidDepartmentID
		}
		if !caller.OwnsDepartment(departmentID) {
			return ErrDepartmentDenied
		}
		return nil
	default:
		return ErrRoleDenied
	}
}

// ScopeDepartmentFilter resolves the department a list query may cover. An
// Admin gets the requested filter unchanged, nil meaning all departments. An
// HOD without a filter is scoped to their own department and may not ask for
// another one.
func (s *AuthorizationService) ScopeDepartmentFilter(caller *Caller, requested *uuid.UUID) (*uuid.UUID, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	switch caller.Role {
	case models.RoleAdmin:
		return requested, nil
	case models.RoleHOD:
		if caller.DepartmentID == nil {
			return nil, ErrDepartmentDenied
		}
		if requested == nil {
			own := *caller.DepartmentID
			return &own, nil
		}
		if !caller.OwnsDepartment(*requested) {
			return nil, ErrDepartmentDenied
		}
		return requested, nil
	default:
		return nil, ErrRoleDenied
	}
}
