package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

func hodOf(dept uuid.UUID) *Caller {
	return &Caller{UserID: uuid.New(), Role: models.RoleHOD, DepartmentID: &dept}
}

func admin() *Caller {
	return &Caller{UserID: uuid.New(), Role: models.RoleAdmin}
}

func TestRequireRole(t *testing.T) {
	s := NewAuthorizationService()
	dept := uuid.New()

	tests := []struct {
		name    string
		caller  *Caller
		allowed []models.Role
		wantErr error
	}{
		{"admin allowed", admin(), []models.Role{models.RoleAdmin}, nil},
		{"hod allowed among many", hodOf(dept), []models.Role{models.RoleAdmin, models.RoleHOD}, nil},
		{"hod denied", hodOf(dept), []models.Role{models.RoleAdmin}, apperrors.ErrPermissionDenied},
		{"unknown role denied", &Caller{Role: "Root"}, []models.Role{"Root"}, apperrors.ErrPermissionDenied},
		{"no caller", nil, []models.Role{models.RoleAdmin}, apperrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.RequireRole(tt.caller, tt.allowed...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireDepartment(t *testing.T) {
	s := NewAuthorizationService()
	own := uuid.New()

	tests := []struct {
		name    string
		caller  *Caller
		raw     string
		wantErr error
	}{
		{"admin bypasses without id", admin(), "", nil},
		{"admin bypasses any id", admin(), uuid.NewString(), nil},
		{"hod own department", hodOf(own), own.String(), nil},
		{"hod missing id", hodOf(own), "  ", ErrDepartmentRequired},
		{"hod malformed id", hodOf(own), "not-a-uuid", ErrInvalidDepartmentID},
		{"hod other department", hodOf(own), uuid.NewString(), ErrDepartmentDenied},
		{"hod without department", &Caller{Role: models.RoleHOD}, own.String(), ErrDepartmentDenied},
		{"unknown role", &Caller{Role: "Guest"}, own.String(), ErrRoleDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.RequireDepartment(tt.caller, tt.raw)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDepartmentRequiredIsBadRequest(t *testing.T) {
	err := NewAuthorizationService().RequireDepartment(hodOf(uuid.New()), "")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, "Department identifier is required.", err.Error())
}

func TestScopeDepartmentFilter(t *testing.T) {
	s := NewAuthorizationService()
	own := uuid.New()
	other := uuid.New()

	got, err := s.ScopeDepartmentFilter(admin(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = s.ScopeDepartmentFilter(admin(), &other)
	require.NoError(t, err)
	assert.Equal(t, other, *got)

	got, err = s.ScopeDepartmentFilter(hodOf(own), nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, own, *got)

	_, err = s.ScopeDepartmentFilter(hodOf(own), &other)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCanAccessDepartment(t *testing.T) {
	s := NewAuthorizationService()
	own := uuid.New()

	assert.True(t, s.CanAccessDepartment(admin(), uuid.New()))
	assert.True(t, s.CanAccessDepartment(hodOf(own), own))
	assert.False(t, s.CanAccessDepartment(hodOf(own), uuid.New()))
	assert.False(t, s.CanAccessDepartment(nil, own))
}
