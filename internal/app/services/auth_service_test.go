package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/app/services"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

func (f *fixture) authService() *services.AuthService {
	return services.NewAuthService(f.repos.UserRepository, f.repos.DepartmentRepository, f.jwt, 4, zerolog.Nop())
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	svc := f.authService()

	resp, err := svc.Login(f.ctx, dto.LoginRequest{Email: "ENG_HOD@organization.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	require.NotNil(t, resp.User)
	assert.Equal(t, f.hod.ID, resp.User.ID)
	require.NotNil(t, resp.User.Department)
	assert.Equal(t, "ENG", resp.User.Department.Code)

	claims, err := f.jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, f.hod.ID.String(), claims.UserID)
	assert.Equal(t, string(models.RoleHOD), claims.Role)
	require.NotNil(t, claims.DepartmentID)
	assert.Equal(t, f.eng.ID.String(), *claims.DepartmentID)
}

func TestAuthService_Login_Failures(t *testing.T) {
	f := newFixture(t)
	svc := f.authService()

	_, err := svc.Login(f.ctx, dto.LoginRequest{Email: "admin@organization.com"})
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	assert.Equal(t, "Email and password are required.", err.Error())

	_, wrongPassword := svc.Login(f.ctx, dto.LoginRequest{Email: "admin@organization.com", Password: "nope"})
	_, unknownUser := svc.Login(f.ctx, dto.LoginRequest{Email: "ghost@organization.com", Password: "nope"})

	for _, err := range []error{wrongPassword, unknownUser} {
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
		assert.Equal(t, "Invalid credentials.", err.Error())
	}
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestAuthService_CreateUser(t *testing.T) {
	f := newFixture(t)
	svc := f.authService()

	department := f.mkt.ID.String()
	user, err := svc.CreateUser(f.ctx, dto.CreateUserRequest{
		Name:       "Marketing HOD",
		Email:      "MKT_HOD@organization.com",
		Password:   "MKT@123",
		Role:       "HOD",
		Department: &department,
	})
	require.NoError(t, err)
	assert.Equal(t, "mkt_hod@organization.com", user.Email)
	assert.Equal(t, models.RoleHOD, user.Role)
	require.NotNil(t, user.Department)
	assert.Equal(t, "Marketing", user.Department.Name)

	resp, err := svc.Login(f.ctx, dto.LoginRequest{Email: "mkt_hod@organization.com", Password: "MKT@123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestAuthService_CreateUser_AdminDropsDepartment(t *testing.T) {
	f := newFixture(t)
	svc := f.authService()

	department := f.eng.ID.String()
	user, err := svc.CreateUser(f.ctx, dto.CreateUserRequest{
		Name:       "Second Admin",
		Email:      "admin2@organization.com",
		Password:   "Admin@456",
		Role:       "Admin",
		Department: &department,
	})
	require.NoError(t, err)
	assert.Nil(t, user.Department)
}

func TestAuthService_CreateUser_Rejections(t *testing.T) {
	f := newFixture(t)
	svc := f.authService()

	missing := "0d3f7a52-3a51-4b8e-8a7d-2f0d9c1b6e44"
	bad := "bad"
	tests := []struct {
		name   string
		req    dto.CreateUserRequest
		target error
	}{
		{"missing fields", dto.CreateUserRequest{Name: "x", Email: "x@organization.com"}, apperrors.ErrBadRequest},
		{"unknown role", dto.CreateUserRequest{Name: "x", Email: "x@organization.com", Password: "secret1", Role: "Root"}, apperrors.ErrBadRequest},
		{"hod without department", dto.CreateUserRequest{Name: "x", Email: "x@organization.com", Password: "secret1", Role: "HOD"}, apperrors.ErrBadRequest},
		{"hod with malformed department", dto.CreateUserRequest{Name: "x", Email: "x@organization.com", Password: "secret1", Role: "HOD", Department: &bad}, apperrors.ErrBadRequest},
		{"hod with unknown department", dto.CreateUserRequest{Name: "x", Email: "x@organization.com", Password: "secret1", Role: "HOD", Department: &missing}, apperrors.ErrDepartmentNotFound},
		{"password over 72 bytes", dto.CreateUserRequest{Name: "x", Email: "long@organization.com", Password: strings.Repeat("a", 80), Role: "Admin"}, apperrors.ErrBadRequest},
		{"duplicate email", dto.CreateUserRequest{Name: "x", Email: "Admin@Organization.com", Password: "secret1", Role: "Admin"}, apperrors.ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(f.ctx, tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	f := newFixture(t)
	svc := f.authService()

	profile, err := svc.GetProfile(f.ctx, f.hodCaller())
	require.NoError(t, err)
	assert.Equal(t, "Engineering HOD", profile.Name)

	_, err = svc.GetProfile(f.ctx, nil)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
