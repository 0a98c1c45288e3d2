package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/contribtrack/internal/app/auth"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
	"github.com/yigit/contribtrack/internal/pkg/auth"
)

// ErrLoginFailed is returned for both an unknown email and a wrong password
var ErrLoginFailed = &apperrors.CustomError{
	Err:     apperrors.ErrInvalidCredentials,
	Message: "Invalid credentials.",
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo       repositories.IUserRepository
	departmentRepo repositories.IDepartmentRepository
	jwtService     *auth.JWTService
	bcryptCost     int
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	departmentRepo repositories.IDepartmentRepository,
	jwtService *auth.JWTService,
	bcryptCost int,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Login verifies credentials and issues a bearer token
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("Email and password are required.")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			auth.BurnPasswordCheck(req.Password)
			return nil, ErrLoginFailed
		}
		return nil, fmt.Errorf("error loading user for login: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Info().Str("userID", user.ID.String()).Msg("Login rejected: password mismatch")
		return nil, ErrLoginFailed
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().Str("userID", user.ID.String()).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User:      dto.NewUserResponse(user),
	}, nil
}

// CreateUser registers a new Admin or HOD. HOD users must reference an
// existing department; an Admin's department is always cleared.
func (s *AuthService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || req.Password == "" || req.Role == "" {
		return nil, apperrors.NewBadRequestError("Name, email, password, and role are required.")
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid role.")
	}

	user := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}

	switch role {
	case models.RoleAdmin:
		user.DepartmentID = nil
	case models.RoleHOD:
		if req.Department == nil || strings.TrimSpace(*req.Department) == "" {
			return nil, apperrors.NewBadRequestError("HOD users must be linked to a department.")
		}
		departmentID, err := parseID(*req.Department, "Invalid department ID.")
		if err != nil {
			return nil, err
		}
		if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
			return nil, err
		}
		user.DepartmentID = &departmentID
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, apperrors.NewBadRequestError("Password must be at most 72 bytes.")
	}
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID.String()).Str("role", string(user.Role)).Msg("User created")

	created, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return dto.NewUserResponse(user), nil
	}
	return dto.NewUserResponse(created), nil
}

// GetProfile returns the authenticated caller's own user record
func (s *AuthService) GetProfile(ctx context.Context, caller *appauth.Caller) (*dto.UserResponse, error) {
	if caller == nil {
		return nil, appauth.ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}
