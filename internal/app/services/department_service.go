package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/contribtrack/internal/app/auth"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
	userRepo       repositories.IUserRepository
	authz          *appauth.AuthorizationService
	logger         zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(
	departmentRepo repositories.IDepartmentRepository,
	userRepo repositories.IUserRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		authz:          authz,
		logger:         logger,
	}
}

// List returns every department with its HOD and employee count
func (s *DepartmentService) List(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.List(ctx)
}

// Get returns one department. An HOD may only read their own.
func (s *DepartmentService) Get(ctx context.Context, caller *appauth.Caller, rawID string) (*models.Department, error) {
	id, err := parseID(rawID, "Invalid department id.")
	if err != nil {
		return nil, err
	}

	if !s.authz.CanAccessDepartment(caller, id) {
		return nil, apperrors.NewForbiddenError("You can only view your own department.")
	}

	return s.departmentRepo.GetByID(ctx, id)
}

// Create adds a department and optionally promotes its HOD
func (s *DepartmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Department name is required.")
	}

	department := &models.Department{
		Name: name,
		Code: strings.TrimSpace(req.Code),
	}

	if req.HOD != nil && strings.TrimSpace(*req.HOD) != "" {
		hodID, err := s.resolveHOD(ctx, *req.HOD)
		if err != nil {
			return nil, err
		}
		department.HODID = &hodID
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Str("departmentID", department.ID.String()).Str("name", department.Name).Msg("Department created")
	return s.departmentRepo.GetByID(ctx, department.ID)
}

// Update applies a partial update. Name changes only when non-empty, code
// and hod whenever present; an empty hod clears the assignment.
func (s *DepartmentService) Update(ctx context.Context, rawID string, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	id, err := parseID(rawID, "Invalid department id.")
	if err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		department.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		department.Code = strings.TrimSpace(*req.Code)
	}
	if req.HOD != nil {
		if strings.TrimSpace(*req.HOD) == "" {
			department.HODID = nil
		} else {
			hodID, err := s.resolveHOD(ctx, *req.HOD)
			if err != nil {
				return nil, err
			}
			department.HODID = &hodID
		}
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Str("departmentID", department.ID.String()).Msg("Department updated")
	return s.departmentRepo.GetByID(ctx, department.ID)
}

func (s *DepartmentService) resolveHOD(ctx context.Context, raw string) (uuid.UUID, error) {
	hodID, err := parseID(raw, "Invalid HOD id.")
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, hodID); err != nil {
		return uuid.Nil, err
	}
	return hodID, nil
}
