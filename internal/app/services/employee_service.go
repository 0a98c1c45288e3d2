package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/contribtrack/internal/app/auth"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

// EmployeeService handles employee listing and bulk seeding
type EmployeeService struct {
	employeeRepo   repositories.IEmployeeRepository
	departmentRepo repositories.IDepartmentRepository
	authz          *appauth.AuthorizationService
	logger         zerolog.Logger
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(
	employeeRepo repositories.IEmployeeRepository,
	departmentRepo repositories.IDepartmentRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		authz:          authz,
		logger:         logger,
	}
}

// List returns employees, optionally filtered by department. An HOD
// without a filter sees their own department only.
func (s *EmployeeService) List(ctx context.Context, caller *appauth.Caller, rawDepartmentID string) ([]*models.Employee, error) {
	var requested *uuid.UUID
	if strings.TrimSpace(rawDepartmentID) != "" {
		id, err := parseID(rawDepartmentID, "Invalid department id.")
		if err != nil {
			return nil, err
		}
		requested = &id
	}

	scope, err := s.authz.ScopeDepartmentFilter(caller, requested)
	if err != nil {
		if errors.Is(err, apperrors.ErrPermissionDenied) {
			return nil, apperrors.NewForbiddenError("You can only view employees in your department.")
		}
		return nil, err
	}

	return s.employeeRepo.List(ctx, scope)
}

// Seed bulk inserts employees. Every entry is checked before anything is
// written. Entries whose empId already exists are skipped; when any were
// skipped the result is returned together with a conflict error listing
// both the duplicates and the inserted empIds.
func (s *EmployeeService) Seed(ctx context.Context, req dto.SeedEmployeesRequest) (*repositories.InsertManyResult, error) {
	if len(req.Employees) == 0 {
		return nil, apperrors.NewBadRequestError("Provide an array of employees to seed.")
	}

	departments := make(map[uuid.UUID]*models.Department)
	employees := make([]*models.Employee, 0, len(req.Employees))

	for _, entry := range req.Employees {
		empID := strings.TrimSpace(entry.EmpID)
		if empID == "" || strings.TrimSpace(entry.Name) == "" || strings.TrimSpace(entry.Department) == "" {
			return nil, apperrors.NewBadRequestError("Each employee must include empId, name, and department identifiers.")
		}

		departmentID, err := parseID(entry.Department, fmt.Sprintf("Invalid department id for employee %s.", empID))
		if err != nil {
			return nil, err
		}

		if _, seen := departments[departmentID]; !seen {
			department, err := s.departmentRepo.GetByID(ctx, departmentID)
			if err != nil {
				if errors.Is(err, apperrors.ErrDepartmentNotFound) {
					return nil, apperrors.NewBadRequestError(fmt.Sprintf("Department not found for employee %s.", empID))
				}
				return nil, err
			}
			departments[departmentID] = department
		}

		employees = append(employees, &models.Employee{
			EmpID:        empID,
			Name:         strings.TrimSpace(entry.Name),
			DepartmentID: departmentID,
			Designation:  strings.TrimSpace(entry.Designation),
			Email:        entry.Email,
		})
	}

	result, err := s.employeeRepo.InsertMany(ctx, employees)
	if err != nil {
		return nil, err
	}

	inserted := make([]string, 0, len(result.Inserted))
	for _, e := range result.Inserted {
		if ref := departments[e.DepartmentID].Ref(); ref != nil {
			ref.HOD = nil
			e.Department = ref
		}
		inserted = append(inserted, e.EmpID)
	}

	s.logger.Info().Int("inserted", len(result.Inserted)).Int("duplicates", len(result.Duplicates)).Msg("Employees seeded")

	if len(result.Duplicates) > 0 {
		return result, apperrors.NewConflictError("Duplicate employee records detected.").WithDetails(map[string]interface{}{
			"duplicates": result.Duplicates,
			"inserted":   inserted,
		})
	}
	return result, nil
}
