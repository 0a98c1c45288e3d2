package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/contribtrack/internal/app/models"
	appRepos "github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
	"github.com/yigit/contribtrack/internal/pkg/auth"
)

// DefaultCycle is the cycle the starter contributions are recorded under
const DefaultCycle = "2025-Q4"

// Options controls the default admin account and password hashing cost
type Options struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	BcryptCost    int
}

type starterDepartment struct {
	Name string
	Code string
}

var starterDepartments = []starterDepartment{
	{Name: "Engineering", Code: "ENG"},
	{Name: "Marketing", Code: "MKT"},
	{Name: "Finance", Code: "FIN"},
}

const employeesPerDepartment = 3

// CreateDefaultData creates the admin, starter departments with their HODs,
// a few employees each and initial contributions. Existing rows are left
// alone so it is safe to run on every start.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Admin --- //
	admin, err := ensureUser(ctx, repos, &appModels.User{
		Name:  opts.AdminName,
		Email: opts.AdminEmail,
		Role:  appModels.RoleAdmin,
	}, opts.AdminPassword, opts.BcryptCost, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Departments, HODs, employees --- //
	var departments []*appModels.Department
	for _, sd := range starterDepartments {
		department, err := ensureDepartment(ctx, repos, sd, opts.BcryptCost, lgr)
		if err != nil {
			lgr.Error().Err(err).Str("department", sd.Name).Msg("Error creating department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		departments = append(departments, department)

		if err := ensureEmployees(ctx, repos, sd, department.ID); err != nil {
			lgr.Error().Err(err).Str("department", sd.Name).Msg("Error creating employees")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Contributions --- //
	if admin != nil {
		if err := ensureContributions(ctx, repos, departments, admin.ID, lgr); err != nil {
			lgr.Error().Err(err).Msg("Error creating contributions")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func ensureUser(ctx context.Context, repos *appRepos.Repositories, user *appModels.User, password string, cost int, lgr zerolog.Logger) (*appModels.User, error) {
	existing, err := repos.UserRepository.GetByEmail(ctx, user.Email)
	if err == nil {
		lgr.Debug().Str("email", user.Email).Msg("User already exists, skipping creation")
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %s: %w", user.Email, err)
	}
	user.PasswordHash = hash

	if err := repos.UserRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	lgr.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("Default user created")
	return user, nil
}

func ensureDepartment(ctx context.Context, repos *appRepos.Repositories, sd starterDepartment, cost int, lgr zerolog.Logger) (*appModels.Department, error) {
	department, err := repos.DepartmentRepository.GetByName(ctx, sd.Name)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		department = &appModels.Department{Name: sd.Name, Code: sd.Code}
		if err := repos.DepartmentRepository.Create(ctx, department); err != nil {
			return nil, err
		}
		lgr.Info().Str("department", sd.Name).Msg("Default department created")
	default:
		return nil, err
	}

	if department.HODID != nil {
		return department, nil
	}

	code := strings.ToLower(sd.Code)
	departmentID := department.ID
	hod, err := ensureUser(ctx, repos, &appModels.User{
		Name:         sd.Name + " HOD",
		Email:        code + "_hod@organization.com",
		Role:         appModels.RoleHOD,
		DepartmentID: &departmentID,
	}, sd.Code+"@123", cost, lgr)
	if err != nil {
		return nil, err
	}

	department.HODID = &hod.ID
	if err := repos.DepartmentRepository.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func ensureEmployees(ctx context.Context, repos *appRepos.Repositories, sd starterDepartment, departmentID uuid.UUID) error {
	code := strings.ToLower(sd.Code)
	employees := make([]*appModels.Employee, 0, employeesPerDepartment)
	for i := 1; i <= employeesPerDepartment; i++ {
		employees = append(employees, &appModels.Employee{
			EmpID:        fmt.Sprintf("%s-%d", sd.Code, i),
			Name:         fmt.Sprintf("%s Employee %d", sd.Name, i),
			DepartmentID: departmentID,
			Designation:  "Team Member",
			Email:        fmt.Sprintf("%s%d@organization.com", code, i),
		})
	}

	// duplicates are expected on restart and are skipped by InsertMany
	_, err := repos.EmployeeRepository.InsertMany(ctx, employees)
	return err
}

func ensureContributions(ctx context.Context, repos *appRepos.Repositories, departments []*appModels.Department, submittedBy uuid.UUID, lgr zerolog.Logger) error {
	count, err := repos.ContributionRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int("count", count).Msg("Contributions already exist, skipping creation")
		return nil
	}

	var finalErr error
	now := time.Now().UTC()
	for _, department := range departments {
		contribution := &appModels.Contribution{
			DepartmentID:  department.ID,
			Academy:       40,
			Intensive:     30,
			Niat:          30,
			SubmittedByID: submittedBy,
			Remarks:       "Initial allocation",
			SubmittedAt:   now,
			Cycle:         DefaultCycle,
		}
		if err := repos.ContributionRepository.Create(ctx, contribution); err != nil && !errors.Is(err, apperrors.ErrContributionExists) {
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}
