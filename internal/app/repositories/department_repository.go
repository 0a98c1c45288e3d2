package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/db"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
	"github.com/yigit/contribtrack/internal/pkg/dberrors"
	"github.com/yigit/contribtrack/internal/pkg/helpers"
)

const departmentSelect = `
	SELECT d.id, d.name, d.code, d.hod_id, d.created_at, d.updated_at,
	       h.name, h.email, h.role,
	       (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id)
	FROM departments d
	LEFT JOIN users h ON h.id = d.hod_id
`

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *db.PostgresDB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(database *db.PostgresDB) *DepartmentRepository {
	return &DepartmentRepository{db: database}
}

// Create inserts a department. When HODID is set the user is promoted to HOD
// and linked to the new department in the same transaction.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	department.Name = strings.TrimSpace(department.Name)
	department.Code = strings.TrimSpace(department.Code)

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO departments (name, code, hod_id)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRow(ctx, query, department.Name, department.Code, department.HODID).
			Scan(&department.ID, &department.CreatedAt, &department.UpdatedAt)
		if err != nil {
			return mapDepartmentWriteError(err)
		}

		if department.HODID != nil {
			return assignHOD(ctx, tx, *department.HODID, department.ID)
		}
		return nil
	})
}

// Update writes name, code and hod_id, promoting a newly assigned HOD
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	department.Name = strings.TrimSpace(department.Name)
	department.Code = strings.TrimSpace(department.Code)

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE departments
			SET name = $2, code = $3, hod_id = $4, updated_at = NOW()
			WHERE id = $1
			RETURNING updated_at
		`
		err := tx.QueryRow(ctx, query, department.ID, department.Name, department.Code, department.HODID).
			Scan(&department.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrDepartmentNotFound
			}
			return mapDepartmentWriteError(err)
		}

		if department.HODID != nil {
			return assignHOD(ctx, tx, *department.HODID, department.ID)
		}
		return nil
	})
}

func assignHOD(ctx context.Context, tx pgx.Tx, userID, departmentID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users SET role = $2, department_id = $3, updated_at = NOW()
		WHERE id = $1
	`, userID, string(models.RoleHOD), departmentID)
	if err != nil {
		return fmt.Errorf("error assigning HOD: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func mapDepartmentWriteError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, "departments_name_key") {
		return apperrors.ErrDepartmentAlreadyExists
	}
	if dberrors.IsForeignKeyViolation(err, "departments_hod_id_fkey") {
		return apperrors.ErrUserNotFound
	}
	return fmt.Errorf("error writing department: %w", err)
}

// GetByID retrieves a department with HOD and employee count
func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return r.getOne(ctx, departmentSelect+` WHERE d.id = $1`, id)
}

// GetByName retrieves a department by its exact, trimmed name
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	return r.getOne(ctx, departmentSelect+` WHERE d.name = $1`, strings.TrimSpace(name))
}

func (r *DepartmentRepository) getOne(ctx context.Context, query string, arg any) (*models.Department, error) {
	department, err := scanDepartment(r.db.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// List retrieves all departments ordered by name
func (r *DepartmentRepository) List(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Pool.Query(ctx, departmentSelect+` ORDER BY d.name`)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

func scanDepartment(row rowScanner) (*models.Department, error) {
	var (
		department models.Department
		hodName    *string
		hodEmail   *string
		hodRole    *string
	)
	err := row.Scan(
		&department.ID,
		&department.Name,
		&department.Code,
		&department.HODID,
		&department.CreatedAt,
		&department.UpdatedAt,
		&hodName,
		&hodEmail,
		&hodRole,
		&department.EmployeesCount,
	)
	if err != nil {
		return nil, err
	}

	if department.HODID != nil && hodName != nil {
		department.HOD = &models.UserRef{
			ID:    *department.HODID,
			Name:  *hodName,
			Email: helpers.StringValue(hodEmail),
			Role:  models.Role(helpers.StringValue(hodRole)),
		}
	}
	return &department, nil
}
