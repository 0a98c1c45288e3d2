package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/db"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
	"github.com/yigit/contribtrack/internal/pkg/dberrors"
	"github.com/yigit/contribtrack/internal/pkg/helpers"
)

// ContributionCycleConstraint is the unique index over (department_id, cycle)
const ContributionCycleConstraint = "contributions_department_cycle_key"

var contributionColumns = []string{
	"c.id", "c.department_id", "c.academy", "c.intensive", "c.niat", "c.submitted_by",
	"c.remarks", "c.submitted_at", "c.cycle", "c.created_at", "c.updated_at",
	"d.name", "d.code", "h.id", "h.name", "h.email",
	"u.name", "u.email", "u.role",
}

const contributionSelect = `
	SELECT c.id, c.department_id, c.academy, c.intensive, c.niat, c.submitted_by,
	       c.remarks, c.submitted_at, c.cycle, c.created_at, c.updated_at,
	       d.name, d.code, h.id, h.name, h.email,
	       u.name, u.email, u.role
	FROM contributions c
	JOIN departments d ON d.id = c.department_id
	LEFT JOIN users h ON h.id = d.hod_id
	LEFT JOIN users u ON u.id = c.submitted_by
`

// ContributionRepository handles database operations for contributions
type ContributionRepository struct {
	db *db.PostgresDB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(database *db.PostgresDB) *ContributionRepository {
	return &ContributionRepository{db: database}
}

// Create inserts a contribution. A second row for the same department and
// cycle fails with apperrors.ErrContributionExists.
func (r *ContributionRepository) Create(ctx context.Context, c *models.Contribution) error {
	query := `
		INSERT INTO contributions (department_id, academy, intensive, niat, submitted_by, remarks, submitted_at, cycle)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.Pool.QueryRow(ctx, query,
		c.DepartmentID, c.Academy, c.Intensive, c.Niat, c.SubmittedByID, c.Remarks, c.SubmittedAt, c.Cycle,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return mapContributionWriteError(err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing contribution
func (r *ContributionRepository) Update(ctx context.Context, c *models.Contribution) error {
	query := `
		UPDATE contributions
		SET academy = $2, intensive = $3, niat = $4, submitted_by = $5,
		    remarks = $6, submitted_at = $7, cycle = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.Pool.QueryRow(ctx, query,
		c.ID, c.Academy, c.Intensive, c.Niat, c.SubmittedByID, c.Remarks, c.SubmittedAt, c.Cycle,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrContributionNotFound
		}
		return mapContributionWriteError(err)
	}
	return nil
}

func mapContributionWriteError(err error) error {
	if dberrors.IsDuplicateConstraintError(err, ContributionCycleConstraint) {
		return apperrors.ErrContributionExists
	}
	return fmt.Errorf("error writing contribution: %w", err)
}

// Delete removes a contribution by id
func (r *ContributionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM contributions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting contribution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrContributionNotFound
	}
	return nil
}

// GetByID retrieves a populated contribution
func (r *ContributionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contribution, error) {
	return r.getOne(ctx, contributionSelect+` WHERE c.id = $1`, id)
}

// GetByDepartmentAndCycle retrieves the contribution of a department for a cycle
func (r *ContributionRepository) GetByDepartmentAndCycle(ctx context.Context, departmentID uuid.UUID, cycle string) (*models.Contribution, error) {
	return r.getOne(ctx, contributionSelect+` WHERE c.department_id = $1 AND c.cycle = $2`, departmentID, cycle)
}

// GetLatestByDepartment retrieves the most recently submitted contribution of a department
func (r *ContributionRepository) GetLatestByDepartment(ctx context.Context, departmentID uuid.UUID) (*models.Contribution, error) {
	return r.getOne(ctx, contributionSelect+` WHERE c.department_id = $1 ORDER BY c.submitted_at DESC LIMIT 1`, departmentID)
}

func (r *ContributionRepository) getOne(ctx context.Context, query string, args ...any) (*models.Contribution, error) {
	c, err := scanContribution(r.db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContributionNotFound
		}
		return nil, fmt.Errorf("error retrieving contribution: %w", err)
	}
	return c, nil
}

// List returns contributions newest first, restricted to cycle when non-empty
func (r *ContributionRepository) List(ctx context.Context, cycle string) ([]*models.Contribution, error) {
	builder := squirrel.Select(contributionColumns...).
		From("contributions c").
		Join("departments d ON d.id = c.department_id").
		LeftJoin("users h ON h.id = d.hod_id").
		LeftJoin("users u ON u.id = c.submitted_by").
		OrderBy("c.submitted_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if cycle != "" {
		builder = builder.Where(squirrel.Eq{"c.cycle": cycle})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building contribution query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing contributions: %w", err)
	}
	defer rows.Close()

	contributions := make([]*models.Contribution, 0)
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contributions, nil
}

// Count returns the number of stored contributions
func (r *ContributionRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM contributions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting contributions: %w", err)
	}
	return n, nil
}

func scanContribution(row rowScanner) (*models.Contribution, error) {
	var (
		c              models.Contribution
		dept           models.DepartmentRef
		hodID          *uuid.UUID
		hodName        *string
		hodEmail       *string
		submitterName  *string
		submitterEmail *string
		submitterRole  *string
	)
	err := row.Scan(
		&c.ID,
		&c.DepartmentID,
		&c.Academy,
		&c.Intensive,
		&c.Niat,
		&c.SubmittedByID,
		&c.Remarks,
		&c.SubmittedAt,
		&c.Cycle,
		&c.CreatedAt,
		&c.UpdatedAt,
		&dept.Name,
		&dept.Code,
		&hodID,
		&hodName,
		&hodEmail,
		&submitterName,
		&submitterEmail,
		&submitterRole,
	)
	if err != nil {
		return nil, err
	}

	dept.ID = c.DepartmentID
	if hodID != nil {
		dept.HOD = &models.UserRef{ID: *hodID, Name: helpers.StringValue(hodName), Email: helpers.StringValue(hodEmail)}
	}
	c.Department = &dept

	if submitterName != nil {
		c.SubmittedBy = &models.UserRef{
			ID:    c.SubmittedByID,
			Name:  *submitterName,
			Email: helpers.StringValue(submitterEmail),
			Role:  models.Role(helpers.StringValue(submitterRole)),
		}
	}
	return &c, nil
}
