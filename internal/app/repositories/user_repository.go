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

const userSelect = `
	SELECT u.id, u.name, u.email, u.password_hash, u.role, u.department_id,
	       u.created_at, u.updated_at, d.name, d.code
	FROM users u
	LEFT JOIN departments d ON d.id = u.department_id
`

// UserRepository handles database operations for users
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts the user and fills in its generated id and timestamps.
// Email is stored trimmed and lower-cased.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	query := `
		INSERT INTO users (name, email, password_hash, role, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.Pool.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, string(user.Role), user.DepartmentID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user with its department populated
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.id = $1`, id)
}

// GetByEmail retrieves a user by case-insensitive email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user     models.User
		role     string
		deptName *string
		deptCode *string
	)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.DepartmentID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&deptName,
		&deptCode,
	)
	if err != nil {
		return nil, err
	}

	user.Role = models.Role(role)
	if user.DepartmentID != nil && deptName != nil {
		user.Department = &models.DepartmentRef{
			ID:   *user.DepartmentID,
			Name: *deptName,
			Code: helpers.StringValue(deptCode),
		}
	}
	return &user, nil
}
