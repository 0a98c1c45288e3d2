package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/db"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// IDepartmentRepository defines department persistence. Create and Update
// promote and link the HOD named by HODID in the same transaction.
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	List(ctx context.Context) ([]*models.Department, error)
}

// InsertManyResult reports which employees were written and which empIds
// were skipped because they already existed
type InsertManyResult struct {
	Inserted   []*models.Employee
	Duplicates []string
}

// IEmployeeRepository defines employee persistence
type IEmployeeRepository interface {
	// List returns all employees, or only those of departmentID when non-nil
	List(ctx context.Context, departmentID *uuid.UUID) ([]*models.Employee, error)
	// InsertMany inserts every employee whose empId is not taken yet
	InsertMany(ctx context.Context, employees []*models.Employee) (*InsertManyResult, error)
}

// IContributionRepository defines contribution persistence. Reads return
// records with Department (including its HOD) and SubmittedBy populated.
type IContributionRepository interface {
	Create(ctx context.Context, contribution *models.Contribution) error
	Update(ctx context.Context, contribution *models.Contribution) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contribution, error)
	GetByDepartmentAndCycle(ctx context.Context, departmentID uuid.UUID, cycle string) (*models.Contribution, error)
	GetLatestByDepartment(ctx context.Context, departmentID uuid.UUID) (*models.Contribution, error)
	// List returns contributions newest first, restricted to cycle when non-empty
	List(ctx context.Context, cycle string) ([]*models.Contribution, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         IUserRepository
	DepartmentRepository   IDepartmentRepository
	EmployeeRepository     IEmployeeRepository
	ContributionRepository IContributionRepository
}

// NewRepositories initializes the PostgreSQL-backed repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(database),
		DepartmentRepository:   NewDepartmentRepository(database),
		EmployeeRepository:     NewEmployeeRepository(database),
		ContributionRepository: NewContributionRepository(database),
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}
