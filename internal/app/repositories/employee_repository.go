package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/db"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *db.PostgresDB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(database *db.PostgresDB) *EmployeeRepository {
	return &EmployeeRepository{db: database}
}

// List returns employees ordered by empId, optionally for one department
func (r *EmployeeRepository) List(ctx context.Context, departmentID *uuid.UUID) ([]*models.Employee, error) {
	builder := squirrel.Select(
		"e.id", "e.emp_id", "e.name", "e.department_id", "e.designation", "e.email",
		"e.created_at", "e.updated_at", "d.name", "d.code",
	).
		From("employees e").
		Join("departments d ON d.id = e.department_id").
		OrderBy("e.emp_id").
		PlaceholderFormat(squirrel.Dollar)

	if departmentID != nil {
		builder = builder.Where(squirrel.Eq{"e.department_id": *departmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building employee query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*models.Employee, 0)
	for rows.Next() {
		var (
			employee models.Employee
			ref      models.DepartmentRef
		)
		err := rows.Scan(
			&employee.ID,
			&employee.EmpID,
			&employee.Name,
			&employee.DepartmentID,
			&employee.Designation,
			&employee.Email,
			&employee.CreatedAt,
			&employee.UpdatedAt,
			&ref.Name,
			&ref.Code,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		ref.ID = employee.DepartmentID
		employee.Department = &ref
		employees = append(employees, &employee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// InsertMany queues one insert per employee in a single batch. Rows whose
// emp_id already exists, including repeats inside the batch, are skipped
// and reported as duplicates.
func (r *EmployeeRepository) InsertMany(ctx context.Context, employees []*models.Employee) (*InsertManyResult, error) {
	result := &InsertManyResult{
		Inserted:   make([]*models.Employee, 0, len(employees)),
		Duplicates: make([]string, 0),
	}
	if len(employees) == 0 {
		return result, nil
	}

	query := `
		INSERT INTO employees (emp_id, name, department_id, designation, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (emp_id) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	batch := &pgx.Batch{}
	for _, e := range employees {
		e.EmpID = strings.TrimSpace(e.EmpID)
		e.Email = strings.ToLower(strings.TrimSpace(e.Email))
		batch.Queue(query, e.EmpID, strings.TrimSpace(e.Name), e.DepartmentID, e.Designation, e.Email)
	}

	br := r.db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for _, e := range employees {
		err := br.QueryRow().Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			result.Duplicates = append(result.Duplicates, e.EmpID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error inserting employee %s: %w", e.EmpID, err)
		}
		result.Inserted = append(result.Inserted, e)
	}

	return result, nil
}
