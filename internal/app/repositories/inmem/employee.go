package inmemdb

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

type employeeRepository struct {
	db *DB
}

// NewEmployeeRepository returns an in-memory repositories.IEmployeeRepository
func NewEmployeeRepository(db *DB) repositories.IEmployeeRepository {
	return &employeeRepository{db: db}
}

func (repo *employeeRepository) List(_ context.Context, departmentID *uuid.UUID) ([]*models.Employee, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	emps := make([]*models.Employee, 0)
	for _, e := range repo.db.employees {
		if departmentID != nil && e.DepartmentID != *departmentID {
			continue
		}
		out := *e
		if ref := repo.db.departmentRef(e.DepartmentID); ref != nil {
			ref.HOD = nil
			out.Department = ref
		}
		emps = append(emps, &out)
	}
	sort.Slice(emps, func(i, j int) bool { return emps[i].EmpID < emps[j].EmpID })
	return emps, nil
}

func (repo *employeeRepository) InsertMany(_ context.Context, employees []*models.Employee) (*repositories.InsertManyResult, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	result := &repositories.InsertManyResult{
		Inserted:   make([]*models.Employee, 0, len(employees)),
		Duplicates: make([]string, 0),
	}

	for _, e := range employees {
		if _, ok := repo.db.departments[e.DepartmentID]; !ok {
			return nil, apperrors.ErrDepartmentNotFound
		}
	}

	taken := make(map[string]bool, len(repo.db.employees))
	for _, e := range repo.db.employees {
		taken[e.EmpID] = true
	}

	now := repo.db.now()
	for _, e := range employees {
		e.EmpID = strings.TrimSpace(e.EmpID)
		e.Name = strings.TrimSpace(e.Name)
		e.Email = strings.ToLower(strings.TrimSpace(e.Email))
		if taken[e.EmpID] {
			result.Duplicates = append(result.Duplicates, e.EmpID)
			continue
		}
		taken[e.EmpID] = true

		e.ID = uuid.New()
		e.CreatedAt, e.UpdatedAt = now, now
		stored := *e
		stored.Department = nil
		repo.db.employees[e.ID] = &stored
		result.Inserted = append(result.Inserted, e)
	}

	return result, nil
}
