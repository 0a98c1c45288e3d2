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

type departmentRepository struct {
	db *DB
}

// NewDepartmentRepository returns an in-memory repositories.IDepartmentRepository
func NewDepartmentRepository(db *DB) repositories.IDepartmentRepository {
	return &departmentRepository{db: db}
}

func (repo *departmentRepository) Create(_ context.Context, dept *models.Department) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	dept.Name = strings.TrimSpace(dept.Name)
	dept.Code = strings.TrimSpace(dept.Code)
	if err := repo.checkWrite(dept); err != nil {
		return err
	}

	now := repo.db.now()
	dept.ID = uuid.New()
	dept.CreatedAt, dept.UpdatedAt = now, now

	stored := *dept
	stored.HOD, stored.EmployeesCount = nil, 0
	repo.db.departments[dept.ID] = &stored
	repo.assignHOD(&stored)
	return nil
}

func (repo *departmentRepository) Update(_ context.Context, dept *models.Department) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	existing, ok := repo.db.departments[dept.ID]
	if !ok {
		return apperrors.ErrDepartmentNotFound
	}

	dept.Name = strings.TrimSpace(dept.Name)
	dept.Code = strings.TrimSpace(dept.Code)
	if err := repo.checkWrite(dept); err != nil {
		return err
	}

	dept.UpdatedAt = repo.db.now()
	existing.Name = dept.Name
	existing.Code = dept.Code
	existing.HODID = dept.HODID
	existing.UpdatedAt = dept.UpdatedAt
	repo.assignHOD(existing)
	return nil
}

// checkWrite emulates the name unique key and the hod foreign key
func (repo *departmentRepository) checkWrite(dept *models.Department) error {
	for id, d := range repo.db.departments {
		if id != dept.ID && d.Name == dept.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	if dept.HODID != nil {
		if _, ok := repo.db.users[*dept.HODID]; !ok {
			return apperrors.ErrUserNotFound
		}
	}
	return nil
}

func (repo *departmentRepository) assignHOD(dept *models.Department) {
	if dept.HODID == nil {
		return
	}
	usr := repo.db.users[*dept.HODID]
	deptID := dept.ID
	usr.Role = models.RoleHOD
	usr.DepartmentID = &deptID
	usr.UpdatedAt = repo.db.now()
}

func (repo *departmentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Department, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if dept, ok := repo.db.departments[id]; ok {
		return repo.populate(dept), nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (repo *departmentRepository) GetByName(_ context.Context, name string) (*models.Department, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	name = strings.TrimSpace(name)
	for _, dept := range repo.db.departments {
		if dept.Name == name {
			return repo.populate(dept), nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (repo *departmentRepository) List(_ context.Context) ([]*models.Department, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	depts := make([]*models.Department, 0, len(repo.db.departments))
	for _, dept := range repo.db.departments {
		depts = append(depts, repo.populate(dept))
	}
	sort.Slice(depts, func(i, j int) bool { return depts[i].Name < depts[j].Name })
	return depts, nil
}

func (repo *departmentRepository) populate(dept *models.Department) *models.Department {
	out := *dept
	if out.HODID != nil {
		out.HOD = repo.db.userRef(*out.HODID)
	}
	for _, e := range repo.db.employees {
		if e.DepartmentID == out.ID {
			out.EmployeesCount++
		}
	}
	return &out
}
