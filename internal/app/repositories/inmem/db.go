// Package inmemdb keeps every table in process memory. It enforces the same
// unique keys as the PostgreSQL schema and backs the "memory" driver and the
// service tests.
package inmemdb

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/repositories"
)

// DB is an in-process database guarded by a single lock so joins across
// tables see a consistent snapshot
type DB struct {
	mutex         sync.RWMutex
	users         map[uuid.UUID]*models.User
	departments   map[uuid.UUID]*models.Department
	employees     map[uuid.UUID]*models.Employee
	contributions map[uuid.UUID]*models.Contribution

	// now is swappable so tests can order submissions deterministically
	now func() time.Time
}

// Open creates an empty database
func Open() *DB {
	return &DB{
		users:         make(map[uuid.UUID]*models.User),
		departments:   make(map[uuid.UUID]*models.Department),
		employees:     make(map[uuid.UUID]*models.Employee),
		contributions: make(map[uuid.UUID]*models.Contribution),
		now:           time.Now,
	}
}

// SetClock replaces the timestamp source
func (db *DB) SetClock(now func() time.Time) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.now = now
}

// NewRepositories returns the full repository set backed by db
func NewRepositories(db *DB) *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:         NewUserRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		EmployeeRepository:     NewEmployeeRepository(db),
		ContributionRepository: NewContributionRepository(db),
	}
}

// userRef and departmentRef must be called with the lock held

func (db *DB) userRef(id uuid.UUID) *models.UserRef {
	if u, ok := db.users[id]; ok {
		return u.Ref()
	}
	return nil
}

func (db *DB) departmentRef(id uuid.UUID) *models.DepartmentRef {
	d, ok := db.departments[id]
	if !ok {
		return nil
	}
	ref := &models.DepartmentRef{ID: d.ID, Name: d.Name, Code: d.Code}
	if d.HODID != nil {
		if hod := db.userRef(*d.HODID); hod != nil {
			hod.Role = ""
			ref.HOD = hod
		}
	}
	return ref
}
