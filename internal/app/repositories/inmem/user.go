package inmemdb

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

type userRepository struct {
	db *DB
}

// NewUserRepository returns an in-memory repositories.IUserRepository
func NewUserRepository(db *DB) repositories.IUserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(_ context.Context, usr *models.User) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	usr.Email = strings.ToLower(strings.TrimSpace(usr.Email))
	for _, u := range repo.db.users {
		if u.Email == usr.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	now := repo.db.now()
	usr.ID = uuid.New()
	usr.CreatedAt, usr.UpdatedAt = now, now

	stored := *usr
	stored.Department = nil
	repo.db.users[usr.ID] = &stored
	return nil
}

func (repo *userRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if usr, ok := repo.db.users[id]; ok {
		return repo.populate(usr), nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (repo *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, usr := range repo.db.users {
		if usr.Email == email {
			return repo.populate(usr), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (repo *userRepository) populate(usr *models.User) *models.User {
	out := *usr
	if out.DepartmentID != nil {
		if ref := repo.db.departmentRef(*out.DepartmentID); ref != nil {
			ref.HOD = nil
			out.Department = ref
		}
	}
	return &out
}
