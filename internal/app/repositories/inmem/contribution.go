package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

type contributionRepository struct {
	db *DB
}

// NewContributionRepository returns an in-memory repositories.IContributionRepository
func NewContributionRepository(db *DB) repositories.IContributionRepository {
	return &contributionRepository{db: db}
}

// cycleTaken emulates the (department_id, cycle) unique key
func (repo *contributionRepository) cycleTaken(c *models.Contribution) bool {
	for id, other := range repo.db.contributions {
		if id != c.ID && other.DepartmentID == c.DepartmentID && other.Cycle == c.Cycle {
			return true
		}
	}
	return false
}

func (repo *contributionRepository) Create(_ context.Context, c *models.Contribution) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.departments[c.DepartmentID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	c.ID = uuid.Nil
	if repo.cycleTaken(c) {
		return apperrors.ErrContributionExists
	}

	now := repo.db.now()
	c.ID = uuid.New()
	c.CreatedAt, c.UpdatedAt = now, now
	repo.db.contributions[c.ID] = repo.strip(c)
	return nil
}

func (repo *contributionRepository) Update(_ context.Context, c *models.Contribution) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	existing, ok := repo.db.contributions[c.ID]
	if !ok {
		return apperrors.ErrContributionNotFound
	}
	if repo.cycleTaken(c) {
		return apperrors.ErrContributionExists
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = repo.db.now()
	repo.db.contributions[c.ID] = repo.strip(c)
	return nil
}

func (repo *contributionRepository) strip(c *models.Contribution) *models.Contribution {
	stored := *c
	stored.Department, stored.SubmittedBy = nil, nil
	return &stored
}

func (repo *contributionRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.contributions[id]; !ok {
		return apperrors.ErrContributionNotFound
	}
	delete(repo.db.contributions, id)
	return nil
}

func (repo *contributionRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Contribution, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c, ok := repo.db.contributions[id]; ok {
		return repo.populate(c), nil
	}
	return nil, apperrors.ErrContributionNotFound
}

func (repo *contributionRepository) GetByDepartmentAndCycle(_ context.Context, departmentID uuid.UUID, cycle string) (*models.Contribution, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, c := range repo.db.contributions {
		if c.DepartmentID == departmentID && c.Cycle == cycle {
			return repo.populate(c), nil
		}
	}
	return nil, apperrors.ErrContributionNotFound
}

func (repo *contributionRepository) GetLatestByDepartment(_ context.Context, departmentID uuid.UUID) (*models.Contribution, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var latest *models.Contribution
	for _, c := range repo.db.contributions {
		if c.DepartmentID != departmentID {
			continue
		}
		if latest == nil || c.SubmittedAt.After(latest.SubmittedAt) {
			latest = c
		}
	}
	if latest == nil {
		return nil, apperrors.ErrContributionNotFound
	}
	return repo.populate(latest), nil
}

func (repo *contributionRepository) List(_ context.Context, cycle string) ([]*models.Contribution, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	out := make([]*models.Contribution, 0, len(repo.db.contributions))
	for _, c := range repo.db.contributions {
		if cycle != "" && c.Cycle != cycle {
			continue
		}
		out = append(out, repo.populate(c))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (repo *contributionRepository) Count(_ context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.contributions), nil
}

func (repo *contributionRepository) populate(c *models.Contribution) *models.Contribution {
	out := *c
	out.Department = repo.db.departmentRef(c.DepartmentID)
	out.SubmittedBy = repo.db.userRef(c.SubmittedByID)
	return &out
}
