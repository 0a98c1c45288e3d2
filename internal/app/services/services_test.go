package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/contribtrack/internal/app/auth"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/repositories"
	inmemdb "github.com/yigit/contribtrack/internal/app/repositories/inmem"
	"github.com/yigit/contribtrack/internal/app/services"
	"github.com/yigit/contribtrack/internal/pkg/auth"
)

const testPassword = "Secret@123"

type fixture struct {
	ctx   context.Context
	db    *inmemdb.DB
	repos *repositories.Repositories
	authz *appauth.AuthorizationService
	jwt   *auth.JWTService

	admin *models.User
	hod   *models.User
	eng   *models.Department
	mkt   *models.Department

	clockMu sync.Mutex
	clock   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		ctx:   context.Background(),
		db:    inmemdb.Open(),
		authz: appauth.NewAuthorizationService(),
		jwt: auth.NewJWTService(auth.JWTConfig{
			SecretKey:  "test-secret",
			Expiration: time.Hour,
			Issuer:     "contribtrack-test",
		}),
		clock: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
	}
	f.db.SetClock(f.tick)
	f.repos = inmemdb.NewRepositories(f.db)

	f.admin = f.createUser(t, "Admin", "admin@organization.com", models.RoleAdmin, nil)

	f.eng = &models.Department{Name: "Engineering", Code: "ENG"}
	require.NoError(t, f.repos.DepartmentRepository.Create(f.ctx, f.eng))
	f.mkt = &models.Department{Name: "Marketing", Code: "MKT"}
	require.NoError(t, f.repos.DepartmentRepository.Create(f.ctx, f.mkt))

	f.hod = f.createUser(t, "Engineering HOD", "eng_hod@organization.com", models.RoleHOD, &f.eng.ID)
	f.eng.HODID = &f.hod.ID
	require.NoError(t, f.repos.DepartmentRepository.Update(f.ctx, f.eng))

	return f
}

// tick advances a fake clock by one minute per call
func (f *fixture) tick() time.Time {
	f.clockMu.Lock()
	defer f.clockMu.Unlock()
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fixture) createUser(t *testing.T, name, email string, role models.Role, departmentID *uuid.UUID) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(testPassword, 4)
	require.NoError(t, err)
	user := &models.User{Name: name, Email: email, PasswordHash: hash, Role: role, DepartmentID: departmentID}
	require.NoError(t, f.repos.UserRepository.Create(f.ctx, user))
	return user
}

func (f *fixture) adminCaller() *appauth.Caller {
	return &appauth.Caller{UserID: f.admin.ID, Role: models.RoleAdmin}
}

func (f *fixture) hodCaller() *appauth.Caller {
	id := f.eng.ID
	return &appauth.Caller{UserID: f.hod.ID, Role: models.RoleHOD, DepartmentID: &id}
}

func (f *fixture) contributionService() *services.ContributionService {
	svc := services.NewContributionService(f.repos.ContributionRepository, f.repos.DepartmentRepository, f.authz, zerolog.Nop())
	svc.SetClock(f.tick)
	return svc
}
