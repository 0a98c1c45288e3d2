package seed_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/contribtrack/internal/app/models"
	inmemdb "github.com/yigit/contribtrack/internal/app/repositories/inmem"
	"github.com/yigit/contribtrack/internal/pkg/auth"
	"github.com/yigit/contribtrack/internal/seed"
)

func testOptions() seed.Options {
	return seed.Options{
		AdminName:     "System Admin",
		AdminEmail:    "admin@organization.com",
		AdminPassword: "Admin@123",
		BcryptCost:    4,
	}
}

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	repos := inmemdb.NewRepositories(inmemdb.Open())

	require.NoError(t, seed.CreateDefaultData(ctx, repos, testOptions(), zerolog.Nop()))

	admin, err := repos.UserRepository.GetByEmail(ctx, "admin@organization.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, "Admin@123"))

	departments, err := repos.DepartmentRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 3)
	for _, d := range departments {
		require.NotNil(t, d.HODID, d.Name)
		assert.Equal(t, 3, d.EmployeesCount, d.Name)
	}

	hod, err := repos.UserRepository.GetByEmail(ctx, "eng_hod@organization.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleHOD, hod.Role)
	require.NotNil(t, hod.DepartmentID)
	assert.True(t, auth.CheckPassword(hod.PasswordHash, "ENG@123"))

	contributions, err := repos.ContributionRepository.List(ctx, seed.DefaultCycle)
	require.NoError(t, err)
	require.Len(t, contributions, 3)
	for _, c := range contributions {
		assert.InDelta(t, 100, c.Total(), 1e-9)
		assert.Equal(t, "Initial allocation", c.Remarks)
	}
}

func TestCreateDefaultData_Idempotent(t *testing.T) {
	ctx := context.Background()
	repos := inmemdb.NewRepositories(inmemdb.Open())

	require.NoError(t, seed.CreateDefaultData(ctx, repos, testOptions(), zerolog.Nop()))
	require.NoError(t, seed.CreateDefaultData(ctx, repos, testOptions(), zerolog.Nop()))

	departments, err := repos.DepartmentRepository.List(ctx)
	require.NoError(t, err)
	assert.Len(t, departments, 3)

	employees, err := repos.EmployeeRepository.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, employees, 9)

	count, err := repos.ContributionRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
