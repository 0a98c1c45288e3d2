package inmemdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

func TestUserEmailIsUniqueAndNormalised(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Open())

	require.NoError(t, repos.UserRepository.Create(ctx, &models.User{Name: "A", Email: " Admin@Org.com ", Role: models.RoleAdmin}))

	err := repos.UserRepository.Create(ctx, &models.User{Name: "B", Email: "admin@org.com", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	usr, err := repos.UserRepository.GetByEmail(ctx, "ADMIN@org.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@org.com", usr.Email)
}

func TestDepartmentCreatePromotesHOD(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Open())

	usr := &models.User{Name: "Future HOD", Email: "hod@org.com", Role: models.RoleAdmin}
	require.NoError(t, repos.UserRepository.Create(ctx, usr))

	dept := &models.Department{Name: " Engineering ", Code: "ENG", HODID: &usr.ID}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, dept))
	assert.Equal(t, "Engineering", dept.Name)

	promoted, err := repos.UserRepository.GetByID(ctx, usr.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleHOD, promoted.Role)
	require.NotNil(t, promoted.DepartmentID)
	assert.Equal(t, dept.ID, *promoted.DepartmentID)
	require.NotNil(t, promoted.Department)
	assert.Equal(t, "ENG", promoted.Department.Code)

	got, err := repos.DepartmentRepository.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	require.NotNil(t, got.HOD)
	assert.Equal(t, "hod@org.com", got.HOD.Email)

	err = repos.DepartmentRepository.Create(ctx, &models.Department{Name: "Engineering"})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
}

func TestEmployeeInsertManySkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(Open())

	dept := &models.Department{Name: "Finance"}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, dept))

	res, err := repos.EmployeeRepository.InsertMany(ctx, []*models.Employee{
		{EmpID: "FIN-1", Name: "One", DepartmentID: dept.ID},
		{EmpID: "FIN-1", Name: "Again", DepartmentID: dept.ID},
		{EmpID: "FIN-2", Name: "Two", DepartmentID: dept.ID},
	})
	require.NoError(t, err)
	assert.Len(t, res.Inserted, 2)
	assert.Equal(t, []string{"FIN-1"}, res.Duplicates)

	got, err := repos.DepartmentRepository.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.EmployeesCount)

	emps, err := repos.EmployeeRepository.List(ctx, &dept.ID)
	require.NoError(t, err)
	require.Len(t, emps, 2)
	assert.Equal(t, "Finance", emps[0].Department.Name)
}

func TestContributionDepartmentCycleIsUnique(t *testing.T) {
	ctx := context.Background()
	db := Open()
	repos := NewRepositories(db)

	usr := &models.User{Name: "Admin", Email: "a@org.com", Role: models.RoleAdmin}
	require.NoError(t, repos.UserRepository.Create(ctx, usr))
	dept := &models.Department{Name: "Marketing"}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, dept))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	first := &models.Contribution{DepartmentID: dept.ID, Academy: 40, Intensive: 30, Niat: 30, SubmittedByID: usr.ID, Cycle: "Q1", SubmittedAt: base}
	require.NoError(t, repos.ContributionRepository.Create(ctx, first))

	dup := &models.Contribution{DepartmentID: dept.ID, Academy: 50, Intensive: 25, Niat: 25, SubmittedByID: usr.ID, Cycle: "Q1", SubmittedAt: base}
	assert.ErrorIs(t, repos.ContributionRepository.Create(ctx, dup), apperrors.ErrContributionExists)

	second := &models.Contribution{DepartmentID: dept.ID, Academy: 50, Intensive: 25, Niat: 25, SubmittedByID: usr.ID, Cycle: "Q2", SubmittedAt: base.Add(time.Hour)}
	require.NoError(t, repos.ContributionRepository.Create(ctx, second))

	second.Cycle = "Q1"
	assert.ErrorIs(t, repos.ContributionRepository.Update(ctx, second), apperrors.ErrContributionExists)

	latest, err := repos.ContributionRepository.GetLatestByDepartment(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q2", latest.Cycle)
	assert.Equal(t, "Admin", latest.SubmittedBy.Name)
	assert.Equal(t, "Marketing", latest.Department.Name)

	all, err := repos.ContributionRepository.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	require.NoError(t, repos.ContributionRepository.Delete(ctx, first.ID))
	assert.ErrorIs(t, repos.ContributionRepository.Delete(ctx, first.ID), apperrors.ErrContributionNotFound)
}
