package services_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/contribtrack/internal/app/services"
)

func TestExportService_Export(t *testing.T) {
	f := newFixture(t)
	contributions := f.contributionService()

	_, err := contributions.Create(f.ctx, f.hodCaller(), createRequest(f.eng.ID.String(), 40, 30, 30, "2025-Q4"))
	require.NoError(t, err)
	_, err = contributions.Create(f.ctx, f.adminCaller(), createRequest(f.mkt.ID.String(), 20, 30, 50, "2026-Q1"))
	require.NoError(t, err)

	svc := services.NewExportService(f.repos.ContributionRepository, zerolog.Nop())

	data, name, err := svc.Export(f.ctx, " 2025-Q4 ")
	require.NoError(t, err)
	assert.Equal(t, "contributions_2025-Q4.xlsx", name)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Contributions 2025-Q4")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Engineering", rows[1][0])
	assert.Equal(t, "Engineering HOD", rows[1][2])
	assert.Equal(t, "eng_hod@organization.com", rows[1][3])
	assert.Equal(t, "2025-Q4", rows[1][10])

	_, name, err = svc.Export(f.ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "contributions_all.xlsx", name)
}
