package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/export"
)

// ExportService renders contributions as an .xlsx workbook
type ExportService struct {
	contributionRepo repositories.IContributionRepository
	logger           zerolog.Logger
}

// NewExportService creates a new ExportService
func NewExportService(contributionRepo repositories.IContributionRepository, logger zerolog.Logger) *ExportService {
	return &ExportService{
		contributionRepo: contributionRepo,
		logger:           logger,
	}
}

// Export returns the workbook bytes and the attachment file name
func (s *ExportService) Export(ctx context.Context, cycle string) ([]byte, string, error) {
	cycle = strings.TrimSpace(cycle)

	contributions, err := s.contributionRepo.List(ctx, cycle)
	if err != nil {
		return nil, "", err
	}

	data, err := export.WriteWorkbook(contributions, cycle)
	if err != nil {
		return nil, "", fmt.Errorf("error building contributions workbook: %w", err)
	}

	s.logger.Info().Str("cycle", cycle).Int("rows", len(contributions)).Msg("Contributions exported")
	return data, export.FileName(cycle), nil
}
