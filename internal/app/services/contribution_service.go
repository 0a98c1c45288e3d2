package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/contribtrack/internal/app/auth"
	"github.com/yigit/contribtrack/internal/app/models"
	"github.com/yigit/contribtrack/internal/app/models/dto"
	"github.com/yigit/contribtrack/internal/app/repositories"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
	"github.com/yigit/contribtrack/internal/pkg/validation"
)

// ContributionService handles the contribution lifecycle
type ContributionService struct {
	contributionRepo repositories.IContributionRepository
	departmentRepo   repositories.IDepartmentRepository
	authz            *appauth.AuthorizationService
	logger           zerolog.Logger
	now              func() time.Time
}

// NewContributionService creates a new ContributionService
func NewContributionService(
	contributionRepo repositories.IContributionRepository,
	departmentRepo repositories.IDepartmentRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *ContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		departmentRepo:   departmentRepo,
		authz:            authz,
		logger:           logger,
		now:              time.Now,
	}
}

// SetClock replaces the time source used to stamp submissions
func (s *ContributionService) SetClock(now func() time.Time) {
	s.now = now
}

func normalizeCycle(cycle string) string {
	if c := strings.TrimSpace(cycle); c != "" {
		return c
	}
	return models.DefaultCycle
}

func validationFailure(result validation.Result) error {
	return apperrors.NewValidationError("Contribution validation failed.", result.Errors)
}

func conflictWith(existing *models.Contribution) error {
	return apperrors.Wrap(apperrors.ErrContributionExists).WithData(existing)
}

// Create records a department's allocation for a cycle. An existing record
// for the same department and cycle is never overwritten; the conflict error
// carries it as data.
func (s *ContributionService) Create(ctx context.Context, caller *appauth.Caller, req dto.CreateContributionRequest) (*models.Contribution, error) {
	if caller == nil {
		return nil, appauth.ErrUnauthenticated
	}

	raw := strings.TrimSpace(req.Department)
	if raw == "" {
		return nil, apperrors.NewBadRequestError("Department is required.")
	}
	// a malformed id is a 400 for every role here; over HTTP DepartmentScope
	// rejects an HOD's request before this point
	departmentID, err := parseID(raw, "Invalid department id.")
	if err != nil {
		return nil, err
	}
	if !s.authz.CanAccessDepartment(caller, departmentID) {
		return nil, apperrors.NewForbiddenError("You can only submit contributions for your department.")
	}

	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	result := validation.ValidateContribution(validation.ContributionInput{
		Academy:   req.Academy,
		Intensive: req.Intensive,
		Niat:      req.Niat,
	})
	if !result.OK {
		return nil, validationFailure(result)
	}

	cycle := normalizeCycle(req.Cycle)

	existing, err := s.contributionRepo.GetByDepartmentAndCycle(ctx, departmentID, cycle)
	if err == nil {
		return nil, conflictWith(existing)
	}
	if !errors.Is(err, apperrors.ErrContributionNotFound) {
		return nil, err
	}

	contribution := &models.Contribution{
		DepartmentID:  departmentID,
		Academy:       result.Allocation.Academy,
		Intensive:     result.Allocation.Intensive,
		Niat:          result.Allocation.Niat,
		SubmittedByID: caller.UserID,
		Remarks:       req.Remarks,
		SubmittedAt:   s.now(),
		Cycle:         cycle,
	}

	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		if errors.Is(err, apperrors.ErrContributionExists) {
			if winner, lookupErr := s.contributionRepo.GetByDepartmentAndCycle(ctx, departmentID, cycle); lookupErr == nil {
				return nil, conflictWith(winner)
			}
		}
		return nil, err
	}

	s.logger.Info().
		Str("contributionID", contribution.ID.String()).
		Str("departmentID", departmentID.String()).
		Str("cycle", cycle).
		Msg("Contribution submitted")

	return s.contributionRepo.GetByID(ctx, contribution.ID)
}

// Update merges the supplied allocation fields into an existing record,
// re-validates the merged triple and re-stamps the submitter
func (s *ContributionService) Update(ctx context.Context, caller *appauth.Caller, rawID string, req dto.UpdateContributionRequest) (*models.Contribution, error) {
	if caller == nil {
		return nil, appauth.ErrUnauthenticated
	}

	id, err := parseID(rawID, "Invalid contribution id.")
	if err != nil {
		return nil, err
	}

	contribution, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanAccessDepartment(caller, contribution.DepartmentID) {
		return nil, apperrors.NewForbiddenError("You can only update contributions for your department.")
	}

	input := validation.ContributionInput{
		Academy:   contribution.Academy,
		Intensive: contribution.Intensive,
		Niat:      contribution.Niat,
	}
	if req.Academy != nil {
		input.Academy = req.Academy
	}
	if req.Intensive != nil {
		input.Intensive = req.Intensive
	}
	if req.Niat != nil {
		input.Niat = req.Niat
	}

	result := validation.ValidateContribution(input)
	if !result.OK {
		return nil, validationFailure(result)
	}

	contribution.Academy = result.Allocation.Academy
	contribution.Intensive = result.Allocation.Intensive
	contribution.Niat = result.Allocation.Niat
	if req.Remarks != nil {
		contribution.Remarks = *req.Remarks
	}
	if req.Cycle != nil {
		contribution.Cycle = normalizeCycle(*req.Cycle)
	}
	contribution.SubmittedByID = caller.UserID
	contribution.SubmittedAt = s.now()

	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		if errors.Is(err, apperrors.ErrContributionExists) {
			if other, lookupErr := s.contributionRepo.GetByDepartmentAndCycle(ctx, contribution.DepartmentID, contribution.Cycle); lookupErr == nil {
				return nil, conflictWith(other)
			}
		}
		return nil, err
	}

	s.logger.Info().Str("contributionID", id.String()).Msg("Contribution updated")
	return s.contributionRepo.GetByID(ctx, id)
}

// List returns every contribution, newest first, optionally for one cycle
func (s *ContributionService) List(ctx context.Context, cycle string) ([]*models.Contribution, error) {
	return s.contributionRepo.List(ctx, strings.TrimSpace(cycle))
}

// GetByDepartment returns the department's contribution for cycle, or the
// most recently submitted one when cycle is empty
func (s *ContributionService) GetByDepartment(ctx context.Context, caller *appauth.Caller, rawDepartmentID, cycle string) (*models.Contribution, error) {
	if caller == nil {
		return nil, appauth.ErrUnauthenticated
	}

	departmentID, err := parseID(rawDepartmentID, "Invalid department id.")
	if err != nil {
		return nil, err
	}
	if !s.authz.CanAccessDepartment(caller, departmentID) {
		return nil, apperrors.NewForbiddenError("You can only view your own department contribution.")
	}

	var contribution *models.Contribution
	if c := strings.TrimSpace(cycle); c != "" {
		contribution, err = s.contributionRepo.GetByDepartmentAndCycle(ctx, departmentID, c)
	} else {
		contribution, err = s.contributionRepo.GetLatestByDepartment(ctx, departmentID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrContributionNotFound) {
			return nil, apperrors.NewResourceNotFoundError("Contribution not found for this department.")
		}
		return nil, err
	}
	return contribution, nil
}

// Delete removes a contribution by id
func (s *ContributionService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID, "Invalid contribution id.")
	if err != nil {
		return err
	}
	if err := s.contributionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("contributionID", id.String()).Msg("Contribution deleted")
	return nil
}
