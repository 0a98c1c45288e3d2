package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/contribtrack/internal/pkg/apperrors"
)

// Services defined in this package:
// - AuthService: login, user creation and the caller's profile
// - DepartmentService: department listing, lookup, creation and update
// - EmployeeService: scoped employee listing and bulk seeding
// - ContributionService: contribution lifecycle per department and cycle
// - ExportService: spreadsheet export of contributions

// parseID parses a path or body identifier, failing with a 400 carrying message
func parseID(raw, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequestError(message)
	}
	return id, nil
}
