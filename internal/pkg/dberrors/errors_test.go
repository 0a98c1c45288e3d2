package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "contributions_department_cycle_key"})

	assert.True(t, IsDuplicateConstraintError(err, "contributions_department_cycle_key"))
	assert.False(t, IsDuplicateConstraintError(err, "users_email_key"))
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: ForeignKeyViolation, ConstraintName: "departments_hod_id_fkey"}

	assert.True(t, IsForeignKeyViolation(err, "departments_hod_id_fkey"))
	assert.False(t, IsUniqueViolation(err))
}
