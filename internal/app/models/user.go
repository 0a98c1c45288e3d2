package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           uuid.UUID      `json:"id" db:"id" example:"7f1d2c1e-3b52-4a0e-9d0c-2b8f9b3f4a11"`
	Name         string         `json:"name" db:"name" example:"Engineering HOD"`
	Email        string         `json:"email" db:"email" example:"eng_hod@organization.com"`
	PasswordHash string         `json:"-" db:"password_hash"`
	Role         Role           `json:"role" db:"role" example:"HOD"`
	DepartmentID *uuid.UUID     `json:"departmentId" db:"department_id"`
	Department   *DepartmentRef `json:"department,omitempty"` // Relation, no db tag
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

// UserRef is the subset of a user embedded into other resources
type UserRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role,omitempty"`
}

// Ref returns the embeddable view of the user
func (u *User) Ref() *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
