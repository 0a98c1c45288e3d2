package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a member of exactly one department
type Employee struct {
	ID           uuid.UUID      `json:"id"`
	EmpID        string         `json:"empId"`
	Name         string         `json:"name"`
	DepartmentID uuid.UUID      `json:"departmentId"`
	Department   *DepartmentRef `json:"department,omitempty"`
	Designation  string         `json:"designation"`
	Email        string         `json:"email"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
