package models

import (
	"time"

	"github.com/google/uuid"
)

// Department represents an organisational unit headed by an optional HOD
type Department struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	HODID          *uuid.UUID `json:"hodId"`
	HOD            *UserRef   `json:"hod,omitempty"`
	EmployeesCount int        `json:"employeesCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// DepartmentRef is the subset of a department embedded into other resources
type DepartmentRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
	HOD  *UserRef  `json:"hod,omitempty"`
}

// Ref returns the embeddable view of the department
func (d *Department) Ref() *DepartmentRef {
	if d == nil {
		return nil
	}
	return &DepartmentRef{ID: d.ID, Name: d.Name, Code: d.Code, HOD: d.HOD}
}
