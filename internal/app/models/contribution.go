package models

import (
	"time"

	"github.com/google/uuid"
)

// Contribution is a department's percentage split across academy, intensive
// and niat for one cycle. (DepartmentID, Cycle) is unique.
type Contribution struct {
	ID            uuid.UUID      `json:"id"`
	DepartmentID  uuid.UUID      `json:"departmentId"`
	Department    *DepartmentRef `json:"department,omitempty"`
	Academy       float64        `json:"academy"`
	Intensive     float64        `json:"intensive"`
	Niat          float64        `json:"niat"`
	SubmittedByID uuid.UUID      `json:"submittedById"`
	SubmittedBy   *UserRef       `json:"submittedBy,omitempty"`
	Remarks       string         `json:"remarks"`
	SubmittedAt   time.Time      `json:"submittedAt"`
	Cycle         string         `json:"cycle"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Total is the derived sum of the three allocations
func (c *Contribution) Total() float64 {
	return c.Academy + c.Intensive + c.Niat
}
