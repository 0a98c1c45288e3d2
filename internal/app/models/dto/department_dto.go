package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name string  `json:"name" binding:"required" example:"Engineering"`
	Code string  `json:"code" example:"ENG"`
	HOD  *string `json:"hod" binding:"omitempty,uuid" example:"7f1d2c1e-3b52-4a0e-9d0c-2b8f9b3f4a11"`
}

// UpdateDepartmentRequest is a partial update. Name is applied when non-empty,
// code and hod when present. An empty hod clears the assignment.
type UpdateDepartmentRequest struct {
	Name *string `json:"name" example:"Engineering"`
	Code *string `json:"code" example:"ENG"`
	HOD  *string `json:"hod" example:"7f1d2c1e-3b52-4a0e-9d0c-2b8f9b3f4a11"`
}
