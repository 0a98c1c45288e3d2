package dto

// EmployeeEntry is one row of a bulk seed request
type EmployeeEntry struct {
	EmpID       string `json:"empId" example:"ENG-001"`
	Name        string `json:"name" example:"Ada Lovelace"`
	Department  string `json:"department" example:"7f1d2c1e-3b52-4a0e-9d0c-2b8f9b3f4a11"`
	Designation string `json:"designation" example:"Engineer"`
	Email       string `json:"email" example:"ada@organization.com"`
}

// SeedEmployeesRequest is the bulk employee insert payload
type SeedEmployeesRequest struct {
	Employees []EmployeeEntry `json:"employees"`
}
