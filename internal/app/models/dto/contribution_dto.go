package dto

// CreateContributionRequest is the payload for a new department allocation.
// The percentages are decoded loosely so numeric strings are accepted and
// non-numbers reach the contribution validator instead of failing binding.
type CreateContributionRequest struct {
	Department string      `json:"department" example:"7f1d2c1e-3b52-4a0e-9d0c-2b8f9b3f4a11"`
	Academy    interface{} `json:"academy" swaggertype:"number" example:"40"`
	Intensive  interface{} `json:"intensive" swaggertype:"number" example:"30"`
	Niat       interface{} `json:"niat" swaggertype:"number" example:"30"`
	Remarks    string      `json:"remarks" example:"Q4 split"`
	Cycle      string      `json:"cycle" example:"2025-Q4"`
}

// UpdateContributionRequest merges into an existing record; absent fields
// keep their current value
type UpdateContributionRequest struct {
	Academy   interface{} `json:"academy" swaggertype:"number" example:"50"`
	Intensive interface{} `json:"intensive" swaggertype:"number" example:"25"`
	Niat      interface{} `json:"niat" swaggertype:"number" example:"25"`
	Remarks   *string     `json:"remarks" example:"revised"`
	Cycle     *string     `json:"cycle" example:"2025-Q4"`
}
