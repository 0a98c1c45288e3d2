package dto

import (
	"github.com/google/uuid"
	"github.com/yigit/contribtrack/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" example:"admin@organization.com"`
	Password string `json:"password" example:"admin123"`
}

// LoginResponse carries the bearer token and the signed-in user
type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType" example:"Bearer"`
	ExpiresIn int           `json:"expiresIn" example:"604800"`
	User      *UserResponse `json:"user"`
}

// CreateUserRequest is the payload of the admin-only user creation endpoint
type CreateUserRequest struct {
	Name       string  `json:"name" binding:"required" example:"Finance HOD"`
	Email      string  `json:"email" binding:"required,email" example:"fin_hod@organization.com"`
	Password   string  `json:"password" binding:"required,min=6,max=72" example:"secret1"`
	Role       string  `json:"role" binding:"required,oneof=Admin HOD" example:"HOD"`
	Department *string `json:"department" binding:"omitempty,uuid" example:"7f1d2c1e-3b52-4a0e-9d0c-2b8f9b3f4a11"`
}

// DepartmentSummary is the short department view embedded in user responses
type DepartmentSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" example:"Engineering"`
	Code string    `json:"code" example:"ENG"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name" example:"Engineering HOD"`
	Email      string             `json:"email" example:"eng_hod@organization.com"`
	Role       models.Role        `json:"role" example:"HOD"`
	Department *DepartmentSummary `json:"department"`
}

// NewUserResponse converts a user, whose Department may or may not be populated
func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}

	resp := &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	switch {
	case user.Department != nil:
		resp.Department = &DepartmentSummary{ID: user.Department.ID, Name: user.Department.Name, Code: user.Department.Code}
	case user.DepartmentID != nil:
		resp.Department = &DepartmentSummary{ID: *user.DepartmentID}
	}
	return resp
}
