package dto

import "time"

// APIResponse is the envelope every JSON endpoint responds with
type APIResponse struct {
	Success   bool                   `json:"success" example:"true"`
	Message   string                 `json:"message,omitempty" example:"Operation completed successfully."`
	Data      interface{}            `json:"data,omitempty"`
	Errors    interface{}            `json:"errors,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Code      ErrorCode              `json:"code,omitempty" example:"VAL_001"`
	Timestamp time.Time              `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse builds a failed envelope
func NewErrorResponse(code ErrorCode, message string) APIResponse {
	return APIResponse{
		Success:   false,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// StatusData is returned by the status endpoint
type StatusData struct {
	Service   string    `json:"service" example:"contribtrack"`
	Timestamp time.Time `json:"timestamp"`
}
