package dto

import "time"

// APIResponse is the envelope every endpoint returns, success or failure.
type APIResponse struct {
	Status    int            `json:"status"`
	Message   string         `json:"message"`
	Data      any            `json:"data,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewAPIResponse builds a success envelope.
func NewAPIResponse(status int, message string, data any) APIResponse {
	return APIResponse{
		Status:    status,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}
