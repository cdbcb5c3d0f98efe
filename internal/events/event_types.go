package events

import (
	"time"

	"github.com/spec-kit/fooddelivery-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered        EventType = "user_registered"
	EventProfileCreated        EventType = "profile_created"
	EventProfileStatusAdvanced EventType = "profile_status_advanced"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// ProfileCreatedPayload payload.
type ProfileCreatedPayload struct {
	Role   domain.Role          `json:"role"`
	Status domain.ProfileStatus `json:"status"`
}

// ProfileStatusAdvancedPayload payload.
type ProfileStatusAdvancedPayload struct {
	OldStatus domain.ProfileStatus `json:"old_status"`
	NewStatus domain.ProfileStatus `json:"new_status"`
}
