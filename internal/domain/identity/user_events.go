package identity

import (
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// Event types for the identity context
const (
	EventTypeUserCreated     = "identity.user.created"
	EventTypeUserDeactivated = "identity.user.deactivated"
)

// UserCreatedEvent is published when a new user account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, "User", user.ID),
		Username:        user.Username,
		Role:            user.Role,
	}
}
