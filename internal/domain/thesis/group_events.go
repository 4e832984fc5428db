package thesis

import (
	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// Event types for the thesis context
const (
	EventTypeGroupAssigned = "thesis.group.assigned"
)

// GroupAssignedEvent is published when a group is linked to a defense committee
type GroupAssignedEvent struct {
	shared.BaseDomainEvent
	GroupCode string    `json:"group_code"`
	DefenseID uuid.UUID `json:"defense_id"`
}

// NewGroupAssignedEvent creates a new GroupAssignedEvent
func NewGroupAssignedEvent(group *Group, defenseID uuid.UUID) *GroupAssignedEvent {
	return &GroupAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGroupAssigned, "Group", group.ID),
		GroupCode:       group.Code,
		DefenseID:       defenseID,
	}
}
