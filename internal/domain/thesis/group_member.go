package thesis

import (
	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// GroupMember is the join row linking a student user to a group. Membership
// is replaced wholesale when a group's roster changes; rows carry no state
// of their own.
type GroupMember struct {
	shared.BaseEntity
	GroupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_member,priority:1"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_member,priority:2"`
}

// TableName returns the table name for GORM
func (GroupMember) TableName() string {
	return "group_members"
}

// NewGroupMember creates a membership row
func NewGroupMember(groupID, userID uuid.UUID) (*GroupMember, error) {
	if groupID == uuid.Nil || userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Group membership requires both group and user")
	}
	return &GroupMember{
		BaseEntity: shared.NewBaseEntity(),
		GroupID:    groupID,
		UserID:     userID,
	}, nil
}
