package thesis

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// GroupStatus represents the topic-registration state of a group
type GroupStatus string

const (
	GroupStatusPending  GroupStatus = "pending"
	GroupStatusAccepted GroupStatus = "accepted"
	GroupStatusDenied   GroupStatus = "denied"
)

// DefenseStatus represents a group's progress through the defense workflow,
// distinct from its topic-registration status.
type DefenseStatus string

const (
	DefenseStatusNotDefended    DefenseStatus = "not_defended"
	DefenseStatusWaitingDefense DefenseStatus = "waiting_defense"
	DefenseStatusApproved       DefenseStatus = "approved"
	DefenseStatusRejected       DefenseStatus = "rejected"
)

// Group represents a team of students working on one topic and defending
// together before a defense committee.
type Group struct {
	shared.BaseAggregateRoot
	Name          string        `gorm:"type:varchar(200);not null"`
	Code          string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	TopicID       *uuid.UUID    `gorm:"type:uuid;index"`
	Status        GroupStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	DefenseStatus DefenseStatus `gorm:"type:varchar(20);not null;default:'not_defended'"`
	DefenseID     *uuid.UUID    `gorm:"type:uuid;index"`
	// LockAt is the instant after which lecturer score entry for this group
	// is rejected. Nil means scoring is open.
	LockAt *time.Time `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (Group) TableName() string {
	return "groups"
}

// NewGroup creates a new pending group with a generated code
func NewGroup(name string) (*Group, error) {
	if err := validateGroupName(name); err != nil {
		return nil, err
	}

	base := shared.NewBaseAggregateRoot()
	return &Group{
		BaseAggregateRoot: base,
		Name:              name,
		Code:              GenerateGroupCode(base.ID),
		Status:            GroupStatusPending,
		DefenseStatus:     DefenseStatusNotDefended,
	}, nil
}

// GenerateGroupCode derives a stable group code from the group ID
func GenerateGroupCode(id uuid.UUID) string {
	return "GRP-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// Rename updates the group's display name
func (g *Group) Rename(name string) error {
	if err := validateGroupName(name); err != nil {
		return err
	}
	g.Name = name
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// RegisterTopic links the group to a topic
func (g *Group) RegisterTopic(topicID uuid.UUID) error {
	if topicID == uuid.Nil {
		return shared.NewDomainError("INVALID_TOPIC", "Topic ID cannot be empty")
	}
	g.TopicID = &topicID
	g.Status = GroupStatusPending
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// Accept approves the group's topic registration
func (g *Group) Accept() {
	g.Status = GroupStatusAccepted
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// Deny rejects the group's topic registration
func (g *Group) Deny() {
	g.Status = GroupStatusDenied
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// AssignDefense links the group to a defense committee. A group may be
// linked to only one defense at a time; assigning a different defense
// while one is set is a conflict the caller must resolve by unassigning
// first.
func (g *Group) AssignDefense(defenseID uuid.UUID) error {
	if defenseID == uuid.Nil {
		return shared.NewDomainError("INVALID_DEFENSE", "Defense ID cannot be empty")
	}
	if g.DefenseID != nil && *g.DefenseID != defenseID {
		return shared.NewDomainError("GROUP_ALREADY_ASSIGNED", "Group is already linked to another defense")
	}

	g.DefenseID = &defenseID
	g.Status = GroupStatusAccepted
	g.DefenseStatus = DefenseStatusApproved
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	g.AddDomainEvent(NewGroupAssignedEvent(g, defenseID))

	return nil
}

// UnassignDefense removes the group's defense link
func (g *Group) UnassignDefense() {
	g.DefenseID = nil
	g.DefenseStatus = DefenseStatusWaitingDefense
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// SetDefenseStatus sets the defense-workflow status directly
func (g *Group) SetDefenseStatus(status DefenseStatus) error {
	switch status {
	case DefenseStatusNotDefended, DefenseStatusWaitingDefense, DefenseStatusApproved, DefenseStatusRejected:
	default:
		return shared.NewDomainError("INVALID_DEF_STATUS", "Invalid defense status")
	}
	g.DefenseStatus = status
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// Lock sets the score-lock instant for this group
func (g *Group) Lock(at time.Time) {
	g.LockAt = &at
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// ClearLock removes the score lock, re-opening score entry
func (g *Group) ClearLock() {
	g.LockAt = nil
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// ScoringLocked reports whether score entry is closed as of now.
// The transition from open to locked happens purely by wall clock;
// only ClearLock re-opens scoring.
func (g *Group) ScoringLocked(now time.Time) bool {
	return g.LockAt != nil && !now.Before(*g.LockAt)
}

func validateGroupName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Group name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Group name cannot exceed 200 characters")
	}
	return nil
}
