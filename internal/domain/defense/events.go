package defense

import (
	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// Event types for the defense context
const (
	EventTypeDefenseScheduled = "defense.scheduled"
	EventTypeScoreUpdated     = "defense.score.updated"
)

// DefenseScheduledEvent is published when a defense is created or rescheduled
type DefenseScheduledEvent struct {
	shared.BaseDomainEvent
	Code  string `json:"code"`
	Date  string `json:"date"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// NewDefenseScheduledEvent creates a new DefenseScheduledEvent
func NewDefenseScheduledEvent(d *Defense) *DefenseScheduledEvent {
	return &DefenseScheduledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDefenseScheduled, "Defense", d.ID),
		Code:            d.Code,
		Date:            d.Date.Format("2006-01-02"),
		Start:           d.Window.Start(),
		End:             d.Window.End(),
	}
}

// ScoreUpdatedEvent is published when a lecturer records a score for a group
type ScoreUpdatedEvent struct {
	shared.BaseDomainEvent
	LecturerID uuid.UUID `json:"lecturer_id"`
	GroupID    uuid.UUID `json:"group_id"`
	HasPoint   bool      `json:"has_point"`
}

// NewScoreUpdatedEvent creates a new ScoreUpdatedEvent
func NewScoreUpdatedEvent(ld *LecturerDefense) *ScoreUpdatedEvent {
	return &ScoreUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeScoreUpdated, "LecturerDefense", ld.ID),
		LecturerID:      ld.LecturerID,
		GroupID:         ld.GroupID,
		HasPoint:        ld.Point != nil,
	}
}
