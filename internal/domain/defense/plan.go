package defense

import (
	"time"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// Plan is the confirmed schedule entry binding a group to a defense at a
// specific date and time window.
type Plan struct {
	shared.BaseAggregateRoot
	GroupID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	DefenseID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Date      time.Time  `gorm:"type:date;not null;index"`
	Window    TimeWindow `gorm:"embedded"`
}

// TableName returns the table name for GORM
func (Plan) TableName() string {
	return "plans"
}

// NewPlan creates a schedule entry for a group defending before a committee
func NewPlan(groupID, defenseID uuid.UUID, date time.Time, window TimeWindow) (*Plan, error) {
	if groupID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GROUP", "Group ID cannot be empty")
	}
	if defenseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEFENSE", "Defense ID cannot be empty")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Plan date cannot be empty")
	}

	return &Plan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		GroupID:           groupID,
		DefenseID:         defenseID,
		Date:              truncateToDay(date),
		Window:            window,
	}, nil
}

// Reschedule moves the plan to a new date and window
func (p *Plan) Reschedule(date time.Time, window TimeWindow) error {
	if date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Plan date cannot be empty")
	}
	p.Date = truncateToDay(date)
	p.Window = window
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// ConflictsWith reports whether another plan occupies an overlapping window
// on the same date
func (p *Plan) ConflictsWith(other *Plan) bool {
	return p.Date.Equal(other.Date) && p.Window.Overlaps(other.Window)
}
