package defense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// Score bounds for defense grading
var (
	minPoint = decimal.Zero
	maxPoint = decimal.NewFromInt(10)
)

// LecturerDefense is the assignment of a lecturer to grade one group inside
// one defense session, carrying the score and comment. The date and window
// are denormalized from the defense so a lecturer's personal calendar can be
// queried without joins.
type LecturerDefense struct {
	shared.BaseAggregateRoot
	LecturerID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_lecturer_defense,priority:1"`
	DefenseID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_lecturer_defense,priority:2"`
	GroupID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	Point      *decimal.Decimal `gorm:"type:decimal(4,2)"`
	Comment    *string          `gorm:"type:text"`
	Date       time.Time        `gorm:"type:date;not null;index"`
	Window     TimeWindow       `gorm:"embedded"`
}

// TableName returns the table name for GORM
func (LecturerDefense) TableName() string {
	return "lecturer_defenses"
}

// NewLecturerDefense assigns a lecturer to grade a group within a defense
func NewLecturerDefense(lecturerID, groupID uuid.UUID, d *Defense) (*LecturerDefense, error) {
	if lecturerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LECTURER", "Lecturer ID cannot be empty")
	}
	if groupID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GROUP", "Group ID cannot be empty")
	}
	if d == nil {
		return nil, shared.NewDomainError("INVALID_DEFENSE", "Defense cannot be nil")
	}

	return &LecturerDefense{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		LecturerID:        lecturerID,
		DefenseID:         d.ID,
		GroupID:           groupID,
		Date:              d.Date,
		Window:            d.Window,
	}, nil
}

// Reassign points the row at a different group within the same defense
func (ld *LecturerDefense) Reassign(groupID uuid.UUID) error {
	if groupID == uuid.Nil {
		return shared.NewDomainError("INVALID_GROUP", "Group ID cannot be empty")
	}
	ld.GroupID = groupID
	ld.UpdatedAt = time.Now()
	ld.IncrementVersion()
	return nil
}

// SyncSchedule re-copies the defense's date and window after a reschedule
func (ld *LecturerDefense) SyncSchedule(d *Defense) {
	ld.Date = d.Date
	ld.Window = d.Window
	ld.UpdatedAt = time.Now()
	ld.IncrementVersion()
}

// SetScore records the lecturer's point and comment for the group.
// The point must lie in [0, 10].
func (ld *LecturerDefense) SetScore(point *decimal.Decimal, comment *string) error {
	if point != nil {
		if point.LessThan(minPoint) || point.GreaterThan(maxPoint) {
			return shared.NewDomainError("INVALID_POINT", "Point must be between 0 and 10")
		}
	}

	ld.Point = point
	ld.Comment = comment
	ld.UpdatedAt = time.Now()
	ld.IncrementVersion()

	ld.AddDomainEvent(NewScoreUpdatedEvent(ld))

	return nil
}

// HasScore reports whether a point has been recorded
func (ld *LecturerDefense) HasScore() bool {
	return ld.Point != nil
}
