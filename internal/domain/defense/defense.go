package defense

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// Status represents the lifecycle state of a defense committee session
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusDone    Status = "done"
)

// Defense represents a scheduled committee session at which one or more
// student groups present their thesis.
type Defense struct {
	shared.BaseAggregateRoot
	Name   string     `gorm:"type:varchar(200);not null"`
	Code   string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Date   time.Time  `gorm:"type:date;not null;index"`
	Window TimeWindow `gorm:"embedded"`
	Status Status     `gorm:"type:varchar(20);not null;default:'waiting'"`
}

// TableName returns the table name for GORM
func (Defense) TableName() string {
	return "defenses"
}

// NewDefense creates a new waiting defense session with a generated code
func NewDefense(name string, date time.Time, window TimeWindow) (*Defense, error) {
	if err := validateDefenseName(name); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Defense date cannot be empty")
	}

	base := shared.NewBaseAggregateRoot()
	d := &Defense{
		BaseAggregateRoot: base,
		Name:              name,
		Code:              GenerateDefenseCode(base.ID),
		Date:              truncateToDay(date),
		Window:            window,
		Status:            StatusWaiting,
	}

	d.AddDomainEvent(NewDefenseScheduledEvent(d))

	return d, nil
}

// GenerateDefenseCode derives a stable defense code from the defense ID
func GenerateDefenseCode(id uuid.UUID) string {
	return "DEF-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// Update changes the name and schedule of the defense
func (d *Defense) Update(name string, date time.Time, window TimeWindow) error {
	if err := validateDefenseName(name); err != nil {
		return err
	}
	if date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Defense date cannot be empty")
	}

	rescheduled := !d.Date.Equal(truncateToDay(date)) || d.Window != window

	d.Name = name
	d.Date = truncateToDay(date)
	d.Window = window
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	if rescheduled {
		d.AddDomainEvent(NewDefenseScheduledEvent(d))
	}

	return nil
}

// MarkDone marks the session as completed
func (d *Defense) MarkDone() error {
	if d.Status == StatusDone {
		return shared.NewDomainError("INVALID_STATE", "Defense is already done")
	}
	d.Status = StatusDone
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// Reopen puts a completed session back into waiting
func (d *Defense) Reopen() {
	d.Status = StatusWaiting
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

// ConflictsWith reports whether another defense occupies an overlapping
// window on the same date
func (d *Defense) ConflictsWith(other *Defense) bool {
	return d.Date.Equal(other.Date) && d.Window.Overlaps(other.Window)
}

func validateDefenseName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Defense name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Defense name cannot exceed 200 characters")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
