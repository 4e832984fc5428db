package defense

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thesisdesk/backend/internal/domain/shared"
)

// TimeWindow is a half-open [Start, End) interval of minutes from midnight
// on a single day. Two windows that merely touch at a boundary do not
// overlap: a committee ending at 11:00 does not conflict with one starting
// at 11:00.
type TimeWindow struct {
	StartMinute int `gorm:"column:start_minute;not null"`
	EndMinute   int `gorm:"column:end_minute;not null"`
}

const minutesPerDay = 24 * 60

// NewTimeWindow creates a time window, requiring end after start
func NewTimeWindow(startMinute, endMinute int) (TimeWindow, error) {
	if startMinute < 0 || startMinute >= minutesPerDay {
		return TimeWindow{}, shared.NewDomainError("INVALID_TIME", "Start time is out of range")
	}
	if endMinute <= 0 || endMinute > minutesPerDay {
		return TimeWindow{}, shared.NewDomainError("INVALID_TIME", "End time is out of range")
	}
	if endMinute <= startMinute {
		return TimeWindow{}, shared.NewDomainError("INVALID_TIME", "End time must be after start time")
	}
	return TimeWindow{StartMinute: startMinute, EndMinute: endMinute}, nil
}

// ParseTimeWindow builds a window from "HH:MM" start and end strings
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	startMin, err := ParseMinute(start)
	if err != nil {
		return TimeWindow{}, err
	}
	endMin, err := ParseMinute(end)
	if err != nil {
		return TimeWindow{}, err
	}
	return NewTimeWindow(startMin, endMin)
}

// ParseMinute parses an "HH:MM" time of day into minutes from midnight
func ParseMinute(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, shared.NewDomainError("INVALID_TIME", fmt.Sprintf("Invalid time %q, expected HH:MM", s))
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, shared.NewDomainError("INVALID_TIME", fmt.Sprintf("Invalid hour in %q", s))
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, shared.NewDomainError("INVALID_TIME", fmt.Sprintf("Invalid minute in %q", s))
	}
	return hour*60 + minute, nil
}

// Overlaps reports whether two half-open windows intersect
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.StartMinute < other.EndMinute && other.StartMinute < w.EndMinute
}

// Contains reports whether the given minute falls inside the window
func (w TimeWindow) Contains(minute int) bool {
	return minute >= w.StartMinute && minute < w.EndMinute
}

// Start returns the window start as "HH:MM"
func (w TimeWindow) Start() string {
	return formatMinute(w.StartMinute)
}

// End returns the window end as "HH:MM"
func (w TimeWindow) End() string {
	return formatMinute(w.EndMinute)
}

// String returns the window as "HH:MM-HH:MM"
func (w TimeWindow) String() string {
	return w.Start() + "-" + w.End()
}

func formatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
