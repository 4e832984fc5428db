package thesis

import (
	"strings"
	"time"
)

// Lock timestamps arrive in two shapes: RFC 3339 from the current clients,
// and "dd/mm/YYYY/HH:MM" strings written by the legacy system. The legacy
// data was never validated, so an unparseable value is treated as no lock
// at all rather than rejecting the row.
const legacyLockLayout = "02/01/2006/15:04"

// LockTimeFormat is how lock instants are rendered in API messages
const LockTimeFormat = "02/01/2006 15:04"

// ParseLockAt parses a lock timestamp in either supported representation.
// Returns nil when the value is empty or unparseable.
func ParseLockAt(value string, loc *time.Location) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation(legacyLockLayout, value, loc); err == nil {
		return &t
	}

	return nil
}

// FormatLockAt renders a lock instant for API messages
func FormatLockAt(t time.Time) string {
	return t.Format(LockTimeFormat)
}
