package defense

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	t.Run("creates plan", func(t *testing.T) {
		p, err := NewPlan(uuid.New(), uuid.New(), testDate(), mustWindow(t, "07:00", "09:00"))

		require.NoError(t, err)
		assert.Equal(t, testDate(), p.Date)
	})

	t.Run("fails with missing references", func(t *testing.T) {
		_, err := NewPlan(uuid.Nil, uuid.New(), testDate(), mustWindow(t, "07:00", "09:00"))
		assert.Error(t, err)

		_, err = NewPlan(uuid.New(), uuid.Nil, testDate(), mustWindow(t, "07:00", "09:00"))
		assert.Error(t, err)
	})
}

func TestPlan_ConflictsWith(t *testing.T) {
	groupID, defenseID := uuid.New(), uuid.New()
	a, err := NewPlan(groupID, defenseID, testDate(), mustWindow(t, "09:30", "11:30"))
	require.NoError(t, err)

	b, _ := NewPlan(groupID, defenseID, testDate(), mustWindow(t, "11:00", "13:00"))
	assert.True(t, a.ConflictsWith(b))

	c, _ := NewPlan(groupID, defenseID, testDate(), mustWindow(t, "11:30", "13:00"))
	assert.False(t, a.ConflictsWith(c))
}

func TestPlan_Reschedule(t *testing.T) {
	p, err := NewPlan(uuid.New(), uuid.New(), testDate(), mustWindow(t, "07:00", "09:00"))
	require.NoError(t, err)

	nextDay := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)
	require.NoError(t, p.Reschedule(nextDay, mustWindow(t, "15:30", "17:30")))

	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), p.Date)
	assert.Equal(t, "15:30-17:30", p.Window.String())
}
