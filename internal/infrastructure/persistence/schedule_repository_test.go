package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupScheduleTestDB creates an in-memory SQLite database with the
// scheduling tables migrated from the domain structs
func setupScheduleTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&defense.Defense{}, &defense.LecturerDefense{}, &defense.Plan{})
	require.NoError(t, err)

	return db
}

func window(t *testing.T, start, end int) defense.TimeWindow {
	t.Helper()
	w, err := defense.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func scheduleDate() time.Time {
	return time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
}

func mustNewDefense(t *testing.T, name string, start, end int) *defense.Defense {
	t.Helper()
	d, err := defense.NewDefense(name, scheduleDate(), window(t, start, end))
	require.NoError(t, err)
	return d
}

func TestGormDefenseRepository_SaveAndFind(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewGormDefenseRepository(db)
	ctx := context.Background()

	d := mustNewDefense(t, "Morning committee", 540, 600)
	require.NoError(t, repo.Save(ctx, d))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, d.Name, found.Name)
		assert.Equal(t, 540, found.Window.StartMinute)
		assert.Equal(t, 600, found.Window.EndMinute)
	})

	t.Run("finds by code", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, d.Code)
		require.NoError(t, err)
		assert.Equal(t, d.ID, found.ID)
	})

	t.Run("missing id maps to ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormDefenseRepository_FindOverlapping(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewGormDefenseRepository(db)
	ctx := context.Background()

	// 09:00-10:00 and 13:00-14:00 on the same day
	morning := mustNewDefense(t, "Morning committee", 540, 600)
	afternoon := mustNewDefense(t, "Afternoon committee", 780, 840)
	require.NoError(t, repo.Save(ctx, morning))
	require.NoError(t, repo.Save(ctx, afternoon))

	t.Run("detects partial overlap", func(t *testing.T) {
		found, err := repo.FindOverlapping(ctx, scheduleDate(), window(t, 570, 630))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, morning.ID, found[0].ID)
	})

	t.Run("adjacent windows do not overlap", func(t *testing.T) {
		found, err := repo.FindOverlapping(ctx, scheduleDate(), window(t, 600, 660))
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("containing window overlaps both", func(t *testing.T) {
		found, err := repo.FindOverlapping(ctx, scheduleDate(), window(t, 480, 900))
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("other dates are ignored", func(t *testing.T) {
		found, err := repo.FindOverlapping(ctx, scheduleDate().AddDate(0, 0, 1), window(t, 540, 600))
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestGormLecturerDefenseRepository(t *testing.T) {
	db := setupScheduleTestDB(t)
	repo := NewGormLecturerDefenseRepository(db)
	ctx := context.Background()

	d := mustNewDefense(t, "Committee", 540, 600)
	lecturerID := uuid.New()
	groupID := uuid.New()

	ld, err := defense.NewLecturerDefense(lecturerID, groupID, d)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, ld))

	t.Run("finds by lecturer and defense", func(t *testing.T) {
		found, err := repo.FindByLecturerAndDefense(ctx, lecturerID, d.ID)
		require.NoError(t, err)
		assert.Equal(t, ld.ID, found.ID)
		assert.Equal(t, groupID, found.GroupID)
	})

	t.Run("finds by lecturer and group", func(t *testing.T) {
		found, err := repo.FindByLecturerAndGroup(ctx, lecturerID, groupID)
		require.NoError(t, err)
		assert.Equal(t, ld.ID, found.ID)
	})

	t.Run("unknown pair maps to ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByLecturerAndDefense(ctx, uuid.New(), d.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete by defense and lecturers", func(t *testing.T) {
		require.NoError(t, repo.DeleteByDefenseAndLecturers(ctx, d.ID, []uuid.UUID{lecturerID}))

		_, err := repo.FindByLecturerAndDefense(ctx, lecturerID, d.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormPlanRepository_FindOverlappingForLecturer(t *testing.T) {
	db := setupScheduleTestDB(t)
	planRepo := NewGormPlanRepository(db)
	ldRepo := NewGormLecturerDefenseRepository(db)
	ctx := context.Background()

	d := mustNewDefense(t, "Committee", 540, 600)
	lecturerID := uuid.New()
	gradedGroupID := uuid.New()
	otherGroupID := uuid.New()

	ld, err := defense.NewLecturerDefense(lecturerID, gradedGroupID, d)
	require.NoError(t, err)
	require.NoError(t, ldRepo.Save(ctx, ld))

	// 09:00-10:00 for the graded group, same window for an unrelated group
	gradedPlan, err := defense.NewPlan(gradedGroupID, d.ID, scheduleDate(), window(t, 540, 600))
	require.NoError(t, err)
	otherPlan, err := defense.NewPlan(otherGroupID, d.ID, scheduleDate(), window(t, 540, 600))
	require.NoError(t, err)
	require.NoError(t, planRepo.Save(ctx, gradedPlan))
	require.NoError(t, planRepo.Save(ctx, otherPlan))

	t.Run("only the lecturer's groups count", func(t *testing.T) {
		found, err := planRepo.FindOverlappingForLecturer(ctx, lecturerID, scheduleDate(), window(t, 570, 630))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, gradedPlan.ID, found[0].ID)
	})

	t.Run("no hit outside the window", func(t *testing.T) {
		found, err := planRepo.FindOverlappingForLecturer(ctx, lecturerID, scheduleDate(), window(t, 600, 660))
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("lecturer without assignments sees no conflicts", func(t *testing.T) {
		found, err := planRepo.FindOverlappingForLecturer(ctx, uuid.New(), scheduleDate(), window(t, 540, 600))
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("plans ordered by start when listed per group", func(t *testing.T) {
		later, err := defense.NewPlan(gradedGroupID, d.ID, scheduleDate(), window(t, 840, 900))
		require.NoError(t, err)
		require.NoError(t, planRepo.Save(ctx, later))

		plans, err := planRepo.FindByGroup(ctx, gradedGroupID)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, gradedPlan.ID, plans[0].ID)
		assert.Equal(t, later.ID, plans[1].ID)
	})
}
