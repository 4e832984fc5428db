package defense

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/identity"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

func newScoreTestService() (*ScoreService, *MockLecturerDefenseRepository, *MockGroupRepository, *MockUserRepository, *MockDefenseRepository) {
	lecturerDefenses := new(MockLecturerDefenseRepository)
	groups := new(MockGroupRepository)
	users := new(MockUserRepository)
	defenses := new(MockDefenseRepository)
	svc := NewScoreService(lecturerDefenses, groups, users, defenses, nil, zap.NewNop())
	return svc, lecturerDefenses, groups, users, defenses
}

func newUserWithRole(t *testing.T, username string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, "Secret1234", role)
	require.NoError(t, err)
	user.ClearDomainEvents()
	return user
}

func TestScoreService_UpdateScoreByGroup(t *testing.T) {
	t.Run("lecturer records a score on an open group", func(t *testing.T) {
		svc, lecturerDefenses, groups, users, _ := newScoreTestService()

		lecturer := newUserWithRole(t, "lect01", identity.RoleLecturer)
		group := newTestGroup(t, "Team Raft")
		d := newTestDefense(t, "Session A", "2026-06-15", "09:00", "11:00")
		ld, err := defense.NewLecturerDefense(lecturer.ID, group.ID, d)
		require.NoError(t, err)

		users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
		lecturerDefenses.On("FindByLecturerAndGroup", mock.Anything, lecturer.ID, group.ID).Return(ld, nil)
		lecturerDefenses.On("Save", mock.Anything, ld).Return(nil)

		point := decimal.RequireFromString("8.5")
		comment := "Solid defense, weak on failure scenarios"
		resp, err := svc.UpdateScoreByGroup(context.Background(), lecturer.ID, UpdateScoreRequest{
			GroupID: group.ID,
			Point:   &point,
			Comment: &comment,
		})

		require.NoError(t, err)
		require.NotNil(t, resp.Point)
		assert.True(t, resp.Point.Equal(point))
		require.NotNil(t, resp.Comment)
		assert.Equal(t, comment, *resp.Comment)
		assert.True(t, ld.HasScore())
	})

	t.Run("locked group rejects the score with the lock time", func(t *testing.T) {
		svc, _, groups, users, _ := newScoreTestService()

		lecturer := newUserWithRole(t, "lect02", identity.RoleLecturer)
		group := newTestGroup(t, "Team Paxos")
		lockAt := time.Date(2026, 6, 20, 17, 30, 0, 0, time.Local)
		group.Lock(lockAt)

		svc.WithClock(func() time.Time { return lockAt.Add(time.Minute) })

		users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)

		point := decimal.RequireFromString("9")
		_, err := svc.UpdateScoreByGroup(context.Background(), lecturer.ID, UpdateScoreRequest{
			GroupID: group.ID,
			Point:   &point,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SCORING_LOCKED", domainErr.Code)
		assert.Contains(t, domainErr.Message, "20/06/2026 17:30")
	})

	t.Run("lock boundary is inclusive", func(t *testing.T) {
		svc, _, groups, users, _ := newScoreTestService()

		lecturer := newUserWithRole(t, "lect03", identity.RoleLecturer)
		group := newTestGroup(t, "Team CRDT")
		lockAt := time.Date(2026, 6, 20, 17, 30, 0, 0, time.Local)
		group.Lock(lockAt)

		svc.WithClock(func() time.Time { return lockAt })

		users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)

		_, err := svc.UpdateScoreByGroup(context.Background(), lecturer.ID, UpdateScoreRequest{
			GroupID: group.ID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SCORING_LOCKED", domainErr.Code)
	})

	t.Run("future lock leaves scoring open", func(t *testing.T) {
		svc, lecturerDefenses, groups, users, _ := newScoreTestService()

		lecturer := newUserWithRole(t, "lect04", identity.RoleLecturer)
		group := newTestGroup(t, "Team Gossip")
		d := newTestDefense(t, "Session B", "2026-06-16", "09:00", "11:00")
		ld, err := defense.NewLecturerDefense(lecturer.ID, group.ID, d)
		require.NoError(t, err)

		lockAt := time.Date(2026, 6, 20, 17, 30, 0, 0, time.Local)
		group.Lock(lockAt)
		svc.WithClock(func() time.Time { return lockAt.Add(-time.Hour) })

		users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
		lecturerDefenses.On("FindByLecturerAndGroup", mock.Anything, lecturer.ID, group.ID).Return(ld, nil)
		lecturerDefenses.On("Save", mock.Anything, ld).Return(nil)

		point := decimal.RequireFromString("7")
		_, err = svc.UpdateScoreByGroup(context.Background(), lecturer.ID, UpdateScoreRequest{
			GroupID: group.ID,
			Point:   &point,
		})

		require.NoError(t, err)
	})

	t.Run("student cannot score", func(t *testing.T) {
		svc, _, _, users, _ := newScoreTestService()

		student := newUserWithRole(t, "student01", identity.RoleStudent)
		users.On("FindByID", mock.Anything, student.ID).Return(student, nil)

		_, err := svc.UpdateScoreByGroup(context.Background(), student.ID, UpdateScoreRequest{
			GroupID: uuid.New(),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("missing group id rejected", func(t *testing.T) {
		svc, _, _, _, _ := newScoreTestService()

		_, err := svc.UpdateScoreByGroup(context.Background(), uuid.New(), UpdateScoreRequest{})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BAD_REQUEST", domainErr.Code)
	})

	t.Run("first score self-assigns the lecturer to the group", func(t *testing.T) {
		svc, lecturerDefenses, groups, users, defenses := newScoreTestService()

		lecturer := newUserWithRole(t, "lect05", identity.RoleLecturer)
		group := newTestGroup(t, "Team Quorum")
		d := newTestDefense(t, "Session D", "2026-06-18", "13:00", "15:00")
		require.NoError(t, group.AssignDefense(d.ID))

		users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
		lecturerDefenses.On("FindByLecturerAndGroup", mock.Anything, lecturer.ID, group.ID).
			Return(nil, shared.ErrNotFound)
		defenses.On("FindByID", mock.Anything, d.ID).Return(d, nil)
		lecturerDefenses.On("FindByLecturerAndDefense", mock.Anything, lecturer.ID, d.ID).
			Return(nil, shared.ErrNotFound)

		var saved *defense.LecturerDefense
		lecturerDefenses.On("Save", mock.Anything, mock.AnythingOfType("*defense.LecturerDefense")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*defense.LecturerDefense)
			}).Return(nil)

		point := decimal.RequireFromString("7")
		resp, err := svc.UpdateScoreByGroup(context.Background(), lecturer.ID, UpdateScoreRequest{
			GroupID: group.ID,
			Point:   &point,
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, lecturer.ID, saved.LecturerID)
		assert.Equal(t, group.ID, saved.GroupID)
		assert.Equal(t, d.ID, saved.DefenseID)
		require.NotNil(t, resp.Point)
		assert.True(t, resp.Point.Equal(point))
	})

	t.Run("self-assignment re-points an existing row for the same defense", func(t *testing.T) {
		svc, lecturerDefenses, groups, users, defenses := newScoreTestService()

		lecturer := newUserWithRole(t, "lect06", identity.RoleLecturer)
		group := newTestGroup(t, "Team Gossip")
		otherGroup := newTestGroup(t, "Team Chord")
		d := newTestDefense(t, "Session E", "2026-06-19", "09:00", "11:00")
		require.NoError(t, group.AssignDefense(d.ID))
		existing, err := defense.NewLecturerDefense(lecturer.ID, otherGroup.ID, d)
		require.NoError(t, err)

		users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
		lecturerDefenses.On("FindByLecturerAndGroup", mock.Anything, lecturer.ID, group.ID).
			Return(nil, shared.ErrNotFound)
		defenses.On("FindByID", mock.Anything, d.ID).Return(d, nil)
		lecturerDefenses.On("FindByLecturerAndDefense", mock.Anything, lecturer.ID, d.ID).
			Return(existing, nil)
		lecturerDefenses.On("Save", mock.Anything, existing).Return(nil)

		point := decimal.RequireFromString("6.5")
		_, err = svc.UpdateScoreByGroup(context.Background(), lecturer.ID, UpdateScoreRequest{
			GroupID: group.ID,
			Point:   &point,
		})

		require.NoError(t, err)
		assert.Equal(t, group.ID, existing.GroupID)
		lecturerDefenses.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("group without a defense cannot be scored", func(t *testing.T) {
		svc, lecturerDefenses, groups, users, _ := newScoreTestService()

		lecturer := newUserWithRole(t, "lect07", identity.RoleLecturer)
		group := newTestGroup(t, "Team Vector")

		users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
		lecturerDefenses.On("FindByLecturerAndGroup", mock.Anything, lecturer.ID, group.ID).
			Return(nil, shared.ErrNotFound)

		_, err := svc.UpdateScoreByGroup(context.Background(), lecturer.ID, UpdateScoreRequest{
			GroupID: group.ID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Equal(t, "Group is not scheduled for a defense", domainErr.Message)
		lecturerDefenses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("out of range point rejected", func(t *testing.T) {
		svc, lecturerDefenses, groups, users, _ := newScoreTestService()

		admin := newUserWithRole(t, "admin01", identity.RoleAdmin)
		group := newTestGroup(t, "Team Lease")
		d := newTestDefense(t, "Session C", "2026-06-17", "09:00", "11:00")
		ld, err := defense.NewLecturerDefense(admin.ID, group.ID, d)
		require.NoError(t, err)

		users.On("FindByID", mock.Anything, admin.ID).Return(admin, nil)
		groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
		lecturerDefenses.On("FindByLecturerAndGroup", mock.Anything, admin.ID, group.ID).Return(ld, nil)

		point := decimal.RequireFromString("10.5")
		_, err = svc.UpdateScoreByGroup(context.Background(), admin.ID, UpdateScoreRequest{
			GroupID: group.ID,
			Point:   &point,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_POINT", domainErr.Code)
		lecturerDefenses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestScoreService_List(t *testing.T) {
	svc, lecturerDefenses, _, _, _ := newScoreTestService()

	lecturerID := uuid.New()
	scored := true
	var captured shared.Filter
	lecturerDefenses.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(shared.Filter)
		}).Return([]defense.LecturerDefense{}, nil)
	lecturerDefenses.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

	_, total, err := svc.List(context.Background(), LecturerDefenseListFilter{
		LecturerID: lecturerID,
		Scored:     &scored,
	})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Equal(t, lecturerID, captured.Filters["lecturer_id"])
	assert.Equal(t, true, captured.Filters["scored"])
}
