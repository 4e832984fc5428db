package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	defenseapp "github.com/thesisdesk/backend/internal/application/defense"
	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/identity"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"github.com/thesisdesk/backend/internal/domain/thesis"
	"github.com/thesisdesk/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type scoreTestEnv struct {
	engine           *gin.Engine
	service          *defenseapp.ScoreService
	lecturerDefenses *MockLecturerDefenseRepository
	groups           *MockGroupRepository
	users            *MockUserRepository
}

// authAs injects JWT context keys the way the auth middleware would
func authAs(userID uuid.UUID, role identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, userID.String())
		c.Set(middleware.JWTRoleKey, role)
		c.Next()
	}
}

func newScoreTestEnv(userID uuid.UUID, role identity.Role) scoreTestEnv {
	lecturerDefenses := new(MockLecturerDefenseRepository)
	groups := new(MockGroupRepository)
	users := new(MockUserRepository)
	service := defenseapp.NewScoreService(lecturerDefenses, groups, users, new(MockDefenseRepository), nil, zap.NewNop())
	h := NewLecturerDefenseHandler(service)

	engine := gin.New()
	engine.Use(authAs(userID, role))
	engine.PATCH("/api/v1/lecturer_defenses/update_score_by_group", h.UpdateScoreByGroup)

	return scoreTestEnv{
		engine:           engine,
		service:          service,
		lecturerDefenses: lecturerDefenses,
		groups:           groups,
		users:            users,
	}
}

func patchScore(t *testing.T, engine *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/lecturer_defenses/update_score_by_group", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func newLecturer(t *testing.T, username string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, "Secret1234", identity.RoleLecturer)
	require.NoError(t, err)
	user.ClearDomainEvents()
	return user
}

func TestLecturerDefenseHandler_UpdateScoreByGroup(t *testing.T) {
	t.Run("records score", func(t *testing.T) {
		lecturer := newLecturer(t, "lect01")
		env := newScoreTestEnv(lecturer.ID, identity.RoleLecturer)

		group, err := thesis.NewGroup("Team Raft")
		require.NoError(t, err)
		day, _ := time.Parse("2006-01-02", "2026-06-15")
		window, err := defense.ParseTimeWindow("09:00", "11:00")
		require.NoError(t, err)
		d, err := defense.NewDefense("Session A", day, window)
		require.NoError(t, err)
		ld, err := defense.NewLecturerDefense(lecturer.ID, group.ID, d)
		require.NoError(t, err)

		env.users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		env.groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
		env.lecturerDefenses.On("FindByLecturerAndGroup", mock.Anything, lecturer.ID, group.ID).Return(ld, nil)
		env.lecturerDefenses.On("Save", mock.Anything, ld).Return(nil)

		w := patchScore(t, env.engine, gin.H{
			"group_id": group.ID.String(),
			"point":    8.5,
			"comment":  "Strong evaluation section",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Point   string `json:"point"`
				Comment string `json:"comment"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "8.5", body.Data.Point)
		assert.Equal(t, "Strong evaluation section", body.Data.Comment)
	})

	t.Run("locked group returns 403 with lock time", func(t *testing.T) {
		lecturer := newLecturer(t, "lect02")
		env := newScoreTestEnv(lecturer.ID, identity.RoleLecturer)

		group, err := thesis.NewGroup("Team Paxos")
		require.NoError(t, err)
		lockAt := time.Date(2026, 6, 20, 17, 30, 0, 0, time.Local)
		group.Lock(lockAt)
		env.service.WithClock(func() time.Time { return lockAt.Add(time.Hour) })

		env.users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		env.groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)

		w := patchScore(t, env.engine, gin.H{
			"group_id": group.ID.String(),
			"point":    9,
		})

		require.Equal(t, http.StatusForbidden, w.Code)
		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "ERR_SCORING_LOCKED", body.Error.Code)
		assert.Contains(t, body.Error.Message, "20/06/2026 17:30")
	})

	t.Run("missing group_id returns 400", func(t *testing.T) {
		lecturer := newLecturer(t, "lect03")
		env := newScoreTestEnv(lecturer.ID, identity.RoleLecturer)

		w := patchScore(t, env.engine, gin.H{"point": 7})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("student caller returns 403", func(t *testing.T) {
		student, err := identity.NewUser("student01", "Secret1234", identity.RoleStudent)
		require.NoError(t, err)
		student.ClearDomainEvents()
		env := newScoreTestEnv(student.ID, identity.RoleStudent)

		env.users.On("FindByID", mock.Anything, student.ID).Return(student, nil)

		w := patchScore(t, env.engine, gin.H{
			"group_id": uuid.NewString(),
			"point":    7,
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("group without a defense returns 404", func(t *testing.T) {
		lecturer := newLecturer(t, "lect04")
		env := newScoreTestEnv(lecturer.ID, identity.RoleLecturer)

		group, err := thesis.NewGroup("Team Quorum")
		require.NoError(t, err)

		env.users.On("FindByID", mock.Anything, lecturer.ID).Return(lecturer, nil)
		env.groups.On("FindByID", mock.Anything, group.ID).Return(group, nil)
		env.lecturerDefenses.On("FindByLecturerAndGroup", mock.Anything, lecturer.ID, group.ID).
			Return(nil, shared.ErrNotFound)

		w := patchScore(t, env.engine, gin.H{"group_id": group.ID.String()})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
