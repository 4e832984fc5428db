package defense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/identity"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"github.com/thesisdesk/backend/internal/domain/thesis"
)

// ScoreService handles lecturer score entry with the group-level lock gate
type ScoreService struct {
	lecturerDefenseRepo defense.LecturerDefenseRepository
	groupRepo           thesis.GroupRepository
	userRepo            identity.UserRepository
	defenseRepo         defense.DefenseRepository
	eventBus            shared.EventPublisher
	logger              *zap.Logger
	// now is swapped in tests to pin the lock gate clock
	now func() time.Time
}

// NewScoreService creates a new ScoreService
func NewScoreService(
	lecturerDefenseRepo defense.LecturerDefenseRepository,
	groupRepo thesis.GroupRepository,
	userRepo identity.UserRepository,
	defenseRepo defense.DefenseRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *ScoreService {
	return &ScoreService{
		lecturerDefenseRepo: lecturerDefenseRepo,
		groupRepo:           groupRepo,
		userRepo:            userRepo,
		defenseRepo:         defenseRepo,
		eventBus:            eventBus,
		logger:              logger,
		now:                 time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *ScoreService) WithClock(now func() time.Time) *ScoreService {
	s.now = now
	return s
}

// UpdateScoreByGroup records the caller's score for a group. The caller
// must be a lecturer or admin assigned to grade the group, and the group's
// score lock must not have passed. The gate is checked on every call, so a
// locked group rejects resubmissions no matter how often they arrive.
func (s *ScoreService) UpdateScoreByGroup(ctx context.Context, callerID uuid.UUID, req UpdateScoreRequest) (*LecturerDefenseResponse, error) {
	if req.GroupID == uuid.Nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "group_id is required")
	}

	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.CanScore() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only lecturers and admins can record scores")
	}

	group, err := s.groupRepo.FindByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if group.ScoringLocked(now) {
		return nil, shared.NewDomainError("SCORING_LOCKED",
			fmt.Sprintf("Score entry for this group was locked at %s", thesis.FormatLockAt(*group.LockAt)))
	}

	ld, err := s.lecturerDefenseRepo.FindByLecturerAndGroup(ctx, callerID, req.GroupID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		ld, err = s.selfAssign(ctx, callerID, group)
		if err != nil {
			return nil, err
		}
	}

	if err := ld.SetScore(req.Point, req.Comment); err != nil {
		return nil, err
	}
	if err := s.lecturerDefenseRepo.Save(ctx, ld); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, ld)

	s.logger.Info("Score recorded",
		zap.String("lecturer_id", callerID.String()),
		zap.String("group_id", req.GroupID.String()),
		zap.Bool("has_point", ld.Point != nil))

	resp := ToLecturerDefenseResponse(ld)
	return &resp, nil
}

// selfAssign creates the grading row for a lecturer scoring a group for the
// first time. The group must already sit on a defense. An existing row for
// the same (lecturer, defense) pair is re-pointed at this group instead of
// duplicated.
func (s *ScoreService) selfAssign(ctx context.Context, lecturerID uuid.UUID, group *thesis.Group) (*defense.LecturerDefense, error) {
	if group.DefenseID == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Group is not scheduled for a defense")
	}
	d, err := s.defenseRepo.FindByID(ctx, *group.DefenseID)
	if err != nil {
		return nil, err
	}

	ld, err := s.lecturerDefenseRepo.FindByLecturerAndDefense(ctx, lecturerID, d.ID)
	if err == nil {
		if err := ld.Reassign(group.ID); err != nil {
			return nil, err
		}
		return ld, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	return defense.NewLecturerDefense(lecturerID, group.ID, d)
}

// GetByID retrieves a grading row by ID
func (s *ScoreService) GetByID(ctx context.Context, id uuid.UUID) (*LecturerDefenseResponse, error) {
	ld, err := s.lecturerDefenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToLecturerDefenseResponse(ld)
	return &resp, nil
}

// List retrieves grading rows matching the filter with pagination
func (s *ScoreService) List(ctx context.Context, filter LecturerDefenseListFilter) ([]LecturerDefenseResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.LecturerID != uuid.Nil {
		domainFilter.Filters["lecturer_id"] = filter.LecturerID
	}
	if filter.DefenseID != uuid.Nil {
		domainFilter.Filters["defense_id"] = filter.DefenseID
	}
	if filter.GroupID != uuid.Nil {
		domainFilter.Filters["group_id"] = filter.GroupID
	}
	if filter.Scored != nil {
		domainFilter.Filters["scored"] = *filter.Scored
	}

	rows, err := s.lecturerDefenseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.lecturerDefenseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LecturerDefenseResponse, len(rows))
	for i := range rows {
		responses[i] = ToLecturerDefenseResponse(&rows[i])
	}
	return responses, total, nil
}

func (s *ScoreService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventBus == nil {
		return
	}
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish domain events", zap.Error(err))
	}
	aggregate.ClearDomainEvents()
}
