package defense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// DefenseService handles defense committee sessions and the group and
// lecturer assignment cascade around them.
type DefenseService struct {
	defenseRepo defense.DefenseRepository
	txManager   TransactionManager
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewDefenseService creates a new DefenseService
func NewDefenseService(
	defenseRepo defense.DefenseRepository,
	txManager TransactionManager,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *DefenseService {
	return &DefenseService{
		defenseRepo: defenseRepo,
		txManager:   txManager,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Create schedules a defense session and links its groups and grading
// committee in one transaction. A failure anywhere rolls back the whole
// cascade.
func (s *DefenseService) Create(ctx context.Context, req CreateDefenseRequest) (*DefenseResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	window, err := defense.ParseTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	d, err := defense.NewDefense(req.Name, date, window)
	if err != nil {
		return nil, err
	}
	if req.Status == defense.StatusDone {
		if err := d.MarkDone(); err != nil {
			return nil, err
		}
	}

	var dirty []shared.AggregateRoot
	err = s.txManager.InTransaction(ctx, func(repos CascadeRepos) error {
		if err := repos.Defenses.Save(ctx, d); err != nil {
			return err
		}
		touched, err := applyAssignments(ctx, repos, d, req.Assignments)
		if err != nil {
			return err
		}
		dirty = append(touched, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishEvents(ctx, dirty)

	s.logger.Info("Defense scheduled",
		zap.String("defense_id", d.ID.String()),
		zap.String("code", d.Code),
		zap.String("date", req.Date),
		zap.Int("groups", len(req.Assignments)))

	resp := ToDefenseResponse(d)
	return &resp, nil
}

// GetByID retrieves a defense by ID
func (s *DefenseService) GetByID(ctx context.Context, id uuid.UUID) (*DefenseResponse, error) {
	d, err := s.defenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDefenseResponse(d)
	return &resp, nil
}

// List retrieves defenses matching the filter with pagination
func (s *DefenseService) List(ctx context.Context, filter DefenseListFilter) ([]DefenseResponse, int64, error) {
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
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Date != "" {
		date, err := parseDate(filter.Date)
		if err != nil {
			return nil, 0, err
		}
		domainFilter.Filters["date"] = date
	}

	defenses, err := s.defenseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.defenseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DefenseResponse, len(defenses))
	for i := range defenses {
		responses[i] = ToDefenseResponse(&defenses[i])
	}
	return responses, total, nil
}

// Update reschedules a defense and reconciles its committee. Resubmitting
// the same assignments is a no-op; lecturers dropped from the request lose
// their rows, new ones gain them, retained ones keep their score and are
// re-pointed at the submitted group.
func (s *DefenseService) Update(ctx context.Context, id uuid.UUID, req UpdateDefenseRequest) (*DefenseResponse, error) {
	d, err := s.defenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := d.Name
	date := d.Date
	window := d.Window
	if req.Name != nil {
		name = *req.Name
	}
	if req.Date != nil {
		date, err = parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
	}
	if req.StartTime != nil || req.EndTime != nil {
		start := window.Start()
		end := window.End()
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = *req.EndTime
		}
		window, err = defense.ParseTimeWindow(start, end)
		if err != nil {
			return nil, err
		}
	}

	if err := d.Update(name, date, window); err != nil {
		return nil, err
	}

	if req.Status != nil && *req.Status != d.Status {
		switch *req.Status {
		case defense.StatusDone:
			if err := d.MarkDone(); err != nil {
				return nil, err
			}
		case defense.StatusWaiting:
			d.Reopen()
		default:
			return nil, shared.NewDomainError("INVALID_INPUT", "Unknown defense status")
		}
	}

	var dirty []shared.AggregateRoot
	err = s.txManager.InTransaction(ctx, func(repos CascadeRepos) error {
		if err := repos.Defenses.Save(ctx, d); err != nil {
			return err
		}

		// Schedule changes propagate to every grading row of this defense
		existing, err := repos.LecturerDefenses.FindByDefense(ctx, d.ID)
		if err != nil {
			return err
		}
		for i := range existing {
			existing[i].SyncSchedule(d)
			if err := repos.LecturerDefenses.Save(ctx, &existing[i]); err != nil {
				return err
			}
		}

		if req.Assignments != nil {
			if err := reconcileAssignments(ctx, repos, d, existing, req.Assignments); err != nil {
				return err
			}
		}

		touched, err := applyAssignments(ctx, repos, d, req.Assignments)
		if err != nil {
			return err
		}
		dirty = append(touched, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publishEvents(ctx, dirty)

	resp := ToDefenseResponse(d)
	return &resp, nil
}

// Delete removes a defense, unlinking its groups first. Grading rows and
// plans go with it through the foreign key cascade.
func (s *DefenseService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.InTransaction(ctx, func(repos CascadeRepos) error {
		groups, err := repos.Groups.FindByDefense(ctx, id)
		if err != nil {
			return err
		}
		for i := range groups {
			groups[i].UnassignDefense()
			if err := repos.Groups.Save(ctx, &groups[i]); err != nil {
				return err
			}
		}
		return repos.Defenses.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Defense deleted", zap.String("defense_id", id.String()))
	return nil
}

// CheckTimeConflict probes for defenses clashing with the proposed window.
// All four parameters are mandatory. The lecturer ID is validated but the
// probe spans every committee on the date, not just that lecturer's.
func (s *DefenseService) CheckTimeConflict(ctx context.Context, req ConflictCheckRequest) (*ConflictCheckResult, error) {
	if req.LecturerID == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, shared.NewDomainError("BAD_REQUEST", "lecturer_id, date, start_time and end_time are required")
	}
	if _, err := uuid.Parse(req.LecturerID); err != nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "lecturer_id must be a valid UUID")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "date must be formatted YYYY-MM-DD")
	}
	window, err := defense.ParseTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "start_time and end_time must be HH:MM with end after start")
	}

	overlapping, err := s.defenseRepo.FindOverlapping(ctx, date, window)
	if err != nil {
		return nil, err
	}

	result := &ConflictCheckResult{
		Conflict:  len(overlapping) > 0,
		Conflicts: make([]ConflictInfo, len(overlapping)),
	}
	for i := range overlapping {
		result.Conflicts[i] = ConflictInfo{
			ID:        overlapping[i].ID,
			Name:      overlapping[i].Name,
			Code:      overlapping[i].Code,
			Date:      overlapping[i].Date.Format(DateLayout),
			StartTime: overlapping[i].Window.Start(),
			EndTime:   overlapping[i].Window.End(),
		}
	}
	if result.Conflict {
		result.Message = fmt.Sprintf("Time conflict with %d defense session(s) on %s", len(overlapping), req.Date)
	}
	return result, nil
}

func (s *DefenseService) publishEvents(ctx context.Context, aggregates []shared.AggregateRoot) {
	if s.eventBus == nil {
		return
	}
	for _, aggregate := range aggregates {
		events := aggregate.GetDomainEvents()
		if len(events) == 0 {
			continue
		}
		if err := s.eventBus.Publish(ctx, events...); err != nil {
			s.logger.Warn("Failed to publish domain events", zap.Error(err))
		}
		aggregate.ClearDomainEvents()
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be formatted YYYY-MM-DD")
	}
	return date, nil
}
