package defense

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"github.com/thesisdesk/backend/internal/domain/thesis"
)

// PlanService handles confirmed schedule slots
type PlanService struct {
	planRepo            defense.PlanRepository
	defenseRepo         defense.DefenseRepository
	groupRepo           thesis.GroupRepository
	lecturerDefenseRepo defense.LecturerDefenseRepository
	logger              *zap.Logger
}

// NewPlanService creates a new PlanService
func NewPlanService(
	planRepo defense.PlanRepository,
	defenseRepo defense.DefenseRepository,
	groupRepo thesis.GroupRepository,
	lecturerDefenseRepo defense.LecturerDefenseRepository,
	logger *zap.Logger,
) *PlanService {
	return &PlanService{
		planRepo:            planRepo,
		defenseRepo:         defenseRepo,
		groupRepo:           groupRepo,
		lecturerDefenseRepo: lecturerDefenseRepo,
		logger:              logger,
	}
}

// Create confirms a schedule slot for a group. The group and defense must
// exist, and the window must not clash with another slot of any lecturer
// grading the group.
func (s *PlanService) Create(ctx context.Context, req CreatePlanRequest) (*PlanResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	window, err := defense.ParseTimeWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if _, err := s.groupRepo.FindByID(ctx, req.GroupID); err != nil {
		return nil, err
	}
	if _, err := s.defenseRepo.FindByID(ctx, req.DefenseID); err != nil {
		return nil, err
	}

	graders, err := s.lecturerDefenseRepo.FindByGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	for i := range graders {
		clashing, err := s.planRepo.FindOverlappingForLecturer(ctx, graders[i].LecturerID, date, window)
		if err != nil {
			return nil, err
		}
		if len(clashing) > 0 {
			return nil, shared.NewDomainError("INVALID_TIME", "Slot overlaps an existing plan of a committee lecturer")
		}
	}

	plan, err := defense.NewPlan(req.GroupID, req.DefenseID, date, window)
	if err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("Plan created",
		zap.String("plan_id", plan.ID.String()),
		zap.String("group_id", req.GroupID.String()),
		zap.String("date", req.Date))

	resp := ToPlanResponse(plan)
	return &resp, nil
}

// GetByID retrieves a plan by ID
func (s *PlanService) GetByID(ctx context.Context, id uuid.UUID) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPlanResponse(plan)
	return &resp, nil
}

// List retrieves plans matching the filter with pagination
func (s *PlanService) List(ctx context.Context, filter PlanListFilter) ([]PlanResponse, int64, error) {
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
	if filter.GroupID != uuid.Nil {
		domainFilter.Filters["group_id"] = filter.GroupID
	}
	if filter.DefenseID != uuid.Nil {
		domainFilter.Filters["defense_id"] = filter.DefenseID
	}
	if filter.Date != "" {
		date, err := parseDate(filter.Date)
		if err != nil {
			return nil, 0, err
		}
		domainFilter.Filters["date"] = date
	}

	plans, err := s.planRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.planRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = ToPlanResponse(&plans[i])
	}
	return responses, total, nil
}

// Reschedule moves a confirmed slot to a new date or window
func (s *PlanService) Reschedule(ctx context.Context, id uuid.UUID, req ReschedulePlanRequest) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date := plan.Date
	window := plan.Window
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			return nil, err
		}
	}
	if req.StartTime != "" || req.EndTime != "" {
		start := window.Start()
		end := window.End()
		if req.StartTime != "" {
			start = req.StartTime
		}
		if req.EndTime != "" {
			end = req.EndTime
		}
		window, err = defense.ParseTimeWindow(start, end)
		if err != nil {
			return nil, err
		}
	}

	if err := plan.Reschedule(date, window); err != nil {
		return nil, err
	}
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	resp := ToPlanResponse(plan)
	return &resp, nil
}

// Delete removes a plan
func (s *PlanService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Plan deleted", zap.String("plan_id", id.String()))
	return nil
}

// CheckTime probes for plans of the lecturer clashing with the proposed
// window. All four parameters are mandatory. Unlike the defense probe,
// this one is scoped to the lecturer's own schedule.
func (s *PlanService) CheckTime(ctx context.Context, req ConflictCheckRequest) (*PlanConflictResult, error) {
	if req.LecturerID == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, shared.NewDomainError("BAD_REQUEST", "lecturer_id, date, start_time and end_time are required")
	}
	lecturerID, err := uuid.Parse(req.LecturerID)
	if err != nil {
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

	clashing, err := s.planRepo.FindOverlappingForLecturer(ctx, lecturerID, date, window)
	if err != nil {
		return nil, err
	}

	result := &PlanConflictResult{
		Conflict: len(clashing) > 0,
		Plans:    make([]PlanResponse, len(clashing)),
	}
	for i := range clashing {
		result.Plans[i] = ToPlanResponse(&clashing[i])
	}
	return result, nil
}
