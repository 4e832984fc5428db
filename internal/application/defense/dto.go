package defense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/thesisdesk/backend/internal/domain/defense"
)

// DateLayout is the wire format for defense and plan dates
const DateLayout = "2006-01-02"

// GroupAssignment binds one group and its grading committee to a defense
type GroupAssignment struct {
	GroupID     uuid.UUID
	LecturerIDs []uuid.UUID
}

// CreateDefenseRequest carries fields for scheduling a defense session.
// An empty Status schedules the session as waiting.
type CreateDefenseRequest struct {
	Name        string
	Date        string
	StartTime   string
	EndTime     string
	Status      defense.Status
	Assignments []GroupAssignment
}

// UpdateDefenseRequest carries fields for rescheduling a defense.
// Nil Assignments leaves the committee untouched.
type UpdateDefenseRequest struct {
	Name        *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Status      *defense.Status
	Assignments []GroupAssignment
}

// DefenseListFilter carries list query options for defenses
type DefenseListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Status   string
	Date     string
}

// DefenseResponse is the API representation of a defense session
type DefenseResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Date      string         `json:"date"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Status    defense.Status `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ToDefenseResponse converts a domain defense to its API representation
func ToDefenseResponse(d *defense.Defense) DefenseResponse {
	return DefenseResponse{
		ID:        d.ID,
		Name:      d.Name,
		Code:      d.Code,
		Date:      d.Date.Format(DateLayout),
		StartTime: d.Window.Start(),
		EndTime:   d.Window.End(),
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ConflictCheckRequest carries the raw query parameters of a time-conflict
// probe. All four fields are mandatory.
type ConflictCheckRequest struct {
	LecturerID string
	Date       string
	StartTime  string
	EndTime    string
}

// ConflictInfo summarizes one clashing defense
type ConflictInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// ConflictCheckResult is the response of the defense conflict probe
type ConflictCheckResult struct {
	Conflict  bool           `json:"conflict"`
	Message   string         `json:"message"`
	Conflicts []ConflictInfo `json:"conflicts"`
}

// CreatePlanRequest carries fields for confirming a schedule slot
type CreatePlanRequest struct {
	GroupID   uuid.UUID
	DefenseID uuid.UUID
	Date      string
	StartTime string
	EndTime   string
}

// ReschedulePlanRequest carries fields for moving a confirmed slot
type ReschedulePlanRequest struct {
	Date      string
	StartTime string
	EndTime   string
}

// PlanListFilter carries list query options for plans
type PlanListFilter struct {
	Page      int
	PageSize  int
	OrderBy   string
	OrderDir  string
	GroupID   uuid.UUID
	DefenseID uuid.UUID
	Date      string
}

// PlanResponse is the API representation of a schedule slot
type PlanResponse struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	DefenseID uuid.UUID `json:"defense_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPlanResponse converts a domain plan to its API representation
func ToPlanResponse(p *defense.Plan) PlanResponse {
	return PlanResponse{
		ID:        p.ID,
		GroupID:   p.GroupID,
		DefenseID: p.DefenseID,
		Date:      p.Date.Format(DateLayout),
		StartTime: p.Window.Start(),
		EndTime:   p.Window.End(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlanConflictResult is the response of the plan conflict probe
type PlanConflictResult struct {
	Conflict bool           `json:"conflict"`
	Plans    []PlanResponse `json:"plans"`
}

// UpdateScoreRequest carries a lecturer's score for a group. Point may be
// nil to record only a comment.
type UpdateScoreRequest struct {
	GroupID uuid.UUID
	Point   *decimal.Decimal
	Comment *string
}

// LecturerDefenseListFilter carries list query options for grading rows
type LecturerDefenseListFilter struct {
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
	LecturerID uuid.UUID
	DefenseID  uuid.UUID
	GroupID    uuid.UUID
	Scored     *bool
}

// LecturerDefenseResponse is the API representation of a grading row
type LecturerDefenseResponse struct {
	ID         uuid.UUID        `json:"id"`
	LecturerID uuid.UUID        `json:"lecturer_id"`
	DefenseID  uuid.UUID        `json:"defense_id"`
	GroupID    uuid.UUID        `json:"group_id"`
	Point      *decimal.Decimal `json:"point"`
	Comment    *string          `json:"comment"`
	Date       string           `json:"date"`
	StartTime  string           `json:"start_time"`
	EndTime    string           `json:"end_time"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ToLecturerDefenseResponse converts a grading row to its API representation
func ToLecturerDefenseResponse(ld *defense.LecturerDefense) LecturerDefenseResponse {
	return LecturerDefenseResponse{
		ID:         ld.ID,
		LecturerID: ld.LecturerID,
		DefenseID:  ld.DefenseID,
		GroupID:    ld.GroupID,
		Point:      ld.Point,
		Comment:    ld.Comment,
		Date:       ld.Date.Format(DateLayout),
		StartTime:  ld.Window.Start(),
		EndTime:    ld.Window.End(),
		CreatedAt:  ld.CreatedAt,
		UpdatedAt:  ld.UpdatedAt,
	}
}
