package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	defenseapp "github.com/thesisdesk/backend/internal/application/defense"
	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/interfaces/http/dto"
)

// DefenseHandler handles defense session endpoints
type DefenseHandler struct {
	BaseHandler
	defenseService *defenseapp.DefenseService
}

// NewDefenseHandler creates a new DefenseHandler
func NewDefenseHandler(defenseService *defenseapp.DefenseService) *DefenseHandler {
	return &DefenseHandler{
		defenseService: defenseService,
	}
}

// CreateDefenseRequest represents a request to schedule a defense session.
// Every listed lecturer grades every listed group.
type CreateDefenseRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Date        string   `json:"date" binding:"required"`
	StartTime   string   `json:"start_time" binding:"required"`
	EndTime     string   `json:"end_time" binding:"required"`
	Status      string   `json:"status" binding:"omitempty,oneof=waiting done"`
	GroupIDs    []string `json:"group_ids" binding:"omitempty,dive,uuid"`
	LecturerIDs []string `json:"lecturer_ids" binding:"omitempty,dive,uuid"`
}

// UpdateDefenseRequest represents a request to reschedule a defense.
// Omitting both ID lists leaves the committee untouched.
type UpdateDefenseRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Date        *string  `json:"date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Status      *string  `json:"status" binding:"omitempty,oneof=waiting done"`
	GroupIDs    []string `json:"group_ids" binding:"omitempty,dive,uuid"`
	LecturerIDs []string `json:"lecturer_ids" binding:"omitempty,dive,uuid"`
}

// ListDefensesRequest represents list query parameters for defenses
type ListDefensesRequest struct {
	dto.ListRequest
	Status string `form:"status" binding:"omitempty,oneof=waiting done"`
	Date   string `form:"date"`
}

// CheckTimeConflictRequest represents the defense conflict probe query.
// All four parameters are required.
type CheckTimeConflictRequest struct {
	LecturerID string `form:"lecturer_id"`
	Date       string `form:"date"`
	StartTime  string `form:"start_time"`
	EndTime    string `form:"end_time"`
}

// pairAssignments expands the flat group and lecturer ID lists into
// per-group committee assignments. Nil lists mean the caller is not
// touching the committee.
func pairAssignments(groupIDs, lecturerIDs []string) ([]defenseapp.GroupAssignment, error) {
	if groupIDs == nil && lecturerIDs == nil {
		return nil, nil
	}
	groups, err := parseUUIDs(groupIDs)
	if err != nil {
		return nil, err
	}
	lecturers, err := parseUUIDs(lecturerIDs)
	if err != nil {
		return nil, err
	}
	assignments := make([]defenseapp.GroupAssignment, len(groups))
	for i, g := range groups {
		assignments[i] = defenseapp.GroupAssignment{
			GroupID:     g,
			LecturerIDs: lecturers,
		}
	}
	return assignments, nil
}

// Create schedules a defense session with its committee
func (h *DefenseHandler) Create(c *gin.Context) {
	var req CreateDefenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	assignments, err := pairAssignments(req.GroupIDs, req.LecturerIDs)
	if err != nil {
		h.BadRequest(c, "Invalid group or lecturer ID format")
		return
	}

	d, err := h.defenseService.Create(c.Request.Context(), defenseapp.CreateDefenseRequest{
		Name:        req.Name,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      defense.Status(req.Status),
		Assignments: assignments,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, d)
}

// GetByID returns a single defense
func (h *DefenseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid defense ID")
		return
	}

	d, err := h.defenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, d)
}

// List returns defenses matching the query
func (h *DefenseHandler) List(c *gin.Context) {
	req := ListDefensesRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	defenses, total, err := h.defenseService.List(c.Request.Context(), defenseapp.DefenseListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Status:   req.Status,
		Date:     req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, defenses, total, req.Page, req.PageSize)
}

// Update reschedules a defense and reconciles its committee
func (h *DefenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid defense ID")
		return
	}

	var req UpdateDefenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	assignments, err := pairAssignments(req.GroupIDs, req.LecturerIDs)
	if err != nil {
		h.BadRequest(c, "Invalid group or lecturer ID format")
		return
	}

	appReq := defenseapp.UpdateDefenseRequest{
		Name:        req.Name,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Assignments: assignments,
	}
	if req.Status != nil {
		status := defense.Status(*req.Status)
		appReq.Status = &status
	}

	d, err := h.defenseService.Update(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, d)
}

// Delete removes a defense, unlinking its groups
func (h *DefenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid defense ID")
		return
	}

	if err := h.defenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CheckTimeConflict probes for defenses clashing with the proposed window
func (h *DefenseHandler) CheckTimeConflict(c *gin.Context) {
	var req CheckTimeConflictRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.defenseService.CheckTimeConflict(c.Request.Context(), defenseapp.ConflictCheckRequest{
		LecturerID: req.LecturerID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
