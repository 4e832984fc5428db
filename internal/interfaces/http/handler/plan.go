package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	defenseapp "github.com/thesisdesk/backend/internal/application/defense"
	"github.com/thesisdesk/backend/internal/interfaces/http/dto"
)

// PlanHandler handles confirmed schedule slot endpoints
type PlanHandler struct {
	BaseHandler
	planService *defenseapp.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService *defenseapp.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// CreatePlanRequest represents a request to confirm a schedule slot
type CreatePlanRequest struct {
	GroupID   string `json:"group_id" binding:"required,uuid"`
	DefenseID string `json:"defense_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ReschedulePlanRequest represents a request to move a confirmed slot
type ReschedulePlanRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ListPlansRequest represents list query parameters for plans
type ListPlansRequest struct {
	dto.ListRequest
	GroupID   string `form:"group_id" binding:"omitempty,uuid"`
	DefenseID string `form:"defense_id" binding:"omitempty,uuid"`
	Date      string `form:"date"`
}

// Create confirms a schedule slot for a group
func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		h.BadRequest(c, "Invalid group ID format")
		return
	}
	defenseID, err := uuid.Parse(req.DefenseID)
	if err != nil {
		h.BadRequest(c, "Invalid defense ID format")
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), defenseapp.CreatePlanRequest{
		GroupID:   groupID,
		DefenseID: defenseID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, plan)
}

// GetByID returns a single plan
func (h *PlanHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID")
		return
	}

	plan, err := h.planService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}

// List returns plans matching the query
func (h *PlanHandler) List(c *gin.Context) {
	req := ListPlansRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := defenseapp.PlanListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Date:     req.Date,
	}
	if req.GroupID != "" {
		filter.GroupID = uuid.MustParse(req.GroupID)
	}
	if req.DefenseID != "" {
		filter.DefenseID = uuid.MustParse(req.DefenseID)
	}

	plans, total, err := h.planService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, plans, total, req.Page, req.PageSize)
}

// Reschedule moves a confirmed slot
func (h *PlanHandler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID")
		return
	}

	var req ReschedulePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.planService.Reschedule(c.Request.Context(), id, defenseapp.ReschedulePlanRequest{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}

// Delete removes a plan
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid plan ID")
		return
	}

	if err := h.planService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CheckTime probes for the lecturer's plans clashing with the proposed window
func (h *PlanHandler) CheckTime(c *gin.Context) {
	var req CheckTimeConflictRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.planService.CheckTime(c.Request.Context(), defenseapp.ConflictCheckRequest{
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
