package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	defenseapp "github.com/thesisdesk/backend/internal/application/defense"
	"github.com/thesisdesk/backend/internal/interfaces/http/dto"
)

// LecturerDefenseHandler handles grading assignment endpoints
type LecturerDefenseHandler struct {
	BaseHandler
	scoreService *defenseapp.ScoreService
}

// NewLecturerDefenseHandler creates a new LecturerDefenseHandler
func NewLecturerDefenseHandler(scoreService *defenseapp.ScoreService) *LecturerDefenseHandler {
	return &LecturerDefenseHandler{
		scoreService: scoreService,
	}
}

// UpdateScoreRequest represents the caller's score for a group. Point may be
// omitted to record only a comment.
type UpdateScoreRequest struct {
	GroupID string   `json:"group_id" binding:"required,uuid"`
	Point   *float64 `json:"point"`
	Comment *string  `json:"comment" binding:"omitempty,max=2000"`
}

// ListLecturerDefensesRequest represents list query parameters for grading rows
type ListLecturerDefensesRequest struct {
	dto.ListRequest
	LecturerID string `form:"lecturer_id" binding:"omitempty,uuid"`
	DefenseID  string `form:"defense_id" binding:"omitempty,uuid"`
	GroupID    string `form:"group_id" binding:"omitempty,uuid"`
	Scored     *bool  `form:"scored"`
}

// UpdateScoreByGroup records the caller's score for the given group
func (h *LecturerDefenseHandler) UpdateScoreByGroup(c *gin.Context) {
	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		h.BadRequest(c, "Invalid group ID format")
		return
	}

	appReq := defenseapp.UpdateScoreRequest{
		GroupID: groupID,
		Comment: req.Comment,
	}
	if req.Point != nil {
		point := decimal.NewFromFloat(*req.Point)
		appReq.Point = &point
	}

	row, err := h.scoreService.UpdateScoreByGroup(c.Request.Context(), callerID, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, row)
}

// GetByID returns a single grading row
func (h *LecturerDefenseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lecturer defense ID")
		return
	}

	row, err := h.scoreService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, row)
}

// List returns grading rows matching the query
func (h *LecturerDefenseHandler) List(c *gin.Context) {
	req := ListLecturerDefensesRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := defenseapp.LecturerDefenseListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Scored:   req.Scored,
	}
	if req.LecturerID != "" {
		filter.LecturerID = uuid.MustParse(req.LecturerID)
	}
	if req.DefenseID != "" {
		filter.DefenseID = uuid.MustParse(req.DefenseID)
	}
	if req.GroupID != "" {
		filter.GroupID = uuid.MustParse(req.GroupID)
	}

	rows, total, err := h.scoreService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, rows, total, req.Page, req.PageSize)
}
