package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	thesisapp "github.com/thesisdesk/backend/internal/application/thesis"
	"github.com/thesisdesk/backend/internal/domain/thesis"
	"github.com/thesisdesk/backend/internal/interfaces/http/dto"
)

// TopicHandler handles thesis topic endpoints
type TopicHandler struct {
	BaseHandler
	topicService *thesisapp.TopicService
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topicService *thesisapp.TopicService) *TopicHandler {
	return &TopicHandler{
		topicService: topicService,
	}
}

// CreateTopicRequest represents a request to propose a topic
type CreateTopicRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=50"`
	Title       string `json:"title" binding:"required,min=1,max=500"`
	Description string `json:"description" binding:"max=5000"`
	LecturerID  string `json:"lecturer_id" binding:"required,uuid"`
}

// UpdateTopicRequest represents a request to update a topic
type UpdateTopicRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Status      *string `json:"status" binding:"omitempty,oneof=open assigned closed"`
}

// ListTopicsRequest represents list query parameters for topics
type ListTopicsRequest struct {
	dto.ListRequest
	Status     string `form:"status" binding:"omitempty,oneof=open assigned closed"`
	LecturerID string `form:"lecturer_id" binding:"omitempty,uuid"`
}

// Create proposes a new topic
func (h *TopicHandler) Create(c *gin.Context) {
	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	lecturerID, err := uuid.Parse(req.LecturerID)
	if err != nil {
		h.BadRequest(c, "Invalid lecturer ID format")
		return
	}

	topic, err := h.topicService.Create(c.Request.Context(), thesisapp.CreateTopicRequest{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		LecturerID:  lecturerID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, topic)
}

// GetByID returns a single topic
func (h *TopicHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid topic ID")
		return
	}

	topic, err := h.topicService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, topic)
}

// List returns topics matching the query
func (h *TopicHandler) List(c *gin.Context) {
	req := ListTopicsRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := thesisapp.TopicListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Status:   req.Status,
	}
	if req.LecturerID != "" {
		filter.Lecturer = uuid.MustParse(req.LecturerID)
	}

	topics, total, err := h.topicService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, topics, total, req.Page, req.PageSize)
}

// Update modifies a topic
func (h *TopicHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid topic ID")
		return
	}

	var req UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := thesisapp.UpdateTopicRequest{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := thesis.TopicStatus(*req.Status)
		appReq.Status = &status
	}

	topic, err := h.topicService.Update(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, topic)
}

// Delete removes a topic
func (h *TopicHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid topic ID")
		return
	}

	if err := h.topicService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
