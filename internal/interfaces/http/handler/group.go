package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	thesisapp "github.com/thesisdesk/backend/internal/application/thesis"
	"github.com/thesisdesk/backend/internal/domain/thesis"
	"github.com/thesisdesk/backend/internal/interfaces/http/dto"
)

// GroupHandler handles student group endpoints
type GroupHandler struct {
	BaseHandler
	groupService *thesisapp.GroupService
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupService *thesisapp.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// CreateGroupRequest represents a request to register a group
type CreateGroupRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=200"`
	TopicID   *string  `json:"topic_id" binding:"omitempty,uuid"`
	MemberIDs []string `json:"member_ids" binding:"omitempty,dive,uuid"`
}

// UpdateGroupRequest represents a request to update a group.
// A null member_ids leaves the roster alone, an empty array clears it.
type UpdateGroupRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=200"`
	TopicID   *string  `json:"topic_id" binding:"omitempty,uuid"`
	Status    *string  `json:"status" binding:"omitempty,oneof=pending accepted denied"`
	MemberIDs []string `json:"member_ids" binding:"omitempty,dive,uuid"`
}

// SetLockRequest represents a request to set or clear a group's score lock.
// An empty lock_at clears the lock; otherwise RFC 3339 or dd/mm/yyyy/hh:mm.
type SetLockRequest struct {
	LockAt string `json:"lock_at"`
}

// ListGroupsRequest represents list query parameters for groups
type ListGroupsRequest struct {
	dto.ListRequest
	Status        string `form:"status" binding:"omitempty,oneof=pending accepted denied"`
	DefenseStatus string `form:"defense_status" binding:"omitempty,oneof=not_defended waiting_defense approved rejected"`
	TopicID       string `form:"topic_id" binding:"omitempty,uuid"`
}

// Create registers a new group
func (h *GroupHandler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := thesisapp.CreateGroupRequest{Name: req.Name}
	if req.TopicID != nil && *req.TopicID != "" {
		topicID, err := uuid.Parse(*req.TopicID)
		if err != nil {
			h.BadRequest(c, "Invalid topic ID format")
			return
		}
		appReq.TopicID = &topicID
	}
	memberIDs, err := parseUUIDs(req.MemberIDs)
	if err != nil {
		h.BadRequest(c, "Invalid member ID format")
		return
	}
	appReq.MemberIDs = memberIDs

	group, err := h.groupService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, group)
}

// GetByID returns a single group with its roster
func (h *GroupHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	group, err := h.groupService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, group)
}

// List returns groups matching the query
func (h *GroupHandler) List(c *gin.Context) {
	req := ListGroupsRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := thesisapp.GroupListFilter{
		Page:          req.Page,
		PageSize:      req.PageSize,
		OrderBy:       req.OrderBy,
		OrderDir:      req.OrderDir,
		Search:        req.Search,
		Status:        req.Status,
		DefenseStatus: req.DefenseStatus,
	}
	if req.TopicID != "" {
		filter.TopicID = uuid.MustParse(req.TopicID)
	}

	groups, total, err := h.groupService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, groups, total, req.Page, req.PageSize)
}

// Update modifies a group's name, topic, status or roster
func (h *GroupHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := thesisapp.UpdateGroupRequest{Name: req.Name}
	if req.TopicID != nil && *req.TopicID != "" {
		topicID, err := uuid.Parse(*req.TopicID)
		if err != nil {
			h.BadRequest(c, "Invalid topic ID format")
			return
		}
		appReq.TopicID = &topicID
	}
	if req.Status != nil {
		status := thesis.GroupStatus(*req.Status)
		appReq.Status = &status
	}
	if req.MemberIDs != nil {
		memberIDs, err := parseUUIDs(req.MemberIDs)
		if err != nil {
			h.BadRequest(c, "Invalid member ID format")
			return
		}
		if memberIDs == nil {
			memberIDs = []uuid.UUID{}
		}
		appReq.MemberIDs = memberIDs
	}

	group, err := h.groupService.Update(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, group)
}

// SetLock sets or clears the group's score-entry lock
func (h *GroupHandler) SetLock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	var req SetLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	group, err := h.groupService.SetLock(c.Request.Context(), id, thesisapp.SetLockRequest{
		LockAt: req.LockAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, group)
}

// Delete removes a group and its roster
func (h *GroupHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
