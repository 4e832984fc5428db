package thesis

import (
	"time"

	"github.com/google/uuid"

	"github.com/thesisdesk/backend/internal/domain/thesis"
)

// CreateTopicRequest carries fields for proposing a topic
type CreateTopicRequest struct {
	Code        string
	Title       string
	Description string
	LecturerID  uuid.UUID
}

// UpdateTopicRequest carries fields for updating a topic.
// Nil pointers leave the current value untouched.
type UpdateTopicRequest struct {
	Title       *string
	Description *string
	Status      *thesis.TopicStatus
}

// TopicListFilter carries list query options for topics
type TopicListFilter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Status   string
	Lecturer uuid.UUID
}

// TopicResponse is the API representation of a topic
type TopicResponse struct {
	ID          uuid.UUID          `json:"id"`
	Code        string             `json:"code"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	LecturerID  uuid.UUID          `json:"lecturer_id"`
	Status      thesis.TopicStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ToTopicResponse converts a domain topic to its API representation
func ToTopicResponse(topic *thesis.Topic) TopicResponse {
	return TopicResponse{
		ID:          topic.ID,
		Code:        topic.Code,
		Title:       topic.Title,
		Description: topic.Description,
		LecturerID:  topic.LecturerID,
		Status:      topic.Status,
		CreatedAt:   topic.CreatedAt,
		UpdatedAt:   topic.UpdatedAt,
	}
}

// CreateGroupRequest carries fields for registering a group
type CreateGroupRequest struct {
	Name      string
	TopicID   *uuid.UUID
	MemberIDs []uuid.UUID
}

// UpdateGroupRequest carries fields for updating a group.
// Nil pointers leave the current value untouched; MemberIDs nil leaves the
// roster alone, an empty slice clears it.
type UpdateGroupRequest struct {
	Name      *string
	TopicID   *uuid.UUID
	Status    *thesis.GroupStatus
	MemberIDs []uuid.UUID
}

// SetLockRequest carries the score-lock change for a group. An empty
// LockAt clears the lock.
type SetLockRequest struct {
	LockAt string
}

// GroupListFilter carries list query options for groups
type GroupListFilter struct {
	Page          int
	PageSize      int
	OrderBy       string
	OrderDir      string
	Search        string
	Status        string
	DefenseStatus string
	TopicID       uuid.UUID
}

// GroupResponse is the API representation of a group
type GroupResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Code          string               `json:"code"`
	TopicID       *uuid.UUID           `json:"topic_id"`
	Status        thesis.GroupStatus   `json:"status"`
	DefenseStatus thesis.DefenseStatus `json:"defense_status"`
	DefenseID     *uuid.UUID           `json:"defense_id"`
	LockAt        *time.Time           `json:"lock_at"`
	MemberIDs     []uuid.UUID          `json:"member_ids"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ToGroupResponse converts a domain group to its API representation
func ToGroupResponse(group *thesis.Group, memberIDs []uuid.UUID) GroupResponse {
	if memberIDs == nil {
		memberIDs = []uuid.UUID{}
	}
	return GroupResponse{
		ID:            group.ID,
		Name:          group.Name,
		Code:          group.Code,
		TopicID:       group.TopicID,
		Status:        group.Status,
		DefenseStatus: group.DefenseStatus,
		DefenseID:     group.DefenseID,
		LockAt:        group.LockAt,
		MemberIDs:     memberIDs,
		CreatedAt:     group.CreatedAt,
		UpdatedAt:     group.UpdatedAt,
	}
}
