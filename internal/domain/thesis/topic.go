package thesis

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// TopicStatus represents the registration state of a thesis topic
type TopicStatus string

const (
	TopicStatusOpen     TopicStatus = "open"     // Accepting group registrations
	TopicStatusAssigned TopicStatus = "assigned" // Taken by a group
	TopicStatusClosed   TopicStatus = "closed"   // No longer offered
)

// Topic represents a thesis subject proposed and supervised by a lecturer
type Topic struct {
	shared.BaseAggregateRoot
	Code        string      `gorm:"type:varchar(50);not null;uniqueIndex"`
	Title       string      `gorm:"type:varchar(300);not null"`
	Description string      `gorm:"type:text"`
	LecturerID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	Status      TopicStatus `gorm:"type:varchar(20);not null;default:'open'"`
}

// TableName returns the table name for GORM
func (Topic) TableName() string {
	return "topics"
}

// NewTopic creates a new topic supervised by the given lecturer
func NewTopic(code, title string, lecturerID uuid.UUID) (*Topic, error) {
	if err := validateTopicCode(code); err != nil {
		return nil, err
	}
	if err := validateTopicTitle(title); err != nil {
		return nil, err
	}
	if lecturerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LECTURER", "Topic must have a supervising lecturer")
	}

	return &Topic{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Title:             title,
		LecturerID:        lecturerID,
		Status:            TopicStatusOpen,
	}, nil
}

// Update updates the topic's title and description
func (t *Topic) Update(title, description string) error {
	if err := validateTopicTitle(title); err != nil {
		return err
	}

	t.Title = title
	t.Description = description
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// MarkAssigned marks the topic as taken by a group
func (t *Topic) MarkAssigned() error {
	if t.Status == TopicStatusClosed {
		return shared.NewDomainError("INVALID_STATE", "Cannot assign a closed topic")
	}
	t.Status = TopicStatusAssigned
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// Close withdraws the topic from registration
func (t *Topic) Close() {
	t.Status = TopicStatusClosed
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// IsOpen returns true if the topic accepts registrations
func (t *Topic) IsOpen() bool {
	return t.Status == TopicStatusOpen
}

func validateTopicCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Topic code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Topic code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Topic code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateTopicTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Topic title cannot be empty")
	}
	if len(title) > 300 {
		return shared.NewDomainError("INVALID_TITLE", "Topic title cannot exceed 300 characters")
	}
	return nil
}
