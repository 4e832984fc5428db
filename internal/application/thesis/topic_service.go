package thesis

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thesisdesk/backend/internal/domain/shared"
	"github.com/thesisdesk/backend/internal/domain/thesis"
)

// TopicService handles thesis topic management
type TopicService struct {
	topicRepo thesis.TopicRepository
	logger    *zap.Logger
}

// NewTopicService creates a new TopicService
func NewTopicService(topicRepo thesis.TopicRepository, logger *zap.Logger) *TopicService {
	return &TopicService{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

// Create proposes a new topic
func (s *TopicService) Create(ctx context.Context, req CreateTopicRequest) (*TopicResponse, error) {
	exists, err := s.topicRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Topic with this code already exists")
	}

	topic, err := thesis.NewTopic(req.Code, req.Title, req.LecturerID)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := topic.Update(req.Title, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.topicRepo.Save(ctx, topic); err != nil {
		return nil, err
	}

	s.logger.Info("Topic created",
		zap.String("topic_id", topic.ID.String()),
		zap.String("code", topic.Code))

	resp := ToTopicResponse(topic)
	return &resp, nil
}

// GetByID retrieves a topic by ID
func (s *TopicService) GetByID(ctx context.Context, id uuid.UUID) (*TopicResponse, error) {
	topic, err := s.topicRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTopicResponse(topic)
	return &resp, nil
}

// List retrieves topics matching the filter with pagination
func (s *TopicService) List(ctx context.Context, filter TopicListFilter) ([]TopicResponse, int64, error) {
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
	if filter.Lecturer != uuid.Nil {
		domainFilter.Filters["lecturer_id"] = filter.Lecturer
	}

	topics, err := s.topicRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.topicRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TopicResponse, len(topics))
	for i := range topics {
		responses[i] = ToTopicResponse(&topics[i])
	}
	return responses, total, nil
}

// Update updates a topic's title, description, or status
func (s *TopicService) Update(ctx context.Context, id uuid.UUID, req UpdateTopicRequest) (*TopicResponse, error) {
	topic, err := s.topicRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.Description != nil {
		title := topic.Title
		description := topic.Description
		if req.Title != nil {
			title = *req.Title
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := topic.Update(title, description); err != nil {
			return nil, err
		}
	}

	if req.Status != nil && *req.Status != topic.Status {
		switch *req.Status {
		case thesis.TopicStatusAssigned:
			if err := topic.MarkAssigned(); err != nil {
				return nil, err
			}
		case thesis.TopicStatusClosed:
			topic.Close()
		default:
			return nil, shared.NewDomainError("INVALID_INPUT", "Unknown topic status")
		}
	}

	if err := s.topicRepo.Save(ctx, topic); err != nil {
		return nil, err
	}

	resp := ToTopicResponse(topic)
	return &resp, nil
}

// Delete removes a topic
func (s *TopicService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.topicRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Topic deleted", zap.String("topic_id", id.String()))
	return nil
}
