package thesis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thesisdesk/backend/internal/domain/identity"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"github.com/thesisdesk/backend/internal/domain/thesis"
)

// GroupService handles student group management, including the admin-only
// score-lock operations.
type GroupService struct {
	groupRepo thesis.GroupRepository
	topicRepo thesis.TopicRepository
	userRepo  identity.UserRepository
	logger    *zap.Logger
}

// NewGroupService creates a new GroupService
func NewGroupService(
	groupRepo thesis.GroupRepository,
	topicRepo thesis.TopicRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		topicRepo: topicRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Create registers a new group, optionally with a topic and member roster
func (s *GroupService) Create(ctx context.Context, req CreateGroupRequest) (*GroupResponse, error) {
	group, err := thesis.NewGroup(req.Name)
	if err != nil {
		return nil, err
	}

	if req.TopicID != nil {
		topic, err := s.topicRepo.FindByID(ctx, *req.TopicID)
		if err != nil {
			return nil, err
		}
		if !topic.IsOpen() {
			return nil, shared.NewDomainError("INVALID_STATE", "Topic is not open for registration")
		}
		if err := group.RegisterTopic(topic.ID); err != nil {
			return nil, err
		}
		if err := topic.MarkAssigned(); err != nil {
			return nil, err
		}
		if err := s.topicRepo.Save(ctx, topic); err != nil {
			return nil, err
		}
	}

	if err := s.validateMembers(ctx, req.MemberIDs); err != nil {
		return nil, err
	}

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}
	if len(req.MemberIDs) > 0 {
		if err := s.groupRepo.ReplaceMembers(ctx, group.ID, req.MemberIDs); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Group created",
		zap.String("group_id", group.ID.String()),
		zap.String("code", group.Code),
		zap.Int("members", len(req.MemberIDs)))

	resp := ToGroupResponse(group, req.MemberIDs)
	return &resp, nil
}

// GetByID retrieves a group with its member roster
func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (*GroupResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	memberIDs, err := s.groupRepo.FindMemberIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToGroupResponse(group, memberIDs)
	return &resp, nil
}

// List retrieves groups matching the filter with pagination
func (s *GroupService) List(ctx context.Context, filter GroupListFilter) ([]GroupResponse, int64, error) {
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
	if filter.DefenseStatus != "" {
		domainFilter.Filters["defense_status"] = filter.DefenseStatus
	}
	if filter.TopicID != uuid.Nil {
		domainFilter.Filters["topic_id"] = filter.TopicID
	}

	groups, err := s.groupRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.groupRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		memberIDs, err := s.groupRepo.FindMemberIDs(ctx, groups[i].ID)
		if err != nil {
			return nil, 0, err
		}
		responses[i] = ToGroupResponse(&groups[i], memberIDs)
	}
	return responses, total, nil
}

// Update updates a group's name, topic, status, or roster
func (s *GroupService) Update(ctx context.Context, id uuid.UUID, req UpdateGroupRequest) (*GroupResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := group.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.TopicID != nil && (group.TopicID == nil || *group.TopicID != *req.TopicID) {
		topic, err := s.topicRepo.FindByID(ctx, *req.TopicID)
		if err != nil {
			return nil, err
		}
		if !topic.IsOpen() {
			return nil, shared.NewDomainError("INVALID_STATE", "Topic is not open for registration")
		}
		if err := group.RegisterTopic(topic.ID); err != nil {
			return nil, err
		}
		if err := topic.MarkAssigned(); err != nil {
			return nil, err
		}
		if err := s.topicRepo.Save(ctx, topic); err != nil {
			return nil, err
		}
	}

	if req.Status != nil && *req.Status != group.Status {
		switch *req.Status {
		case thesis.GroupStatusAccepted:
			group.Accept()
		case thesis.GroupStatusDenied:
			group.Deny()
		default:
			return nil, shared.NewDomainError("INVALID_INPUT", "Group status can only be changed to accepted or denied")
		}
	}

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}

	memberIDs := req.MemberIDs
	if memberIDs != nil {
		if err := s.validateMembers(ctx, memberIDs); err != nil {
			return nil, err
		}
		if err := s.groupRepo.ReplaceMembers(ctx, group.ID, memberIDs); err != nil {
			return nil, err
		}
	} else {
		memberIDs, err = s.groupRepo.FindMemberIDs(ctx, group.ID)
		if err != nil {
			return nil, err
		}
	}

	resp := ToGroupResponse(group, memberIDs)
	return &resp, nil
}

// SetLock sets or clears the group's score lock. An empty lock value
// clears the lock, re-opening score entry.
func (s *GroupService) SetLock(ctx context.Context, id uuid.UUID, req SetLockRequest) (*GroupResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LockAt == "" {
		group.ClearLock()
	} else {
		lockAt := thesis.ParseLockAt(req.LockAt, time.Local)
		if lockAt == nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Lock time must be RFC 3339 or dd/mm/yyyy/hh:mm")
		}
		group.Lock(*lockAt)
	}

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}

	if group.LockAt != nil {
		s.logger.Info("Group score lock set",
			zap.String("group_id", group.ID.String()),
			zap.Time("lock_at", *group.LockAt))
	} else {
		s.logger.Info("Group score lock cleared", zap.String("group_id", group.ID.String()))
	}

	memberIDs, err := s.groupRepo.FindMemberIDs(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	resp := ToGroupResponse(group, memberIDs)
	return &resp, nil
}

// Delete removes a group and its membership rows
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Group deleted", zap.String("group_id", id.String()))
	return nil
}

// validateMembers checks that every proposed member exists and is a student
func (s *GroupService) validateMembers(ctx context.Context, memberIDs []uuid.UUID) error {
	if len(memberIDs) == 0 {
		return nil
	}
	users, err := s.userRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		return err
	}
	if len(users) != len(memberIDs) {
		return shared.NewDomainError("INVALID_INPUT", "One or more group members do not exist")
	}
	for i := range users {
		if users[i].Role != identity.RoleStudent {
			return shared.NewDomainError("INVALID_INPUT", "Group members must be students")
		}
	}
	return nil
}
