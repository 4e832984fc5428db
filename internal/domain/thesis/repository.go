package thesis

import (
	"context"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// TopicRepository defines the persistence contract for topics
type TopicRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Topic, error)
	FindByCode(ctx context.Context, code string) (*Topic, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Topic, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Save(ctx context.Context, topic *Topic) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GroupRepository defines the persistence contract for groups
type GroupRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Group, error)
	FindByCode(ctx context.Context, code string) (*Group, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Group, error)
	FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]Group, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Group, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, group *Group) error
	SaveBatch(ctx context.Context, groups []*Group) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindMemberIDs returns the user IDs of the group's student members
	FindMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
	// ReplaceMembers swaps the group's roster for the given user IDs
	ReplaceMembers(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) error
}
