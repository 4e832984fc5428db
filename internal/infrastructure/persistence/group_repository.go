package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"github.com/thesisdesk/backend/internal/domain/thesis"
	"gorm.io/gorm"
)

// GormGroupRepository implements thesis.GroupRepository using GORM
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GormGroupRepository
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// FindByID finds a group by its ID
func (r *GormGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*thesis.Group, error) {
	var group thesis.Group
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// FindByCode finds a group by its code
func (r *GormGroupRepository) FindByCode(ctx context.Context, code string) (*thesis.Group, error) {
	var group thesis.Group
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// FindByIDs finds all groups matching the given IDs
func (r *GormGroupRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]thesis.Group, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var groups []thesis.Group
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// FindByDefense finds all groups linked to a defense session
func (r *GormGroupRepository) FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]thesis.Group, error) {
	var groups []thesis.Group
	if err := r.db.WithContext(ctx).
		Where("defense_id = ?", defenseID).
		Order("code ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// FindAll finds all groups matching the filter
func (r *GormGroupRepository) FindAll(ctx context.Context, filter shared.Filter) ([]thesis.Group, error) {
	var groups []thesis.Group
	query := r.applyFilter(r.db.WithContext(ctx).Model(&thesis.Group{}), filter)
	if err := query.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Count counts groups matching the filter
func (r *GormGroupRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&thesis.Group{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a group
func (r *GormGroupRepository) Save(ctx context.Context, group *thesis.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

// SaveBatch persists multiple groups in one call.
// Callers run this inside a transaction when linking groups to a defense.
func (r *GormGroupRepository) SaveBatch(ctx context.Context, groups []*thesis.Group) error {
	if len(groups) == 0 {
		return nil
	}
	for _, group := range groups {
		if err := r.db.WithContext(ctx).Save(group).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete deletes a group and its membership rows
func (r *GormGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&thesis.Group{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return r.db.WithContext(ctx).Delete(&thesis.GroupMember{}, "group_id = ?", id).Error
}

// FindMemberIDs returns the user IDs of the group's student members
func (r *GormGroupRepository) FindMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&thesis.GroupMember{}).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceMembers swaps the group's roster for the given user IDs
func (r *GormGroupRepository) ReplaceMembers(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&thesis.GroupMember{}, "group_id = ?", groupID).Error; err != nil {
			return err
		}
		for _, userID := range userIDs {
			member, err := thesis.NewGroupMember(groupID, userID)
			if err != nil {
				return err
			}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormGroupRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	}

	return query
}

func (r *GormGroupRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "defense_status":
			query = query.Where("defense_status = ?", value)
		case "topic_id":
			query = query.Where("topic_id = ?", value)
		case "defense_id":
			if value == nil {
				query = query.Where("defense_id IS NULL")
			} else {
				query = query.Where("defense_id = ?", value)
			}
		}
	}

	return query
}

var _ thesis.GroupRepository = (*GormGroupRepository)(nil)
