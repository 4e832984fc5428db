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

// GormTopicRepository implements thesis.TopicRepository using GORM
type GormTopicRepository struct {
	db *gorm.DB
}

// NewGormTopicRepository creates a new GormTopicRepository
func NewGormTopicRepository(db *gorm.DB) *GormTopicRepository {
	return &GormTopicRepository{db: db}
}

// FindByID finds a topic by its ID
func (r *GormTopicRepository) FindByID(ctx context.Context, id uuid.UUID) (*thesis.Topic, error) {
	var topic thesis.Topic
	if err := r.db.WithContext(ctx).First(&topic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// FindByCode finds a topic by its code
func (r *GormTopicRepository) FindByCode(ctx context.Context, code string) (*thesis.Topic, error) {
	var topic thesis.Topic
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// FindAll finds all topics matching the filter
func (r *GormTopicRepository) FindAll(ctx context.Context, filter shared.Filter) ([]thesis.Topic, error) {
	var topics []thesis.Topic
	query := r.applyFilter(r.db.WithContext(ctx).Model(&thesis.Topic{}), filter)
	if err := query.Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// Count counts topics matching the filter
func (r *GormTopicRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&thesis.Topic{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a topic with the given code exists
func (r *GormTopicRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&thesis.Topic{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a topic
func (r *GormTopicRepository) Save(ctx context.Context, topic *thesis.Topic) error {
	return r.db.WithContext(ctx).Save(topic).Error
}

// Delete deletes a topic
func (r *GormTopicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&thesis.Topic{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormTopicRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormTopicRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR code LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "lecturer_id":
			query = query.Where("lecturer_id = ?", value)
		}
	}

	return query
}

var _ thesis.TopicRepository = (*GormTopicRepository)(nil)
