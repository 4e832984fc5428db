package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDefenseRepository implements defense.DefenseRepository using GORM
type GormDefenseRepository struct {
	db *gorm.DB
}

// NewGormDefenseRepository creates a new GormDefenseRepository
func NewGormDefenseRepository(db *gorm.DB) *GormDefenseRepository {
	return &GormDefenseRepository{db: db}
}

// FindByID finds a defense session by its ID
func (r *GormDefenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*defense.Defense, error) {
	var d defense.Defense
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByCode finds a defense session by its code
func (r *GormDefenseRepository) FindByCode(ctx context.Context, code string) (*defense.Defense, error) {
	var d defense.Defense
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindAll finds all defense sessions matching the filter
func (r *GormDefenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]defense.Defense, error) {
	var defenses []defense.Defense
	query := r.applyFilter(r.db.WithContext(ctx).Model(&defense.Defense{}), filter)
	if err := query.Find(&defenses).Error; err != nil {
		return nil, err
	}
	return defenses, nil
}

// Count counts defense sessions matching the filter
func (r *GormDefenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&defense.Defense{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindOverlapping returns every defense on the given date whose window
// overlaps the proposed one. Two half-open windows overlap unless one
// starts at or after the other's end.
func (r *GormDefenseRepository) FindOverlapping(ctx context.Context, date time.Time, window defense.TimeWindow) ([]defense.Defense, error) {
	var defenses []defense.Defense
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Where("NOT (start_minute >= ? OR end_minute <= ?)", window.EndMinute, window.StartMinute).
		Find(&defenses).Error; err != nil {
		return nil, err
	}
	return defenses, nil
}

// Save creates or updates a defense session
func (r *GormDefenseRepository) Save(ctx context.Context, d *defense.Defense) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// Delete deletes a defense session
func (r *GormDefenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&defense.Defense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormDefenseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormDefenseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR code LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "date":
			query = query.Where("date = ?", value)
		}
	}

	return query
}

var _ defense.DefenseRepository = (*GormDefenseRepository)(nil)
