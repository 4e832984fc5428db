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

// GormPlanRepository implements defense.PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GormPlanRepository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// FindByID finds a schedule entry by its ID
func (r *GormPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*defense.Plan, error) {
	var p defense.Plan
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByGroup finds all schedule entries for a group
func (r *GormPlanRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]defense.Plan, error) {
	var plans []defense.Plan
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("date ASC, start_minute ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindByDefense finds all schedule entries for a defense session
func (r *GormPlanRepository) FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]defense.Plan, error) {
	var plans []defense.Plan
	if err := r.db.WithContext(ctx).
		Where("defense_id = ?", defenseID).
		Order("date ASC, start_minute ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindAll finds all schedule entries matching the filter
func (r *GormPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]defense.Plan, error) {
	var plans []defense.Plan
	query := r.applyFilter(r.db.WithContext(ctx).Model(&defense.Plan{}), filter)
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Count counts schedule entries matching the filter
func (r *GormPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&defense.Plan{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindOverlappingForLecturer returns the plans on the given date whose window
// overlaps the proposed one, restricted to groups the lecturer grades.
func (r *GormPlanRepository) FindOverlappingForLecturer(ctx context.Context, lecturerID uuid.UUID, date time.Time, window defense.TimeWindow) ([]defense.Plan, error) {
	var plans []defense.Plan
	if err := r.db.WithContext(ctx).
		Select("plans.*").
		Joins("JOIN lecturer_defenses ON lecturer_defenses.group_id = plans.group_id").
		Where("lecturer_defenses.lecturer_id = ?", lecturerID).
		Where("plans.date = ?", date).
		Where("NOT (plans.start_minute >= ? OR plans.end_minute <= ?)", window.EndMinute, window.StartMinute).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Save creates or updates a schedule entry
func (r *GormPlanRepository) Save(ctx context.Context, p *defense.Plan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete deletes a schedule entry
func (r *GormPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&defense.Plan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormPlanRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormPlanRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "group_id":
			query = query.Where("group_id = ?", value)
		case "defense_id":
			query = query.Where("defense_id = ?", value)
		case "date":
			query = query.Where("date = ?", value)
		}
	}

	return query
}

var _ defense.PlanRepository = (*GormPlanRepository)(nil)
