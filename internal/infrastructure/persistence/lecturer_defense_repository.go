package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLecturerDefenseRepository implements defense.LecturerDefenseRepository using GORM
type GormLecturerDefenseRepository struct {
	db *gorm.DB
}

// NewGormLecturerDefenseRepository creates a new GormLecturerDefenseRepository
func NewGormLecturerDefenseRepository(db *gorm.DB) *GormLecturerDefenseRepository {
	return &GormLecturerDefenseRepository{db: db}
}

// FindByID finds a grading assignment by its ID
func (r *GormLecturerDefenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*defense.LecturerDefense, error) {
	var ld defense.LecturerDefense
	if err := r.db.WithContext(ctx).First(&ld, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ld, nil
}

// FindByLecturerAndDefense finds the assignment of a lecturer within a defense session
func (r *GormLecturerDefenseRepository) FindByLecturerAndDefense(ctx context.Context, lecturerID, defenseID uuid.UUID) (*defense.LecturerDefense, error) {
	var ld defense.LecturerDefense
	if err := r.db.WithContext(ctx).
		Where("lecturer_id = ? AND defense_id = ?", lecturerID, defenseID).
		First(&ld).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ld, nil
}

// FindByLecturerAndGroup finds the assignment of a lecturer grading a specific group
func (r *GormLecturerDefenseRepository) FindByLecturerAndGroup(ctx context.Context, lecturerID, groupID uuid.UUID) (*defense.LecturerDefense, error) {
	var ld defense.LecturerDefense
	if err := r.db.WithContext(ctx).
		Where("lecturer_id = ? AND group_id = ?", lecturerID, groupID).
		First(&ld).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ld, nil
}

// FindByDefense finds all grading assignments of a defense session
func (r *GormLecturerDefenseRepository) FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]defense.LecturerDefense, error) {
	var lds []defense.LecturerDefense
	if err := r.db.WithContext(ctx).
		Where("defense_id = ?", defenseID).
		Find(&lds).Error; err != nil {
		return nil, err
	}
	return lds, nil
}

// FindByGroup finds all grading assignments targeting a group
func (r *GormLecturerDefenseRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]defense.LecturerDefense, error) {
	var lds []defense.LecturerDefense
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Find(&lds).Error; err != nil {
		return nil, err
	}
	return lds, nil
}

// FindAll finds all grading assignments matching the filter
func (r *GormLecturerDefenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]defense.LecturerDefense, error) {
	var lds []defense.LecturerDefense
	query := r.applyFilter(r.db.WithContext(ctx).Model(&defense.LecturerDefense{}), filter)
	if err := query.Find(&lds).Error; err != nil {
		return nil, err
	}
	return lds, nil
}

// Count counts grading assignments matching the filter
func (r *GormLecturerDefenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&defense.LecturerDefense{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a grading assignment
func (r *GormLecturerDefenseRepository) Save(ctx context.Context, ld *defense.LecturerDefense) error {
	return r.db.WithContext(ctx).Save(ld).Error
}

// Delete deletes a grading assignment
func (r *GormLecturerDefenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&defense.LecturerDefense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByDefenseAndLecturers removes the assignments of the given lecturers
// from a defense session. Used when the committee shrinks during an update.
func (r *GormLecturerDefenseRepository) DeleteByDefenseAndLecturers(ctx context.Context, defenseID uuid.UUID, lecturerIDs []uuid.UUID) error {
	if len(lecturerIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("defense_id = ? AND lecturer_id IN ?", defenseID, lecturerIDs).
		Delete(&defense.LecturerDefense{}).Error
}

func (r *GormLecturerDefenseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormLecturerDefenseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "lecturer_id":
			query = query.Where("lecturer_id = ?", value)
		case "defense_id":
			query = query.Where("defense_id = ?", value)
		case "group_id":
			query = query.Where("group_id = ?", value)
		case "scored":
			if scored, ok := value.(bool); ok && scored {
				query = query.Where("point IS NOT NULL")
			} else {
				query = query.Where("point IS NULL")
			}
		}
	}

	return query
}

var _ defense.LecturerDefenseRepository = (*GormLecturerDefenseRepository)(nil)
