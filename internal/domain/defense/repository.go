package defense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/thesisdesk/backend/internal/domain/shared"
)

// DefenseRepository defines the persistence contract for defense sessions
type DefenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Defense, error)
	FindByCode(ctx context.Context, code string) (*Defense, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Defense, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// FindOverlapping returns all defenses on the given date whose window
	// overlaps the proposed one. Note: deliberately not filtered by
	// lecturer; every committee on the date is considered.
	FindOverlapping(ctx context.Context, date time.Time, window TimeWindow) ([]Defense, error)
	Save(ctx context.Context, d *Defense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LecturerDefenseRepository defines the persistence contract for
// lecturer grading assignments
type LecturerDefenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LecturerDefense, error)
	FindByLecturerAndDefense(ctx context.Context, lecturerID, defenseID uuid.UUID) (*LecturerDefense, error)
	FindByLecturerAndGroup(ctx context.Context, lecturerID, groupID uuid.UUID) (*LecturerDefense, error)
	FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]LecturerDefense, error)
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]LecturerDefense, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]LecturerDefense, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, ld *LecturerDefense) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDefenseAndLecturers(ctx context.Context, defenseID uuid.UUID, lecturerIDs []uuid.UUID) error
}

// PlanRepository defines the persistence contract for schedule entries
type PlanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]Plan, error)
	FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]Plan, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Plan, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// FindOverlappingForLecturer returns the plans on the given date whose
	// window overlaps the proposed one, restricted to plans whose group the
	// lecturer grades.
	FindOverlappingForLecturer(ctx context.Context, lecturerID uuid.UUID, date time.Time, window TimeWindow) ([]Plan, error)
	Save(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
}
