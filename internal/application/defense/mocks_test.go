package defense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/identity"
	"github.com/thesisdesk/backend/internal/domain/shared"
	"github.com/thesisdesk/backend/internal/domain/thesis"
)

// stubTxManager hands the cascade the given repositories without a real
// storage transaction underneath.
type stubTxManager struct {
	repos CascadeRepos
}

func (s *stubTxManager) InTransaction(_ context.Context, fn func(repos CascadeRepos) error) error {
	return fn(s.repos)
}

var _ TransactionManager = (*stubTxManager)(nil)

// MockDefenseRepository is a mock implementation of defense.DefenseRepository
type MockDefenseRepository struct {
	mock.Mock
}

func (m *MockDefenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*defense.Defense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*defense.Defense), args.Error(1)
}

func (m *MockDefenseRepository) FindByCode(ctx context.Context, code string) (*defense.Defense, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*defense.Defense), args.Error(1)
}

func (m *MockDefenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]defense.Defense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.Defense), args.Error(1)
}

func (m *MockDefenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDefenseRepository) FindOverlapping(ctx context.Context, date time.Time, window defense.TimeWindow) ([]defense.Defense, error) {
	args := m.Called(ctx, date, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.Defense), args.Error(1)
}

func (m *MockDefenseRepository) Save(ctx context.Context, d *defense.Defense) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDefenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ defense.DefenseRepository = (*MockDefenseRepository)(nil)

// MockLecturerDefenseRepository is a mock implementation of
// defense.LecturerDefenseRepository
type MockLecturerDefenseRepository struct {
	mock.Mock
}

func (m *MockLecturerDefenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*defense.LecturerDefense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*defense.LecturerDefense), args.Error(1)
}

func (m *MockLecturerDefenseRepository) FindByLecturerAndDefense(ctx context.Context, lecturerID, defenseID uuid.UUID) (*defense.LecturerDefense, error) {
	args := m.Called(ctx, lecturerID, defenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*defense.LecturerDefense), args.Error(1)
}

func (m *MockLecturerDefenseRepository) FindByLecturerAndGroup(ctx context.Context, lecturerID, groupID uuid.UUID) (*defense.LecturerDefense, error) {
	args := m.Called(ctx, lecturerID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*defense.LecturerDefense), args.Error(1)
}

func (m *MockLecturerDefenseRepository) FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]defense.LecturerDefense, error) {
	args := m.Called(ctx, defenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.LecturerDefense), args.Error(1)
}

func (m *MockLecturerDefenseRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]defense.LecturerDefense, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.LecturerDefense), args.Error(1)
}

func (m *MockLecturerDefenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]defense.LecturerDefense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.LecturerDefense), args.Error(1)
}

func (m *MockLecturerDefenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLecturerDefenseRepository) Save(ctx context.Context, ld *defense.LecturerDefense) error {
	args := m.Called(ctx, ld)
	return args.Error(0)
}

func (m *MockLecturerDefenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLecturerDefenseRepository) DeleteByDefenseAndLecturers(ctx context.Context, defenseID uuid.UUID, lecturerIDs []uuid.UUID) error {
	args := m.Called(ctx, defenseID, lecturerIDs)
	return args.Error(0)
}

var _ defense.LecturerDefenseRepository = (*MockLecturerDefenseRepository)(nil)

// MockPlanRepository is a mock implementation of defense.PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*defense.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*defense.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]defense.Plan, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]defense.Plan, error) {
	args := m.Called(ctx, defenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]defense.Plan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.Plan), args.Error(1)
}

func (m *MockPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlanRepository) FindOverlappingForLecturer(ctx context.Context, lecturerID uuid.UUID, date time.Time, window defense.TimeWindow) ([]defense.Plan, error) {
	args := m.Called(ctx, lecturerID, date, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]defense.Plan), args.Error(1)
}

func (m *MockPlanRepository) Save(ctx context.Context, p *defense.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ defense.PlanRepository = (*MockPlanRepository)(nil)

// MockGroupRepository is a mock implementation of thesis.GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*thesis.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*thesis.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByCode(ctx context.Context, code string) (*thesis.Group, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*thesis.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]thesis.Group, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]thesis.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByDefense(ctx context.Context, defenseID uuid.UUID) ([]thesis.Group, error) {
	args := m.Called(ctx, defenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]thesis.Group), args.Error(1)
}

func (m *MockGroupRepository) FindAll(ctx context.Context, filter shared.Filter) ([]thesis.Group, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]thesis.Group), args.Error(1)
}

func (m *MockGroupRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGroupRepository) Save(ctx context.Context, group *thesis.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) SaveBatch(ctx context.Context, groups []*thesis.Group) error {
	args := m.Called(ctx, groups)
	return args.Error(0)
}

func (m *MockGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGroupRepository) FindMemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockGroupRepository) ReplaceMembers(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) error {
	args := m.Called(ctx, groupID, userIDs)
	return args.Error(0)
}

var _ thesis.GroupRepository = (*MockGroupRepository)(nil)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)
