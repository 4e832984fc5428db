package handler

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

// MockTopicRepository is a mock implementation of thesis.TopicRepository
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) FindByID(ctx context.Context, id uuid.UUID) (*thesis.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*thesis.Topic), args.Error(1)
}

func (m *MockTopicRepository) FindByCode(ctx context.Context, code string) (*thesis.Topic, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*thesis.Topic), args.Error(1)
}

func (m *MockTopicRepository) FindAll(ctx context.Context, filter shared.Filter) ([]thesis.Topic, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]thesis.Topic), args.Error(1)
}

func (m *MockTopicRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTopicRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockTopicRepository) Save(ctx context.Context, topic *thesis.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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
