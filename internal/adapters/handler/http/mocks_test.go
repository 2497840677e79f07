package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/brirusapps/waterpic-core/internal/adapters/handler/http/middleware"
	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockIntakeRepository struct {
	mock.Mock
}

func (m *MockIntakeRepository) Upsert(ctx context.Context, day *domain.IntakeDay) error {
	return m.Called(ctx, day).Error(0)
}

func (m *MockIntakeRepository) GetDay(ctx context.Context, userID string, day domain.DateKey) (*domain.IntakeDay, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntakeDay), args.Error(1)
}

func (m *MockIntakeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.IntakeDay, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IntakeDay), args.Error(1)
}

func (m *MockIntakeRepository) ListRange(ctx context.Context, userID string, from, to domain.DateKey) ([]*domain.IntakeDay, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IntakeDay), args.Error(1)
}

func (m *MockIntakeRepository) GetChanges(ctx context.Context, userID string, since time.Time) ([]*domain.IntakeDay, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.IntakeDay), args.Error(1)
}

func (m *MockIntakeRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

func (m *MockSettingsRepository) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Save(ctx context.Context, userID string, snap *domain.Snapshot) error {
	return m.Called(ctx, userID, snap).Error(0)
}

func (m *MockSnapshotStore) Load(ctx context.Context, userID string) (*domain.Snapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotStore) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// nopSaver and nopRefresher satisfy the worker interfaces without side
// effects; handler tests only assert on HTTP behavior.
type nopSaver struct{}

func (nopSaver) Schedule(userID string) {}
func (nopSaver) SaveNow(userID string)  {}

type nopRefresher struct{}

func (nopRefresher) Enqueue(userID string) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time        { return c.now }
func (c fixedClock) Today() domain.DateKey { return domain.NewDateKey(c.now) }

// asUser stands in for the auth middleware on protected routes.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}
