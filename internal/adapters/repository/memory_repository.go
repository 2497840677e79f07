package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

// In-memory implementations backing unit tests and local development.
// They mirror the Postgres repositories' semantics, including the
// sentinel errors.

type InMemoryIntakeRepository struct {
	store map[string]map[domain.DateKey]*domain.IntakeDay

	mu sync.RWMutex
}

func NewInMemoryIntakeRepository() *InMemoryIntakeRepository {
	return &InMemoryIntakeRepository{
		store: make(map[string]map[domain.DateKey]*domain.IntakeDay),
	}
}

func (r *InMemoryIntakeRepository) Upsert(ctx context.Context, day *domain.IntakeDay) error {
	if err := day.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[day.UserID]; !ok {
		r.store[day.UserID] = make(map[domain.DateKey]*domain.IntakeDay)
	}

	copied := *day
	copied.UpdatedAt = time.Now().UTC()
	r.store[day.UserID][day.Day] = &copied
	return nil
}

func (r *InMemoryIntakeRepository) GetDay(ctx context.Context, userID string, day domain.DateKey) (*domain.IntakeDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.store[userID][day]
	if !ok {
		return nil, domain.ErrIntakeNotFound
	}

	copied := *row
	return &copied, nil
}

func (r *InMemoryIntakeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.IntakeDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]*domain.IntakeDay, 0, len(r.store[userID]))
	for _, row := range r.store[userID] {
		copied := *row
		rows = append(rows, &copied)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Day < rows[j].Day })
	return rows, nil
}

func (r *InMemoryIntakeRepository) ListRange(ctx context.Context, userID string, from, to domain.DateKey) ([]*domain.IntakeDay, error) {
	rows, _ := r.ListByUser(ctx, userID)

	filtered := rows[:0]
	for _, row := range rows {
		if row.Day >= from && row.Day <= to {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func (r *InMemoryIntakeRepository) GetChanges(ctx context.Context, userID string, since time.Time) ([]*domain.IntakeDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rows []*domain.IntakeDay
	for _, row := range r.store[userID] {
		if row.UpdatedAt.After(since) {
			copied := *row
			rows = append(rows, &copied)
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].UpdatedAt.Before(rows[j].UpdatedAt) })
	return rows, nil
}

func (r *InMemoryIntakeRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, userID)
	return nil
}

type InMemorySettingsRepository struct {
	store map[string]*domain.Settings

	mu sync.RWMutex
}

func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{
		store: make(map[string]*domain.Settings),
	}
}

func (r *InMemorySettingsRepository) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrSettingsNotFound
	}

	copied := *settings
	return &copied, nil
}

func (r *InMemorySettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *settings
	r.store[settings.UserID] = &copied
	return nil
}

func (r *InMemorySettingsRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[userID]; !ok {
		return domain.ErrSettingsNotFound
	}

	delete(r.store, userID)
	return nil
}

type InMemoryUserRepository struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}

	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// InMemorySnapshotStore stands in for the Redis snapshot store.
type InMemorySnapshotStore struct {
	store map[string]*domain.Snapshot

	mu sync.RWMutex
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		store: make(map[string]*domain.Snapshot),
	}
}

func (r *InMemorySnapshotStore) Save(ctx context.Context, userID string, snap *domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[userID] = snap
	return nil
}

func (r *InMemorySnapshotStore) Load(ctx context.Context, userID string) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.store[userID]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	return snap, nil
}

func (r *InMemorySnapshotStore) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, userID)
	return nil
}
