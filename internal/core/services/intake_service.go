package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
	"github.com/brirusapps/waterpic-core/internal/core/tracker"
)

// SaveScheduler is the debounced snapshot writer (workers.SnapshotSaver).
type SaveScheduler interface {
	Schedule(userID string)
	SaveNow(userID string)
}

// RefreshEnqueuer signals clients to reload (workers.Refresher).
type RefreshEnqueuer interface {
	Enqueue(userID string)
}

type IntakeService struct {
	repo         domain.IntakeRepository
	settingsRepo domain.SettingsRepository
	clock        domain.Clock
	saver        SaveScheduler
	refresher    RefreshEnqueuer
}

func NewIntakeService(repo domain.IntakeRepository, settingsRepo domain.SettingsRepository, clock domain.Clock, saver SaveScheduler, refresher RefreshEnqueuer) *IntakeService {
	return &IntakeService{
		repo:         repo,
		settingsRepo: settingsRepo,
		clock:        clock,
		saver:        saver,
		refresher:    refresher,
	}
}

type AdjustInput struct {
	UserID  string
	Day     domain.DateKey // empty means today
	DeltaML float64
}

type AdjustResult struct {
	Day      domain.DateKey `json:"day"`
	AmountML float64        `json:"amount_ml"`
	Progress float64        `json:"progress"`
	Changed  bool           `json:"changed"`
}

// Adjust applies a signed delta to one day of the ledger. Unchanged
// amounts (no-op guard in the tracker) skip persistence, the snapshot
// reschedule and the refresh signal entirely.
func (s *IntakeService) Adjust(ctx context.Context, input AdjustInput) (*AdjustResult, error) {
	day := input.Day
	if day == "" {
		day = s.clock.Today()
	}
	if _, err := day.Time(); err != nil {
		return nil, err
	}

	settings, err := s.getSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	current := 0.0
	existing, err := s.repo.GetDay(ctx, input.UserID, day)
	switch {
	case err == nil:
		current = existing.AmountML
	case errors.Is(err, domain.ErrIntakeNotFound):
	default:
		return nil, fmt.Errorf("intake service: failed to read day: %w", err)
	}

	ledger := tracker.Ledger{day: current}
	updated, changed, err := ledger.Adjust(day, input.DeltaML)
	if err != nil {
		return nil, err
	}

	result := &AdjustResult{
		Day:      day,
		AmountML: updated,
		Progress: tracker.Progress(updated, settings.DailyGoalML),
		Changed:  changed,
	}

	if !changed {
		return result, nil
	}

	row := domain.NewIntakeDay(input.UserID, day, updated)
	if existing != nil {
		row.CreatedAt = existing.CreatedAt
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("intake service: failed to persist day: %w", err)
	}

	s.saver.Schedule(input.UserID)
	s.refresher.Enqueue(input.UserID)

	return result, nil
}

func (s *IntakeService) GetDay(ctx context.Context, userID string, day domain.DateKey) (*AdjustResult, error) {
	if _, err := day.Time(); err != nil {
		return nil, err
	}

	settings, err := s.getSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	amount := 0.0
	row, err := s.repo.GetDay(ctx, userID, day)
	switch {
	case err == nil:
		amount = row.AmountML
	case errors.Is(err, domain.ErrIntakeNotFound):
	default:
		return nil, err
	}

	return &AdjustResult{
		Day:      day,
		AmountML: amount,
		Progress: tracker.Progress(amount, settings.DailyGoalML),
		Changed:  false,
	}, nil
}

func (s *IntakeService) ListRange(ctx context.Context, userID string, from, to domain.DateKey) ([]*domain.IntakeDay, error) {
	if _, err := from.Time(); err != nil {
		return nil, err
	}
	if _, err := to.Time(); err != nil {
		return nil, err
	}
	if from > to {
		from, to = to, from
	}

	return s.repo.ListRange(ctx, userID, from, to)
}

// GetDelta returns rows changed after 'since', for client sync.
func (s *IntakeService) GetDelta(ctx context.Context, userID string, since time.Time) ([]*domain.IntakeDay, error) {
	return s.repo.GetChanges(ctx, userID, since)
}

// Reset erases the user's ledger and settings (the app's "erase all
// data" flow) and rewrites the snapshot immediately so the widget
// empties without waiting for the next mutation.
func (s *IntakeService) Reset(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("intake service: failed to erase ledger: %w", err)
	}
	if err := s.settingsRepo.Delete(ctx, userID); err != nil && !errors.Is(err, domain.ErrSettingsNotFound) {
		return fmt.Errorf("intake service: failed to reset settings: %w", err)
	}

	s.saver.SaveNow(userID)
	s.refresher.Enqueue(userID)

	return nil
}

func (s *IntakeService) getSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		return domain.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("intake service: failed to load settings: %w", err)
	}
	return settings, nil
}
