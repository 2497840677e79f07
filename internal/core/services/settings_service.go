package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

type SettingsService struct {
	repo      domain.SettingsRepository
	saver     SaveScheduler
	refresher RefreshEnqueuer
}

func NewSettingsService(repo domain.SettingsRepository, saver SaveScheduler, refresher RefreshEnqueuer) *SettingsService {
	return &SettingsService{
		repo:      repo,
		saver:     saver,
		refresher: refresher,
	}
}

type UpdateSettingsInput struct {
	UserID              string
	DailyGoalML         float64
	PreferredAmountML   float64
	ReminderStartHour   int
	ReminderEndHour     int
	ReminderIntervalHrs int
}

// Get returns the user's settings, falling back to app defaults for
// users who never changed anything.
func (s *SettingsService) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		return domain.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings service: failed to load settings: %w", err)
	}
	return settings, nil
}

// Update validates and persists new settings. A goal change invalidates
// every stored progress ratio, so the snapshot is rescheduled and
// clients are told to reload.
func (s *SettingsService) Update(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	settings := &domain.Settings{
		UserID:              input.UserID,
		DailyGoalML:         input.DailyGoalML,
		PreferredAmountML:   input.PreferredAmountML,
		ReminderStartHour:   input.ReminderStartHour,
		ReminderEndHour:     input.ReminderEndHour,
		ReminderIntervalHrs: input.ReminderIntervalHrs,
		UpdatedAt:           time.Now().UTC(),
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("settings service: failed to persist settings: %w", err)
	}

	s.saver.Schedule(input.UserID)
	s.refresher.Enqueue(input.UserID)

	return settings, nil
}
