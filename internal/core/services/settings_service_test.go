package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
	"github.com/brirusapps/waterpic-core/internal/core/services"
)

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"

	t.Run("Falls back to defaults for new users", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		svc := services.NewSettingsService(repo, &spySaver{}, &spyRefresher{})

		repo.On("Get", ctx, userID).Return(nil, domain.ErrSettingsNotFound)

		settings, err := svc.Get(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultDailyGoalML, settings.DailyGoalML)
		assert.Equal(t, domain.DefaultPreferredAmountML, settings.PreferredAmountML)
	})

	t.Run("Returns stored settings", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		svc := services.NewSettingsService(repo, &spySaver{}, &spyRefresher{})

		stored := domain.DefaultSettings(userID)
		stored.DailyGoalML = 2500
		repo.On("Get", ctx, userID).Return(stored, nil)

		settings, err := svc.Get(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, 2500.0, settings.DailyGoalML)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"

	validInput := func() services.UpdateSettingsInput {
		return services.UpdateSettingsInput{
			UserID:              userID,
			DailyGoalML:         2500,
			PreferredAmountML:   250,
			ReminderStartHour:   7,
			ReminderEndHour:     21,
			ReminderIntervalHrs: 3,
		}
	}

	t.Run("Success: Persists and triggers snapshot + refresh", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		saver := &spySaver{}
		refresher := &spyRefresher{}
		svc := services.NewSettingsService(repo, saver, refresher)

		repo.On("Upsert", ctx, mock.MatchedBy(func(s *domain.Settings) bool {
			return s.UserID == userID && s.DailyGoalML == 2500 && s.PreferredAmountML == 250
		})).Return(nil)

		settings, err := svc.Update(ctx, validInput())

		require.NoError(t, err)
		assert.Equal(t, 2500.0, settings.DailyGoalML)
		assert.Equal(t, []string{userID}, saver.scheduled)
		assert.Equal(t, []string{userID}, refresher.enqueued)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Invalid goal never reaches the repo", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		saver := &spySaver{}
		svc := services.NewSettingsService(repo, saver, &spyRefresher{})

		input := validInput()
		input.DailyGoalML = 0

		_, err := svc.Update(ctx, input)

		assert.ErrorIs(t, err, domain.ErrInvalidDailyGoal)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		assert.Empty(t, saver.scheduled)
	})

	t.Run("Fail: Inverted reminder window rejected", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		svc := services.NewSettingsService(repo, &spySaver{}, &spyRefresher{})

		input := validInput()
		input.ReminderStartHour = 22
		input.ReminderEndHour = 8

		_, err := svc.Update(ctx, input)

		assert.ErrorIs(t, err, domain.ErrInvalidReminderWindow)
	})
}
