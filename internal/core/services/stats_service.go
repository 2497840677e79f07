package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
	"github.com/brirusapps/waterpic-core/internal/core/tracker"
)

type StatsService struct {
	repo         domain.IntakeRepository
	settingsRepo domain.SettingsRepository
	store        domain.SnapshotStore
	clock        domain.Clock
}

func NewStatsService(repo domain.IntakeRepository, settingsRepo domain.SettingsRepository, store domain.SnapshotStore, clock domain.Clock) *StatsService {
	return &StatsService{
		repo:         repo,
		settingsRepo: settingsRepo,
		store:        store,
		clock:        clock,
	}
}

// GetOverview recomputes everything the statistics screen shows from
// the full ledger. No incremental state is kept; ledgers are bounded
// by days-ever-logged, which stays in the low thousands.
func (s *StatsService) GetOverview(ctx context.Context, userID string) (*domain.Overview, error) {
	days, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to load ledger: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx, userID)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		settings = domain.DefaultSettings(userID)
	} else if err != nil {
		return nil, fmt.Errorf("stats service: failed to load settings: %w", err)
	}

	ledger := tracker.FromDays(days)
	goal := settings.DailyGoalML
	today := s.clock.Today()

	weekly := ledger.WeeklyBuckets(today)
	monthly := ledger.MonthlyBuckets()
	yearly := ledger.YearlyBuckets()

	todayAmount := ledger.Amount(today)

	return &domain.Overview{
		Today:         today,
		TodayAmountML: todayAmount,
		TodayProgress: tracker.Progress(todayAmount, goal),
		DailyGoalML:   goal,
		Graphs: domain.GraphData{
			Weekly:  weekly,
			Monthly: monthly,
			Yearly:  yearly,
		},
		Progress: domain.WindowProgress{
			Weekly:  ledger.TrailingProgress(today, goal, 7),
			Monthly: ledger.TrailingProgress(today, goal, 30),
			Yearly:  ledger.TrailingProgress(today, goal, 365),
		},
		Achievement: domain.Achievement{
			Weekly:  tracker.GoalAchievement(weekly, goal, tracker.WeeklyWindowDays),
			Monthly: tracker.GoalAchievement(monthly, goal, tracker.MonthlyWindowDays),
			Yearly:  tracker.GoalAchievement(yearly, goal, tracker.YearlyWindowDays),
		},
		Streaks: ledger.Streaks(goal),
	}, nil
}

// GetSnapshot serves the widget's persisted state, rebuilding and
// re-persisting it from the ledger when the store has nothing (first
// request after a cache flush).
func (s *StatsService) GetSnapshot(ctx context.Context, userID string) (*domain.Snapshot, error) {
	if s.store != nil {
		snap, err := s.store.Load(ctx, userID)
		if err == nil {
			return snap, nil
		}
	}

	days, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats service: failed to load ledger: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx, userID)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		settings = domain.DefaultSettings(userID)
	} else if err != nil {
		return nil, fmt.Errorf("stats service: failed to load settings: %w", err)
	}

	snap := tracker.FromDays(days).Snapshot(settings.DailyGoalML)

	if s.store != nil {
		if err := s.store.Save(ctx, userID, snap); err != nil {
			log.Printf("Stats service could not repopulate snapshot for user %s: %v", userID, err)
		}
	}

	return snap, nil
}
