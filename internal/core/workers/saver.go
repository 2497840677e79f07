package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
	"github.com/brirusapps/waterpic-core/internal/core/tracker"
)

const DefaultSaveDelay = time.Second

type IntakeSource interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.IntakeDay, error)
}

type SettingsSource interface {
	Get(ctx context.Context, userID string) (*domain.Settings, error)
}

// SnapshotSaver rewrites a user's widget snapshot after mutations,
// debounced: every Schedule call cancels the user's pending write and
// arms a new one, so a burst of rapid taps collapses into a single
// store write once the taps go quiet.
type SnapshotSaver struct {
	intake   IntakeSource
	settings SettingsSource
	store    domain.SnapshotStore
	delay    time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func NewSnapshotSaver(intake IntakeSource, settings SettingsSource, store domain.SnapshotStore, delay time.Duration) *SnapshotSaver {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	return &SnapshotSaver{
		intake:   intake,
		settings: settings,
		store:    store,
		delay:    delay,
		pending:  make(map[string]*time.Timer),
	}
}

// Schedule arms (or re-arms) the debounced save for a user. Cancelling
// the previous timer is the only cancellation semantic the system
// needs: a newer mutation always supersedes the pending write.
func (s *SnapshotSaver) Schedule(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.pending[userID]; ok {
		timer.Stop()
	}

	s.pending[userID] = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		delete(s.pending, userID)
		s.mu.Unlock()

		s.save(userID)
	})
}

// SaveNow bypasses the debounce, cancelling any pending write first.
// Used after destructive operations like a data reset.
func (s *SnapshotSaver) SaveNow(userID string) {
	s.mu.Lock()
	if timer, ok := s.pending[userID]; ok {
		timer.Stop()
		delete(s.pending, userID)
	}
	s.mu.Unlock()

	s.save(userID)
}

// Stop cancels all pending writes. Called on shutdown; losing a
// snapshot write is fine because it is derived state rebuilt on the
// next mutation.
func (s *SnapshotSaver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, timer := range s.pending {
		timer.Stop()
		delete(s.pending, userID)
	}
}

func (s *SnapshotSaver) save(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	days, err := s.intake.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Snapshot saver failed to load ledger for user %s: %v", userID, err)
		return
	}

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		settings = domain.DefaultSettings(userID)
	}

	snap := tracker.FromDays(days).Snapshot(settings.DailyGoalML)
	if err := s.store.Save(ctx, userID, snap); err != nil {
		log.Printf("Snapshot saver failed to persist snapshot for user %s: %v", userID, err)
	}
}
