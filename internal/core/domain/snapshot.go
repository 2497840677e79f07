package domain

import (
	"context"
	"errors"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is the widget-facing persisted state, shaped exactly like
// the key-value blobs the app keeps locally: the goal, the raw ledger
// and the per-day goal ratio. The widget renders from this without
// touching the database.
type Snapshot struct {
	DailyGoalML    float64            `json:"dailyGoal"`
	PastWaterData  map[string]float64 `json:"pastWaterData"`
	ProgressByDate map[string]float64 `json:"progressByDate"`
}

// SnapshotStore persists one Snapshot per user. Writes are debounced by
// the saver worker; reads come from the widget endpoint.
type SnapshotStore interface {
	Save(ctx context.Context, userID string, snap *Snapshot) error
	Load(ctx context.Context, userID string) (*Snapshot, error)
	Delete(ctx context.Context, userID string) error
}

// RefreshPublisher tells interested clients (the widget host) to reload
// their presentation after a mutation. Fire-and-forget: errors are
// logged by the caller and never surfaced to the user.
type RefreshPublisher interface {
	PublishRefresh(ctx context.Context, userID string) error
}
