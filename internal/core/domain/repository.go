package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrIntakeNotFound   = errors.New("intake day not found")
	ErrSettingsNotFound = errors.New("settings not found")
	ErrUnauthorized     = errors.New("unauthorized access to resource")
)

type IntakeRepository interface {
	// Upsert writes the row for (user, day), replacing any previous
	// amount. Day-level last-writer-wins is the replication model the
	// clients rely on, so there is no version check here.
	Upsert(ctx context.Context, day *IntakeDay) error

	// GetDay retrieves a single day. Missing days are ErrIntakeNotFound;
	// callers treat them as zero intake.
	GetDay(ctx context.Context, userID string, day DateKey) (*IntakeDay, error)

	// ListByUser retrieves the full ledger for a user, ascending by day.
	// Graphs and streaks are recomputed from the whole ledger on every
	// read, so this is the hot path.
	ListByUser(ctx context.Context, userID string) ([]*IntakeDay, error)

	// ListRange retrieves days within [from, to] inclusive.
	ListRange(ctx context.Context, userID string, from, to DateKey) ([]*IntakeDay, error)

	// GetChanges returns rows updated after 'since', for client delta sync.
	GetChanges(ctx context.Context, userID string, since time.Time) ([]*IntakeDay, error)

	// DeleteAllByUser erases the user's ledger (the "erase data" flow).
	DeleteAllByUser(ctx context.Context, userID string) error
}

type SettingsRepository interface {
	// Get retrieves the user's settings. Missing settings are
	// ErrSettingsNotFound; services substitute DefaultSettings.
	Get(ctx context.Context, userID string) (*Settings, error)

	// Upsert writes the settings row for the user.
	Upsert(ctx context.Context, settings *Settings) error

	// Delete removes the settings row, restoring defaults on next read.
	Delete(ctx context.Context, userID string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
