package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

type PostgresIntakeRepository struct {
	db *sqlx.DB
}

func NewPostgresIntakeRepository(db *sqlx.DB) *PostgresIntakeRepository {
	return &PostgresIntakeRepository{db: db}
}

func (r *PostgresIntakeRepository) Upsert(ctx context.Context, day *domain.IntakeDay) error {
	if err := day.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO intake_days (user_id, day, amount_ml, created_at, updated_at)
		VALUES (:user_id, :day, :amount_ml, :created_at, :updated_at)
		ON CONFLICT (user_id, day) DO UPDATE
		SET amount_ml = EXCLUDED.amount_ml,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, day)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return errors.New("referenced user does not exist")
		}
		return fmt.Errorf("repository: upsert intake day failed: %w", err)
	}
	return nil
}

func (r *PostgresIntakeRepository) GetDay(ctx context.Context, userID string, day domain.DateKey) (*domain.IntakeDay, error) {
	var row domain.IntakeDay
	query := `SELECT * FROM intake_days WHERE user_id = $1 AND day = $2`

	err := r.db.GetContext(ctx, &row, query, userID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIntakeNotFound
		}
		return nil, fmt.Errorf("repository: get intake day failed: %w", err)
	}
	return &row, nil
}

func (r *PostgresIntakeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.IntakeDay, error) {
	rows := []*domain.IntakeDay{}

	// Day keys are YYYY-MM-DD, so lexical order is chronological.
	query := `
		SELECT * FROM intake_days
		WHERE user_id = $1
		ORDER BY day ASC`

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("repository: list intake days failed: %w", err)
	}
	return rows, nil
}

func (r *PostgresIntakeRepository) ListRange(ctx context.Context, userID string, from, to domain.DateKey) ([]*domain.IntakeDay, error) {
	rows := []*domain.IntakeDay{}

	query := `
		SELECT * FROM intake_days
		WHERE user_id = $1
		  AND day >= $2
		  AND day <= $3
		ORDER BY day ASC`

	if err := r.db.SelectContext(ctx, &rows, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("repository: list intake range failed: %w", err)
	}
	return rows, nil
}

func (r *PostgresIntakeRepository) GetChanges(ctx context.Context, userID string, since time.Time) ([]*domain.IntakeDay, error) {
	rows := []*domain.IntakeDay{}

	query := `
		SELECT * FROM intake_days
		WHERE user_id = $1
		  AND updated_at > $2
		ORDER BY updated_at ASC`

	if err := r.db.SelectContext(ctx, &rows, query, userID, since); err != nil {
		return nil, fmt.Errorf("repository: get intake changes failed: %w", err)
	}
	return rows, nil
}

func (r *PostgresIntakeRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	query := `DELETE FROM intake_days WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("repository: delete intake days failed: %w", err)
	}
	return nil
}
