package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

type PostgresSettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresSettingsRepository(db *sqlx.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	var settings domain.Settings
	query := `SELECT * FROM user_settings WHERE user_id = $1`

	err := r.db.GetContext(ctx, &settings, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("repository: get settings failed: %w", err)
	}
	return &settings, nil
}

func (r *PostgresSettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO user_settings (
			user_id, daily_goal_ml, preferred_amount_ml,
			reminder_start_hour, reminder_end_hour, reminder_interval_hours,
			updated_at
		) VALUES (
			:user_id, :daily_goal_ml, :preferred_amount_ml,
			:reminder_start_hour, :reminder_end_hour, :reminder_interval_hours,
			:updated_at
		)
		ON CONFLICT (user_id) DO UPDATE
		SET daily_goal_ml = EXCLUDED.daily_goal_ml,
		    preferred_amount_ml = EXCLUDED.preferred_amount_ml,
		    reminder_start_hour = EXCLUDED.reminder_start_hour,
		    reminder_end_hour = EXCLUDED.reminder_end_hour,
		    reminder_interval_hours = EXCLUDED.reminder_interval_hours,
		    updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("repository: upsert settings failed: %w", err)
	}
	return nil
}

func (r *PostgresSettingsRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM user_settings WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("repository: delete settings failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSettingsNotFound
	}
	return nil
}
