package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

var _ domain.SettingsRepository = (*PostgresSettingsRepository)(nil)

type PostgresSettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresSettingsRepository(db *sqlx.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Load(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	query := `SELECT daily_goal, time_window FROM dashboard_settings WHERE id = 1`

	err := r.db.GetContext(ctx, &settings, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *PostgresSettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO dashboard_settings (id, daily_goal, time_window, updated_at)
		VALUES (1, :daily_goal, :time_window, NOW())
		ON CONFLICT (id) DO UPDATE
		SET daily_goal = EXCLUDED.daily_goal,
		    time_window = EXCLUDED.time_window,
		    updated_at = NOW()`

	_, err := r.db.NamedExecContext(ctx, query, settings)
	if err != nil {
		if code := sqlState(err); code == checkViolation || code == numericValueOutOfRange {
			return domain.ErrInvalidGoal
		}
		return err
	}
	return nil
}
