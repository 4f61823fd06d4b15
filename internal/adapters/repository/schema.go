package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS step_entries (
	id          UUID PRIMARY KEY,
	entry_date  DATE NOT NULL UNIQUE,
	steps       INTEGER NOT NULL CHECK (steps > 0),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS dashboard_settings (
	id           SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	daily_goal   INTEGER NOT NULL CHECK (daily_goal > 0),
	time_window  TEXT NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// Migrate creates the tables used by the postgres repositories.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
