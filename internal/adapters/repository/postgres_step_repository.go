package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

const (
	checkViolation         = "23514"
	numericValueOutOfRange = "22003"
)

var _ domain.StepRepository = (*PostgresStepRepository)(nil)

type PostgresStepRepository struct {
	db  *sqlx.DB
	loc *time.Location
}

// NewPostgresStepRepository stores calendar days as DATE. Dates read back are
// placed at midnight in loc.
func NewPostgresStepRepository(db *sqlx.DB, loc *time.Location) *PostgresStepRepository {
	if loc == nil {
		loc = time.Local
	}
	return &PostgresStepRepository{db: db, loc: loc}
}

type stepRow struct {
	Date  time.Time `db:"entry_date"`
	Steps int       `db:"steps"`
}

func (r *PostgresStepRepository) Upsert(ctx context.Context, entry domain.StepEntry) error {
	query := `
		INSERT INTO step_entries (id, entry_date, steps, created_at, updated_at)
		VALUES ($1, $2::date, $3, NOW(), NOW())
		ON CONFLICT (entry_date) DO UPDATE
		SET steps = EXCLUDED.steps,
		    updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, uuid.NewString(), entry.Date.Format(domain.DateLayout), entry.Steps)
	if err != nil {
		switch sqlState(err) {
		case checkViolation:
			return fmt.Errorf("%w: steps must be a positive number", domain.ErrValidation)
		case numericValueOutOfRange:
			return fmt.Errorf("%w: steps must not exceed %d", domain.ErrValidation, domain.MaxSteps)
		}
		return err
	}
	return nil
}

func (r *PostgresStepRepository) All(ctx context.Context) ([]domain.StepEntry, error) {
	rows := []stepRow{}

	query := `SELECT entry_date, steps FROM step_entries ORDER BY entry_date ASC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return r.toEntries(rows), nil
}

func (r *PostgresStepRepository) ListRange(ctx context.Context, from, to time.Time) ([]domain.StepEntry, error) {
	rows := []stepRow{}

	query := `
		SELECT entry_date, steps FROM step_entries
		WHERE entry_date >= $1::date
		  AND entry_date <= $2::date
		ORDER BY entry_date ASC`

	err := r.db.SelectContext(ctx, &rows, query,
		from.In(r.loc).Format(domain.DateLayout),
		to.In(r.loc).Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}

	entries := make([]domain.StepEntry, 0, len(rows))
	for _, e := range r.toEntries(rows) {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *PostgresStepRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM step_entries`); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresStepRepository) toEntries(rows []stepRow) []domain.StepEntry {
	entries := make([]domain.StepEntry, 0, len(rows))
	for _, row := range rows {
		y, m, d := row.Date.Date()
		entries = append(entries, domain.StepEntry{
			Date:  time.Date(y, m, d, 0, 0, 0, 0, r.loc),
			Steps: row.Steps,
		})
	}
	return entries
}

// sqlState extracts the SQLSTATE code from either supported driver.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
