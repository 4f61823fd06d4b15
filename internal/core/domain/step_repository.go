package domain

import (
	"context"
	"time"
)

type StepRepository interface {
	// Upsert stores a validated entry, replacing any entry for the same calendar day.
	Upsert(ctx context.Context, entry StepEntry) error

	// All returns every entry sorted ascending by date.
	All(ctx context.Context) ([]StepEntry, error)

	// ListRange returns the entries with from <= date <= to, sorted ascending.
	ListRange(ctx context.Context, from, to time.Time) ([]StepEntry, error)

	// Count reports how many days are logged. Used to decide whether to seed.
	Count(ctx context.Context) (int, error)
}
