package repository

import (
	"context"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

var _ domain.StepRepository = (*InMemoryStepRepository)(nil)

type InMemoryStepRepository struct {
	store *domain.RecordStore

	mu sync.RWMutex
}

func NewInMemoryStepRepository() *InMemoryStepRepository {
	return &InMemoryStepRepository{
		store: domain.NewRecordStore(nil),
	}
}

// Upsert goes through the record store's own checks. The entry's date is its
// own reference day, so only the step rules can reject it here.
func (r *InMemoryStepRepository) Upsert(ctx context.Context, entry domain.StepEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.store.Upsert(entry.Date, entry.Steps, entry.Date)
	return err
}

func (r *InMemoryStepRepository) All(ctx context.Context) ([]domain.StepEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store.All(), nil
}

func (r *InMemoryStepRepository) ListRange(ctx context.Context, from, to time.Time) ([]domain.StepEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []domain.StepEntry{}
	for _, e := range r.store.All() {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *InMemoryStepRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store.Len(), nil
}

var _ domain.SettingsRepository = (*InMemorySettingsRepository)(nil)

type InMemorySettingsRepository struct {
	settings *domain.Settings

	mu sync.RWMutex
}

func NewInMemorySettingsRepository() *InMemorySettingsRepository {
	return &InMemorySettingsRepository{}
}

func (r *InMemorySettingsRepository) Load(ctx context.Context) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, domain.ErrSettingsNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r *InMemorySettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = &settings
	return nil
}
