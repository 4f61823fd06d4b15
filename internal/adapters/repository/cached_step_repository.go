package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

var _ domain.StepRepository = (*CachedStepRepository)(nil)

const (
	allEntriesKey = "steps:all"
	cacheTTL      = 30 * time.Minute
)

// CachedStepRepository keeps the full entry list in Redis. Any write drops it.
type CachedStepRepository struct {
	next  domain.StepRepository
	cache *redis.Client
	loc   *time.Location
}

func NewCachedStepRepository(next domain.StepRepository, cache *redis.Client, loc *time.Location) *CachedStepRepository {
	if loc == nil {
		loc = time.Local
	}
	return &CachedStepRepository{
		next:  next,
		cache: cache,
		loc:   loc,
	}
}

type cachedEntry struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

func (r *CachedStepRepository) invalidate(ctx context.Context) {
	if err := r.cache.Del(ctx, allEntriesKey).Err(); err != nil {
		logrus.Warnf("[CACHE] Failed to invalidate %s: %v", allEntriesKey, err)
	}
}

func (r *CachedStepRepository) All(ctx context.Context) ([]domain.StepEntry, error) {
	val, err := r.cache.Get(ctx, allEntriesKey).Result()
	if err == nil {
		if entries, err := r.decode(val); err == nil {
			return entries, nil
		}

		logrus.Warnf("[CACHE] Corrupted data in %s, cleaning up key", allEntriesKey)
		r.cache.Del(ctx, allEntriesKey)
	} else if !errors.Is(err, redis.Nil) {
		logrus.Warnf("[CACHE] Redis read error: %v", err)
	}

	entries, err := r.next.All(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := r.encode(entries); err == nil {
		if setErr := r.cache.Set(ctx, allEntriesKey, data, cacheTTL).Err(); setErr != nil {
			logrus.Warnf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return entries, nil
}

func (r *CachedStepRepository) Upsert(ctx context.Context, entry domain.StepEntry) error {
	if err := r.next.Upsert(ctx, entry); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// ListRange filters the cached list, so every window is served from one key.
func (r *CachedStepRepository) ListRange(ctx context.Context, from, to time.Time) ([]domain.StepEntry, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	entries := []domain.StepEntry{}
	for _, e := range all {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *CachedStepRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

// entries are cached as calendar days so the location survives the round trip
func (r *CachedStepRepository) encode(entries []domain.StepEntry) ([]byte, error) {
	out := make([]cachedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, cachedEntry{Date: e.Date.Format(domain.DateLayout), Steps: e.Steps})
	}
	return json.Marshal(out)
}

func (r *CachedStepRepository) decode(val string) ([]domain.StepEntry, error) {
	var cached []cachedEntry
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, err
	}

	entries := make([]domain.StepEntry, 0, len(cached))
	for _, c := range cached {
		date, err := time.ParseInLocation(domain.DateLayout, c.Date, r.loc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.StepEntry{Date: date, Steps: c.Steps})
	}
	return entries, nil
}
