package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
	"github.com/comitanigiacomo/kanso-steps/internal/metrics"
)

type Notifier interface {
	Enqueue(entry domain.StepEntry)
}

type DashboardOptions struct {
	// Location decides where calendar days start. Defaults to time.Local.
	Location *time.Location
	Defaults domain.Settings
	Metrics  *metrics.Manager
	Now      func() time.Time
}

// DashboardService derives the dashboard from the stored entries and
// settings. Nothing derived is kept between calls: other processes (stepctl)
// write to the same store.
type DashboardService struct {
	mu           sync.Mutex
	repo         domain.StepRepository
	settingsRepo domain.SettingsRepository
	notifier     Notifier
	metrics      *metrics.Manager
	loc          *time.Location
	now          func() time.Time

	// settings is the last value read from or written to settingsRepo.
	settings domain.Settings
}

type SubmitEntryInput struct {
	Date  time.Time
	Steps string
}

func NewDashboardService(repo domain.StepRepository, settingsRepo domain.SettingsRepository, notifier Notifier, opts DashboardOptions) *DashboardService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Defaults.Validate() != nil {
		opts.Defaults = domain.DefaultSettings()
	}

	return &DashboardService{
		repo:         repo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		metrics:      opts.Metrics,
		loc:          opts.Location,
		now:          opts.Now,
		settings:     opts.Defaults,
	}
}

// Init loads the persisted settings, seeds the demo dataset into an empty
// store when asked to, and builds the first dashboard.
func (s *DashboardService) Init(ctx context.Context, seed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.settingsRepo.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrSettingsNotFound):
		if err := s.settingsRepo.Save(ctx, s.settings); err != nil {
			return fmt.Errorf("dashboard service: failed to save default settings: %w", err)
		}
	case err != nil:
		return fmt.Errorf("dashboard service: failed to load settings: %w", err)
	default:
		if err := saved.Validate(); err != nil {
			logrus.Warnf("[DASHBOARD] ignoring stored settings: %v", err)
		} else {
			s.settings = *saved
		}
	}

	if seed {
		if err := s.seed(ctx); err != nil {
			return err
		}
	}

	_, err = s.recompute(ctx)
	return err
}

func (s *DashboardService) seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("dashboard service: failed to count entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	entries := domain.SeedEntries(s.loc)
	for _, e := range entries {
		if err := s.repo.Upsert(ctx, e); err != nil {
			return fmt.Errorf("dashboard service: failed to seed %s: %w", e.Date.Format(domain.DateLayout), err)
		}
	}
	logrus.Infof("[DASHBOARD] seeded %d demo entries", len(entries))
	return nil
}

// SubmitEntry validates and stores one day's step count. A day that already
// has an entry is overwritten. Nothing changes when validation fails.
func (s *DashboardService) SubmitEntry(ctx context.Context, input SubmitEntryInput) (*domain.Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.validate(input)
	if err != nil {
		s.reject(err)
		return nil, err
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("dashboard service: failed to store entry: %w", err)
	}
	if s.metrics != nil {
		s.metrics.CounterEntriesRecorded.Inc()
	}

	if err := s.refreshSettings(ctx); err != nil {
		return nil, err
	}
	dashboard, err := s.recompute(ctx)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(entry)
	}
	return dashboard, nil
}

func (s *DashboardService) validate(input SubmitEntryInput) (domain.StepEntry, error) {
	steps, err := domain.ParseSteps(input.Steps)
	if err != nil {
		return domain.StepEntry{}, err
	}
	date := input.Date
	if !date.IsZero() {
		date = date.In(s.loc)
	}
	return domain.NewStepEntry(date, steps, s.clock())
}

func (s *DashboardService) reject(err error) {
	if s.metrics == nil {
		return
	}
	reason := "validation"
	if errors.Is(err, domain.ErrFutureDate) {
		reason = "future_date"
	}
	s.metrics.CounterEntriesRejected.WithLabelValues(reason).Inc()
}

func (s *DashboardService) SetTimeWindow(ctx context.Context, name string) (*domain.Dashboard, error) {
	window, err := domain.ParseTimeWindow(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshSettings(ctx); err != nil {
		return nil, err
	}
	next := s.settings
	next.Window = window
	if err := s.settingsRepo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("dashboard service: failed to save window: %w", err)
	}
	s.settings = next

	if s.metrics != nil {
		s.metrics.CounterWindowChanges.WithLabelValues(string(window)).Inc()
	}
	return s.recompute(ctx)
}

func (s *DashboardService) SetDailyGoal(ctx context.Context, goal int) (*domain.Dashboard, error) {
	if goal <= 0 || goal > domain.MaxSteps {
		return nil, domain.ErrInvalidGoal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshSettings(ctx); err != nil {
		return nil, err
	}
	next := s.settings
	next.DailyGoal = goal
	if err := s.settingsRepo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("dashboard service: failed to save goal: %w", err)
	}
	s.settings = next

	if s.metrics != nil {
		s.metrics.CounterGoalUpdates.Inc()
	}
	return s.recompute(ctx)
}

// Dashboard re-reads the settings and entries and derives the current view.
func (s *DashboardService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshSettings(ctx); err != nil {
		return nil, err
	}
	return s.recompute(ctx)
}

// Preview derives a dashboard for another window without changing the
// selected one.
func (s *DashboardService) Preview(ctx context.Context, name string) (*domain.Dashboard, error) {
	window, err := domain.ParseTimeWindow(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshSettings(ctx); err != nil {
		return nil, err
	}

	now := s.clock()
	series, err := s.series(ctx, window, now)
	if err != nil {
		return nil, err
	}
	return domain.BuildDashboard(series, window, s.settings.DailyGoal, now), nil
}

func (s *DashboardService) Entries(ctx context.Context) ([]domain.StepEntry, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard service: failed to load entries: %w", err)
	}
	return all, nil
}

func (s *DashboardService) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Location is where calendar days are evaluated.
func (s *DashboardService) Location() *time.Location {
	return s.loc
}

func (s *DashboardService) clock() time.Time {
	return s.now().In(s.loc)
}

// refreshSettings picks up settings saved by another writer. Must be called
// with mu held.
func (s *DashboardService) refreshSettings(ctx context.Context) error {
	saved, err := s.settingsRepo.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrSettingsNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("dashboard service: failed to load settings: %w", err)
	}

	if err := saved.Validate(); err != nil {
		logrus.Warnf("[DASHBOARD] ignoring stored settings: %v", err)
		return nil
	}
	s.settings = *saved
	return nil
}

// series reads the entries a window can contain. Bounded windows only fetch
// their own range.
func (s *DashboardService) series(ctx context.Context, window domain.TimeWindow, now time.Time) ([]domain.StepEntry, error) {
	var (
		entries []domain.StepEntry
		err     error
	)
	if start := window.Start(now); start.IsZero() {
		entries, err = s.repo.All(ctx)
	} else {
		entries, err = s.repo.ListRange(ctx, start, now)
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard service: failed to load entries: %w", err)
	}
	return entries, nil
}

// recompute must be called with mu held.
func (s *DashboardService) recompute(ctx context.Context) (*domain.Dashboard, error) {
	start := time.Now()
	now := s.clock()

	series, err := s.series(ctx, s.settings.Window, now)
	if err != nil {
		return nil, err
	}

	dashboard := domain.BuildDashboard(series, s.settings.Window, s.settings.DailyGoal, now)

	if s.metrics != nil {
		s.metrics.HistRecomputeDuration.Observe(time.Since(start).Seconds())
		if n, err := s.repo.Count(ctx); err != nil {
			logrus.Warnf("[DASHBOARD] could not count stored days: %v", err)
		} else {
			s.metrics.GaugeStoredDays.Set(float64(n))
		}
	}
	return dashboard, nil
}
