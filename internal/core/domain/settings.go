package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrSettingsNotFound = errors.New("settings not found")
	ErrInvalidGoal      = fmt.Errorf("%w: daily goal must be between 1 and %d", ErrValidation, MaxSteps)
)

const DefaultDailyGoal = 10000

// Settings holds the process-wide dashboard inputs that are not step entries.
type Settings struct {
	DailyGoal int        `json:"daily_goal" db:"daily_goal"`
	Window    TimeWindow `json:"window" db:"time_window"`
}

func DefaultSettings() Settings {
	return Settings{DailyGoal: DefaultDailyGoal, Window: DefaultTimeWindow}
}

func (s Settings) Validate() error {
	if s.DailyGoal <= 0 || s.DailyGoal > MaxSteps {
		return ErrInvalidGoal
	}
	if _, err := ParseTimeWindow(string(s.Window)); err != nil {
		return err
	}
	return nil
}

type SettingsRepository interface {
	// Load returns ErrSettingsNotFound when nothing was saved yet.
	Load(ctx context.Context) (*Settings, error)

	Save(ctx context.Context, settings Settings) error
}
