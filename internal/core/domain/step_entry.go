package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrValidation = errors.New("invalid step entry")
	ErrFutureDate = errors.New("date is in the future")
)

const DateLayout = "2006-01-02"

// MaxSteps is the largest count a single day can hold. It matches the
// INTEGER column the postgres store uses.
const MaxSteps = math.MaxInt32

var errTooManySteps = fmt.Errorf("%w: steps must not exceed %d", ErrValidation, MaxSteps)

type StepEntry struct {
	Date  time.Time `json:"date" db:"entry_date"`
	Steps int       `json:"steps" db:"steps"`
}

// Label is the short display form used by charts and notifications ("May 1").
func (e StepEntry) Label() string {
	return e.Date.Format("Jan 2")
}

// NormalizeDate drops the time of day, keeping the date's own location.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func NewStepEntry(date time.Time, steps int, now time.Time) (StepEntry, error) {
	if steps <= 0 {
		return StepEntry{}, fmt.Errorf("%w: steps must be a positive number", ErrValidation)
	}
	if steps > MaxSteps {
		return StepEntry{}, errTooManySteps
	}
	if date.IsZero() {
		return StepEntry{}, fmt.Errorf("%w: date is required", ErrValidation)
	}

	day := NormalizeDate(date)
	if day.After(NormalizeDate(now.In(date.Location()))) {
		return StepEntry{}, fmt.Errorf("%w: %s is after today", ErrFutureDate, day.Format(DateLayout))
	}

	return StepEntry{Date: day, Steps: steps}, nil
}

// ParseSteps converts user input into a step count. Anything that is not a
// positive whole number is rejected with ErrValidation.
func ParseSteps(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: steps are required", ErrValidation)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, fmt.Errorf("%w: steps must be numeric", ErrValidation)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: steps must be a whole number", ErrValidation)
		}
		if f <= 0 {
			return 0, fmt.Errorf("%w: steps must be a positive number", ErrValidation)
		}
		if f > MaxSteps {
			return 0, errTooManySteps
		}
		n = int(f)
	}

	if n <= 0 {
		return 0, fmt.Errorf("%w: steps must be a positive number", ErrValidation)
	}
	if n > MaxSteps {
		return 0, errTooManySteps
	}
	return n, nil
}

// ParseDate reads a YYYY-MM-DD calendar date in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must use the YYYY-MM-DD format", ErrValidation)
	}
	return t, nil
}
