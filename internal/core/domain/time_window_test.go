package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

func TestParseTimeWindow(t *testing.T) {
	tests := []struct {
		in   string
		want domain.TimeWindow
	}{
		{"thisWeek", domain.WindowThisWeek},
		{"thismonth", domain.WindowThisMonth},
		{" last7Days ", domain.WindowLast7Days},
		{"30days", domain.WindowLast30Days},
		{"6months", domain.WindowLast6Months},
		{"1year", domain.WindowLastYear},
		{"all", domain.WindowAllTime},
		{"allTime", domain.WindowAllTime},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseTimeWindow(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Fail: Unknown name", func(t *testing.T) {
		_, err := domain.ParseTimeWindow("fortnight")
		assert.ErrorIs(t, err, domain.ErrUnknownTimeWindow)
	})
}

func TestTimeWindow_Start(t *testing.T) {
	// Wednesday
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		window domain.TimeWindow
		now    time.Time
		want   time.Time
	}{
		{domain.WindowThisWeek, now, time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)},
		{domain.WindowThisMonth, now, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{domain.WindowLast7Days, now, time.Date(2024, 5, 8, 14, 30, 0, 0, time.UTC)},
		{domain.WindowLast30Days, now, time.Date(2024, 4, 15, 14, 30, 0, 0, time.UTC)},
		{domain.WindowLast6Months, now, time.Date(2023, 11, 15, 14, 30, 0, 0, time.UTC)},
		{domain.WindowLastYear, now, time.Date(2023, 5, 15, 14, 30, 0, 0, time.UTC)},
		{domain.WindowAllTime, now, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Start(tt.now))
		})
	}

	t.Run("This week on a Sunday starts the same day", func(t *testing.T) {
		sunday := time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), domain.WindowThisWeek.Start(sunday))
	})

	t.Run("Six months back clamps to month end", func(t *testing.T) {
		aug31 := time.Date(2024, 8, 31, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), domain.WindowLast6Months.Start(aug31))
	})

	t.Run("One year back from a leap day clamps to Feb 28", func(t *testing.T) {
		leap := time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2023, 2, 28, 8, 0, 0, 0, time.UTC), domain.WindowLastYear.Start(leap))
	})
}

func TestFilter(t *testing.T) {
	now := time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)
	d := func(m time.Month, dd int) time.Time { return time.Date(2024, m, dd, 0, 0, 0, 0, time.UTC) }

	entries := []domain.StepEntry{
		{Date: d(time.May, 14), Steps: 4},
		{Date: d(time.January, 1), Steps: 1},
		{Date: d(time.May, 8), Steps: 2},
		{Date: d(time.May, 12), Steps: 3},
		{Date: d(time.May, 15), Steps: 5},
	}

	t.Run("This week is inclusive of Sunday", func(t *testing.T) {
		got := domain.Filter(entries, domain.WindowThisWeek, now)
		require.Len(t, got, 3)
		assert.Equal(t, []int{3, 4, 5}, steps(got))
	})

	t.Run("Last 7 days keeps the time of day of now", func(t *testing.T) {
		got := domain.Filter(entries, domain.WindowLast7Days, now)
		assert.Equal(t, []int{3, 4, 5}, steps(got), "May 8 midnight is before May 8 14:30")
	})

	t.Run("All time returns everything sorted", func(t *testing.T) {
		got := domain.Filter(entries, domain.WindowAllTime, now)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, steps(got))
	})

	t.Run("Entries after now are excluded", func(t *testing.T) {
		future := append([]domain.StepEntry{{Date: d(time.May, 20), Steps: 9}}, entries...)
		got := domain.Filter(future, domain.WindowAllTime, now)
		assert.NotContains(t, steps(got), 9)
	})

	t.Run("Empty input returns empty series", func(t *testing.T) {
		assert.Empty(t, domain.Filter(nil, domain.WindowThisMonth, now))
	})
}

func steps(entries []domain.StepEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Steps)
	}
	return out
}
