package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

func TestGetDashboard(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	w := s.do(http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	d := decode[domain.Dashboard](t, w)
	assert.Equal(t, domain.WindowLast30Days, d.Window)
	assert.Equal(t, "Last 30 Days", d.WindowLabel)
	assert.Equal(t, domain.DefaultDailyGoal, d.DailyGoal)
	assert.Equal(t, 0, d.Stats.Today)
	assert.Equal(t, 5432, d.Stats.Yesterday)
	assert.Equal(t, 2, d.Stats.Streak)
	assert.Equal(t, 6716, d.Stats.Average)
	assert.Len(t, d.LineChart.Points, 2)
	assert.False(t, d.LineChart.Weekly)
}

func TestSetWindow(t *testing.T) {
	t.Run("Success: Alias is accepted", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(http.MethodPut, "/api/v1/settings/window", map[string]string{"window": "thisWeek"})
		require.Equal(t, http.StatusOK, w.Code)

		d := decode[domain.Dashboard](t, w)
		assert.Equal(t, domain.WindowThisWeek, d.Window)
		assert.Empty(t, d.Entries)
		assert.Equal(t, domain.AggregateStats{}, d.Stats)

		again := decode[domain.Dashboard](t, s.do(http.MethodGet, "/api/v1/dashboard", nil))
		assert.Equal(t, domain.WindowThisWeek, again.Window)
	})

	t.Run("Fail: Unknown window", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(http.MethodPut, "/api/v1/settings/window", map[string]string{"window": "fortnight"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown time window")
	})

	t.Run("Fail: Missing window", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(http.MethodPut, "/api/v1/settings/window", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})
}

func TestSetGoal(t *testing.T) {
	t.Run("Success: Completion follows the goal", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})
		s.do(http.MethodPost, "/api/v1/entries", `{"date":"2023-05-07","steps":4000}`)

		w := s.do(http.MethodPut, "/api/v1/settings/goal", map[string]int{"daily_goal": 5000})
		require.Equal(t, http.StatusOK, w.Code)

		d := decode[domain.Dashboard](t, w)
		assert.Equal(t, 5000, d.DailyGoal)
		assert.Equal(t, 80, d.Stats.GoalCompletion)
		assert.Equal(t, domain.GoalLevelHigh, d.GoalLevel)
	})

	t.Run("Fail: Goal out of range", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		for _, body := range []string{`{"daily_goal":0}`, `{"daily_goal":-10}`, `{}`, `{"daily_goal":3000000000}`} {
			w := s.do(http.MethodPut, "/api/v1/settings/goal", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("Fail: Goal is not a number", func(t *testing.T) {
		s := newTestServer(t, serverOptions{})

		w := s.do(http.MethodPut, "/api/v1/settings/goal", `{"daily_goal":"lots"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStats(t *testing.T) {
	s := newTestServer(t, serverOptions{})

	t.Run("Success: Ad hoc window leaves the selection alone", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/stats?window=all", nil)
		require.Equal(t, http.StatusOK, w.Code)

		stats := decode[domain.AggregateStats](t, w)
		assert.Equal(t, 13432, stats.TotalSteps)
		assert.Equal(t, 8000, stats.Best)

		d := decode[domain.Dashboard](t, s.do(http.MethodGet, "/api/v1/dashboard", nil))
		assert.Equal(t, domain.WindowLast30Days, d.Window)
	})

	t.Run("Success: Weekly buckets", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/stats/weekly", nil)
		require.Equal(t, http.StatusOK, w.Code)

		weekly := decode[[]domain.WeeklyBucket](t, w)
		require.Len(t, weekly, 1)
		assert.Equal(t, "Week 18, 2023", weekly[0].Label)
		assert.Equal(t, 6716, weekly[0].Steps)
	})

	t.Run("Success: Monthly buckets", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/stats/monthly?window=last7Days", nil)
		require.Equal(t, http.StatusOK, w.Code)

		monthly := decode[[]domain.MonthlyBucket](t, w)
		require.Len(t, monthly, 1)
		assert.Equal(t, "May", monthly[0].Name)
		assert.Equal(t, domain.GoalLevelMedium, monthly[0].GoalLevel)
	})

	t.Run("Fail: Unknown window", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/v1/stats?window=decade", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
