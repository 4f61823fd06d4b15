package domain

import (
	"math"
	"sort"
	"time"
)

// RoundHalfUp rounds to the nearest integer, halves going up.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func sortAscending(entries []StepEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}

// Summarize derives the summary statistics for a series. An empty series
// yields zero-valued stats.
func Summarize(series []StepEntry, dailyGoal int, now time.Time) AggregateStats {
	if len(series) == 0 {
		return AggregateStats{}
	}

	today := NormalizeDate(now)
	yesterday := today.AddDate(0, 0, -1)

	var stats AggregateStats
	for _, e := range series {
		stats.TotalSteps += e.Steps
		if e.Steps > stats.Best {
			stats.Best = e.Steps
		}
		switch {
		case SameDay(e.Date, today):
			stats.Today = e.Steps
		case SameDay(e.Date, yesterday):
			stats.Yesterday = e.Steps
		}
	}

	stats.DaysLogged = len(series)
	stats.Average = RoundHalfUp(float64(stats.TotalSteps) / float64(stats.DaysLogged))

	if stats.Yesterday != 0 {
		stats.PercentChange = float64(stats.Today-stats.Yesterday) / float64(stats.Yesterday) * 100
	}

	stats.GoalCompletion = GoalCompletion(stats.Today, dailyGoal)
	stats.Streak, stats.LongestStreak = Streaks(series, now)

	return stats
}

func GoalCompletion(steps, dailyGoal int) int {
	if dailyGoal <= 0 {
		return 0
	}
	return min(100, RoundHalfUp(float64(steps)/float64(dailyGoal)*100))
}

// GoalLevel buckets progress toward the goal for presentation.
func GoalLevel(steps, dailyGoal int) string {
	if dailyGoal <= 0 {
		return GoalLevelLow
	}
	pct := float64(steps) / float64(dailyGoal) * 100
	switch {
	case pct >= 100:
		return GoalLevelComplete
	case pct >= 75:
		return GoalLevelHigh
	case pct >= 50:
		return GoalLevelMedium
	default:
		return GoalLevelLow
	}
}

// Streaks returns the current and the longest run of consecutive logged days.
//
// The current streak walks backward one day at a time starting from today.
// When today has no entry yet the walk starts at yesterday, so a streak is
// not broken before the day is over. Zero-step entries do not count.
func Streaks(series []StepEntry, now time.Time) (int, int) {
	logged := make(map[string]bool, len(series))
	var days []time.Time

	for _, e := range series {
		if e.Steps <= 0 {
			continue
		}
		key := e.Date.Format(DateLayout)
		if !logged[key] {
			logged[key] = true
			days = append(days, NormalizeDate(e.Date))
		}
	}

	if len(days) == 0 {
		return 0, 0
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	expected := NormalizeDate(now)
	if !logged[expected.Format(DateLayout)] {
		expected = expected.AddDate(0, 0, -1)
	}

	current := 0
	for logged[expected.Format(DateLayout)] {
		current++
		expected = expected.AddDate(0, 0, -1)
	}

	longest := 1
	run := 1
	for i := 0; i < len(days)-1; i++ {
		if SameDay(days[i].AddDate(0, 0, -1), days[i+1]) {
			run++
			longest = max(longest, run)
		} else {
			run = 1
		}
	}

	return current, max(current, longest)
}
