package domain

import "time"

const (
	GoalLevelLow      = "low"
	GoalLevelMedium   = "medium"
	GoalLevelHigh     = "high"
	GoalLevelComplete = "complete"
)

type AggregateStats struct {
	Today          int     `json:"today"`
	Yesterday      int     `json:"yesterday"`
	Average        int     `json:"average"`
	Best           int     `json:"best"`
	TotalSteps     int     `json:"total_steps"`
	DaysLogged     int     `json:"days_logged"`
	Streak         int     `json:"streak"`
	LongestStreak  int     `json:"longest_streak"`
	PercentChange  float64 `json:"percent_change"`
	GoalCompletion int     `json:"goal_completion"`
}

type WeeklyBucket struct {
	Label string      `json:"label"`
	Year  int         `json:"year"`
	Week  int         `json:"week"`
	Steps int         `json:"steps"`
	Days  int         `json:"days"`
	Dates []time.Time `json:"dates"`
}

type MonthlyBucket struct {
	Name      string `json:"name"`
	Month     int    `json:"month"`
	Average   int    `json:"average"`
	Days      int    `json:"days"`
	GoalLevel string `json:"goal_level,omitempty"`
}

type ChartPoint struct {
	Label string     `json:"label"`
	Steps int        `json:"steps"`
	Days  int        `json:"days"`
	Date  *time.Time `json:"date,omitempty"`
}

type Chart struct {
	Points  []ChartPoint `json:"points"`
	Average int          `json:"average"`
	Weekly  bool         `json:"weekly"`
}

// Dashboard is the full derived view handed to the presentation layer.
type Dashboard struct {
	Window      TimeWindow      `json:"window"`
	WindowLabel string          `json:"window_label"`
	WindowStart time.Time       `json:"window_start"`
	WindowEnd   time.Time       `json:"window_end"`
	DailyGoal   int             `json:"daily_goal"`
	GoalLevel   string          `json:"goal_level"`
	Entries     []StepEntry     `json:"entries"`
	Stats       AggregateStats  `json:"stats"`
	Weekly      []WeeklyBucket  `json:"weekly"`
	Monthly     []MonthlyBucket `json:"monthly"`
	LineChart   Chart           `json:"line_chart"`
	BarChart    Chart           `json:"bar_chart"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// BuildDashboard runs the whole derivation for one store snapshot.
func BuildDashboard(all []StepEntry, window TimeWindow, dailyGoal int, now time.Time) *Dashboard {
	series := Filter(all, window, now)
	stats := Summarize(series, dailyGoal, now)

	monthly := MonthlyBuckets(series)
	for i := range monthly {
		monthly[i].GoalLevel = GoalLevel(monthly[i].Average, dailyGoal)
	}

	weekly := WeeklyBuckets(series)
	if weekly == nil {
		weekly = []WeeklyBucket{}
	}
	if monthly == nil {
		monthly = []MonthlyBucket{}
	}

	return &Dashboard{
		Window:      window,
		WindowLabel: window.Label(),
		WindowStart: window.Start(now),
		WindowEnd:   now,
		DailyGoal:   dailyGoal,
		GoalLevel:   GoalLevel(stats.Today, dailyGoal),
		Entries:     series,
		Stats:       stats,
		Weekly:      weekly,
		Monthly:     monthly,
		LineChart:   ChartSeries(series, LineChart),
		BarChart:    ChartSeries(series, BarChart),
		GeneratedAt: now,
	}
}
