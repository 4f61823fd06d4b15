package domain

import (
	"fmt"
	"math"
	"time"
)

type ChartOptions struct {
	// Threshold is the largest series plotted day by day; longer series
	// are rolled up into weekly buckets.
	Threshold int
	// MaxPoints keeps only the most recent points. Zero means no cap.
	MaxPoints int
}

var (
	LineChart = ChartOptions{Threshold: 30}
	BarChart  = ChartOptions{Threshold: 14, MaxPoints: 20}
)

// WeekNumber numbers Sunday-start weeks within the date's year, the week
// containing January 1st being week 1.
func WeekNumber(date time.Time) int {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	pastDays := date.YearDay() - 1
	return int(math.Ceil(float64(pastDays+int(jan1.Weekday())+1) / 7))
}

type weekKey struct {
	year, week int
}

func WeeklyBuckets(series []StepEntry) []WeeklyBucket {
	sorted := make([]StepEntry, len(series))
	copy(sorted, series)
	sortAscending(sorted)

	index := make(map[weekKey]int)
	var buckets []WeeklyBucket
	totals := []int{}

	for _, e := range sorted {
		key := weekKey{year: e.Date.Year(), week: WeekNumber(e.Date)}
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, WeeklyBucket{
				Label: fmt.Sprintf("Week %d, %d", key.week, key.year),
				Year:  key.year,
				Week:  key.week,
			})
			totals = append(totals, 0)
		}
		totals[i] += e.Steps
		buckets[i].Dates = append(buckets[i].Dates, e.Date)
	}

	for i := range buckets {
		buckets[i].Days = len(buckets[i].Dates)
		buckets[i].Steps = RoundHalfUp(float64(totals[i]) / float64(buckets[i].Days))
	}
	return buckets
}

// MonthlyBuckets groups entries by month name, in order of first appearance.
// The same month of different years shares a bucket.
func MonthlyBuckets(series []StepEntry) []MonthlyBucket {
	sorted := make([]StepEntry, len(series))
	copy(sorted, series)
	sortAscending(sorted)

	index := make(map[time.Month]int)
	var buckets []MonthlyBucket
	totals := []int{}

	for _, e := range sorted {
		m := e.Date.Month()
		i, ok := index[m]
		if !ok {
			i = len(buckets)
			index[m] = i
			buckets = append(buckets, MonthlyBucket{Name: m.String()[:3], Month: int(m)})
			totals = append(totals, 0)
		}
		totals[i] += e.Steps
		buckets[i].Days++
	}

	for i := range buckets {
		buckets[i].Average = RoundHalfUp(float64(totals[i]) / float64(buckets[i].Days))
	}
	return buckets
}

// ChartSeries bounds the number of plotted points: daily points up to the
// threshold, weekly averages above it, then the most recent MaxPoints.
func ChartSeries(series []StepEntry, opts ChartOptions) Chart {
	var points []ChartPoint

	if len(series) > opts.Threshold {
		for _, b := range WeeklyBuckets(series) {
			points = append(points, ChartPoint{Label: b.Label, Steps: b.Steps, Days: b.Days})
		}
	} else {
		sorted := make([]StepEntry, len(series))
		copy(sorted, series)
		sortAscending(sorted)
		for _, e := range sorted {
			d := e.Date
			points = append(points, ChartPoint{Label: e.Label(), Steps: e.Steps, Days: 1, Date: &d})
		}
	}

	if opts.MaxPoints > 0 && len(points) > opts.MaxPoints {
		points = points[len(points)-opts.MaxPoints:]
	}

	chart := Chart{Points: points, Weekly: len(series) > opts.Threshold}
	if len(points) > 0 {
		total := 0
		for _, p := range points {
			total += p.Steps
		}
		chart.Average = RoundHalfUp(float64(total) / float64(len(points)))
	}
	if chart.Points == nil {
		chart.Points = []ChartPoint{}
	}
	return chart
}
