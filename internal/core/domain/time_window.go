package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownTimeWindow = errors.New("unknown time window")

type TimeWindow string

const (
	WindowThisWeek    TimeWindow = "thisWeek"
	WindowThisMonth   TimeWindow = "thisMonth"
	WindowLast7Days   TimeWindow = "last7Days"
	WindowLast30Days  TimeWindow = "last30Days"
	WindowLast6Months TimeWindow = "last6Months"
	WindowLastYear    TimeWindow = "lastYear"
	WindowAllTime     TimeWindow = "allTime"

	DefaultTimeWindow = WindowLast30Days
)

var ValidTimeWindows = []TimeWindow{
	WindowThisWeek,
	WindowThisMonth,
	WindowLast7Days,
	WindowLast30Days,
	WindowLast6Months,
	WindowLastYear,
	WindowAllTime,
}

var windowAliases = map[string]TimeWindow{
	"7days":   WindowLast7Days,
	"30days":  WindowLast30Days,
	"6months": WindowLast6Months,
	"1year":   WindowLastYear,
	"all":     WindowAllTime,
}

func ParseTimeWindow(s string) (TimeWindow, error) {
	name := strings.TrimSpace(s)
	for _, tw := range ValidTimeWindows {
		if strings.EqualFold(string(tw), name) {
			return tw, nil
		}
	}
	if tw, ok := windowAliases[strings.ToLower(name)]; ok {
		return tw, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTimeWindow, s)
}

func (tw TimeWindow) Label() string {
	switch tw {
	case WindowThisWeek:
		return "This Week"
	case WindowThisMonth:
		return "This Month"
	case WindowLast7Days:
		return "Last 7 Days"
	case WindowLast30Days:
		return "Last 30 Days"
	case WindowLast6Months:
		return "Last 6 Months"
	case WindowLastYear:
		return "Last Year"
	case WindowAllTime:
		return "All Time"
	default:
		return string(tw)
	}
}

// Start returns the inclusive lower bound of the window anchored at now.
// The upper bound is always now itself.
func (tw TimeWindow) Start(now time.Time) time.Time {
	switch tw {
	case WindowThisWeek:
		return NormalizeDate(now).AddDate(0, 0, -int(now.Weekday()))
	case WindowThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case WindowLast7Days:
		return now.AddDate(0, 0, -7)
	case WindowLast30Days:
		return now.AddDate(0, 0, -30)
	case WindowLast6Months:
		return subMonths(now, 6)
	case WindowLastYear:
		return subMonths(now, 12)
	default:
		return time.Time{}
	}
}

// subMonths moves back n calendar months, clamping the day to the length of
// the target month (Aug 31 minus 6 months is Feb 28/29, not Mar 3).
func subMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// Filter returns the entries with start <= date <= now, sorted ascending.
func Filter(entries []StepEntry, tw TimeWindow, now time.Time) []StepEntry {
	start := tw.Start(now)

	out := make([]StepEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date.Before(start) || e.Date.After(now) {
			continue
		}
		out = append(out, e)
	}

	sortAscending(out)
	return out
}
