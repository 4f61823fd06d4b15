package domain

import "time"

// demoData is the dataset the dashboard starts with on an empty store.
var demoData = []struct {
	year  int
	month time.Month
	day   int
	steps int
}{
	{2023, time.May, 1, 5432},
	{2023, time.May, 2, 6789},
	{2023, time.May, 3, 4321},
	{2023, time.May, 4, 7890},
	{2023, time.May, 5, 6543},
	{2023, time.May, 6, 8765},
	{2023, time.May, 7, 9876},
	{2023, time.May, 15, 7654},
	{2023, time.May, 22, 8432},
	{2023, time.May, 29, 9123},
	{2023, time.June, 5, 7890},
	{2023, time.June, 12, 8765},
	{2023, time.June, 19, 9432},
	{2023, time.June, 26, 8765},
	{2023, time.July, 3, 7654},
	{2023, time.July, 10, 8432},
	{2023, time.July, 17, 9123},
	{2023, time.July, 24, 8765},
	{2023, time.July, 31, 9432},
	{2023, time.August, 7, 8765},
	{2023, time.August, 14, 7654},
	{2023, time.August, 21, 8432},
	{2023, time.August, 28, 9123},
	{2023, time.September, 4, 8765},
	{2023, time.September, 11, 9432},
	{2023, time.September, 18, 8765},
	{2023, time.September, 25, 7654},
	{2023, time.October, 2, 8432},
	{2023, time.October, 9, 9123},
	{2023, time.October, 16, 8765},
	{2023, time.October, 23, 9432},
	{2023, time.October, 30, 8765},
	{2023, time.November, 6, 7654},
	{2023, time.November, 13, 8432},
	{2023, time.November, 20, 9123},
	{2023, time.November, 27, 8765},
	{2023, time.December, 4, 9432},
	{2023, time.December, 11, 8765},
	{2023, time.December, 18, 7654},
	{2023, time.December, 25, 8432},
	{2024, time.January, 1, 9123},
	{2024, time.January, 8, 8765},
	{2024, time.January, 15, 9432},
	{2024, time.January, 22, 8765},
	{2024, time.January, 29, 7654},
	{2024, time.February, 5, 8432},
	{2024, time.February, 12, 9123},
	{2024, time.February, 19, 8765},
	{2024, time.February, 26, 9432},
	{2024, time.March, 4, 8765},
	{2024, time.March, 11, 7654},
	{2024, time.March, 18, 8432},
	{2024, time.March, 25, 9123},
	{2024, time.April, 1, 8765},
	{2024, time.April, 8, 9432},
	{2024, time.April, 15, 8765},
	{2024, time.April, 22, 7654},
	{2024, time.April, 29, 8432},
	{2024, time.May, 6, 9123},
	{2024, time.May, 13, 8765},
	{2024, time.May, 20, 9432},
	{2024, time.May, 27, 8765},
}

// SeedEntries returns the demo dataset with dates at midnight in loc.
func SeedEntries(loc *time.Location) []StepEntry {
	out := make([]StepEntry, 0, len(demoData))
	for _, d := range demoData {
		out = append(out, StepEntry{
			Date:  time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc),
			Steps: d.steps,
		})
	}
	return out
}
