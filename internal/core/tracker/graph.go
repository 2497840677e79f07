package tracker

import (
	"time"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

// mondayIndex maps a weekday to a Monday-first slot: Monday 0 ... Sunday 6.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// weekOfMonth returns the 1-based week a day falls in, with weeks
// starting on Monday and week 1 beginning on the 1st of the month.
func weekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return (t.Day()+mondayIndex(first)-1)/7 + 1
}

// WeeklyBuckets returns 7 slots in liters for the week containing
// 'today', Monday first. Days with no entry stay at zero.
func (l Ledger) WeeklyBuckets(today domain.DateKey) []float64 {
	buckets := make([]float64, 7)

	anchor, err := today.Time()
	if err != nil {
		return buckets
	}
	weekStart := anchor.AddDate(0, 0, -mondayIndex(anchor))

	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		buckets[mondayIndex(day)] = l[domain.NewDateKey(day)] / 1000.0
	}

	return buckets
}

// MonthlyBuckets returns 4 slots in liters keyed by week-of-month.
// Entries in a 5th partial week are dropped, and weeks are summed
// across every month ever logged, matching what the app's monthly
// graph has always displayed.
func (l Ledger) MonthlyBuckets() []float64 {
	buckets := make([]float64, 4)

	for day, amount := range l {
		t, err := day.Time()
		if err != nil {
			continue
		}
		week := weekOfMonth(t)
		if week >= 1 && week <= 4 {
			buckets[week-1] += amount / 1000.0
		}
	}

	return buckets
}

// YearlyBuckets returns 12 slots in liters keyed by calendar month,
// summed across every year ever logged (same display convention as
// MonthlyBuckets).
func (l Ledger) YearlyBuckets() []float64 {
	buckets := make([]float64, 12)

	for day, amount := range l {
		t, err := day.Time()
		if err != nil {
			continue
		}
		buckets[int(t.Month())-1] += amount / 1000.0
	}

	return buckets
}
