// Package tracker holds the pure intake math: the date-keyed ledger,
// goal progress, graph bucketing and streak detection. It has no I/O
// and no clock of its own; services feed it ledgers loaded from the
// repository and a reference day from the injected Clock.
package tracker

import (
	"math"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

// Window sizes used for goal-achievement averages. Monthly and yearly
// match the days the graph buckets cover (4 whole weeks, 12 of them),
// not calendar month/year lengths.
const (
	WeeklyWindowDays  = 7
	MonthlyWindowDays = 7 * 4
	YearlyWindowDays  = 7 * 4 * 12
)

// Ledger maps a calendar day to total milliliters logged on it.
// Amounts are always >= 0; Adjust maintains that invariant.
type Ledger map[domain.DateKey]float64

func FromDays(days []*domain.IntakeDay) Ledger {
	ledger := make(Ledger, len(days))
	for _, d := range days {
		ledger[d.Day] = d.AmountML
	}
	return ledger
}

func (l Ledger) Amount(day domain.DateKey) float64 {
	return l[day]
}

// Adjust applies a signed delta to a day, clamping the result at zero.
// It reports whether the stored amount actually changed so callers can
// skip persistence and refresh signals on no-ops (adjusting an empty
// day by a negative delta, or by zero, changes nothing).
func (l Ledger) Adjust(day domain.DateKey, deltaML float64) (float64, bool, error) {
	if math.IsNaN(deltaML) || math.IsInf(deltaML, 0) {
		return l[day], false, domain.ErrInvalidAmount
	}

	current := l[day]
	updated := math.Max(0, current+deltaML)

	if updated == current {
		return current, false, nil
	}

	l[day] = updated
	return updated, true, nil
}

// Progress is amount over goal, deliberately unclamped: values above
// 1.0 mean the goal was exceeded and the UI decides how to show that.
// A non-positive goal yields 0 rather than a division by zero.
func Progress(amountML, goalML float64) float64 {
	if goalML <= 0 {
		return 0
	}
	return amountML / goalML
}

// ProgressByDate derives the stored per-day ratio map that the widget
// snapshot carries alongside the raw ledger.
func (l Ledger) ProgressByDate(goalML float64) map[string]float64 {
	progress := make(map[string]float64, len(l))
	for day, amount := range l {
		progress[day.String()] = Progress(amount, goalML)
	}
	return progress
}

// TrailingProgress sums intake over the trailing window ending at
// 'today' (inclusive) and divides by the window's total goal, clamped
// to 1.0 for the ring displays.
func (l Ledger) TrailingProgress(today domain.DateKey, goalML float64, days int) float64 {
	if goalML <= 0 || days <= 0 {
		return 0
	}

	total := 0.0
	for offset := 0; offset < days; offset++ {
		total += l[today.AddDays(-offset)]
	}

	return math.Min(total/(goalML*float64(days)), 1.0)
}

// GoalAchievement averages goal attainment over a graph window and
// returns it as a percentage. Bucket values are in liters (as produced
// by the bucketing functions), so the goal is converted before the
// ratio is taken.
func GoalAchievement(bucketLiters []float64, goalML float64, totalDays int) float64 {
	if len(bucketLiters) == 0 || goalML <= 0 || totalDays <= 0 {
		return 0
	}

	total := 0.0
	for _, v := range bucketLiters {
		total += v
	}

	goalLiters := goalML / 1000.0
	return total / (goalLiters * float64(totalDays)) * 100
}
