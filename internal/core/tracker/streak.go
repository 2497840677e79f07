package tracker

import (
	"sort"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

// Streaks scans the ledger in ascending day order and finds runs of
// consecutive days whose amount reached the goal. The current streak
// is the run still open when the scan ends, even if its last day is in
// the past; the calendar highlights those days until the run breaks.
// With a non-positive goal no day counts, so 0 >= 0 never produces a
// trivial streak.
func (l Ledger) Streaks(goalML float64) domain.StreakState {
	days := make([]domain.DateKey, 0, len(l))
	for day := range l {
		if _, err := day.Time(); err != nil {
			continue
		}
		days = append(days, day)
	}
	// YYYY-MM-DD sorts chronologically as a string.
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	var (
		currentRun  []domain.DateKey
		longest     int
		previousDay domain.DateKey
		haveprev    bool
	)

	for _, day := range days {
		metGoal := goalML > 0 && l[day] >= goalML

		if !metGoal {
			if len(currentRun) > longest {
				longest = len(currentRun)
			}
			currentRun = nil
			haveprev = false
			continue
		}

		if haveprev && day == previousDay.AddDays(1) {
			currentRun = append(currentRun, day)
		} else {
			if len(currentRun) > longest {
				longest = len(currentRun)
			}
			currentRun = []domain.DateKey{day}
		}
		previousDay = day
		haveprev = true
	}

	if len(currentRun) > longest {
		longest = len(currentRun)
	}

	return domain.StreakState{
		CurrentStreak: len(currentRun),
		LongestStreak: longest,
		StreakDays:    currentRun,
	}
}
