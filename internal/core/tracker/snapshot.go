package tracker

import "github.com/brirusapps/waterpic-core/internal/core/domain"

// Snapshot packages the ledger and derived ratios in the shape the
// widget persists locally.
func (l Ledger) Snapshot(goalML float64) *domain.Snapshot {
	past := make(map[string]float64, len(l))
	for day, amount := range l {
		past[day.String()] = amount
	}

	return &domain.Snapshot{
		DailyGoalML:    goalML,
		PastWaterData:  past,
		ProgressByDate: l.ProgressByDate(goalML),
	}
}

// FromSnapshot rebuilds a ledger from persisted state. Keys that no
// longer parse as dates are skipped rather than failing the whole
// load, and negative amounts (which the ledger can never produce) are
// clamped to zero.
func FromSnapshot(snap *domain.Snapshot) (Ledger, float64) {
	if snap == nil {
		return Ledger{}, 0
	}

	ledger := make(Ledger, len(snap.PastWaterData))
	for raw, amount := range snap.PastWaterData {
		day, err := domain.ParseDateKey(raw)
		if err != nil {
			continue
		}
		if amount < 0 {
			amount = 0
		}
		ledger[day] = amount
	}

	return ledger, snap.DailyGoalML
}
