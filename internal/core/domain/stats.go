package domain

// GraphData carries the three fixed-length bucket series the app's
// statistics screen renders, in liters.
type GraphData struct {
	Weekly  []float64 `json:"weekly"`  // 7 slots, Monday first
	Monthly []float64 `json:"monthly"` // 4 slots, week-of-month
	Yearly  []float64 `json:"yearly"`  // 12 slots, calendar month
}

// StreakState is the result of a full ledger scan. A day belongs to a
// streak iff its logged amount reached the daily goal.
type StreakState struct {
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	StreakDays    []DateKey `json:"streak_days"`
}

// WindowProgress is trailing-window intake over the window's total
// goal, clamped to 1.0 for the ring displays.
type WindowProgress struct {
	Weekly  float64 `json:"weekly"`  // last 7 days
	Monthly float64 `json:"monthly"` // last 30 days
	Yearly  float64 `json:"yearly"`  // last 365 days
}

// Achievement holds average goal-achievement percentages per graph
// window. Unlike WindowProgress these are not clamped; exceeding the
// goal shows as >100.
type Achievement struct {
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// Overview is everything the statistics screen needs in one response.
type Overview struct {
	Today         DateKey        `json:"today"`
	TodayAmountML float64        `json:"today_amount_ml"`
	TodayProgress float64        `json:"today_progress"`
	DailyGoalML   float64        `json:"daily_goal_ml"`
	Graphs        GraphData      `json:"graphs"`
	Progress      WindowProgress `json:"progress"`
	Achievement   Achievement    `json:"achievement"`
	Streaks       StreakState    `json:"streaks"`
}
