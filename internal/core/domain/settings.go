package domain

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidDailyGoal       = errors.New("daily goal must be a positive amount of milliliters")
	ErrInvalidPreferredAmount = errors.New("preferred amount must be a positive amount of milliliters")
	ErrInvalidReminderWindow  = errors.New("reminder window hours must be 0-23 with start before end")
	ErrInvalidReminderStep    = errors.New("reminder interval must be at least 1 hour")
)

// Defaults mirror what the app seeds on first launch.
const (
	DefaultDailyGoalML       = 3400.0
	DefaultPreferredAmountML = 200.0
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 22
	DefaultReminderInterval  = 2
)

// Settings is the per-user configuration surface: the daily goal the
// tracker measures against, the preferred tap increment, and the local
// reminder window the client schedules notifications from.
type Settings struct {
	UserID              string    `json:"user_id" db:"user_id"`
	DailyGoalML         float64   `json:"daily_goal_ml" db:"daily_goal_ml"`
	PreferredAmountML   float64   `json:"preferred_amount_ml" db:"preferred_amount_ml"`
	ReminderStartHour   int       `json:"reminder_start_hour" db:"reminder_start_hour"`
	ReminderEndHour     int       `json:"reminder_end_hour" db:"reminder_end_hour"`
	ReminderIntervalHrs int       `json:"reminder_interval_hours" db:"reminder_interval_hours"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:              userID,
		DailyGoalML:         DefaultDailyGoalML,
		PreferredAmountML:   DefaultPreferredAmountML,
		ReminderStartHour:   DefaultReminderStartHour,
		ReminderEndHour:     DefaultReminderEndHour,
		ReminderIntervalHrs: DefaultReminderInterval,
		UpdatedAt:           time.Now().UTC(),
	}
}

func (s *Settings) Validate() error {
	if s.UserID == "" {
		return ErrInvalidUserID
	}
	if math.IsNaN(s.DailyGoalML) || math.IsInf(s.DailyGoalML, 0) || s.DailyGoalML <= 0 {
		return ErrInvalidDailyGoal
	}
	if math.IsNaN(s.PreferredAmountML) || math.IsInf(s.PreferredAmountML, 0) || s.PreferredAmountML <= 0 {
		return ErrInvalidPreferredAmount
	}
	if s.ReminderStartHour < 0 || s.ReminderStartHour > 23 ||
		s.ReminderEndHour < 0 || s.ReminderEndHour > 23 ||
		s.ReminderStartHour >= s.ReminderEndHour {
		return ErrInvalidReminderWindow
	}
	if s.ReminderIntervalHrs < 1 {
		return ErrInvalidReminderStep
	}
	return nil
}
