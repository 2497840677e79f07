package domain

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidAmount = errors.New("intake amount must be finite")
	ErrInvalidUserID = errors.New("invalid user id")
)

// IntakeDay is one row of the ledger: total milliliters logged by a
// user on a calendar day. At most one row exists per (user, day).
type IntakeDay struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Day       DateKey   `json:"day" db:"day"`
	AmountML  float64   `json:"amount_ml" db:"amount_ml"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewIntakeDay(userID string, day DateKey, amountML float64) *IntakeDay {
	now := time.Now().UTC()

	return &IntakeDay{
		UserID:    userID,
		Day:       day,
		AmountML:  amountML,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d *IntakeDay) Validate() error {
	if strings.TrimSpace(d.UserID) == "" {
		return ErrInvalidUserID
	}
	if _, err := d.Day.Time(); err != nil {
		return err
	}
	if math.IsNaN(d.AmountML) || math.IsInf(d.AmountML, 0) || d.AmountML < 0 {
		return ErrInvalidAmount
	}
	return nil
}
