package domain

import (
	"errors"
	"time"
)

var ErrInvalidDateKey = errors.New("invalid date key (must be YYYY-MM-DD)")

// DateKeyLayout is the wire and storage format for calendar days.
// All keys are interpreted in UTC so that the app, the widget and the
// backend agree on day boundaries regardless of device locale.
const DateKeyLayout = "2006-01-02"

// DateKey identifies a calendar day, independent of time of day.
type DateKey string

func NewDateKey(t time.Time) DateKey {
	return DateKey(t.UTC().Format(DateKeyLayout))
}

func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(DateKeyLayout, s); err != nil {
		return "", ErrInvalidDateKey
	}
	return DateKey(s), nil
}

// Time returns the midnight UTC instant of the day, or an error for
// keys that do not parse back into a date (corrupt persisted data).
func (d DateKey) Time() (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	return t, nil
}

func (d DateKey) AddDays(n int) DateKey {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return NewDateKey(t.AddDate(0, 0, n))
}

func (d DateKey) String() string {
	return string(d)
}

// Clock abstracts "now" so day-sensitive computations (weekly buckets,
// trailing windows) stay deterministic in tests.
type Clock interface {
	Now() time.Time
	Today() DateKey
}

type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

func (UTCClock) Today() DateKey {
	return NewDateKey(time.Now().UTC())
}
