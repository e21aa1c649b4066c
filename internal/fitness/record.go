package fitness

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidRecord = errors.New("invalid record")

// Record holds the metrics of a single calendar day.
type Record struct {
	Date           time.Time `json:"-"`
	Steps          int       `json:"steps"`
	SleepHours     float64   `json:"sleepHours"`
	CaloriesBurned int       `json:"caloriesBurned"`
}

// DateString returns the record date in the YYYY-MM-DD form.
func (r Record) DateString() string {
	return r.Date.Format(DateLayout)
}

func (r Record) validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date missing", ErrInvalidRecord)
	}
	if r.Steps < 0 {
		return fmt.Errorf("%w: steps must be >= 0, got %d", ErrInvalidRecord, r.Steps)
	}
	if math.IsNaN(r.SleepHours) || r.SleepHours < 0 || r.SleepHours > 24 {
		return fmt.Errorf("%w: sleep hours must be in [0, 24], got %.2f", ErrInvalidRecord, r.SleepHours)
	}
	if r.CaloriesBurned < 0 {
		return fmt.Errorf("%w: calories burned must be >= 0, got %d", ErrInvalidRecord, r.CaloriesBurned)
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string into a calendar day (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: parse date [%s]: %w", ErrInvalidRecord, s, err)
	}
	return d, nil
}

// Day truncates t to its calendar day, keeping the year, month and day as seen in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
