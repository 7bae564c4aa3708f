package models

import (
	"time"

	"github.com/vytor/matchtracker/internal/errors"
)

// DayLayout is the persisted and wire format of a Day.
const DayLayout = "2006-01-02"

// Day is a calendar date with no time component.
type Day string

// ParseDay validates s as YYYY-MM-DD. The "overall" sentinel is not a day.
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(DayLayout, s); err != nil {
		return "", errors.NewInvalidDayError(s)
	}
	return Day(s), nil
}

// DayOf returns the day t falls on in t's location.
func DayOf(t time.Time) Day {
	return Day(t.Format(DayLayout))
}

// Valid reports whether d is a well-formed calendar date.
func (d Day) Valid() bool {
	_, err := ParseDay(string(d))
	return err == nil
}

// IsZero reports whether d is unset.
func (d Day) IsZero() bool { return d == "" }

func (d Day) String() string { return string(d) }

// Time returns midnight UTC of d. Invalid days return the zero time.
func (d Day) Time() time.Time {
	t, err := time.Parse(DayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}
