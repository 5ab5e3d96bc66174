package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BirthMoment is a local calendar date and clock hour with implicit zero minutes.
type BirthMoment struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
	Hour  int `json:"hour"`
}

// ValidDate reports whether day, month and year form a real Gregorian date.
func ValidDate(day, month, year int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// Validate checks the calendar date and the hour range.
func (m BirthMoment) Validate() error {
	if !ValidDate(m.Day, m.Month, m.Year) {
		return fmt.Errorf("%w: %02d.%02d.%d", ErrInvalidCalendarDate, m.Day, m.Month, m.Year)
	}
	if m.Hour < 0 || m.Hour > 23 {
		return fmt.Errorf("%w: %d", ErrInvalidHour, m.Hour)
	}
	return nil
}

// Date returns the calendar date at midnight UTC.
func (m BirthMoment) Date() time.Time {
	return time.Date(m.Year, time.Month(m.Month), m.Day, 0, 0, 0, 0, time.UTC)
}

// DateString formats the date as DD.MM.YYYY.
func (m BirthMoment) DateString() string {
	return fmt.Sprintf("%02d.%02d.%d", m.Day, m.Month, m.Year)
}

// TimeString formats the clock hour as HH:00.
func (m BirthMoment) TimeString() string {
	return fmt.Sprintf("%02d:00", m.Hour)
}

// ParseDate parses a DD.MM.YYYY string. The result is not validated.
func ParseDate(s string) (day, month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		vals[i], err = strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, s)
		}
	}
	return vals[0], vals[1], vals[2], nil
}
