package calendar

import (
	"fmt"
	"time"

	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// DayName returns the English weekday name of date (Sunday ... Shabbos).
func DayName(date hebdate.EpochDay) string {
	return hebdate.English.Weekday(date.Weekday())
}

// Ordinal returns the ordinal form of a number (1st, 2nd, 3rd, 4th, 11th, 21st, etc.)
func Ordinal(n int) string {
	switch n % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}

// ParseDateString parses a date string in YYYY-MM-DD format
func ParseDateString(dateStr string) (hebdate.EpochDay, error) {
	return hebdate.ParseEpochDay(dateStr)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date hebdate.EpochDay) string {
	return date.String()
}

// Today returns the civil day of now in loc.
func Today(now time.Time, loc *time.Location) hebdate.EpochDay {
	if loc == nil {
		loc = time.UTC
	}
	t := now.In(loc)
	d, _ := hebdate.FromGregorian(t.Year(), t.Month(), t.Day())
	return d
}
