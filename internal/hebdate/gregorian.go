package hebdate

import (
	"fmt"
	"time"
)

// EpochDay counts days with day 1 being January 1 of year 1 in the
// proleptic Gregorian calendar. It is the common currency between the
// Gregorian and Hebrew calendars.
type EpochDay int

// IsGregorianLeapYear reports whether year has a February 29.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInGregorianMonth returns the length of month in year.
func DaysInGregorianMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FromGregorian converts a Gregorian date to an EpochDay.
func FromGregorian(year int, month time.Month, day int) (EpochDay, error) {
	if year < 1 {
		return 0, fmt.Errorf("%w: year %d", ErrInvalidGregorian, year)
	}
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidGregorian, month)
	}
	if day < 1 || day > DaysInGregorianMonth(year, month) {
		return 0, fmt.Errorf("%w: day %d of %s %d", ErrInvalidGregorian, day, month, year)
	}
	return fixedFromGregorian(year, month, day), nil
}

// FromTime converts the calendar date of t, in t's location, to an EpochDay.
// The time of day is ignored.
func FromTime(t time.Time) EpochDay {
	y, m, d := t.Date()
	return fixedFromGregorian(y, m, d)
}

func fixedFromGregorian(year int, month time.Month, day int) EpochDay {
	y := int64(year - 1)
	m := int64(month)
	n := 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
	n += floorDiv(367*m-362, 12)
	if m > 2 {
		if IsGregorianLeapYear(year) {
			n--
		} else {
			n -= 2
		}
	}
	return EpochDay(n + int64(day))
}

// Gregorian returns the proleptic Gregorian date of e.
func (e EpochDay) Gregorian() (year int, month time.Month, day int) {
	year = gregorianYear(e)
	prior := int64(e - fixedFromGregorian(year, time.January, 1))
	var correction int64
	if e >= fixedFromGregorian(year, time.March, 1) {
		if IsGregorianLeapYear(year) {
			correction = 1
		} else {
			correction = 2
		}
	}
	month = time.Month(floorDiv(12*(prior+correction)+373, 367))
	day = int(e-fixedFromGregorian(year, month, 1)) + 1
	return year, month, day
}

func gregorianYear(e EpochDay) int {
	d0 := int64(e) - 1
	n400 := floorDiv(d0, 146097)
	d1 := floorMod(d0, 146097)
	n100 := floorDiv(d1, 36524)
	d2 := floorMod(d1, 36524)
	n4 := floorDiv(d2, 1461)
	d3 := floorMod(d2, 1461)
	n1 := floorDiv(d3, 365)
	year := int(400*n400 + 100*n100 + 4*n4 + n1)
	if n100 == 4 || n1 == 4 {
		return year
	}
	return year + 1
}

// Time returns midnight UTC on e.
func (e EpochDay) Time() time.Time {
	y, m, d := e.Gregorian()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of e.
func (e EpochDay) Weekday() time.Weekday {
	return time.Weekday(floorMod(int64(e), 7))
}

// Add returns the day n days after e.
func (e EpochDay) Add(n int) EpochDay {
	return e + EpochDay(n)
}

// String formats e as YYYY-MM-DD.
func (e EpochDay) String() string {
	y, m, d := e.Gregorian()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseEpochDay parses a YYYY-MM-DD date.
func ParseEpochDay(s string) (EpochDay, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGregorian, s)
	}
	return FromTime(t), nil
}
