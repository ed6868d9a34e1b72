package hebdate

import (
	"fmt"
	"time"
)

// Date is a day in the Hebrew calendar. Dates are values; every method
// returns a new Date rather than changing the receiver.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate builds a Date. A day past the end of the month is clamped to the
// last day of the month. Years run from 1 through MaxYear.
func NewDate(year int, month Month, day int) (Date, error) {
	if year < 1 || year > MaxYear {
		return Date{}, fmt.Errorf("%w: %d (must be 1 to %d)", ErrInvalidYear, year, MaxYear)
	}
	if !month.InYear(year) {
		return Date{}, fmt.Errorf("%w: %d in year %d", ErrInvalidMonth, int(month), year)
	}
	if day < 1 {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if n := DaysInMonth(year, month); day > n {
		day = n
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is NewDate for arguments known to be valid. It panics on error.
func MustDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromEpochDay returns the Hebrew date of e.
func FromEpochDay(e EpochDay) (Date, error) {
	if e < RoshHashana(1) {
		return Date{}, fmt.Errorf("%w: %s", ErrOutOfRange, e)
	}

	// Estimate from the mean year length, then correct.
	year := int((int64(e)+epochOffset-1)*492480/179876755) + 1
	if year < 1 {
		year = 1
	}
	for RoshHashana(year+1) <= e {
		year++
	}
	for year > 1 && RoshHashana(year) > e {
		year--
	}

	rem := int(e - RoshHashana(year))
	n := MonthsInYear(year)
	for ordinal := 1; ordinal <= n; ordinal++ {
		m := MonthFromOrdinal(year, ordinal)
		length := DaysInMonth(year, m)
		if rem < length {
			return Date{year: year, month: m, day: rem + 1}, nil
		}
		rem -= length
	}

	// Unreachable: the months of a year sum to its length.
	panic(fmt.Sprintf("hebdate: day %d overflows year %d", e, year))
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.year == 0 }

// IsLeapYear reports whether the year of d is a leap year.
func (d Date) IsLeapYear() bool { return IsLeapYear(d.year) }

// DaysSinceRoshHashana returns the zero-based day of the year.
func (d Date) DaysSinceRoshHashana() int {
	days := d.day - 1
	for ordinal := 1; ordinal < d.month.Ordinal(d.year); ordinal++ {
		days += DaysInMonth(d.year, MonthFromOrdinal(d.year, ordinal))
	}
	return days
}

// EpochDay returns the civil day of d.
func (d Date) EpochDay() EpochDay {
	return RoshHashana(d.year) + EpochDay(d.DaysSinceRoshHashana())
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.EpochDay().Weekday()
}

// Add returns the date n days after d. n may be negative.
func (d Date) Add(n int) Date {
	out, err := FromEpochDay(d.EpochDay().Add(n))
	if err != nil {
		panic(err)
	}
	return out
}

// WithDay returns d moved to day of the same month, clamped to the month.
func (d Date) WithDay(day int) (Date, error) {
	return NewDate(d.year, d.month, day)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	a, b := d.EpochDay(), o.EpochDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d == o }

// String formats d as "15 Nisan 5784" with English month names.
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.day, English.Month(d.month, d.year), d.year)
}
