package hebdate

import "fmt"

// Month is a Hebrew month numbered from Nisan. In a leap year Adar is
// Adar I and AdarII is the added month.
type Month int

const (
	Nisan Month = iota + 1
	Iyar
	Sivan
	Tammuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Teves
	Shevat
	Adar
	AdarII
)

// InYear reports whether m occurs in year.
func (m Month) InYear(year int) bool {
	if m < Nisan || m > AdarII {
		return false
	}
	return m != AdarII || IsLeapYear(year)
}

// Ordinal returns the position of m in year counting Tishrei as 1. Every
// computation that walks the months of a year goes through Ordinal.
func (m Month) Ordinal(year int) int {
	if IsLeapYear(year) {
		return (int(m)+6)%13 + 1
	}
	return (int(m)+5)%12 + 1
}

// MonthFromOrdinal is the inverse of Month.Ordinal.
func MonthFromOrdinal(year, ordinal int) Month {
	return Month((ordinal+5)%MonthsInYear(year) + 1)
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month Month) int {
	switch month {
	case Iyar, Tammuz, Elul, Teves, AdarII:
		return 29
	case Cheshvan:
		if IsCheshvanLong(year) {
			return 30
		}
		return 29
	case Kislev:
		if IsKislevShort(year) {
			return 29
		}
		return 30
	case Adar:
		if IsLeapYear(year) {
			return 30
		}
		return 29
	default:
		return 30
	}
}

// String returns the English name of m, treating Adar as the month of a
// common year.
func (m Month) String() string {
	if m < Nisan || m > AdarII {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return English.Months[m]
}
