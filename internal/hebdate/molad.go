package hebdate

// epochOffset converts an elapsed-day count into an EpochDay.
const epochOffset = 1373428

// Molad is the mean conjunction of a month expressed in civil terms: the
// civil day it falls on and the time after midnight.
type Molad struct {
	Day      EpochDay
	Hours    int
	Minutes  int
	Chalakim int
}

// monthsElapsed returns the months between Molad Tohu and Tishrei of year.
func monthsElapsed(year int) int64 {
	y := int64(year - 1)
	cycles := y / 19
	inCycle := y % 19
	return 235*cycles + 12*inCycle + (7*inCycle+1)/19
}

// ChalakimSinceMoladTohu returns the parts from the start of the day count
// to the molad of the month with the given Tishrei-relative ordinal
// (Tishrei = 1).
func ChalakimSinceMoladTohu(year, ordinal int) Chalakim {
	months := monthsElapsed(year) + int64(ordinal-1)
	return moladTohu + Chalakim(months)*LunarMonth
}

// ElapsedDays returns the number of days from the start of the day count
// to Rosh Hashana of year, after applying the postponement rules.
func ElapsedDays(year int) int {
	molad := ChalakimSinceMoladTohu(year, 1)
	day := molad.Days()
	parts := molad.DayParts()

	switch {
	case parts >= 19440:
		// Molad zaken: noon or later.
		day++
	case day%7 == 2 && parts >= 9924 && !IsLeapYear(year):
		// GaTRaD: Tuesday 9h 204p in a common year.
		day++
	case day%7 == 1 && parts >= 16789 && IsLeapYear(year-1):
		// BeTUTaKPaT: Monday 15h 589p following a leap year.
		day++
	}

	// Lo ADU Rosh.
	switch day % 7 {
	case 0, 3, 5:
		day++
	}

	return int(day)
}

// RoshHashana returns the civil day of 1 Tishrei of year.
func RoshHashana(year int) EpochDay {
	return EpochDay(ElapsedDays(year) - epochOffset)
}

// MoladOf returns the molad of month in year. The molad day begins at
// 18:00 of the previous civil day, so a molad in the first six hours falls
// on the civil day before.
func MoladOf(year int, month Month) Molad {
	ch := ChalakimSinceMoladTohu(year, month.Ordinal(year))
	day := ch.Days()
	hours, minutes, parts := ch.DayParts().Split()

	civil := EpochDay(day - epochOffset)
	if hours < 6 {
		civil--
	}

	return Molad{
		Day:      civil,
		Hours:    (hours + 18) % 24,
		Minutes:  minutes,
		Chalakim: parts,
	}
}
