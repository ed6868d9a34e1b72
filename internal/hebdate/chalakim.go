// Package hebdate implements the arithmetic of the fixed Hebrew calendar:
// elapsed-day counts, the molad and its postponements, year classification
// and the Hebrew date value built on top of them.
//
// Everything in this package is a pure function of its arguments. The only
// mutable type is Cursor, which is meant to have a single owner.
package hebdate

// Chalakim is a count of chalakim ("parts"). There are 1080 parts in an hour.
type Chalakim int64

const (
	PartsPerMinute Chalakim = 18
	PartsPerHour   Chalakim = 1080
	PartsPerDay    Chalakim = 24 * PartsPerHour

	// LunarMonth is the mean synodic month: 29 days, 12 hours, 793 parts.
	LunarMonth Chalakim = 29*PartsPerDay + 12*PartsPerHour + 793

	// moladTohu is the molad of Tishrei of year 1 (BaHaRaD) measured from
	// the start of the day count.
	moladTohu Chalakim = PartsPerDay + 5*PartsPerHour + 204
)

// Days returns the number of whole days in c.
func (c Chalakim) Days() int64 {
	return int64(c / PartsPerDay)
}

// DayParts returns the parts remaining after the whole days are removed.
func (c Chalakim) DayParts() Chalakim {
	return c % PartsPerDay
}

// Split breaks a within-day part count into hours, minutes and leftover parts.
func (c Chalakim) Split() (hours, minutes, parts int) {
	hours = int(c / PartsPerHour)
	rem := c % PartsPerHour
	minutes = int(rem / PartsPerMinute)
	parts = int(rem % PartsPerMinute)
	return hours, minutes, parts
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the modulus matching floorDiv.
func floorMod(a, b int64) int64 {
	return a - b*floorDiv(a, b)
}
