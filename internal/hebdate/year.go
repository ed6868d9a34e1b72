package hebdate

// YearType classifies a year by the lengths of Cheshvan and Kislev.
type YearType int

const (
	// Deficient years have a 29-day Kislev.
	Deficient YearType = iota
	// Regular years have a 29-day Cheshvan and a 30-day Kislev.
	Regular
	// Complete years have a 30-day Cheshvan.
	Complete
)

// String returns the lowercase name of t.
func (t YearType) String() string {
	switch t {
	case Deficient:
		return "deficient"
	case Regular:
		return "regular"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// MaxYear is the last Hebrew year accepted from callers: the year in
// progress at the end of Gregorian 9999, the last four-digit civil year.
const MaxYear = 9999 + 3761

// IsLeapYear reports whether year has thirteen months. Years 3, 6, 8, 11,
// 14, 17 and 19 of each 19-year cycle are leap years.
func IsLeapYear(year int) bool {
	return floorMod(int64(7*year+1), 19) < 7
}

// MonthsInYear returns 13 for leap years and 12 otherwise.
func MonthsInYear(year int) int {
	if IsLeapYear(year) {
		return 13
	}
	return 12
}

// YearLength returns the number of days in year.
func YearLength(year int) int {
	return int(RoshHashana(year+1) - RoshHashana(year))
}

// TypeOf classifies year.
func TypeOf(year int) YearType {
	switch YearLength(year) % 10 {
	case 3:
		return Deficient
	case 5:
		return Complete
	default:
		return Regular
	}
}

// IsCheshvanLong reports whether Cheshvan has 30 days in year.
func IsCheshvanLong(year int) bool {
	return TypeOf(year) == Complete
}

// IsKislevShort reports whether Kislev has 29 days in year.
func IsKislevShort(year int) bool {
	return TypeOf(year) == Deficient
}
