package hebdate

import (
	"errors"
	"testing"
	"time"
)

// =============================================================================
// Gregorian conversion
// =============================================================================

func TestFromGregorian(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		want    EpochDay
		weekday time.Weekday
	}{
		{"first day", 1, time.January, 1, 1, time.Monday},
		{"unix epoch", 1970, time.January, 1, 719163, time.Thursday},
		{"y2k", 2000, time.January, 1, 730120, time.Saturday},
		{"rosh hashana 5785", 2024, time.October, 3, 739162, time.Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGregorian(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("FromGregorian() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FromGregorian() = %d, want %d", got, tt.want)
			}
			if got.Weekday() != tt.weekday {
				t.Errorf("Weekday() = %s, want %s", got.Weekday(), tt.weekday)
			}
			y, m, d := got.Gregorian()
			if y != tt.year || m != tt.month || d != tt.day {
				t.Errorf("Gregorian() = %d-%d-%d, want %d-%d-%d", y, m, d, tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestFromGregorian_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"year zero", 0, time.January, 1},
		{"month 13", 2024, 13, 1},
		{"day zero", 2024, time.March, 0},
		{"feb 29 common year", 2023, time.February, 29},
		{"feb 29 century", 1900, time.February, 29},
		{"april 31", 2024, time.April, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGregorian(tt.year, tt.month, tt.day)
			if !errors.Is(err, ErrInvalidGregorian) {
				t.Errorf("FromGregorian() error = %v, want ErrInvalidGregorian", err)
			}
		})
	}
}

func TestGregorianRoundTrip(t *testing.T) {
	start, _ := FromGregorian(1599, time.December, 1)
	end, _ := FromGregorian(2401, time.March, 1)
	for e := start; e <= end; e++ {
		y, m, d := e.Gregorian()
		back, err := FromGregorian(y, m, d)
		if err != nil {
			t.Fatalf("FromGregorian(%d, %d, %d) error = %v", y, m, d, err)
		}
		if back != e {
			t.Fatalf("round trip of %d gave %d", e, back)
		}
	}
}

func TestEpochDay_TimeAndString(t *testing.T) {
	e, _ := FromGregorian(2024, time.February, 29)
	if got := e.String(); got != "2024-02-29" {
		t.Errorf("String() = %q, want %q", got, "2024-02-29")
	}
	if got := FromTime(e.Time()); got != e {
		t.Errorf("FromTime(Time()) = %d, want %d", got, e)
	}

	parsed, err := ParseEpochDay("2024-02-29")
	if err != nil {
		t.Fatalf("ParseEpochDay() error = %v", err)
	}
	if parsed != e {
		t.Errorf("ParseEpochDay() = %d, want %d", parsed, e)
	}
	if _, err := ParseEpochDay("2024-13-01"); !errors.Is(err, ErrInvalidGregorian) {
		t.Errorf("ParseEpochDay(bad) error = %v, want ErrInvalidGregorian", err)
	}
}

// =============================================================================
// Molad and Rosh Hashana
// =============================================================================

func TestElapsedDays(t *testing.T) {
	if got := ElapsedDays(1); got != 1 {
		t.Errorf("ElapsedDays(1) = %d, want 1", got)
	}
	if got := ElapsedDays(5785); got != 2112590 {
		t.Errorf("ElapsedDays(5785) = %d, want 2112590", got)
	}
	if got := monthsElapsed(5785); got != 71539 {
		t.Errorf("monthsElapsed(5785) = %d, want 71539", got)
	}
}

func TestRoshHashana(t *testing.T) {
	tests := []struct {
		year    int
		date    string
		weekday time.Weekday
	}{
		{5780, "2019-09-30", time.Monday},
		{5781, "2020-09-19", time.Saturday},
		{5782, "2021-09-07", time.Tuesday},
		{5784, "2023-09-16", time.Saturday},
		{5785, "2024-10-03", time.Thursday},
		{5786, "2025-09-23", time.Tuesday},
		{5787, "2026-09-12", time.Saturday},
	}

	for _, tt := range tests {
		got := RoshHashana(tt.year)
		if got.String() != tt.date {
			t.Errorf("RoshHashana(%d) = %s, want %s", tt.year, got, tt.date)
		}
		if got.Weekday() != tt.weekday {
			t.Errorf("RoshHashana(%d) weekday = %s, want %s", tt.year, got.Weekday(), tt.weekday)
		}
	}
}

func TestRoshHashana_NeverSundayWednesdayFriday(t *testing.T) {
	for year := 1; year <= 7000; year++ {
		switch RoshHashana(year).Weekday() {
		case time.Sunday, time.Wednesday, time.Friday:
			t.Fatalf("Rosh Hashana %d falls on %s", year, RoshHashana(year).Weekday())
		}
	}
}

func TestMoladOf(t *testing.T) {
	got := MoladOf(5785, Tishrei)
	want := Molad{Hours: 3, Minutes: 21, Chalakim: 13}
	want.Day, _ = FromGregorian(2024, time.October, 3)
	if got != want {
		t.Errorf("MoladOf(5785, Tishrei) = %+v, want %+v", got, want)
	}

	// Consecutive molados are one mean month apart.
	a := ChalakimSinceMoladTohu(5785, 1)
	b := ChalakimSinceMoladTohu(5785, 2)
	if b-a != LunarMonth {
		t.Errorf("molad spacing = %d, want %d", b-a, LunarMonth)
	}
}

// =============================================================================
// Year classification
// =============================================================================

func TestIsLeapYear_Cycle(t *testing.T) {
	leap := map[int]bool{3: true, 6: true, 8: true, 11: true, 14: true, 17: true, 19: true}
	for cycle := 0; cycle < 320; cycle++ {
		for pos := 1; pos <= 19; pos++ {
			year := cycle*19 + pos
			if IsLeapYear(year) != leap[pos] {
				t.Fatalf("IsLeapYear(%d) = %v, want %v", year, IsLeapYear(year), leap[pos])
			}
		}
	}
}

func TestYearLength(t *testing.T) {
	tests := []struct {
		year   int
		length int
		typ    YearType
	}{
		{5780, 355, Complete},
		{5781, 353, Deficient},
		{5782, 384, Regular},
		{5783, 355, Complete},
		{5784, 383, Deficient},
		{5785, 355, Complete},
		{5786, 354, Regular},
		{5787, 385, Complete},
	}

	for _, tt := range tests {
		if got := YearLength(tt.year); got != tt.length {
			t.Errorf("YearLength(%d) = %d, want %d", tt.year, got, tt.length)
		}
		if got := TypeOf(tt.year); got != tt.typ {
			t.Errorf("TypeOf(%d) = %s, want %s", tt.year, got, tt.typ)
		}
		if IsCheshvanLong(tt.year) != (tt.typ == Complete) {
			t.Errorf("IsCheshvanLong(%d) = %v", tt.year, IsCheshvanLong(tt.year))
		}
		if IsKislevShort(tt.year) != (tt.typ == Deficient) {
			t.Errorf("IsKislevShort(%d) = %v", tt.year, IsKislevShort(tt.year))
		}
	}
}

func TestYearLength_Valid(t *testing.T) {
	valid := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for year := 1; year <= 7000; year++ {
		n := YearLength(year)
		if !valid[n] {
			t.Fatalf("YearLength(%d) = %d", year, n)
		}
		if (n > 355) != IsLeapYear(year) {
			t.Fatalf("YearLength(%d) = %d disagrees with IsLeapYear", year, n)
		}

		sum := 0
		for m := Nisan; m <= AdarII; m++ {
			if m.InYear(year) {
				sum += DaysInMonth(year, m)
			}
		}
		if sum != n {
			t.Fatalf("months of %d sum to %d, want %d", year, sum, n)
		}
	}
}

// =============================================================================
// Months
// =============================================================================

func TestMonthOrdinal(t *testing.T) {
	tests := []struct {
		year    int
		month   Month
		ordinal int
	}{
		{5785, Tishrei, 1},
		{5785, Shevat, 5},
		{5785, Adar, 6},
		{5785, Nisan, 7},
		{5785, Elul, 12},
		{5784, Adar, 6},
		{5784, AdarII, 7},
		{5784, Nisan, 8},
		{5784, Elul, 13},
	}

	for _, tt := range tests {
		if got := tt.month.Ordinal(tt.year); got != tt.ordinal {
			t.Errorf("%s.Ordinal(%d) = %d, want %d", tt.month, tt.year, got, tt.ordinal)
		}
		if got := MonthFromOrdinal(tt.year, tt.ordinal); got != tt.month {
			t.Errorf("MonthFromOrdinal(%d, %d) = %s, want %s", tt.year, tt.ordinal, got, tt.month)
		}
	}
}

func TestNames_Month(t *testing.T) {
	if got := English.Month(Adar, 5784); got != "Adar I" {
		t.Errorf("English.Month(Adar, 5784) = %q, want %q", got, "Adar I")
	}
	if got := English.Month(Adar, 5785); got != "Adar" {
		t.Errorf("English.Month(Adar, 5785) = %q, want %q", got, "Adar")
	}
	if got := Hebrew.Month(Tishrei, 5785); got != "תשרי" {
		t.Errorf("Hebrew.Month(Tishrei) = %q", got)
	}

	custom := English
	custom.Months[Teves] = "Tevet"
	if got := custom.Month(Teves, 5785); got != "Tevet" {
		t.Errorf("custom.Month(Teves) = %q, want %q", got, "Tevet")
	}
	if got := English.Month(Teves, 5785); got != "Teves" {
		t.Errorf("English table changed by override: %q", got)
	}
}

// =============================================================================
// Dates
// =============================================================================

func TestFromEpochDay(t *testing.T) {
	tests := []struct {
		greg  string
		year  int
		month Month
		day   int
	}{
		{"2024-10-03", 5785, Tishrei, 1},
		{"2024-10-13", 5785, Tishrei, 11},
		{"2024-12-26", 5785, Kislev, 25},
		{"2025-03-14", 5785, Adar, 14},
		{"2025-09-22", 5785, Elul, 29},
		{"2024-02-23", 5784, Adar, 14},
		{"2024-03-24", 5784, AdarII, 14},
		{"2024-04-23", 5784, Nisan, 15},
		{"2023-09-16", 5784, Tishrei, 1},
		{"2020-01-05", 5780, Teves, 8},
		{"1980-02-02", 5740, Shevat, 15},
		{"2026-10-19", 5787, Cheshvan, 8},
	}

	for _, tt := range tests {
		t.Run(tt.greg, func(t *testing.T) {
			e, err := ParseEpochDay(tt.greg)
			if err != nil {
				t.Fatalf("ParseEpochDay() error = %v", err)
			}
			d, err := FromEpochDay(e)
			if err != nil {
				t.Fatalf("FromEpochDay() error = %v", err)
			}
			if d.Year() != tt.year || d.Month() != tt.month || d.Day() != tt.day {
				t.Errorf("FromEpochDay() = %s, want %d %s %d", d, tt.day, tt.month, tt.year)
			}
			if d.EpochDay() != e {
				t.Errorf("EpochDay() = %s, want %s", d.EpochDay(), e)
			}
		})
	}
}

func TestFromEpochDay_OutOfRange(t *testing.T) {
	if _, err := FromEpochDay(RoshHashana(1) - 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("FromEpochDay(before year 1) error = %v, want ErrOutOfRange", err)
	}
	d, err := FromEpochDay(RoshHashana(1))
	if err != nil {
		t.Fatalf("FromEpochDay(RoshHashana(1)) error = %v", err)
	}
	if d != MustDate(1, Tishrei, 1) {
		t.Errorf("FromEpochDay(RoshHashana(1)) = %s", d)
	}
}

func TestDateRoundTrip(t *testing.T) {
	for year := 5600; year <= 6000; year++ {
		for m := Nisan; m <= AdarII; m++ {
			if !m.InYear(year) {
				continue
			}
			for day := 1; day <= DaysInMonth(year, m); day++ {
				d := MustDate(year, m, day)
				back, err := FromEpochDay(d.EpochDay())
				if err != nil {
					t.Fatalf("FromEpochDay(%s) error = %v", d, err)
				}
				if back != d {
					t.Fatalf("round trip of %s gave %s", d, back)
				}
			}
		}
	}
}

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   Month
		day     int
		wantDay int
		wantErr error
	}{
		{"valid", 5785, Nisan, 15, 15, nil},
		{"clamped to month length", 5785, Cheshvan, 31, 30, nil},
		{"clamped short kislev", 5781, Kislev, 30, 29, nil},
		{"year zero", 0, Nisan, 1, 0, ErrInvalidYear},
		{"negative year", -5, Nisan, 1, 0, ErrInvalidYear},
		{"last year", MaxYear, Elul, 29, 29, nil},
		{"past last year", MaxYear + 1, Tishrei, 1, 0, ErrInvalidYear},
		{"huge year", 1 << 50, Tishrei, 1, 0, ErrInvalidYear},
		{"adar II in common year", 5785, AdarII, 1, 0, ErrInvalidMonth},
		{"month zero", 5785, 0, 1, 0, ErrInvalidMonth},
		{"day zero", 5785, Nisan, 0, 0, ErrInvalidDay},
		{"negative day", 5785, Nisan, -3, 0, ErrInvalidDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDate(tt.year, tt.month, tt.day)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDate() error = %v", err)
			}
			if d.Day() != tt.wantDay {
				t.Errorf("Day() = %d, want %d", d.Day(), tt.wantDay)
			}
		})
	}
}

func TestDate_Arithmetic(t *testing.T) {
	rh := MustDate(5785, Tishrei, 1)
	if got := rh.Add(-1); got != MustDate(5784, Elul, 29) {
		t.Errorf("Add(-1) = %s, want 29 Elul 5784", got)
	}
	if got := rh.Add(YearLength(5785)); got != MustDate(5786, Tishrei, 1) {
		t.Errorf("Add(year length) = %s, want 1 Tishrei 5786", got)
	}

	pesach := MustDate(5784, Nisan, 15)
	// 5784 is a deficient leap year: Kislev has 29 days.
	if got := pesach.DaysSinceRoshHashana(); got != 30+29+29+29+30+30+29+14 {
		t.Errorf("DaysSinceRoshHashana() = %d", got)
	}
	if pesach.Weekday() != time.Tuesday {
		t.Errorf("Weekday() = %s, want Tuesday", pesach.Weekday())
	}

	later := pesach.Add(1)
	if !pesach.Before(later) || !later.After(pesach) || pesach.Compare(later) != -1 {
		t.Error("ordering of consecutive days is wrong")
	}
	if !pesach.Equal(MustDate(5784, Nisan, 15)) {
		t.Error("Equal() = false for identical dates")
	}

	moved, err := pesach.WithDay(30)
	if err != nil {
		t.Fatalf("WithDay() error = %v", err)
	}
	if moved.Day() != 30 {
		t.Errorf("WithDay(30).Day() = %d, want 30", moved.Day())
	}
}

func TestCursor(t *testing.T) {
	start := MustDate(5784, Elul, 1)
	c := NewCursor(start)
	for i := 1; i <= 500; i++ {
		c.Next()
		want := start.Add(i)
		if c.Date() != want || c.EpochDay() != want.EpochDay() {
			t.Fatalf("after %d steps cursor at %s, want %s", i, c.Date(), want)
		}
	}
	for i := 499; i >= 0; i-- {
		if err := c.Prev(); err != nil {
			t.Fatalf("Prev() error = %v", err)
		}
		if want := start.Add(i); c.Date() != want {
			t.Fatalf("Prev() at %s, want %s", c.Date(), want)
		}
	}

	if err := c.Advance(30); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if want := start.Add(30); c.Date() != want {
		t.Errorf("Advance(30) = %s, want %s", c.Date(), want)
	}

	c.Set(MustDate(1, Tishrei, 1))
	if err := c.Prev(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Prev() at start error = %v, want ErrOutOfRange", err)
	}
}
