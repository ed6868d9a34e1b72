package calendar

import (
	"fmt"

	"github.com/zapponejosh/luach-api/internal/hebdate"
	"github.com/zapponejosh/luach-api/internal/holiday"
	"github.com/zapponejosh/luach-api/internal/i18n"
	"github.com/zapponejosh/luach-api/internal/parsha"
)

// MetonicLength is the number of years in the leap-year cycle.
const MetonicLength = 19

// MetonicCycle returns the one-based 19-year cycle that year belongs to and
// the one-based position of year within it.
//
// Examples:
//   - 5784 is year 8 of cycle 305 (a leap year)
//   - 5785 is year 9 of cycle 305
func MetonicCycle(year int) (cycle, position int) {
	return (year-1)/MetonicLength + 1, (year-1)%MetonicLength + 1
}

// YearInfo summarizes a Hebrew year.
type YearInfo struct {
	Year        int    `json:"year"`
	LeapYear    bool   `json:"leap_year"`
	Length      int    `json:"length"`
	Type        string `json:"type"`
	Months      int    `json:"months"`
	RoshHashana string `json:"rosh_hashana"`
	// Weekday of Rosh Hashana, 0=Sunday through 6=Shabbos.
	RoshHashanaWeekday int       `json:"rosh_hashana_weekday"`
	Molad              MoladInfo `json:"molad"`
	Cycle              int       `json:"metonic_cycle"`
	YearOfCycle        int       `json:"year_of_cycle"`
	ParshaRow          int       `json:"parsha_row"`
	InIsrael           bool      `json:"in_israel"`
	KeyDates           []KeyDate `json:"key_dates"`
}

// KeyDate is the first day of a holiday within the year.
type KeyDate struct {
	Holiday holiday.Holiday `json:"holiday"`
	Name    string          `json:"name,omitempty"`
	Date    string          `json:"date"`
	Hebrew  HebrewDate      `json:"hebrew"`
}

// Year summarizes Hebrew year year under the resolver's options.
func (r *Resolver) Year(year int) (YearInfo, error) {
	if year < 1 || year > hebdate.MaxYear {
		return YearInfo{}, fmt.Errorf("%w: %d (must be 1 to %d)", hebdate.ErrInvalidYear, year, hebdate.MaxYear)
	}
	row, err := parsha.RowFor(year, r.opts.InIsrael)
	if err != nil {
		return YearInfo{}, err
	}

	rh := hebdate.RoshHashana(year)
	cycle, pos := MetonicCycle(year)
	info := YearInfo{
		Year:               year,
		LeapYear:           hebdate.IsLeapYear(year),
		Length:             hebdate.YearLength(year),
		Type:               hebdate.TypeOf(year).String(),
		Months:             hebdate.MonthsInYear(year),
		RoshHashana:        rh.String(),
		RoshHashanaWeekday: int(rh.Weekday()),
		Molad:              moladInfo(year, hebdate.Tishrei),
		Cycle:              cycle,
		YearOfCycle:        pos,
		ParshaRow:          row,
		InIsrael:           r.opts.InIsrael,
		KeyDates:           r.keyDates(year),
	}
	return info, nil
}

// keyDates walks the year and records where each holiday first falls.
// Rosh Chodesh recurs every month and is left out.
func (r *Resolver) keyDates(year int) []KeyDate {
	seen := make(map[holiday.Holiday]bool)
	var out []KeyDate

	cur := hebdate.NewCursor(hebdate.MustDate(year, hebdate.Tishrei, 1))
	for n := hebdate.YearLength(year); n > 0; n-- {
		d := cur.Date()
		h := holiday.Resolve(d, r.opts)
		if h != holiday.None && h != holiday.RoshChodesh && !seen[h] {
			seen[h] = true
			out = append(out, KeyDate{
				Holiday: h,
				Date:    cur.EpochDay().String(),
				Hebrew: HebrewDate{
					Year:     d.Year(),
					Month:    int(d.Month()),
					Day:      d.Day(),
					LeapYear: d.IsLeapYear(),
				},
			})
		}
		cur.Next()
	}
	return out
}

// Localize returns a copy of y with display names from cat.
func (y YearInfo) Localize(cat i18n.Catalog) YearInfo {
	out := y
	out.Molad.MonthName = cat.Dates.Month(hebdate.Month(y.Molad.Month), y.Molad.Year)
	out.KeyDates = make([]KeyDate, len(y.KeyDates))
	for i, k := range y.KeyDates {
		k.Name = cat.Holidays.Name(k.Holiday)
		if d, err := hebdate.NewDate(k.Hebrew.Year, hebdate.Month(k.Hebrew.Month), k.Hebrew.Day); err == nil {
			k.Hebrew.MonthName = cat.Dates.Month(d.Month(), d.Year())
			k.Hebrew.Formatted = cat.FormatDate(d)
		}
		out.KeyDates[i] = k
	}
	return out
}

// KeyDate returns the key date of h, if h falls in the year.
func (y YearInfo) KeyDate(h holiday.Holiday) (KeyDate, bool) {
	for _, k := range y.KeyDates {
		if k.Holiday == h {
			return k, true
		}
	}
	return KeyDate{}, false
}
