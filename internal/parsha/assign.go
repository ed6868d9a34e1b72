package parsha

import (
	"fmt"
	"time"

	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// RowFor returns the row of the portion table used in year.
func RowFor(year int, inIsrael bool) (int, error) {
	if year < 1 || year > hebdate.MaxYear {
		return 0, fmt.Errorf("%w: %d (must be 1 to %d)", hebdate.ErrInvalidYear, year, hebdate.MaxYear)
	}
	return rowFor(year, inIsrael), nil
}

func rowFor(year int, inIsrael bool) int {
	rh := hebdate.RoshHashana(year).Weekday()
	typ := hebdate.TypeOf(year)
	deficient := typ == hebdate.Deficient
	complete := typ == hebdate.Complete

	// pick returns the Israel row when it differs from the diaspora one.
	pick := func(diaspora, israel int) int {
		if inIsrael {
			return israel
		}
		return diaspora
	}

	if hebdate.IsLeapYear(year) {
		switch rh {
		case time.Monday:
			if deficient {
				return pick(6, 14)
			}
			if complete {
				return pick(7, 15)
			}
		case time.Tuesday:
			return pick(7, 15)
		case time.Thursday:
			if deficient {
				return 8
			}
			if complete {
				return 9
			}
		case time.Saturday:
			if deficient {
				return 10
			}
			if complete {
				return pick(11, 16)
			}
		}
	} else {
		switch rh {
		case time.Monday:
			if deficient {
				return 0
			}
			if complete {
				return pick(1, 12)
			}
		case time.Tuesday:
			return pick(1, 12)
		case time.Thursday:
			if complete {
				return 3
			}
			return pick(2, 13)
		case time.Saturday:
			if deficient {
				return 4
			}
			if complete {
				return 5
			}
		}
	}

	panic(fmt.Sprintf("parsha: no row for year %d (rosh hashana %s, %s)", year, rh, typ))
}

// ForDate returns the portion read on d, or None when d is not Shabbos or
// the Shabbos is taken by a festival.
func ForDate(d hebdate.Date, inIsrael bool) Parsha {
	if d.Weekday() != time.Saturday {
		return None
	}
	row := rows[rowFor(d.Year(), inIsrael)]
	rh := int(hebdate.RoshHashana(d.Year()).Weekday())
	i := (rh + d.DaysSinceRoshHashana()) / 7
	if i >= len(row) {
		return None
	}
	return row[i]
}

// Upcoming returns the next portion read after d. From a Shabbos it looks
// at the following week. Festival weeks are skipped.
func Upcoming(d hebdate.Date, inIsrael bool) (hebdate.Date, Parsha) {
	days := int(time.Saturday - d.Weekday())
	if days == 0 {
		days = 7
	}
	next := d.Add(days)
	for {
		if p := ForDate(next, inIsrael); p != None {
			return next, p
		}
		next = next.Add(7)
	}
}
