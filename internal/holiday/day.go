package holiday

import (
	"time"

	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// Day is a date with its occasion resolved once. Every predicate reads the
// stored occasion and the raw date fields; none of them resolves again.
type Day struct {
	date    hebdate.Date
	weekday time.Weekday
	opts    Options
	holiday Holiday
}

// NewDay resolves d under opts.
func NewDay(d hebdate.Date, opts Options) Day {
	return Day{
		date:    d,
		weekday: d.Weekday(),
		opts:    opts,
		holiday: Resolve(d, opts),
	}
}

// Date returns the Hebrew date.
func (d Day) Date() hebdate.Date { return d.date }

// Holiday returns the resolved occasion.
func (d Day) Holiday() Holiday { return d.holiday }

// Options returns the options the day was resolved with.
func (d Day) Options() Options { return d.opts }

// IsYomTov reports whether the day is a festival or a minor festive day.
// Erev days, Isru Chag, Rosh Chodesh and fasts other than Yom Kippur are
// not.
func (d Day) IsYomTov() bool {
	switch d.holiday {
	case None, RoshChodesh, IsruChag,
		ErevPesach, ErevShavuos, ErevRoshHashana, ErevYomKippur, ErevSuccos:
		return false
	}
	if d.IsFastDay() && d.holiday != YomKippur {
		return false
	}
	return true
}

// IsErevYomTov reports whether a festival on which work is prohibited
// begins at nightfall.
func (d Day) IsErevYomTov() bool {
	switch d.holiday {
	case ErevPesach, ErevShavuos, ErevRoshHashana, ErevYomKippur, ErevSuccos, HoshanaRabba:
		return true
	case CholHamoedPesach:
		return d.date.Day() == 20
	}
	return false
}

// IsYomTovAssurBemelacha reports whether the day is a festival on which
// work is prohibited.
func (d Day) IsYomTovAssurBemelacha() bool {
	switch d.holiday {
	case Pesach, Shavuos, Succos, SheminiAtzeres, SimchasTorah, RoshHashana, YomKippur:
		return true
	}
	return false
}

// IsWorkProhibited reports whether the day is Shabbos or a festival on
// which work is prohibited.
func (d Day) IsWorkProhibited() bool {
	return d.weekday == time.Saturday || d.IsYomTovAssurBemelacha()
}

// IsFastDay reports whether the day is one of the six public fasts.
func (d Day) IsFastDay() bool {
	switch d.holiday {
	case SeventeenthOfTammuz, TishaBav, YomKippur, FastOfGedalyah, TenthOfTeves, FastOfEsther:
		return true
	}
	return false
}

// IsCholHamoed reports whether the day is an intermediate festival day.
func (d Day) IsCholHamoed() bool {
	switch d.holiday {
	case CholHamoedPesach, CholHamoedSuccos, HoshanaRabba:
		return true
	}
	return false
}

// IsRoshChodesh reports whether the day is Rosh Chodesh, even when another
// occasion such as Chanukah was resolved for it.
func (d Day) IsRoshChodesh() bool {
	return isRoshChodesh(d.date)
}

// IsErevRoshChodesh reports whether the next day is Rosh Chodesh.
// Erev Rosh Hashana is excluded.
func (d Day) IsErevRoshChodesh() bool {
	return d.date.Day() == 29 && d.date.Month() != hebdate.Elul
}

// IsChanukah reports whether the day is one of the eight days of Chanukah.
func (d Day) IsChanukah() bool {
	return d.holiday == Chanukah
}

// IsPurim reports whether Purim is read on this day. Walled cities read
// on Shushan Purim.
func (d Day) IsPurim() bool {
	if d.opts.WalledCity {
		return d.holiday == ShushanPurim
	}
	return d.holiday == Purim
}

// IsAseresYemeiTeshuva reports whether the day is one of the ten days from
// Rosh Hashana to Yom Kippur.
func (d Day) IsAseresYemeiTeshuva() bool {
	return d.date.Month() == hebdate.Tishrei && d.date.Day() <= 10
}

// IsTaanisBechoros reports whether the fast of the firstborn falls on the
// day. When Erev Pesach is Shabbos the fast moves back to Thursday.
func (d Day) IsTaanisBechoros() bool {
	if d.date.Month() != hebdate.Nisan {
		return false
	}
	n := d.date.Day()
	return (n == 14 && d.weekday != time.Saturday) || (n == 12 && d.weekday == time.Thursday)
}

// IsYomKippurKatan reports whether the day is the eve of Rosh Chodesh on
// which Yom Kippur Katan is observed, moved back to Thursday when the 29th
// is Friday or Shabbos.
func (d Day) IsYomKippurKatan() bool {
	switch d.date.Month() {
	case hebdate.Elul, hebdate.Tishrei, hebdate.Kislev, hebdate.Nisan:
		return false
	}
	n := d.date.Day()
	if n == 29 && d.weekday != time.Friday && d.weekday != time.Saturday {
		return true
	}
	return (n == 27 || n == 28) && d.weekday == time.Thursday
}

// IsBeHaB reports whether the day is one of the Monday, Thursday, Monday
// fasts that follow Pesach and Succos.
func (d Day) IsBeHaB() bool {
	m := d.date.Month()
	if m != hebdate.Cheshvan && m != hebdate.Iyar {
		return false
	}
	n := d.date.Day()
	return (d.weekday == time.Monday && n > 4 && n < 18) ||
		(d.weekday == time.Thursday && n > 7 && n < 14)
}

// DayOfOmer returns the day of the Omer count, or 0 outside the count.
func (d Day) DayOfOmer() int {
	n := d.date.Day()
	switch d.date.Month() {
	case hebdate.Nisan:
		if n >= 16 {
			return n - 15
		}
	case hebdate.Iyar:
		return n + 15
	case hebdate.Sivan:
		if n < 6 {
			return n + 44
		}
	}
	return 0
}

// DayOfChanukah returns the day of Chanukah, or 0 outside Chanukah.
func (d Day) DayOfChanukah() int {
	if !d.IsChanukah() {
		return 0
	}
	n := d.date.Day()
	if d.date.Month() == hebdate.Kislev {
		return n - 24
	}
	if hebdate.IsKislevShort(d.date.Year()) {
		return n + 5
	}
	return n + 6
}
