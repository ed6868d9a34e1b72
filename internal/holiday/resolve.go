package holiday

import (
	"time"

	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// Options select between observances that differ by place or custom.
type Options struct {
	// InIsrael drops the second festival day observed in the diaspora.
	InIsrael bool
	// ModernHolidays enables the days instituted by the State of Israel.
	ModernHolidays bool
	// WalledCity observes Purim on the 15th (Shushan Purim).
	WalledCity bool
}

// First years in which each modern day is observed.
const (
	firstYearIndependence = 5708
	firstYearShoah        = 5711
	firstYearJerusalem    = 5727
)

// day is the part of a date the per-month rules look at.
type day struct {
	year    int
	n       int
	weekday time.Weekday
	leap    bool
	opts    Options
}

// Resolve returns the occasion that falls on d, or None. Rosh Chodesh is
// only returned when nothing else claims the date.
func Resolve(d hebdate.Date, opts Options) Holiday {
	x := day{
		year:    d.Year(),
		n:       d.Day(),
		weekday: d.Weekday(),
		leap:    d.IsLeapYear(),
		opts:    opts,
	}

	var h Holiday
	switch d.Month() {
	case hebdate.Nisan:
		h = nisan(x)
	case hebdate.Iyar:
		h = iyar(x)
	case hebdate.Sivan:
		h = sivan(x)
	case hebdate.Tammuz:
		h = tammuz(x)
	case hebdate.Av:
		h = av(x)
	case hebdate.Elul:
		h = elul(x)
	case hebdate.Tishrei:
		h = tishrei(x)
	case hebdate.Kislev:
		h = kislev(x)
	case hebdate.Teves:
		h = teves(x)
	case hebdate.Shevat:
		h = shevat(x)
	case hebdate.Adar:
		if x.leap {
			h = adarI(x)
		} else {
			h = adar(x)
		}
	case hebdate.AdarII:
		h = adar(x)
	}

	if h == None && isRoshChodesh(d) {
		return RoshChodesh
	}
	return h
}

func isRoshChodesh(d hebdate.Date) bool {
	return (d.Day() == 1 && d.Month() != hebdate.Tishrei) || d.Day() == 30
}

func nisan(x day) Holiday {
	lastPesach := 22
	if x.opts.InIsrael {
		lastPesach = 21
	}

	switch {
	case x.n == 14:
		return ErevPesach
	case x.n == 15 || x.n == 21:
		return Pesach
	case (x.n == 16 || x.n == 22) && !x.opts.InIsrael:
		return Pesach
	case x.n >= 16 && x.n <= 20:
		return CholHamoedPesach
	case x.n == lastPesach+1:
		return IsruChag
	}

	if x.opts.ModernHolidays && x.year >= firstYearShoah {
		// Moved off Friday and Sunday so the day does not touch Shabbos.
		if (x.n == 26 && x.weekday == time.Thursday) ||
			(x.n == 28 && x.weekday == time.Monday) ||
			(x.n == 27 && x.weekday != time.Sunday && x.weekday != time.Friday) {
			return YomHashoah
		}
	}
	return None
}

func iyar(x day) Holiday {
	if x.opts.ModernHolidays && x.year >= firstYearIndependence {
		if (x.n == 4 && x.weekday == time.Tuesday) ||
			((x.n == 3 || x.n == 2) && x.weekday == time.Wednesday) ||
			(x.n == 5 && x.weekday == time.Monday) {
			return YomHazikaron
		}
		if (x.n == 5 && x.weekday == time.Wednesday) ||
			((x.n == 4 || x.n == 3) && x.weekday == time.Thursday) ||
			(x.n == 6 && x.weekday == time.Tuesday) {
			return YomHaatzmaut
		}
	}

	switch x.n {
	case 14:
		return PesachSheni
	case 18:
		return LagBaomer
	case 28:
		if x.opts.ModernHolidays && x.year >= firstYearJerusalem {
			return YomYerushalayim
		}
	}
	return None
}

func sivan(x day) Holiday {
	switch x.n {
	case 5:
		return ErevShavuos
	case 6:
		return Shavuos
	case 7:
		if x.opts.InIsrael {
			return IsruChag
		}
		return Shavuos
	case 8:
		if !x.opts.InIsrael {
			return IsruChag
		}
	}
	return None
}

func tammuz(x day) Holiday {
	if (x.n == 17 && x.weekday != time.Saturday) || (x.n == 18 && x.weekday == time.Sunday) {
		return SeventeenthOfTammuz
	}
	return None
}

func av(x day) Holiday {
	if (x.n == 9 && x.weekday != time.Saturday) || (x.n == 10 && x.weekday == time.Sunday) {
		return TishaBav
	}
	if x.n == 15 {
		return TuBav
	}
	return None
}

func elul(x day) Holiday {
	if x.n == 29 {
		return ErevRoshHashana
	}
	return None
}

func tishrei(x day) Holiday {
	switch x.n {
	case 1, 2:
		return RoshHashana
	case 3:
		if x.weekday != time.Saturday {
			return FastOfGedalyah
		}
	case 4:
		if x.weekday == time.Sunday {
			return FastOfGedalyah
		}
	case 9:
		return ErevYomKippur
	case 10:
		return YomKippur
	case 14:
		return ErevSuccos
	case 15:
		return Succos
	case 16:
		if x.opts.InIsrael {
			return CholHamoedSuccos
		}
		return Succos
	case 17, 18, 19, 20:
		return CholHamoedSuccos
	case 21:
		return HoshanaRabba
	case 22:
		return SheminiAtzeres
	case 23:
		if x.opts.InIsrael {
			return IsruChag
		}
		return SimchasTorah
	case 24:
		if !x.opts.InIsrael {
			return IsruChag
		}
	}
	return None
}

func kislev(x day) Holiday {
	if x.n >= 25 {
		return Chanukah
	}
	return None
}

func teves(x day) Holiday {
	switch {
	case x.n == 1 || x.n == 2:
		return Chanukah
	case x.n == 3 && hebdate.IsKislevShort(x.year):
		return Chanukah
	case x.n == 10:
		return TenthOfTeves
	}
	return None
}

func shevat(x day) Holiday {
	if x.n == 15 {
		return TuBishvat
	}
	return None
}

// adar handles Adar of a common year and Adar II of a leap year.
func adar(x day) Holiday {
	// Moved back to Thursday when the 13th is Shabbos.
	if ((x.n == 11 || x.n == 12) && x.weekday == time.Thursday) ||
		(x.n == 13 && x.weekday != time.Friday && x.weekday != time.Saturday) {
		return FastOfEsther
	}
	switch x.n {
	case 14:
		return Purim
	case 15:
		return ShushanPurim
	}
	return None
}

func adarI(x day) Holiday {
	switch x.n {
	case 14:
		return PurimKatan
	case 15:
		return ShushanPurimKatan
	}
	return None
}
