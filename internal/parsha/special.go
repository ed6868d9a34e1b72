package parsha

import (
	"fmt"
	"time"

	"github.com/zapponejosh/luach-api/internal/hebdate"
)

// SpecialShabbos names a Shabbos with an added reading or a name of its
// own. The zero value Ordinary is every other Shabbos.
type SpecialShabbos int

const (
	Ordinary SpecialShabbos = iota
	Shuva
	Shira
	Shekalim
	Zachor
	Parah
	HaChodesh
	HaGadol
	Chazon
	Nachamu
)

var specialKeys = [...]string{
	Ordinary:  "",
	Shuva:     "shuva",
	Shira:     "shira",
	Shekalim:  "shekalim",
	Zachor:    "zachor",
	Parah:     "parah",
	HaChodesh: "hachodesh",
	HaGadol:   "hagadol",
	Chazon:    "chazon",
	Nachamu:   "nachamu",
}

// String returns the stable key of s.
func (s SpecialShabbos) String() string {
	if s < Ordinary || int(s) >= len(specialKeys) {
		return ""
	}
	return specialKeys[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s SpecialShabbos) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SpecialShabbos) UnmarshalText(b []byte) error {
	for i, k := range specialKeys {
		if k == string(b) {
			*s = SpecialShabbos(i)
			return nil
		}
	}
	return fmt.Errorf("unknown special shabbos %q", b)
}

// Special returns the special Shabbos that falls on d, or Ordinary.
func Special(d hebdate.Date, inIsrael bool) SpecialShabbos {
	if d.Weekday() != time.Saturday {
		return Ordinary
	}

	n := d.Day()
	leap := d.IsLeapYear()

	switch m := d.Month(); {
	case (m == hebdate.Shevat && !leap) || (m == hebdate.Adar && leap):
		if n == 25 || n == 27 || n == 29 {
			return Shekalim
		}
	case (m == hebdate.Adar && !leap) || m == hebdate.AdarII:
		switch n {
		case 1:
			return Shekalim
		case 8, 9, 11, 13:
			return Zachor
		case 18, 20, 22, 23:
			return Parah
		case 25, 27, 29:
			return HaChodesh
		}
	case m == hebdate.Nisan:
		if n == 1 {
			return HaChodesh
		}
		if n >= 8 && n <= 14 {
			return HaGadol
		}
	case m == hebdate.Av:
		if n >= 4 && n <= 9 {
			return Chazon
		}
		if n >= 10 && n <= 16 {
			return Nachamu
		}
	case m == hebdate.Tishrei:
		if n >= 3 && n <= 8 {
			return Shuva
		}
	}

	if ForDate(d, inIsrael) == Beshalach {
		return Shira
	}
	return Ordinary
}
