package daf

import (
	"time"

	"github.com/zapponejosh/luach-api/internal/hebdate"
	"github.com/zapponejosh/luach-api/internal/holiday"
)

// Names of the built-in cycles.
const (
	BavliName      = "bavli"
	YerushalmiName = "yerushalmi"
)

// FastDays excludes Yom Kippur and Tisha B'Av, including Tisha B'Av
// deferred to Sunday.
type FastDays struct{}

// Excluded reports whether day is Yom Kippur or Tisha B'Av.
func (FastDays) Excluded(day hebdate.EpochDay) bool {
	d, err := hebdate.FromEpochDay(day)
	if err != nil {
		return false
	}
	switch holiday.Resolve(d, holiday.Options{}) {
	case holiday.YomKippur, holiday.TishaBav:
		return true
	}
	return false
}

// Count returns the fast days in [from, to).
func (FastDays) Count(from, to hebdate.EpochDay) int {
	if to <= from {
		return 0
	}
	first, err := hebdate.FromEpochDay(from)
	if err != nil {
		first = hebdate.MustDate(1, hebdate.Tishrei, 1)
	}
	last, err := hebdate.FromEpochDay(to - 1)
	if err != nil {
		return 0
	}

	n := 0
	for year := first.Year(); year <= last.Year(); year++ {
		for _, day := range fastDaysOf(year) {
			if day >= from && day < to {
				n++
			}
		}
	}
	return n
}

// fastDaysOf returns Yom Kippur and the observed Tisha B'Av of year.
func fastDaysOf(year int) [2]hebdate.EpochDay {
	yomKippur := hebdate.RoshHashana(year).Add(9)
	// Av (30 days) and Elul (29) close every year, so 9 Av is 51 days
	// before the next Rosh Hashana.
	tishaBav := hebdate.RoshHashana(year + 1).Add(-51)
	if tishaBav.Weekday() == time.Saturday {
		tishaBav++
	}
	return [2]hebdate.EpochDay{yomKippur, tishaBav}
}

// Yerushalmi returns the Yerushalmi Yomi cycle, which began on
// 2 February 1980.
func Yerushalmi() Cycle {
	start, _ := hebdate.FromGregorian(1980, time.February, 2)
	return Cycle{
		Name:      YerushalmiName,
		Start:     start,
		Volumes:   volumes(yerushalmiNames, yerushalmiPages, 1),
		NoReading: FastDays{},
	}
}

// Bavli returns the Daf Yomi cycle of the Babylonian Talmud, which began
// on Rosh Hashana 5684 (11 September 1923).
func Bavli() Cycle {
	start, _ := hebdate.FromGregorian(1923, time.September, 11)
	vols := volumes(bavliNames, bavliPages, 2)
	for i := range vols {
		switch vols[i].Name {
		case "Kinnim":
			vols[i].FirstFolio = 23
		case "Tamid":
			vols[i].FirstFolio = 26
		case "Midos":
			vols[i].FirstFolio = 34
		}
	}
	return Cycle{
		Name:      BavliName,
		Start:     start,
		Volumes:   vols,
		NoReading: FastDays{},
	}
}

func volumes(names []string, pages []int, firstFolio int) []Volume {
	out := make([]Volume, len(names))
	for i := range names {
		out[i] = Volume{Name: names[i], Pages: pages[i], FirstFolio: firstFolio}
	}
	return out
}

var yerushalmiNames = []string{
	"Berachos", "Peah", "Demai", "Kilayim", "Sheviis", "Terumos", "Maasros",
	"Maaser Sheni", "Chalah", "Orlah", "Bikurim", "Shabbos", "Eruvin",
	"Pesachim", "Beitzah", "Rosh Hashanah", "Yoma", "Sukah", "Taanis",
	"Shekalim", "Megilah", "Moed Katan", "Chagigah", "Yevamos", "Kesubos",
	"Sotah", "Nedarim", "Nazir", "Gitin", "Kidushin", "Bava Kama",
	"Bava Metzia", "Bava Basra", "Shevuos", "Makos", "Sanhedrin",
	"Avodah Zarah", "Horayos", "Nidah",
}

var yerushalmiPages = []int{
	68, 37, 34, 44, 31, 59, 26, 33, 28, 20, 13, 92, 65, 71, 22, 22, 42, 26, 26,
	33, 34, 22, 19, 85, 72, 47, 40, 47, 54, 48, 44, 37, 34, 44, 9, 57, 37, 19,
	13,
}

var bavliNames = []string{
	"Berachos", "Shabbos", "Eruvin", "Pesachim", "Shekalim", "Yoma", "Sukkah",
	"Beitzah", "Rosh Hashana", "Taanis", "Megillah", "Moed Katan", "Chagigah",
	"Yevamos", "Kesubos", "Nedarim", "Nazir", "Sotah", "Gitin", "Kiddushin",
	"Bava Kamma", "Bava Metzia", "Bava Basra", "Sanhedrin", "Makkos",
	"Shevuos", "Avodah Zarah", "Horiyos", "Zevachim", "Menachos", "Chullin",
	"Bechoros", "Arachin", "Temurah", "Kerisos", "Meilah", "Kinnim", "Tamid",
	"Midos", "Niddah",
}

var bavliPages = []int{
	63, 156, 104, 120, 21, 87, 55, 39, 34, 30, 31, 28, 26, 121, 111, 90, 65,
	48, 89, 81, 118, 118, 175, 112, 23, 48, 75, 13, 119, 109, 141, 60, 33,
	33, 27, 21, 3, 8, 4, 72,
}
