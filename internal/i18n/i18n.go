// Package i18n selects display tables for a request language.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/zapponejosh/luach-api/internal/hebdate"
	"github.com/zapponejosh/luach-api/internal/holiday"
	"github.com/zapponejosh/luach-api/internal/parsha"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

// Catalog bundles the name tables of one language.
type Catalog struct {
	Tag       language.Tag
	Dates     hebdate.Names
	Holidays  holiday.Names
	Parshiyos parsha.Names
	Specials  map[parsha.SpecialShabbos]string
	// HebrewNumerals writes day and year numbers in Hebrew letters.
	HebrewNumerals bool
}

// English is the default catalog.
var English = Catalog{
	Tag:       language.English,
	Dates:     hebdate.English,
	Holidays:  holiday.English,
	Parshiyos: parsha.English,
	Specials: map[parsha.SpecialShabbos]string{
		parsha.Shuva:     "Shabbos Shuva",
		parsha.Shira:     "Shabbos Shira",
		parsha.Shekalim:  "Parshas Shekalim",
		parsha.Zachor:    "Parshas Zachor",
		parsha.Parah:     "Parshas Parah",
		parsha.HaChodesh: "Parshas HaChodesh",
		parsha.HaGadol:   "Shabbos HaGadol",
		parsha.Chazon:    "Shabbos Chazon",
		parsha.Nachamu:   "Shabbos Nachamu",
	},
}

// Hebrew uses Hebrew script throughout.
var Hebrew = Catalog{
	Tag:       language.Hebrew,
	Dates:     hebdate.Hebrew,
	Holidays:  holiday.Hebrew,
	Parshiyos: parsha.Hebrew,
	Specials: map[parsha.SpecialShabbos]string{
		parsha.Shuva:     "שבת שובה",
		parsha.Shira:     "שבת שירה",
		parsha.Shekalim:  "פרשת שקלים",
		parsha.Zachor:    "פרשת זכור",
		parsha.Parah:     "פרשת פרה",
		parsha.HaChodesh: "פרשת החודש",
		parsha.HaGadol:   "שבת הגדול",
		parsha.Chazon:    "שבת חזון",
		parsha.Nachamu:   "שבת נחמו",
	},
	HebrewNumerals: true,
}

var (
	supported = []language.Tag{language.English, language.Hebrew}
	catalogs  = []Catalog{English, Hebrew}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the supported language tags. The first is the default.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Match returns the supported tag closest to the preferred tags, or the
// default when none is close.
func Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return Default()
	}
	_, idx, conf := matcher.Match(preferred...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// ParseTag parses value and reports whether it matches a supported language.
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return Default(), false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default(), false
	}
	return supported[idx], true
}

// ResolveTag determines the language for a request from the lang query
// parameter, then the Accept-Language header.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, ok := ParseTag(v); ok {
			return tag
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return Match(tags...)
		}
	}
	return Default()
}

// For returns the catalog of a supported tag, falling back to English.
func For(tag language.Tag) Catalog {
	for i, t := range supported {
		if t == tag {
			return catalogs[i]
		}
	}
	return English
}

// Special returns the name of s, or "" for an ordinary Shabbos.
func (c Catalog) Special(s parsha.SpecialShabbos) string {
	return c.Specials[s]
}

// FormatDate renders d as day, month and year in the catalog's language.
func (c Catalog) FormatDate(d hebdate.Date) string {
	if d.IsZero() {
		return ""
	}
	month := c.Dates.Month(d.Month(), d.Year())
	if c.HebrewNumerals {
		return fmt.Sprintf("%s %s %s", Numeral(d.Day()), month, Numeral(d.Year()%1000))
	}
	return fmt.Sprintf("%d %s %d", d.Day(), month, d.Year())
}
