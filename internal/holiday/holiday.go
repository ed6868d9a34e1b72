// Package holiday resolves a Hebrew date to the festival, fast or other
// occasion that falls on it, and answers the common questions asked of a
// day (is work prohibited, is it a fast, which day of the Omer is it).
package holiday

import "fmt"

// Holiday identifies the single occasion assigned to a date. The zero
// value None means nothing is assigned.
type Holiday int

const (
	None Holiday = iota
	ErevPesach
	Pesach
	CholHamoedPesach
	PesachSheni
	ErevShavuos
	Shavuos
	SeventeenthOfTammuz
	TishaBav
	TuBav
	ErevRoshHashana
	RoshHashana
	FastOfGedalyah
	ErevYomKippur
	YomKippur
	ErevSuccos
	Succos
	CholHamoedSuccos
	HoshanaRabba
	SheminiAtzeres
	SimchasTorah
	Chanukah
	TenthOfTeves
	TuBishvat
	FastOfEsther
	Purim
	ShushanPurim
	PurimKatan
	ShushanPurimKatan
	RoshChodesh
	YomHashoah
	YomHazikaron
	YomHaatzmaut
	YomYerushalayim
	LagBaomer
	IsruChag

	count
)

// keys are the stable identifiers used in JSON and storage.
var keys = [count]string{
	None:                "",
	ErevPesach:          "erev_pesach",
	Pesach:              "pesach",
	CholHamoedPesach:    "chol_hamoed_pesach",
	PesachSheni:         "pesach_sheni",
	ErevShavuos:         "erev_shavuos",
	Shavuos:             "shavuos",
	SeventeenthOfTammuz: "seventeenth_of_tammuz",
	TishaBav:            "tisha_bav",
	TuBav:               "tu_bav",
	ErevRoshHashana:     "erev_rosh_hashana",
	RoshHashana:         "rosh_hashana",
	FastOfGedalyah:      "fast_of_gedalyah",
	ErevYomKippur:       "erev_yom_kippur",
	YomKippur:           "yom_kippur",
	ErevSuccos:          "erev_succos",
	Succos:              "succos",
	CholHamoedSuccos:    "chol_hamoed_succos",
	HoshanaRabba:        "hoshana_rabba",
	SheminiAtzeres:      "shemini_atzeres",
	SimchasTorah:        "simchas_torah",
	Chanukah:            "chanukah",
	TenthOfTeves:        "tenth_of_teves",
	TuBishvat:           "tu_bishvat",
	FastOfEsther:        "fast_of_esther",
	Purim:               "purim",
	ShushanPurim:        "shushan_purim",
	PurimKatan:          "purim_katan",
	ShushanPurimKatan:   "shushan_purim_katan",
	RoshChodesh:         "rosh_chodesh",
	YomHashoah:          "yom_hashoah",
	YomHazikaron:        "yom_hazikaron",
	YomHaatzmaut:        "yom_haatzmaut",
	YomYerushalayim:     "yom_yerushalayim",
	LagBaomer:           "lag_baomer",
	IsruChag:            "isru_chag",
}

// All returns every occasion except None, in declaration order.
func All() []Holiday {
	out := make([]Holiday, 0, count-1)
	for h := None + 1; h < count; h++ {
		out = append(out, h)
	}
	return out
}

// String returns the stable key of h, or "" for None.
func (h Holiday) String() string {
	if h < None || h >= count {
		return fmt.Sprintf("holiday(%d)", int(h))
	}
	return keys[h]
}

// Parse returns the Holiday with the given key.
func Parse(key string) (Holiday, bool) {
	for h := None + 1; h < count; h++ {
		if keys[h] == key {
			return h, true
		}
	}
	return None, false
}

// MarshalText implements encoding.TextMarshaler.
func (h Holiday) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Holiday) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*h = None
		return nil
	}
	v, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("unknown holiday %q", b)
	}
	*h = v
	return nil
}

// Names is a display table indexed by Holiday.
type Names [count]string

// Name returns the display name of h.
func (n Names) Name(h Holiday) string {
	if h <= None || h >= count {
		return ""
	}
	return n[h]
}

// English names.
var English = Names{
	ErevPesach:          "Erev Pesach",
	Pesach:              "Pesach",
	CholHamoedPesach:    "Chol Hamoed Pesach",
	PesachSheni:         "Pesach Sheni",
	ErevShavuos:         "Erev Shavuos",
	Shavuos:             "Shavuos",
	SeventeenthOfTammuz: "Seventeenth of Tammuz",
	TishaBav:            "Tisha B'Av",
	TuBav:               "Tu B'Av",
	ErevRoshHashana:     "Erev Rosh Hashana",
	RoshHashana:         "Rosh Hashana",
	FastOfGedalyah:      "Fast of Gedalyah",
	ErevYomKippur:       "Erev Yom Kippur",
	YomKippur:           "Yom Kippur",
	ErevSuccos:          "Erev Succos",
	Succos:              "Succos",
	CholHamoedSuccos:    "Chol Hamoed Succos",
	HoshanaRabba:        "Hoshana Rabba",
	SheminiAtzeres:      "Shemini Atzeres",
	SimchasTorah:        "Simchas Torah",
	Chanukah:            "Chanukah",
	TenthOfTeves:        "Tenth of Teves",
	TuBishvat:           "Tu B'Shvat",
	FastOfEsther:        "Fast of Esther",
	Purim:               "Purim",
	ShushanPurim:        "Shushan Purim",
	PurimKatan:          "Purim Katan",
	ShushanPurimKatan:   "Shushan Purim Katan",
	RoshChodesh:         "Rosh Chodesh",
	YomHashoah:          "Yom Hashoah",
	YomHazikaron:        "Yom Hazikaron",
	YomHaatzmaut:        "Yom Haatzmaut",
	YomYerushalayim:     "Yom Yerushalayim",
	LagBaomer:           "Lag B'Omer",
	IsruChag:            "Isru Chag",
}

// Hebrew names.
var Hebrew = Names{
	ErevPesach:          "ערב פסח",
	Pesach:              "פסח",
	CholHamoedPesach:    "חול המועד פסח",
	PesachSheni:         "פסח שני",
	ErevShavuos:         "ערב שבועות",
	Shavuos:             "שבועות",
	SeventeenthOfTammuz: "שבעה עשר בתמוז",
	TishaBav:            "תשעה באב",
	TuBav:               "ט״ו באב",
	ErevRoshHashana:     "ערב ראש השנה",
	RoshHashana:         "ראש השנה",
	FastOfGedalyah:      "צום גדליה",
	ErevYomKippur:       "ערב יום כיפור",
	YomKippur:           "יום כיפור",
	ErevSuccos:          "ערב סוכות",
	Succos:              "סוכות",
	CholHamoedSuccos:    "חול המועד סוכות",
	HoshanaRabba:        "הושענא רבה",
	SheminiAtzeres:      "שמיני עצרת",
	SimchasTorah:        "שמחת תורה",
	Chanukah:            "חנוכה",
	TenthOfTeves:        "עשרה בטבת",
	TuBishvat:           "ט״ו בשבט",
	FastOfEsther:        "תענית אסתר",
	Purim:               "פורים",
	ShushanPurim:        "שושן פורים",
	PurimKatan:          "פורים קטן",
	ShushanPurimKatan:   "שושן פורים קטן",
	RoshChodesh:         "ראש חודש",
	YomHashoah:          "יום השואה",
	YomHazikaron:        "יום הזכרון",
	YomHaatzmaut:        "יום העצמאות",
	YomYerushalayim:     "יום ירושלים",
	LagBaomer:           "ל״ג בעומר",
	IsruChag:            "אסרו חג",
}
