// Package parsha assigns the weekly Torah portion to a Shabbos.
//
// The assignment is table driven: a year is classified into one of 17
// rows by its leap status, the weekday of Rosh Hashana, the lengths of
// Cheshvan and Kislev and whether the diaspora second festival day is
// kept. The row then lists the portion for every Shabbos of the year.
package parsha

import "fmt"

// Parsha is a weekly portion or one of the double portions read together.
// The zero value None means no portion is read.
type Parsha int

const (
	None Parsha = iota
	Bereshis
	Noach
	LechLecha
	Vayera
	ChayeiSara
	Toldos
	Vayetzei
	Vayishlach
	Vayeshev
	Miketz
	Vayigash
	Vayechi
	Shemos
	Vaera
	Bo
	Beshalach
	Yisro
	Mishpatim
	Terumah
	Tetzaveh
	KiSisa
	Vayakhel
	Pekudei
	Vayikra
	Tzav
	Shmini
	Tazria
	Metzora
	AchreiMos
	Kedoshim
	Emor
	Behar
	Bechukosai
	Bamidbar
	Nasso
	Behaaloscha
	Shlach
	Korach
	Chukas
	Balak
	Pinchas
	Matos
	Masei
	Devarim
	Vaeschanan
	Eikev
	Reeh
	Shoftim
	KiSeitzei
	KiSavo
	Nitzavim
	Vayeilech
	Haazinu
	VezosHabracha

	VayakhelPekudei
	TazriaMetzora
	AchreiMosKedoshim
	BeharBechukosai
	ChukasBalak
	MatosMasei
	NitzavimVayeilech

	count
)

var keys = [count]string{
	Bereshis:          "bereshis",
	Noach:             "noach",
	LechLecha:         "lech_lecha",
	Vayera:            "vayera",
	ChayeiSara:        "chayei_sara",
	Toldos:            "toldos",
	Vayetzei:          "vayetzei",
	Vayishlach:        "vayishlach",
	Vayeshev:          "vayeshev",
	Miketz:            "miketz",
	Vayigash:          "vayigash",
	Vayechi:           "vayechi",
	Shemos:            "shemos",
	Vaera:             "vaera",
	Bo:                "bo",
	Beshalach:         "beshalach",
	Yisro:             "yisro",
	Mishpatim:         "mishpatim",
	Terumah:           "terumah",
	Tetzaveh:          "tetzaveh",
	KiSisa:            "ki_sisa",
	Vayakhel:          "vayakhel",
	Pekudei:           "pekudei",
	Vayikra:           "vayikra",
	Tzav:              "tzav",
	Shmini:            "shmini",
	Tazria:            "tazria",
	Metzora:           "metzora",
	AchreiMos:         "achrei_mos",
	Kedoshim:          "kedoshim",
	Emor:              "emor",
	Behar:             "behar",
	Bechukosai:        "bechukosai",
	Bamidbar:          "bamidbar",
	Nasso:             "nasso",
	Behaaloscha:       "behaaloscha",
	Shlach:            "shlach",
	Korach:            "korach",
	Chukas:            "chukas",
	Balak:             "balak",
	Pinchas:           "pinchas",
	Matos:             "matos",
	Masei:             "masei",
	Devarim:           "devarim",
	Vaeschanan:        "vaeschanan",
	Eikev:             "eikev",
	Reeh:              "reeh",
	Shoftim:           "shoftim",
	KiSeitzei:         "ki_seitzei",
	KiSavo:            "ki_savo",
	Nitzavim:          "nitzavim",
	Vayeilech:         "vayeilech",
	Haazinu:           "haazinu",
	VezosHabracha:     "vezos_habracha",
	VayakhelPekudei:   "vayakhel_pekudei",
	TazriaMetzora:     "tazria_metzora",
	AchreiMosKedoshim: "achrei_mos_kedoshim",
	BeharBechukosai:   "behar_bechukosai",
	ChukasBalak:       "chukas_balak",
	MatosMasei:        "matos_masei",
	NitzavimVayeilech: "nitzavim_vayeilech",
}

// String returns the stable key of p, or "" for None.
func (p Parsha) String() string {
	if p < None || p >= count {
		return fmt.Sprintf("parsha(%d)", int(p))
	}
	return keys[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Parsha) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Parse returns the Parsha with the given key.
func Parse(key string) (Parsha, bool) {
	for p := None + 1; p < count; p++ {
		if keys[p] == key {
			return p, true
		}
	}
	return None, false
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Parsha) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*p = None
		return nil
	}
	v, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("unknown parsha %q", b)
	}
	*p = v
	return nil
}

// IsDouble reports whether p is two portions read together.
func (p Parsha) IsDouble() bool {
	return p >= VayakhelPekudei && p < count
}

// Names is a display table indexed by Parsha.
type Names [count]string

// Name returns the display name of p.
func (n Names) Name(p Parsha) string {
	if p <= None || p >= count {
		return ""
	}
	return n[p]
}

// English transliterations.
var English = Names{
	Bereshis:          "Bereshis",
	Noach:             "Noach",
	LechLecha:         "Lech Lecha",
	Vayera:            "Vayera",
	ChayeiSara:        "Chayei Sara",
	Toldos:            "Toldos",
	Vayetzei:          "Vayetzei",
	Vayishlach:        "Vayishlach",
	Vayeshev:          "Vayeshev",
	Miketz:            "Miketz",
	Vayigash:          "Vayigash",
	Vayechi:           "Vayechi",
	Shemos:            "Shemos",
	Vaera:             "Vaera",
	Bo:                "Bo",
	Beshalach:         "Beshalach",
	Yisro:             "Yisro",
	Mishpatim:         "Mishpatim",
	Terumah:           "Terumah",
	Tetzaveh:          "Tetzaveh",
	KiSisa:            "Ki Sisa",
	Vayakhel:          "Vayakhel",
	Pekudei:           "Pekudei",
	Vayikra:           "Vayikra",
	Tzav:              "Tzav",
	Shmini:            "Shmini",
	Tazria:            "Tazria",
	Metzora:           "Metzora",
	AchreiMos:         "Achrei Mos",
	Kedoshim:          "Kedoshim",
	Emor:              "Emor",
	Behar:             "Behar",
	Bechukosai:        "Bechukosai",
	Bamidbar:          "Bamidbar",
	Nasso:             "Nasso",
	Behaaloscha:       "Beha'aloscha",
	Shlach:            "Sh'lach",
	Korach:            "Korach",
	Chukas:            "Chukas",
	Balak:             "Balak",
	Pinchas:           "Pinchas",
	Matos:             "Matos",
	Masei:             "Masei",
	Devarim:           "Devarim",
	Vaeschanan:        "Vaeschanan",
	Eikev:             "Eikev",
	Reeh:              "Re'eh",
	Shoftim:           "Shoftim",
	KiSeitzei:         "Ki Seitzei",
	KiSavo:            "Ki Savo",
	Nitzavim:          "Nitzavim",
	Vayeilech:         "Vayeilech",
	Haazinu:           "Ha'Azinu",
	VezosHabracha:     "Vezos Habracha",
	VayakhelPekudei:   "Vayakhel Pekudei",
	TazriaMetzora:     "Tazria Metzora",
	AchreiMosKedoshim: "Achrei Mos Kedoshim",
	BeharBechukosai:   "Behar Bechukosai",
	ChukasBalak:       "Chukas Balak",
	MatosMasei:        "Matos Masei",
	NitzavimVayeilech: "Nitzavim Vayeilech",
}

// Hebrew names.
var Hebrew = Names{
	Bereshis:          "בראשית",
	Noach:             "נח",
	LechLecha:         "לך לך",
	Vayera:            "וירא",
	ChayeiSara:        "חיי שרה",
	Toldos:            "תולדות",
	Vayetzei:          "ויצא",
	Vayishlach:        "וישלח",
	Vayeshev:          "וישב",
	Miketz:            "מקץ",
	Vayigash:          "ויגש",
	Vayechi:           "ויחי",
	Shemos:            "שמות",
	Vaera:             "וארא",
	Bo:                "בא",
	Beshalach:         "בשלח",
	Yisro:             "יתרו",
	Mishpatim:         "משפטים",
	Terumah:           "תרומה",
	Tetzaveh:          "תצוה",
	KiSisa:            "כי תשא",
	Vayakhel:          "ויקהל",
	Pekudei:           "פקודי",
	Vayikra:           "ויקרא",
	Tzav:              "צו",
	Shmini:            "שמיני",
	Tazria:            "תזריע",
	Metzora:           "מצרע",
	AchreiMos:         "אחרי מות",
	Kedoshim:          "קדושים",
	Emor:              "אמור",
	Behar:             "בהר",
	Bechukosai:        "בחקתי",
	Bamidbar:          "במדבר",
	Nasso:             "נשא",
	Behaaloscha:       "בהעלתך",
	Shlach:            "שלח לך",
	Korach:            "קרח",
	Chukas:            "חקת",
	Balak:             "בלק",
	Pinchas:           "פינחס",
	Matos:             "מטות",
	Masei:             "מסעי",
	Devarim:           "דברים",
	Vaeschanan:        "ואתחנן",
	Eikev:             "עקב",
	Reeh:              "ראה",
	Shoftim:           "שופטים",
	KiSeitzei:         "כי תצא",
	KiSavo:            "כי תבוא",
	Nitzavim:          "נצבים",
	Vayeilech:         "וילך",
	Haazinu:           "האזינו",
	VezosHabracha:     "וזאת הברכה",
	VayakhelPekudei:   "ויקהל פקודי",
	TazriaMetzora:     "תזריע מצרע",
	AchreiMosKedoshim: "אחרי מות קדושים",
	BeharBechukosai:   "בהר בחקתי",
	ChukasBalak:       "חקת בלק",
	MatosMasei:        "מטות מסעי",
	NitzavimVayeilech: "נצבים וילך",
}
