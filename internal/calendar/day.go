// Package calendar assembles the facts of a civil day: Hebrew date,
// holiday, observances, parsha and study pages.
package calendar

import (
	"encoding/json"
	"fmt"

	"github.com/zapponejosh/luach-api/internal/database"
	"github.com/zapponejosh/luach-api/internal/hebdate"
	"github.com/zapponejosh/luach-api/internal/holiday"
	"github.com/zapponejosh/luach-api/internal/i18n"
	"github.com/zapponejosh/luach-api/internal/parsha"
)

// DayInfo is everything known about one civil day. Name fields are empty
// until Localize fills them.
type DayInfo struct {
	Date        string     `json:"date"`
	Weekday     int        `json:"weekday"` // 0=Sunday through 6=Shabbos
	WeekdayName string     `json:"weekday_name,omitempty"`
	InIsrael    bool       `json:"in_israel"`
	Hebrew      HebrewDate `json:"hebrew"`

	Holiday       holiday.Holiday `json:"holiday,omitempty"`
	HolidayName   string          `json:"holiday_name,omitempty"`
	Observances   Observances     `json:"observances"`
	DayOfOmer     int             `json:"day_of_omer,omitempty"`
	DayOfChanukah int             `json:"day_of_chanukah,omitempty"`

	Parsha             parsha.Parsha         `json:"parsha,omitempty"`
	ParshaName         string                `json:"parsha_name,omitempty"`
	SpecialShabbos     parsha.SpecialShabbos `json:"special_shabbos,omitempty"`
	SpecialShabbosName string                `json:"special_shabbos_name,omitempty"`
	Upcoming           UpcomingParsha        `json:"upcoming_parsha"`

	// Molad is set on Shabbos Mevorchim to the molad of the coming month.
	Molad *MoladInfo `json:"molad,omitempty"`

	Dafs []DafInfo `json:"dafs"`
}

// HebrewDate is a Hebrew date with the month numbered from Nisan.
type HebrewDate struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name,omitempty"`
	Day       int    `json:"day"`
	LeapYear  bool   `json:"leap_year"`
	Formatted string `json:"formatted,omitempty"`
}

// Observances are the day-type predicates.
type Observances struct {
	YomTov             bool `json:"yom_tov"`
	ErevYomTov         bool `json:"erev_yom_tov"`
	AssurBemelacha     bool `json:"assur_bemelacha"`
	WorkProhibited     bool `json:"work_prohibited"`
	FastDay            bool `json:"fast_day"`
	CholHamoed         bool `json:"chol_hamoed"`
	RoshChodesh        bool `json:"rosh_chodesh"`
	ErevRoshChodesh    bool `json:"erev_rosh_chodesh"`
	Chanukah           bool `json:"chanukah"`
	Purim              bool `json:"purim"`
	AseresYemeiTeshuva bool `json:"aseres_yemei_teshuva"`
	TaanisBechoros     bool `json:"taanis_bechoros"`
	YomKippurKatan     bool `json:"yom_kippur_katan"`
	BeHaB              bool `json:"behab"`
}

// UpcomingParsha is the next portion read after the day.
type UpcomingParsha struct {
	Date   string        `json:"date"`
	Parsha parsha.Parsha `json:"parsha"`
	Name   string        `json:"name,omitempty"`
}

// MoladInfo is a molad in civil terms.
type MoladInfo struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name,omitempty"`
	Date      string `json:"date"`
	Weekday   int    `json:"weekday"`
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	Chalakim  int    `json:"chalakim"`
}

// DafInfo is the page of one study cycle.
type DafInfo struct {
	Cycle       string `json:"cycle"`
	CycleNumber int    `json:"cycle_number"`
	Volume      int    `json:"volume"`
	VolumeName  string `json:"volume_name"`
	Page        int    `json:"page"`
	Folio       int    `json:"folio"`
}

// HebrewDate returns the Hebrew date of the day.
func (d DayInfo) HebrewDate() (hebdate.Date, error) {
	return hebdate.NewDate(d.Hebrew.Year, hebdate.Month(d.Hebrew.Month), d.Hebrew.Day)
}

// Localize returns a copy of d with display names from cat.
func (d DayInfo) Localize(cat i18n.Catalog) DayInfo {
	out := d
	out.WeekdayName = cat.Dates.Weekdays[d.Weekday%7]
	if hd, err := d.HebrewDate(); err == nil {
		out.Hebrew.MonthName = cat.Dates.Month(hd.Month(), hd.Year())
		out.Hebrew.Formatted = cat.FormatDate(hd)
	}
	out.HolidayName = cat.Holidays.Name(d.Holiday)
	out.ParshaName = cat.Parshiyos.Name(d.Parsha)
	out.SpecialShabbosName = cat.Special(d.SpecialShabbos)
	out.Upcoming.Name = cat.Parshiyos.Name(d.Upcoming.Parsha)
	if d.Molad != nil {
		m := *d.Molad
		m.MonthName = cat.Dates.Month(hebdate.Month(m.Month), m.Year)
		out.Molad = &m
	}
	return out
}

// bare returns a copy of d without display names.
func (d DayInfo) bare() DayInfo {
	out := d
	out.WeekdayName = ""
	out.Hebrew.MonthName = ""
	out.Hebrew.Formatted = ""
	out.HolidayName = ""
	out.ParshaName = ""
	out.SpecialShabbosName = ""
	out.Upcoming.Name = ""
	if d.Molad != nil {
		m := *d.Molad
		m.MonthName = ""
		out.Molad = &m
	}
	return out
}

// Record converts d into a storable row. Names are not stored.
func (d DayInfo) Record() (*database.CalendarDay, error) {
	payload, err := json.Marshal(d.bare())
	if err != nil {
		return nil, fmt.Errorf("marshal day %s: %w", d.Date, err)
	}
	return &database.CalendarDay{
		Date:        d.Date,
		InIsrael:    d.InIsrael,
		HebrewYear:  d.Hebrew.Year,
		HebrewMonth: d.Hebrew.Month,
		HebrewDay:   d.Hebrew.Day,
		Holiday:     d.Holiday.String(),
		Parsha:      d.Parsha.String(),
		Payload:     payload,
	}, nil
}

// FromRecord decodes a stored row.
func FromRecord(rec *database.CalendarDay) (DayInfo, error) {
	var d DayInfo
	if err := json.Unmarshal(rec.Payload, &d); err != nil {
		return DayInfo{}, fmt.Errorf("decode day %s: %w", rec.Date, err)
	}
	if d.Date != rec.Date || d.InIsrael != rec.InIsrael {
		return DayInfo{}, fmt.Errorf("decode day %s: payload is for %s", rec.Date, d.Date)
	}
	return d, nil
}
