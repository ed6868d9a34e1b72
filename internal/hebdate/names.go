package hebdate

import "time"

// Names is a display table for months and weekdays. The package-level
// tables are values; copy one and change fields to override names.
type Names struct {
	Months   [14]string
	AdarI    string
	Weekdays [7]string
}

// English transliterates names in the Ashkenazi style.
var English = Names{
	Months: [14]string{
		"", "Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul", "Tishrei",
		"Cheshvan", "Kislev", "Teves", "Shevat", "Adar", "Adar II",
	},
	AdarI: "Adar I",
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Shabbos",
	},
}

// Hebrew uses Hebrew script.
var Hebrew = Names{
	Months: [14]string{
		"", "ניסן", "אייר", "סיון", "תמוז", "אב", "אלול", "תשרי",
		"חשון", "כסלו", "טבת", "שבט", "אדר", "אדר ב",
	},
	AdarI: "אדר א",
	Weekdays: [7]string{
		"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת",
	},
}

// Month returns the name of m as it is called in year.
func (n Names) Month(m Month, year int) string {
	if m < Nisan || m > AdarII {
		return ""
	}
	if m == Adar && IsLeapYear(year) {
		return n.AdarI
	}
	return n.Months[m]
}

// Weekday returns the name of w.
func (n Names) Weekday(w time.Weekday) string {
	if w < time.Sunday || w > time.Saturday {
		return ""
	}
	return n.Weekdays[w]
}
