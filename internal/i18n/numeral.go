package i18n

import "strings"

const (
	geresh    = "׳"
	gershayim = "״"
)

var (
	hundreds = []struct {
		value  int
		letter string
	}{{400, "ת"}, {300, "ש"}, {200, "ר"}, {100, "ק"}}
	tens  = [10]string{"", "י", "כ", "ל", "מ", "נ", "ס", "ע", "פ", "צ"}
	units = [10]string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
)

// Numeral writes a positive n below 1000 in Hebrew letters with geresh
// or gershayim. 15 and 16 are written ט״ו and ט״ז.
func Numeral(n int) string {
	if n <= 0 || n >= 1000 {
		return ""
	}

	var letters []string
	for _, h := range hundreds {
		for n >= h.value {
			letters = append(letters, h.letter)
			n -= h.value
		}
	}
	switch n {
	case 15:
		letters = append(letters, "ט", "ו")
	case 16:
		letters = append(letters, "ט", "ז")
	default:
		if t := tens[n/10]; t != "" {
			letters = append(letters, t)
		}
		if u := units[n%10]; u != "" {
			letters = append(letters, u)
		}
	}

	if len(letters) == 1 {
		return letters[0] + geresh
	}
	last := len(letters) - 1
	return strings.Join(letters[:last], "") + gershayim + letters[last]
}
