package render

import (
	"fmt"
	"strings"

	"github.com/username/zmanim-sheet/internal/calendar"
	"github.com/username/zmanim-sheet/internal/zmanim"
)

// Language selects the label set of a rendered sheet
type Language string

const (
	Hebrew  Language = "he"
	English Language = "en"
)

// ParseLanguage parses a language code, defaulting to Hebrew when empty
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case "", Hebrew:
		return Hebrew, nil
	case English:
		return English, nil
	default:
		return "", fmt.Errorf("unknown language %q, expected 'he' or 'en'", s)
	}
}

var hebrewTimeLabels = map[zmanim.Label]string{
	zmanim.Shacharis:             "שחרית",
	zmanim.CandleLighting:        "הדלקת נרות",
	zmanim.MinchaKabbalasShabbos: "מנחה וקבלת שבת",
	zmanim.LatestShema:           "סזק\"ש",
	zmanim.LatestMorningPrayer:   "סז\"ת",
	zmanim.Mincha1:               "מנחה א",
	zmanim.Mincha2:               "מנחה ב",
	zmanim.MaarivMotzei:          "מעריב ומוצאי שבת",
	zmanim.MinchaMaariv:          "מנחה ומעריב",
	zmanim.Maariv:                "מעריב",
}

var hebrewDayTitles = map[zmanim.DayLabel]string{
	zmanim.Sunday:      "יום א'",
	zmanim.Monday:      "יום ב'",
	zmanim.Tuesday:     "יום ג'",
	zmanim.Wednesday:   "יום ד'",
	zmanim.Thursday:    "יום ה'",
	zmanim.ErevShabbos: "ערב שבת",
	zmanim.Shabbos:     "שבת קודש",
}

// TimeLabel returns the printed name of a time
func TimeLabel(label zmanim.Label, lang Language) string {
	if lang == Hebrew {
		if name, ok := hebrewTimeLabels[label]; ok {
			return name
		}
	}
	return label.String()
}

// DayTitle returns the column heading of a day, e.g. "יום ב' Mon"
func DayTitle(day zmanim.WeekDay, lang Language) string {
	if lang == Hebrew {
		title := hebrewDayTitles[day.Label]
		if day.Abbrev != "" {
			title += " " + day.Abbrev
		}
		return title
	}
	return day.Label.String()
}

// PortionTitle returns the heading of the Shabbos column's portion line
func PortionTitle(p calendar.Portion, lang Language) string {
	if lang == Hebrew {
		return "פרשת " + p.Hebrew()
	}
	return "Parashas " + p.English()
}

// EntryTitle returns the printed name of an upcoming day
func EntryTitle(e zmanim.SignificantDayEntry) string {
	if e.Day != "" {
		return e.Day.Title()
	}
	return e.Label
}
