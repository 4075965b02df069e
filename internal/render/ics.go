package render

import (
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/username/zmanim-sheet/internal/sheet"
	"github.com/username/zmanim-sheet/pkg/dateutil"
)

const productID = "-//zmanim-sheet//weekly sheet//EN"

// ICS renders a sheet as an iCalendar feed: one event per time of the week
// and one all-day event per upcoming day
func ICS(s *sheet.Sheet, lang Language) (string, error) {
	if s == nil || s.Week == nil {
		return "", fmt.Errorf("cannot render an empty sheet")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(s.Location.Name + " " + dateutil.FormatDate(s.Start()))
	cal.SetXWRTimezone(s.Location.TimeZone)

	for _, day := range s.Week.Days {
		date := day.Schedule.Date
		for _, nt := range day.Schedule.Times {
			event := cal.AddEvent(fmt.Sprintf("%s-%s@zmanim-sheet", dateutil.FormatDate(date), slug(nt.Label.String())))
			at := nt.Time.On(date)
			event.SetDtStampTime(s.GeneratedAt)
			event.SetStartAt(at)
			event.SetEndAt(at)
			event.SetSummary(TimeLabel(nt.Label, lang))
			event.SetLocation(s.Location.Name)
		}
		if day.Schedule.Portion != nil {
			event := cal.AddEvent(fmt.Sprintf("%s-portion@zmanim-sheet", dateutil.FormatDate(date)))
			event.SetDtStampTime(s.GeneratedAt)
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(dateutil.AddDays(date, 1))
			event.SetSummary(PortionTitle(*day.Schedule.Portion, lang))
		}
	}

	for _, entry := range s.Upcoming {
		event := cal.AddEvent(fmt.Sprintf("%s-%s@zmanim-sheet", dateutil.FormatDate(entry.Date), slug(entry.Label)))
		event.SetDtStampTime(s.GeneratedAt)
		event.SetAllDayStartAt(entry.Date)
		event.SetAllDayEndAt(dateutil.AddDays(entry.Date, 1))
		event.SetSummary(EntryTitle(entry))
	}

	return cal.Serialize(), nil
}

// slug turns a label into a UID fragment, e.g. "Mincha/Kabbalas Shabbos" -> "mincha-kabbalas-shabbos"
func slug(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "-", "/", "-", "_", "-").Replace(s))
}
