package zmanim

import (
	"fmt"
	"time"

	"github.com/username/zmanim-sheet/internal/calendar"
	"github.com/username/zmanim-sheet/pkg/clock"
)

// Label names a time on the sheet
type Label int

const (
	Shacharis Label = iota
	CandleLighting
	MinchaKabbalasShabbos
	LatestShema
	LatestMorningPrayer
	Mincha1
	Mincha2
	MaarivMotzei
	MinchaMaariv
	Maariv
)

var labelNames = [...]string{
	Shacharis:             "Shacharis",
	CandleLighting:        "Candle Lighting",
	MinchaKabbalasShabbos: "Mincha/Kabbalas Shabbos",
	LatestShema:           "Latest Shema",
	LatestMorningPrayer:   "Latest Morning Prayer",
	Mincha1:               "Mincha 1",
	Mincha2:               "Mincha 2",
	MaarivMotzei:          "Maariv/Motzei",
	MinchaMaariv:          "Mincha-Maariv",
	Maariv:                "Maariv",
}

// String implements fmt.Stringer
func (l Label) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// MarshalText implements encoding.TextMarshaler
func (l Label) MarshalText() ([]byte, error) {
	if l < 0 || int(l) >= len(labelNames) {
		return nil, fmt.Errorf("unknown label %d", int(l))
	}
	return []byte(labelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Label) UnmarshalText(text []byte) error {
	for i, name := range labelNames {
		if name == string(text) {
			*l = Label(i)
			return nil
		}
	}
	return fmt.Errorf("unknown label %q", text)
}

// NamedTime is one line of a day's schedule
type NamedTime struct {
	Label Label           `json:"label"`
	Time  clock.TimeOfDay `json:"time"`
}

// DaySchedule is the list of times for one date, in the order they were added
type DaySchedule struct {
	Date    time.Time         `json:"date"`
	Portion *calendar.Portion `json:"portion,omitempty"`
	Times   []NamedTime       `json:"times"`
}

// NewDaySchedule creates an empty schedule for date
func NewDaySchedule(date time.Time) *DaySchedule {
	return &DaySchedule{Date: date}
}

// Add appends a time, or replaces the time of a label that is already present
func (s *DaySchedule) Add(label Label, t clock.TimeOfDay) {
	for i := range s.Times {
		if s.Times[i].Label == label {
			s.Times[i].Time = t
			return
		}
	}
	s.Times = append(s.Times, NamedTime{Label: label, Time: t})
}

// Get returns the time for label
func (s *DaySchedule) Get(label Label) (clock.TimeOfDay, bool) {
	for _, nt := range s.Times {
		if nt.Label == label {
			return nt.Time, true
		}
	}
	return 0, false
}

// Labels returns the labels in schedule order
func (s *DaySchedule) Labels() []Label {
	labels := make([]Label, len(s.Times))
	for i, nt := range s.Times {
		labels[i] = nt.Label
	}
	return labels
}

// DayLabel is a column of the weekly sheet
type DayLabel int

const (
	Sunday DayLabel = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	ErevShabbos
	Shabbos
)

var dayLabelNames = [...]string{
	Sunday:      "Sunday",
	Monday:      "Monday",
	Tuesday:     "Tuesday",
	Wednesday:   "Wednesday",
	Thursday:    "Thursday",
	ErevShabbos: "Erev Shabbos",
	Shabbos:     "Shabbos",
}

// String implements fmt.Stringer
func (d DayLabel) String() string {
	if d < 0 || int(d) >= len(dayLabelNames) {
		return fmt.Sprintf("DayLabel(%d)", int(d))
	}
	return dayLabelNames[d]
}

// MarshalText implements encoding.TextMarshaler
func (d DayLabel) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(dayLabelNames) {
		return nil, fmt.Errorf("unknown day label %d", int(d))
	}
	return []byte(dayLabelNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *DayLabel) UnmarshalText(text []byte) error {
	for i, name := range dayLabelNames {
		if name == string(text) {
			*d = DayLabel(i)
			return nil
		}
	}
	return fmt.Errorf("unknown day label %q", text)
}

// WeekDay is one column of the weekly sheet. Abbrev is set for Sunday through Thursday.
type WeekDay struct {
	Label    DayLabel     `json:"label"`
	Abbrev   string       `json:"abbrev,omitempty"`
	Schedule *DaySchedule `json:"schedule"`
}

// WeekSchedule is the sheet for the week starting on Start, a Sunday
type WeekSchedule struct {
	Start time.Time  `json:"start"`
	Days  [7]WeekDay `json:"days"`
}

// Day returns the column for label
func (w *WeekSchedule) Day(label DayLabel) WeekDay {
	return w.Days[label]
}

// SignificantDayEntry is one line of the upcoming days list
type SignificantDayEntry struct {
	Label string                  `json:"label"`
	Date  time.Time               `json:"date"`
	Day   calendar.SignificantDay `json:"day,omitempty"`
}
