package dateutil

import (
	"fmt"
	"time"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Sunday that opens the week containing date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, -int(date.Weekday())))
}

// NextSunday returns date itself if it is a Sunday, otherwise the following Sunday
func NextSunday(date time.Time) time.Time {
	offset := (7 - int(date.Weekday())) % 7
	return StartOfDay(date.AddDate(0, 0, offset))
}

// AddDays returns date shifted by n calendar days
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// IsSunday returns true if the date falls on a Sunday
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// IsShabbos returns true if the date falls on a Saturday
func IsShabbos(date time.Time) bool {
	return date.Weekday() == time.Saturday
}

// IsErevShabbos returns true if the date falls on a Friday
func IsErevShabbos(date time.Time) bool {
	return date.Weekday() == time.Friday
}

// IsWeekday returns true if the date is Sunday-Thursday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Sunday && weekday <= time.Thursday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatShort formats a date the way the printed sheet lists it, e.g. "Mar 03"
func FormatShort(date time.Time) string {
	return date.Format("Jan 02")
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// ParseDate parses date string in various formats, interpreting it in loc
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006/01/02",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// Today returns today's date (start of day) in loc
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return StartOfDay(time.Now().In(loc))
}
