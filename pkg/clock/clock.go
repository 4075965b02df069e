package clock

import (
	"fmt"
	"math"
	"time"
)

const (
	minutesPerDay = 24 * 60
	step          = 5
)

// TimeOfDay is a wall-clock time with minute granularity, stored as minutes since midnight
type TimeOfDay int

// New returns the TimeOfDay for hour:minute
func New(hour, minute int) TimeOfDay {
	return normalize(hour*60 + minute)
}

// FromTime returns the wall-clock time of t in t's location, seconds truncated
func FromTime(t time.Time) TimeOfDay {
	return New(t.Hour(), t.Minute())
}

// Hour returns the hour component (0-23)
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0-59)
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Add returns t shifted by the given number of minutes, wrapping at midnight
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return normalize(int(t) + minutes)
}

// On returns the instant of t on the calendar day of date, in date's location
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String formats t as HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse parses an HH:MM string
func Parse(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q: out of range", s)
	}
	return New(h, m), nil
}

// RoundUp advances t to the next 5-minute boundary.
// A time already on a boundary still moves forward by a full 5 minutes.
func RoundUp(t TimeOfDay) TimeOfDay {
	return t.Add(step - t.Minute()%step)
}

// RoundDown moves t back to the most recent 5-minute boundary
func RoundDown(t TimeOfDay) TimeOfDay {
	return t.Add(-(t.Minute() % step))
}

// RoundNearest rounds t to the closer 5-minute boundary
func RoundNearest(t TimeOfDay) TimeOfDay {
	m := t.Minute()
	if int(math.Round(float64(m)/step))*step > m {
		return RoundUp(t)
	}
	return RoundDown(t)
}

func normalize(minutes int) TimeOfDay {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return TimeOfDay(minutes)
}
