package zmanim

import (
	"time"

	"github.com/username/zmanim-sheet/internal/calendar"
	"github.com/username/zmanim-sheet/pkg/clock"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func key(date time.Time) string {
	return date.Format("2006-01-02")
}

// stubCalendar answers from fixed tables keyed by "YYYY-MM-DD"
type stubCalendar struct {
	days        map[string]calendar.SignificantDay
	roshChodesh map[string]bool
	hebrew      map[string]calendar.HebrewDate
	portion     *calendar.Portion
	failOn      map[string]error
	queries     int
}

func newStubCalendar() *stubCalendar {
	return &stubCalendar{
		days:        make(map[string]calendar.SignificantDay),
		roshChodesh: make(map[string]bool),
		hebrew:      make(map[string]calendar.HebrewDate),
		failOn:      make(map[string]error),
	}
}

func (c *stubCalendar) SignificantDay(date time.Time) (calendar.SignificantDay, bool, error) {
	c.queries++
	if err := c.failOn[key(date)]; err != nil {
		return "", false, err
	}
	d, ok := c.days[key(date)]
	return d, ok, nil
}

func (c *stubCalendar) IsRoshChodesh(date time.Time) (bool, error) {
	if err := c.failOn[key(date)]; err != nil {
		return false, err
	}
	return c.roshChodesh[key(date)], nil
}

func (c *stubCalendar) WeeklyPortion(date time.Time) (calendar.Portion, bool, error) {
	if err := c.failOn[key(date)]; err != nil {
		return calendar.Portion{}, false, err
	}
	if c.portion == nil {
		return calendar.Portion{}, false, nil
	}
	return *c.portion, true, nil
}

func (c *stubCalendar) HebrewDate(date time.Time) (calendar.HebrewDate, error) {
	if err := c.failOn[key(date)]; err != nil {
		return calendar.HebrewDate{}, err
	}
	return c.hebrew[key(date)], nil
}

// stubSun returns the same clock times on every date
type stubSun struct {
	sunset       clock.TimeOfDay
	candles      clock.TimeOfDay
	shma         clock.TimeOfDay
	tfilla       clock.TimeOfDay
	minchaGedola clock.TimeOfDay
	tzais        clock.TimeOfDay
	err          error
}

func newStubSun() *stubSun {
	return &stubSun{
		sunset:       clock.New(17, 48),
		candles:      clock.New(17, 32),
		shma:         clock.New(9, 22),
		tfilla:       clock.New(10, 18),
		minchaGedola: clock.New(12, 43),
		tzais:        clock.New(18, 36),
	}
}

func (s *stubSun) at(t clock.TimeOfDay, date time.Time) (time.Time, error) {
	if s.err != nil {
		return time.Time{}, s.err
	}
	// seconds must be truncated, not rounded
	return t.On(date).Add(42 * time.Second), nil
}

func (s *stubSun) Sunset(date time.Time) (time.Time, error)         { return s.at(s.sunset, date) }
func (s *stubSun) CandleLighting(date time.Time) (time.Time, error) { return s.at(s.candles, date) }
func (s *stubSun) SofZmanShma(date time.Time) (time.Time, error)    { return s.at(s.shma, date) }
func (s *stubSun) SofZmanTfilla(date time.Time) (time.Time, error)  { return s.at(s.tfilla, date) }
func (s *stubSun) MinchaGedola(date time.Time) (time.Time, error)   { return s.at(s.minchaGedola, date) }
func (s *stubSun) Tzais(date time.Time) (time.Time, error)          { return s.at(s.tzais, date) }
