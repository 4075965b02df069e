package calendar

import (
	"fmt"
	"sync"
	"time"

	"github.com/hebcal/hdate"
	"go.uber.org/zap"
)

// HebrewCalendar implements Calendar using hebcal's Hebrew date arithmetic.
// Festivals and the reading cycle follow the diaspora calendar.
type HebrewCalendar struct {
	logger  *zap.Logger
	cycles  map[int]map[string]Portion // cycle year → "YYYY-MM-DD" → portion
	cycleMu sync.RWMutex
}

// NewHebrewCalendar creates a new HebrewCalendar
func NewHebrewCalendar(logger *zap.Logger) *HebrewCalendar {
	return &HebrewCalendar{
		logger: logger,
		cycles: make(map[int]map[string]Portion),
	}
}

// HebrewDate converts date to the Hebrew calendar
func (c *HebrewCalendar) HebrewDate(date time.Time) (HebrewDate, error) {
	if date.IsZero() {
		return HebrewDate{}, fmt.Errorf("cannot convert zero date")
	}
	hd := hdate.FromTime(civil(date))
	return HebrewDate{
		Year:  hd.Year(),
		Month: HebrewMonth(hd.Month()),
		Day:   hd.Day(),
	}, nil
}

// SignificantDay returns the named day falling on date, if any
func (c *HebrewCalendar) SignificantDay(date time.Time) (SignificantDay, bool, error) {
	hd, err := c.HebrewDate(date)
	if err != nil {
		return "", false, err
	}

	day, ok := significantDayFor(dayContext{
		date:       hd,
		weekday:    date.Weekday(),
		leap:       hdate.IsLeapYear(hd.Year),
		kislevDays: c.kislevLength(hd.Year),
	})
	return day, ok, nil
}

// IsRoshChodesh reports whether date is a day of Rosh Chodesh
func (c *HebrewCalendar) IsRoshChodesh(date time.Time) (bool, error) {
	hd, err := c.HebrewDate(date)
	if err != nil {
		return false, err
	}
	return isRoshChodesh(hd), nil
}

// WeeklyPortion returns the reading for the Shabbos that ends date's week
func (c *HebrewCalendar) WeeklyPortion(date time.Time) (Portion, bool, error) {
	if date.IsZero() {
		return Portion{}, false, fmt.Errorf("cannot look up portion for zero date")
	}

	day := civil(date)
	shabbos := day.AddDate(0, 0, int(time.Saturday-day.Weekday()))

	year := hdate.FromTime(shabbos).Year()
	if shabbos.Before(c.bereishis(year)) {
		year--
	}

	cycle, err := c.cycle(year)
	if err != nil {
		return Portion{}, false, err
	}

	portion, ok := cycle[shabbos.Format("2006-01-02")]
	return portion, ok, nil
}

// cycle returns the readings from Bereishis of year up to Bereishis of year+1
func (c *HebrewCalendar) cycle(year int) (map[string]Portion, error) {
	c.cycleMu.RLock()
	if cached, ok := c.cycles[year]; ok {
		c.cycleMu.RUnlock()
		return cached, nil
	}
	c.cycleMu.RUnlock()

	start := c.bereishis(year)
	end := c.bereishis(year + 1)

	var slots []shabbosSlot
	for d := start; d.Before(end); d = d.AddDate(0, 0, 7) {
		hd, err := c.HebrewDate(d)
		if err != nil {
			return nil, err
		}
		slots = append(slots, shabbosSlot{date: d, hd: hd})
	}

	readings, err := assignPortions(slots, cycleAnchors{
		shavuos:   gregorian(year, Sivan, 6),
		tishaBeav: gregorian(year, Av, 9),
		leap:      hdate.IsLeapYear(year),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build reading cycle for %d: %w", year, err)
	}

	c.cycleMu.Lock()
	c.cycles[year] = readings
	c.cycleMu.Unlock()

	c.logger.Debug("Reading cycle computed",
		zap.Int("year", year),
		zap.Time("from", start),
		zap.Time("to", end),
		zap.Int("shabbosos", len(slots)))

	return readings, nil
}

// bereishis returns the first Shabbos after Simchas Torah of the given year
func (c *HebrewCalendar) bereishis(year int) time.Time {
	simchasTorah := gregorian(year, Tishrei, 23)
	offset := int(time.Saturday - simchasTorah.Weekday())
	if offset == 0 {
		offset = 7
	}
	return simchasTorah.AddDate(0, 0, offset)
}

// kislevLength returns the number of days in Kislev of year
func (c *HebrewCalendar) kislevLength(year int) int {
	return int(gregorian(year, Teves, 1).Sub(gregorian(year, Kislev, 1)).Hours() / 24)
}

// gregorian converts a Hebrew date to a UTC midnight
func gregorian(year int, month HebrewMonth, day int) time.Time {
	return civil(hdate.New(year, hdate.HMonth(month), day).Gregorian())
}

// civil drops the clock and zone, keeping only the calendar day
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
