package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar by layering overrides over a primary calendar
// Overrides: FileCalendar (local file), consulted first for significant days
// Primary: HebrewCalendar, answers everything else
type CompositeCalendar struct {
	primary   Calendar
	overrides SignificantDaySource
	logger    *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary Calendar, overrides SignificantDaySource, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:   primary,
		overrides: overrides,
		logger:    logger,
	}
}

// SignificantDay returns the override for date if one exists, otherwise the primary's answer
func (cc *CompositeCalendar) SignificantDay(date time.Time) (SignificantDay, bool, error) {
	if cc.overrides != nil {
		day, ok, err := cc.overrides.SignificantDay(date)
		if err == nil && ok {
			return day, true, nil
		}
		if err != nil {
			cc.logger.Warn("Override calendar failed, falling back to primary",
				zap.Time("date", date),
				zap.Error(err))
		}
	}

	return cc.primary.SignificantDay(date)
}

// IsRoshChodesh reports whether date is a day of Rosh Chodesh
func (cc *CompositeCalendar) IsRoshChodesh(date time.Time) (bool, error) {
	return cc.primary.IsRoshChodesh(date)
}

// WeeklyPortion returns the reading for the Shabbos of date's week
func (cc *CompositeCalendar) WeeklyPortion(date time.Time) (Portion, bool, error) {
	return cc.primary.WeeklyPortion(date)
}

// HebrewDate converts date to the Hebrew calendar
func (cc *CompositeCalendar) HebrewDate(date time.Time) (HebrewDate, error) {
	return cc.primary.HebrewDate(date)
}

// LoadOverrides loads the override calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadOverrides() error {
	if fc, ok := cc.overrides.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load override calendar: %w", err)
		}
		cc.logger.Info("Override calendar loaded successfully", zap.Int("days", fc.Len()))
	}
	return nil
}
