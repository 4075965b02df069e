package zmanim

import (
	"fmt"
	"time"

	"github.com/username/zmanim-sheet/pkg/dateutil"
	"go.uber.org/zap"
)

// Assembler builds the sheet for a whole week
type Assembler struct {
	builder *Builder
	logger  *zap.Logger
}

// NewAssembler creates a new Assembler
func NewAssembler(builder *Builder, logger *zap.Logger) *Assembler {
	return &Assembler{
		builder: builder,
		logger:  logger,
	}
}

// BuildWeek builds the seven columns of the week starting on sunday.
// Any failing day fails the whole week.
func (a *Assembler) BuildWeek(sunday time.Time) (*WeekSchedule, error) {
	if !dateutil.IsSunday(sunday) {
		return nil, fmt.Errorf("%w: week must start on Sunday, got %s (%s)",
			ErrPrecondition, sunday.Weekday(), dateutil.FormatDate(sunday))
	}

	week := &WeekSchedule{Start: sunday}

	schedule, err := a.builder.Sunday(sunday)
	if err != nil {
		return nil, fmt.Errorf("failed to build Sunday: %w", err)
	}
	week.Days[Sunday] = WeekDay{Label: Sunday, Abbrev: abbrev(sunday), Schedule: schedule}

	for i := 1; i <= 4; i++ {
		date := dateutil.AddDays(sunday, i)
		schedule, err := a.builder.Weekday(date)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", date.Weekday(), err)
		}
		label := DayLabel(i)
		week.Days[label] = WeekDay{Label: label, Abbrev: abbrev(date), Schedule: schedule}
	}

	friday := dateutil.AddDays(sunday, 5)
	schedule, err = a.builder.ErevShabbos(friday)
	if err != nil {
		return nil, fmt.Errorf("failed to build Erev Shabbos: %w", err)
	}
	week.Days[ErevShabbos] = WeekDay{Label: ErevShabbos, Schedule: schedule}

	saturday := dateutil.AddDays(sunday, 6)
	schedule, err = a.builder.Shabbos(saturday)
	if err != nil {
		return nil, fmt.Errorf("failed to build Shabbos: %w", err)
	}
	week.Days[Shabbos] = WeekDay{Label: Shabbos, Schedule: schedule}

	a.logger.Debug("Week built", zap.String("start", dateutil.FormatDate(sunday)))

	return week, nil
}

// abbrev returns the short English day name, e.g. "Mon"
func abbrev(date time.Time) string {
	return date.Weekday().String()[:3]
}
