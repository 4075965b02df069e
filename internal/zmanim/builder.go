package zmanim

import (
	"fmt"
	"time"

	"github.com/username/zmanim-sheet/internal/astro"
	"github.com/username/zmanim-sheet/internal/calendar"
	"github.com/username/zmanim-sheet/pkg/clock"
	"github.com/username/zmanim-sheet/pkg/dateutil"
	"go.uber.org/zap"
)

// Fixed service times
var (
	sundayShacharis   = clock.New(9, 0)
	extendedShacharis = clock.New(7, 0)
	weekdayShacharis  = clock.New(7, 15)
	shabbosShacharis  = clock.New(9, 30)
	weekdayMaariv     = clock.New(19, 0)
)

const (
	sundayMinchaBeforeSunset  = 10 // minutes
	shabbosMinchaBeforeSunset = 20 // minutes
)

// Builder produces the schedule of a single day
type Builder struct {
	cal        calendar.Calendar
	sun        astro.Provider
	classifier *Classifier
	logger     *zap.Logger
}

// NewBuilder creates a new Builder
func NewBuilder(cal calendar.Calendar, sun astro.Provider, logger *zap.Logger) *Builder {
	return &Builder{
		cal:        cal,
		sun:        sun,
		classifier: NewClassifier(cal, logger),
		logger:     logger,
	}
}

// Classifier returns the classifier used for weekdays
func (b *Builder) Classifier() *Classifier {
	return b.classifier
}

// Sunday builds the schedule of a Sunday
func (b *Builder) Sunday(date time.Time) (*DaySchedule, error) {
	if !dateutil.IsSunday(date) {
		return nil, b.wrongDay("Sunday", date)
	}

	sunset, err := b.solar("sunset", b.sun.Sunset, date)
	if err != nil {
		return nil, err
	}

	s := NewDaySchedule(date)
	s.Add(Shacharis, sundayShacharis)
	s.Add(MinchaMaariv, clock.RoundNearest(sunset.Add(-sundayMinchaBeforeSunset)))
	s.Add(Maariv, weekdayMaariv)
	return s, nil
}

// Weekday builds the schedule of a Monday through Thursday
func (b *Builder) Weekday(date time.Time) (*DaySchedule, error) {
	switch date.Weekday() {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
	default:
		return nil, b.wrongDay("Monday-Thursday", date)
	}

	class, err := b.classifier.Classify(date)
	if err != nil {
		return nil, err
	}

	s := NewDaySchedule(date)
	switch class {
	case ExtendedServiceWeekday:
		s.Add(Shacharis, extendedShacharis)
	case SanctifiedOrMiscWeekday:
		return b.SignificantDay(date)
	case OrdinaryWeekday:
		s.Add(Shacharis, weekdayShacharis)
	default:
		return nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedClassification, class, dateutil.FormatDate(date))
	}
	s.Add(Maariv, weekdayMaariv)
	return s, nil
}

// ErevShabbos builds the schedule of a Friday
func (b *Builder) ErevShabbos(date time.Time) (*DaySchedule, error) {
	if !dateutil.IsErevShabbos(date) {
		return nil, b.wrongDay("Friday", date)
	}

	significant, err := b.classifier.IsSignificant(date)
	if err != nil {
		return nil, err
	}

	candles, err := b.solar("candle lighting", b.sun.CandleLighting, date)
	if err != nil {
		return nil, err
	}

	s := NewDaySchedule(date)
	if significant {
		s.Add(Shacharis, extendedShacharis)
	} else {
		s.Add(Shacharis, weekdayShacharis)
	}
	s.Add(CandleLighting, candles)
	s.Add(MinchaKabbalasShabbos, clock.RoundUp(candles))
	return s, nil
}

// Shabbos builds the schedule of a Saturday, headed by the week's portion
func (b *Builder) Shabbos(date time.Time) (*DaySchedule, error) {
	if !dateutil.IsShabbos(date) {
		return nil, b.wrongDay("Saturday", date)
	}

	portion, ok, err := b.cal.WeeklyPortion(date)
	if err != nil {
		return nil, fmt.Errorf("%w: weekly portion for %s: %w", ErrCollaborator, dateutil.FormatDate(date), err)
	}

	s := NewDaySchedule(date)
	if ok {
		s.Portion = &portion
	}
	if err := b.restrictedDay(s); err != nil {
		return nil, err
	}
	return s, nil
}

// SignificantDay builds the schedule of a festival or Purim falling on a weekday.
// Service times for these days have not been defined, so it always fails.
func (b *Builder) SignificantDay(date time.Time) (*DaySchedule, error) {
	b.logger.Debug("No schedule defined for significant day", zap.String("date", dateutil.FormatDate(date)))
	return nil, fmt.Errorf("%w: no schedule defined for the significant day on %s", ErrUnsupportedClassification, dateutil.FormatDate(date))
}

// restrictedDay adds the times shared by Shabbos and festivals
func (b *Builder) restrictedDay(s *DaySchedule) error {
	date := s.Date

	shma, err := b.solar("latest shema", b.sun.SofZmanShma, date)
	if err != nil {
		return err
	}
	tfilla, err := b.solar("latest morning prayer", b.sun.SofZmanTfilla, date)
	if err != nil {
		return err
	}
	minchaGedola, err := b.solar("mincha gedola", b.sun.MinchaGedola, date)
	if err != nil {
		return err
	}
	sunset, err := b.solar("sunset", b.sun.Sunset, date)
	if err != nil {
		return err
	}
	tzais, err := b.solar("nightfall", b.sun.Tzais, date)
	if err != nil {
		return err
	}

	s.Add(LatestShema, shma)
	s.Add(LatestMorningPrayer, tfilla)
	s.Add(Shacharis, shabbosShacharis)
	s.Add(Mincha1, minchaGedola)
	s.Add(Mincha2, clock.RoundDown(sunset.Add(-shabbosMinchaBeforeSunset)))
	s.Add(MaarivMotzei, tzais)
	return nil
}

// solar asks the provider for one event and reduces it to a time of day
func (b *Builder) solar(name string, query func(time.Time) (time.Time, error), date time.Time) (clock.TimeOfDay, error) {
	t, err := query(date)
	if err != nil {
		return 0, fmt.Errorf("%w: %s for %s: %w", ErrCollaborator, name, dateutil.FormatDate(date), err)
	}
	return clock.FromTime(t), nil
}

func (b *Builder) wrongDay(want string, date time.Time) error {
	return fmt.Errorf("%w: expected %s, got %s (%s)", ErrPrecondition, want, date.Weekday(), dateutil.FormatDate(date))
}
