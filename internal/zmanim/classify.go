package zmanim

import (
	"fmt"
	"time"

	"github.com/username/zmanim-sheet/internal/calendar"
	"github.com/username/zmanim-sheet/pkg/dateutil"
	"go.uber.org/zap"
)

// DayClassification selects the service pattern of a weekday
type DayClassification int

const (
	// OrdinaryWeekday has the regular weekday services
	OrdinaryWeekday DayClassification = iota
	// ExtendedServiceWeekday has a longer morning service (Rosh Chodesh, Chanukah, chol hamoed, fasts)
	ExtendedServiceWeekday
	// SanctifiedOrMiscWeekday is a festival or Purim falling on a weekday
	SanctifiedOrMiscWeekday
)

// String implements fmt.Stringer
func (c DayClassification) String() string {
	switch c {
	case OrdinaryWeekday:
		return "ordinary"
	case ExtendedServiceWeekday:
		return "extended"
	case SanctifiedOrMiscWeekday:
		return "sanctified"
	default:
		return fmt.Sprintf("DayClassification(%d)", int(c))
	}
}

// dayFacts is what the oracle reports about one date
type dayFacts struct {
	day         calendar.SignificantDay
	significant bool
	roshChodesh bool
}

func (f dayFacts) isOneOf(days ...calendar.SignificantDay) bool {
	if !f.significant {
		return false
	}
	for _, d := range days {
		if f.day == d {
			return true
		}
	}
	return false
}

type classificationRule struct {
	name    string
	matches func(dayFacts) bool
	class   DayClassification
}

// classificationRules is evaluated top to bottom; the first match wins
var classificationRules = []classificationRule{
	{
		name: "extended services",
		matches: func(f dayFacts) bool {
			return f.roshChodesh || f.isOneOf(
				calendar.CholHamoedSuccos,
				calendar.HoshanaRabbah,
				calendar.Chanukah,
				calendar.TenthOfTeves,
				calendar.TaanisEsther,
				calendar.CholHamoedPesach,
				calendar.SeventeenOfTammuz,
			)
		},
		class: ExtendedServiceWeekday,
	},
	{
		name: "festival or purim",
		matches: func(f dayFacts) bool {
			return f.isOneOf(
				calendar.Pesach,
				calendar.Succos,
				calendar.Shavuos,
				calendar.SheminiAtzeres,
				calendar.SimchasTorah,
				calendar.RoshHashana,
				calendar.YomKippur,
				calendar.Purim,
			)
		},
		class: SanctifiedOrMiscWeekday,
	},
	{
		name:    "ordinary",
		matches: func(dayFacts) bool { return true },
		class:   OrdinaryWeekday,
	},
}

// Classifier assigns weekdays their service pattern
type Classifier struct {
	cal    calendar.Calendar
	logger *zap.Logger
}

// NewClassifier creates a new Classifier
func NewClassifier(cal calendar.Calendar, logger *zap.Logger) *Classifier {
	return &Classifier{
		cal:    cal,
		logger: logger,
	}
}

// Classify returns the classification of a Sunday through Thursday
func (c *Classifier) Classify(date time.Time) (DayClassification, error) {
	if !dateutil.IsWeekday(date) {
		return OrdinaryWeekday, fmt.Errorf("%w: cannot classify %s, a %s", ErrPrecondition, dateutil.FormatDate(date), date.Weekday())
	}

	facts, err := c.facts(date)
	if err != nil {
		return OrdinaryWeekday, err
	}

	for _, rule := range classificationRules {
		if rule.matches(facts) {
			c.logger.Debug("Day classified",
				zap.String("date", dateutil.FormatDate(date)),
				zap.String("rule", rule.name),
				zap.Stringer("class", rule.class))
			return rule.class, nil
		}
	}

	return OrdinaryWeekday, nil
}

// HasAlteredServices reports whether date's services differ from an ordinary weekday
func (c *Classifier) HasAlteredServices(date time.Time) (bool, error) {
	class, err := c.Classify(date)
	if err != nil {
		return false, err
	}
	return class != OrdinaryWeekday, nil
}

// IsSignificant reports whether the calendar names date at all
func (c *Classifier) IsSignificant(date time.Time) (bool, error) {
	_, ok, err := c.cal.SignificantDay(date)
	if err != nil {
		return false, fmt.Errorf("%w: significant day for %s: %w", ErrCollaborator, dateutil.FormatDate(date), err)
	}
	return ok, nil
}

func (c *Classifier) facts(date time.Time) (dayFacts, error) {
	day, ok, err := c.cal.SignificantDay(date)
	if err != nil {
		return dayFacts{}, fmt.Errorf("%w: significant day for %s: %w", ErrCollaborator, dateutil.FormatDate(date), err)
	}

	rc, err := c.cal.IsRoshChodesh(date)
	if err != nil {
		return dayFacts{}, fmt.Errorf("%w: rosh chodesh for %s: %w", ErrCollaborator, dateutil.FormatDate(date), err)
	}

	return dayFacts{day: day, significant: ok, roshChodesh: rc}, nil
}
