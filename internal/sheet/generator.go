package sheet

import (
	"fmt"
	"time"

	"github.com/username/zmanim-sheet/internal/astro"
	"github.com/username/zmanim-sheet/internal/zmanim"
	"github.com/username/zmanim-sheet/pkg/dateutil"
	"go.uber.org/zap"
)

// Sheet is everything printed for one week
type Sheet struct {
	Location    astro.Location               `json:"location"`
	Week        *zmanim.WeekSchedule         `json:"week"`
	Upcoming    []zmanim.SignificantDayEntry `json:"upcoming"`
	GeneratedAt time.Time                    `json:"generated_at"`
}

// Start returns the Sunday the sheet starts on
func (s *Sheet) Start() time.Time {
	return s.Week.Start
}

// Generator builds weekly sheets for one location
type Generator struct {
	location  astro.Location
	zone      *time.Location
	assembler *zmanim.Assembler
	scanner   *zmanim.Scanner
	logger    *zap.Logger
	now       func() time.Time
}

// NewGenerator creates a new sheet generator
func NewGenerator(
	location astro.Location,
	zone *time.Location,
	assembler *zmanim.Assembler,
	scanner *zmanim.Scanner,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		location:  location,
		zone:      zone,
		assembler: assembler,
		scanner:   scanner,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate builds the sheet for the week starting on sunday: the week's
// times followed by the significant days of the following month
func (g *Generator) Generate(sunday time.Time) (*Sheet, error) {
	sunday = dateutil.StartOfDay(sunday.In(g.zone))

	g.logger.Info("Generating sheet",
		zap.String("location", g.location.Name),
		zap.String("week", dateutil.FormatDate(sunday)))

	week, err := g.assembler.BuildWeek(sunday)
	if err != nil {
		return nil, fmt.Errorf("failed to build week: %w", err)
	}

	upcoming, err := g.scanner.Upcoming(sunday)
	if err != nil {
		return nil, fmt.Errorf("failed to scan upcoming days: %w", err)
	}

	g.logger.Info("Sheet generated",
		zap.String("week", dateutil.FormatDate(sunday)),
		zap.Int("upcoming", len(upcoming)))

	return &Sheet{
		Location:    g.location,
		Week:        week,
		Upcoming:    upcoming,
		GeneratedAt: g.now(),
	}, nil
}

// ForDate builds the sheet of the week containing date
func (g *Generator) ForDate(date time.Time) (*Sheet, error) {
	return g.Generate(dateutil.StartOfWeek(date.In(g.zone)))
}

// Next builds the sheet to publish at now: this week on a Sunday, otherwise the coming week
func (g *Generator) Next(now time.Time) (*Sheet, error) {
	return g.Generate(NextSunday(now.In(g.zone)))
}

// NextSunday returns date itself if it is a Sunday, otherwise the following Sunday
func NextSunday(date time.Time) time.Time {
	return dateutil.NextSunday(date)
}
