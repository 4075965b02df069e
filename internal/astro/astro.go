package astro

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/nathan-osman/go-sunrise"
	"go.uber.org/zap"
)

// ErrNoSolarEvent is returned when the sun does not reach the requested
// position on a date, e.g. at high latitudes around the solstices
var ErrNoSolarEvent = errors.New("no solar event")

const (
	// DefaultCandleLightingOffset is the time before sunset when Shabbos candles are lit
	DefaultCandleLightingOffset = 18 * time.Minute

	// DefaultTzaisDegrees is the solar depression that marks nightfall
	DefaultTzaisDegrees = 8.5
)

// Provider computes the astronomical times a schedule needs for a date
type Provider interface {
	Sunset(date time.Time) (time.Time, error)
	CandleLighting(date time.Time) (time.Time, error)
	SofZmanShma(date time.Time) (time.Time, error)
	SofZmanTfilla(date time.Time) (time.Time, error)
	MinchaGedola(date time.Time) (time.Time, error)
	Tzais(date time.Time) (time.Time, error)
}

// Location is the place a sheet is computed for
type Location struct {
	Name      string  `json:"name" mapstructure:"name"`
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
	TimeZone  string  `json:"time_zone" mapstructure:"time_zone"`
}

// Validate validates the location
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", l.Longitude)
	}
	if l.TimeZone == "" {
		return fmt.Errorf("time zone is required")
	}
	if _, err := time.LoadLocation(l.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone %q: %w", l.TimeZone, err)
	}
	return nil
}

// Settings holds the halachic parameters of the calculation
type Settings struct {
	CandleLightingOffset time.Duration
	TzaisDegrees         float64
}

// SunProvider implements Provider using the NOAA sunrise equations.
// Proportional hours follow the GRA: the day runs from sunrise to sunset.
type SunProvider struct {
	location Location
	zone     *time.Location
	settings Settings
	logger   *zap.Logger
}

// NewSunProvider creates a new SunProvider for location
func NewSunProvider(location Location, settings Settings, logger *zap.Logger) (*SunProvider, error) {
	if err := location.Validate(); err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}

	zone, err := time.LoadLocation(location.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}

	if settings.CandleLightingOffset <= 0 {
		settings.CandleLightingOffset = DefaultCandleLightingOffset
	}
	if settings.TzaisDegrees <= 0 {
		settings.TzaisDegrees = DefaultTzaisDegrees
	}

	return &SunProvider{
		location: location,
		zone:     zone,
		settings: settings,
		logger:   logger,
	}, nil
}

// Location returns the location the provider computes for
func (p *SunProvider) Location() Location {
	return p.location
}

// Zone returns the location's time zone
func (p *SunProvider) Zone() *time.Location {
	return p.zone
}

// Sunrise returns sea-level sunrise on date
func (p *SunProvider) Sunrise(date time.Time) (time.Time, error) {
	rise, _, err := p.sunriseSunset(date)
	return rise, err
}

// Sunset returns sea-level sunset on date
func (p *SunProvider) Sunset(date time.Time) (time.Time, error) {
	_, set, err := p.sunriseSunset(date)
	return set, err
}

// CandleLighting returns the candle lighting time before sunset on date
func (p *SunProvider) CandleLighting(date time.Time) (time.Time, error) {
	set, err := p.Sunset(date)
	if err != nil {
		return time.Time{}, err
	}
	return set.Add(-p.settings.CandleLightingOffset), nil
}

// SofZmanShma returns the latest time for the morning Shema: three proportional hours
func (p *SunProvider) SofZmanShma(date time.Time) (time.Time, error) {
	return p.proportionalHours(date, 3)
}

// SofZmanTfilla returns the latest time for the morning prayer: four proportional hours
func (p *SunProvider) SofZmanTfilla(date time.Time) (time.Time, error) {
	return p.proportionalHours(date, 4)
}

// MinchaGedola returns the earliest time for the afternoon prayer
func (p *SunProvider) MinchaGedola(date time.Time) (time.Time, error) {
	return p.proportionalHours(date, 6.5)
}

// Tzais returns nightfall, when the sun is TzaisDegrees below the horizon
func (p *SunProvider) Tzais(date time.Time) (time.Time, error) {
	_, evening := sunrise.TimeOfElevation(
		p.location.Latitude, p.location.Longitude, -p.settings.TzaisDegrees,
		date.Year(), date.Month(), date.Day())
	if evening.IsZero() {
		return time.Time{}, fmt.Errorf("nightfall at %.1f degrees on %s: %w",
			p.settings.TzaisDegrees, date.Format("2006-01-02"), ErrNoSolarEvent)
	}
	return evening.In(p.zone), nil
}

// proportionalHours returns sunrise plus the given number of shaos zmaniyos
func (p *SunProvider) proportionalHours(date time.Time, hours float64) (time.Time, error) {
	rise, set, err := p.sunriseSunset(date)
	if err != nil {
		return time.Time{}, err
	}
	shaah := set.Sub(rise) / 12
	return rise.Add(time.Duration(hours * float64(shaah))), nil
}

func (p *SunProvider) sunriseSunset(date time.Time) (time.Time, time.Time, error) {
	rise, set := sunrise.SunriseSunset(
		p.location.Latitude, p.location.Longitude,
		date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("sunrise/sunset on %s: %w",
			date.Format("2006-01-02"), ErrNoSolarEvent)
	}

	p.logger.Debug("Solar events computed",
		zap.String("location", p.location.Name),
		zap.String("date", date.Format("2006-01-02")),
		zap.Time("sunrise", rise),
		zap.Time("sunset", set))

	return rise.In(p.zone), set.In(p.zone), nil
}
