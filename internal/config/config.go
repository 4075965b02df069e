package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"github.com/username/zmanim-sheet/internal/astro"
)

// Config represents application configuration
type Config struct {
	Location astro.Location `mapstructure:"location"`
	Zmanim   ZmanimConfig   `mapstructure:"zmanim"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Output   OutputConfig   `mapstructure:"output"`
	Daemon   DaemonConfig   `mapstructure:"daemon"`
}

// ZmanimConfig represents the halachic parameters of the calculation
type ZmanimConfig struct {
	CandleLightingOffset string  `mapstructure:"candle_lighting_offset"` // e.g. "18m"
	TzaisDegrees         float64 `mapstructure:"tzais_degrees"`
}

// CalendarConfig represents calendar configuration
type CalendarConfig struct {
	OverridesFile string `mapstructure:"overrides_file"` // Optional YAML file of local significant days
}

// OutputConfig represents how sheets are rendered and stored
type OutputConfig struct {
	Format     string `mapstructure:"format"`   // "table", "json" or "ics"
	Language   string `mapstructure:"language"` // "he" or "en"
	File       string `mapstructure:"file"`     // Where the daemon writes the rendered sheet
	ArchiveDir string `mapstructure:"archive_dir"`
}

// DaemonConfig represents daemon mode configuration
type DaemonConfig struct {
	Schedule string `mapstructure:"schedule"` // Cron expression in the location's time zone
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

const (
	defaultCandleLightingOffset = 18 * time.Minute
	defaultTzaisDegrees         = 8.5
	defaultSchedule             = "0 20 * * 4"
)

// Load loads configuration from file. Without an explicit path a missing
// config file is not an error and the defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.zmanim-sheet")
		v.AddConfigPath("/etc/zmanim-sheet")
	}

	// Read environment variables, e.g. ZMANIM_LOCATION_TIME_ZONE
	v.SetEnvPrefix("zmanim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("location.name", "Hendon")
	v.SetDefault("location.latitude", 51.589080)
	v.SetDefault("location.longitude", -0.213700)
	v.SetDefault("location.time_zone", "Europe/London")

	v.SetDefault("zmanim.candle_lighting_offset", defaultCandleLightingOffset.String())
	v.SetDefault("zmanim.tzais_degrees", defaultTzaisDegrees)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.language", "he")
	v.SetDefault("output.file", "zmanim.txt")
	v.SetDefault("output.archive_dir", "sheets")

	v.SetDefault("daemon.schedule", defaultSchedule)
	v.SetDefault("daemon.log_level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Location config
	if err := c.Location.Validate(); err != nil {
		return fmt.Errorf("location: %w", err)
	}

	// Validate Zmanim config
	if c.Zmanim.CandleLightingOffset != "" {
		offset, err := time.ParseDuration(c.Zmanim.CandleLightingOffset)
		if err != nil {
			return fmt.Errorf("zmanim.candle_lighting_offset: %w", err)
		}
		if offset <= 0 || offset > time.Hour {
			return fmt.Errorf("zmanim.candle_lighting_offset must be between 0 and 1h, got %s", offset)
		}
	}
	if c.Zmanim.TzaisDegrees < 0 || c.Zmanim.TzaisDegrees > 18 {
		return fmt.Errorf("zmanim.tzais_degrees must be between 0 and 18")
	}

	// Validate Output config
	switch c.Output.Format {
	case "", "table", "json", "ics":
	default:
		return fmt.Errorf("output.format must be 'table', 'json' or 'ics', got '%s'", c.Output.Format)
	}
	switch c.Output.Language {
	case "", "he", "en":
	default:
		return fmt.Errorf("output.language must be 'he' or 'en', got '%s'", c.Output.Language)
	}

	// Validate Daemon config
	if _, err := cron.ParseStandard(c.Daemon.GetSchedule()); err != nil {
		return fmt.Errorf("daemon.schedule: %w", err)
	}

	return nil
}

// GetCandleLightingOffset returns the time before sunset when candles are lit. Default: 18m
func (c *ZmanimConfig) GetCandleLightingOffset() time.Duration {
	if c.CandleLightingOffset == "" {
		return defaultCandleLightingOffset
	}
	duration, err := time.ParseDuration(c.CandleLightingOffset)
	if err != nil || duration <= 0 {
		return defaultCandleLightingOffset
	}
	return duration
}

// GetTzaisDegrees returns the solar depression of nightfall. Default: 8.5
func (c *ZmanimConfig) GetTzaisDegrees() float64 {
	if c.TzaisDegrees <= 0 {
		return defaultTzaisDegrees
	}
	return c.TzaisDegrees
}

// Settings returns the astronomical settings
func (c *ZmanimConfig) Settings() astro.Settings {
	return astro.Settings{
		CandleLightingOffset: c.GetCandleLightingOffset(),
		TzaisDegrees:         c.GetTzaisDegrees(),
	}
}

// GetSchedule returns the daemon's cron expression. Default: Thursday 20:00
func (c *DaemonConfig) GetSchedule() string {
	if strings.TrimSpace(c.Schedule) == "" {
		return defaultSchedule
	}
	return c.Schedule
}

// GetLocation returns the configured location, falling back to UTC when no zone is set
func (c *Config) GetLocation() *time.Location {
	loc, err := time.LoadLocation(c.Location.TimeZone)
	if err != nil || c.Location.TimeZone == "" {
		return time.UTC
	}
	return loc
}

// ExpandEnvVars expands environment variables in config paths
func (c *Config) ExpandEnvVars() {
	c.Calendar.OverridesFile = os.ExpandEnv(c.Calendar.OverridesFile)
	c.Output.File = os.ExpandEnv(c.Output.File)
	c.Output.ArchiveDir = os.ExpandEnv(c.Output.ArchiveDir)
	c.Daemon.LogFile = os.ExpandEnv(c.Daemon.LogFile)
}
