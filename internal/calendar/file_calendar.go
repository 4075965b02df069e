package calendar

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileCalendar implements SignificantDaySource using a local YAML file of
// community-specific days, e.g. a local fast or a yahrzeit with altered services
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[string]SignificantDay // key: "YYYY-MM-DD"
}

type overrideFile struct {
	SignificantDays []overrideEntry `yaml:"significant_days"`
}

type overrideEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
	Note string `yaml:"note"`
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]SignificantDay),
	}
}

// Load loads override data from file
//
// Format:
//
//	significant_days:
//	  - date: 2024-05-14
//	    name: yom_haatzmaut
//	    note: communal celebration
func (fc *FileCalendar) Load() error {
	raw, err := os.ReadFile(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse calendar file: %w", err)
	}

	for _, entry := range file.SignificantDays {
		date, err := time.Parse("2006-01-02", strings.TrimSpace(entry.Date))
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", entry.Date), zap.Error(err))
			continue
		}

		name := strings.TrimSpace(entry.Name)
		if name == "" {
			fc.logger.Warn("Missing name for override", zap.String("date", entry.Date))
			continue
		}

		fc.data[date.Format("2006-01-02")] = SignificantDay(name)
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.data)))

	return nil
}

// SignificantDay returns the override for date, if one is listed
func (fc *FileCalendar) SignificantDay(date time.Time) (SignificantDay, bool, error) {
	day, ok := fc.data[date.Format("2006-01-02")]
	return day, ok, nil
}

// Len returns the number of loaded overrides
func (fc *FileCalendar) Len() int {
	return len(fc.data)
}
