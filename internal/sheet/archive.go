package sheet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/username/zmanim-sheet/pkg/dateutil"
	"go.uber.org/zap"
)

// Archive stores generated sheets as one JSON file per week
type Archive struct {
	dir    string
	logger *zap.Logger
}

// NewArchive creates a new archive rooted at dir
func NewArchive(dir string, logger *zap.Logger) *Archive {
	return &Archive{
		dir:    dir,
		logger: logger,
	}
}

// Path returns the file holding the sheet of the week starting on sunday
func (a *Archive) Path(sunday time.Time) string {
	return filepath.Join(a.dir, dateutil.FormatDate(sunday)+".json")
}

// Exists checks if the sheet of the week starting on sunday was archived
func (a *Archive) Exists(sunday time.Time) bool {
	_, err := os.Stat(a.Path(sunday))
	return err == nil
}

// Save writes the sheet to the archive, replacing an earlier copy
func (a *Archive) Save(s *Sheet) error {
	if s == nil || s.Week == nil {
		return fmt.Errorf("cannot archive an empty sheet")
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sheet: %w", err)
	}

	path := a.Path(s.Start())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sheet file: %w", err)
	}

	a.logger.Info("Sheet archived",
		zap.String("week", dateutil.FormatDate(s.Start())),
		zap.String("file", path))

	return nil
}

// Load reads the sheet of the week starting on sunday
func (a *Archive) Load(sunday time.Time) (*Sheet, error) {
	data, err := os.ReadFile(a.Path(sunday))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet file: %w", err)
	}

	var s Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse sheet file: %w", err)
	}

	return &s, nil
}
