package render

import (
	"encoding/json"
	"fmt"

	"github.com/username/zmanim-sheet/internal/sheet"
)

// JSON renders a sheet in the archive's JSON layout
func JSON(s *sheet.Sheet) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal sheet: %w", err)
	}
	return string(data) + "\n", nil
}

// Render renders a sheet in the named format: "table", "json" or "ics"
func Render(s *sheet.Sheet, format string, lang Language) (string, error) {
	switch format {
	case "", "table":
		return Text(s, lang), nil
	case "json":
		return JSON(s)
	case "ics":
		return ICS(s, lang)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
