package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/username/zmanim-sheet/internal/sheet"
	"github.com/username/zmanim-sheet/internal/zmanim"
	"github.com/username/zmanim-sheet/pkg/dateutil"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Text renders a whole sheet: heading, week table and upcoming days
func Text(s *sheet.Sheet, lang Language) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Location.Name + " " + dateutil.FormatDate(s.Start())))
	b.WriteString("\n")
	b.WriteString(Week(s.Week, lang))
	if len(s.Upcoming) > 0 {
		b.WriteString("\n")
		b.WriteString(Upcoming(s.Upcoming))
	}
	b.WriteString("\n")
	return b.String()
}

// Week renders the week as a table with one column per day and one row per
// label. Rows follow the order labels first appear across the week.
func Week(w *zmanim.WeekSchedule, lang Language) string {
	headers := []string{""}
	dates := []string{""}
	var order []zmanim.Label
	seen := make(map[zmanim.Label]bool)

	for _, day := range w.Days {
		headers = append(headers, DayTitle(day, lang))
		dates = append(dates, dateutil.FormatShort(day.Schedule.Date))
		for _, label := range day.Schedule.Labels() {
			if !seen[label] {
				seen[label] = true
				order = append(order, label)
			}
		}
	}

	rows := [][]string{dates}

	if shabbos := w.Days[zmanim.Shabbos].Schedule; shabbos.Portion != nil {
		row := make([]string, len(headers))
		row[len(row)-1] = PortionTitle(*shabbos.Portion, lang)
		rows = append(rows, row)
	}

	for _, label := range order {
		row := []string{TimeLabel(label, lang)}
		for _, day := range w.Days {
			cell := ""
			if t, ok := day.Schedule.Get(label); ok {
				cell = t.String()
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers(headers...).
		Rows(rows...).
		String()
}

// Upcoming renders the upcoming significant days as a two-column table
func Upcoming(entries []zmanim.SignificantDayEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{dateutil.FormatShort(e.Date), EntryTitle(e)})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("Date", "Upcoming").
		Rows(rows...).
		String()
}

func styleCell(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
