package zmanim

import (
	"fmt"
	"iter"
	"time"

	"github.com/username/zmanim-sheet/internal/calendar"
	"github.com/username/zmanim-sheet/pkg/dateutil"
	"go.uber.org/zap"
)

// Horizon is the number of days the scanner looks ahead
const Horizon = 30

// Scanner lists the significant days and Rosh Chodesh days ahead of a date
type Scanner struct {
	cal    calendar.Calendar
	logger *zap.Logger
}

// NewScanner creates a new Scanner
func NewScanner(cal calendar.Calendar, logger *zap.Logger) *Scanner {
	return &Scanner{
		cal:    cal,
		logger: logger,
	}
}

// Scan yields the entries of the Horizon days from start, in date order.
// Every range over the sequence queries the calendar again. A calendar error
// is yielded once and ends the sequence.
func (s *Scanner) Scan(start time.Time) iter.Seq2[SignificantDayEntry, error] {
	return func(yield func(SignificantDayEntry, error) bool) {
		for i := 0; i < Horizon; i++ {
			date := dateutil.AddDays(start, i)

			entry, ok, err := s.entry(date)
			if err != nil {
				yield(SignificantDayEntry{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Upcoming collects Scan into a slice
func (s *Scanner) Upcoming(start time.Time) ([]SignificantDayEntry, error) {
	var entries []SignificantDayEntry
	for entry, err := range s.Scan(start) {
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	s.logger.Debug("Upcoming days scanned",
		zap.String("start", dateutil.FormatDate(start)),
		zap.Int("entries", len(entries)))

	return entries, nil
}

func (s *Scanner) entry(date time.Time) (SignificantDayEntry, bool, error) {
	day, ok, err := s.cal.SignificantDay(date)
	if err != nil {
		return SignificantDayEntry{}, false, fmt.Errorf("%w: significant day for %s: %w", ErrCollaborator, dateutil.FormatDate(date), err)
	}
	if ok {
		return SignificantDayEntry{Label: day.String(), Date: date, Day: day}, true, nil
	}

	rc, err := s.cal.IsRoshChodesh(date)
	if err != nil {
		return SignificantDayEntry{}, false, fmt.Errorf("%w: rosh chodesh for %s: %w", ErrCollaborator, dateutil.FormatDate(date), err)
	}
	if !rc {
		return SignificantDayEntry{}, false, nil
	}

	month, err := s.roshChodeshMonth(date)
	if err != nil {
		return SignificantDayEntry{}, false, err
	}
	return SignificantDayEntry{Label: "Rosh Chodesh " + month.DisplayName(), Date: date}, true, nil
}

// roshChodeshMonth returns the month a Rosh Chodesh day belongs to.
// The 30th of a month is the first day of Rosh Chodesh for the next month.
func (s *Scanner) roshChodeshMonth(date time.Time) (calendar.HebrewMonth, error) {
	hd, err := s.cal.HebrewDate(date)
	if err != nil {
		return 0, fmt.Errorf("%w: hebrew date for %s: %w", ErrCollaborator, dateutil.FormatDate(date), err)
	}
	if hd.Day != 30 {
		return hd.Month, nil
	}

	next := dateutil.AddDays(date, 1)
	hd, err = s.cal.HebrewDate(next)
	if err != nil {
		return 0, fmt.Errorf("%w: hebrew date for %s: %w", ErrCollaborator, dateutil.FormatDate(next), err)
	}
	return hd.Month, nil
}
