package zmanim

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/zmanim-sheet/internal/calendar"
	"go.uber.org/zap"
)

func TestScanner_Upcoming(t *testing.T) {
	start := day(2022, time.March, 3)
	cal := newStubCalendar()
	cal.roshChodesh[key(start)] = true
	cal.hebrew[key(start)] = calendar.HebrewDate{Year: 5782, Month: calendar.Adar, Day: 30}
	cal.hebrew[key(day(2022, time.March, 4))] = calendar.HebrewDate{Year: 5782, Month: calendar.AdarII, Day: 1}
	cal.roshChodesh[key(day(2022, time.March, 4))] = true
	cal.days[key(day(2022, time.March, 17))] = calendar.Purim
	// outside the window
	cal.days[key(day(2022, time.April, 2))] = calendar.Pesach

	entries, err := NewScanner(cal, zap.NewNop()).Upcoming(start)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, SignificantDayEntry{Label: "Rosh Chodesh Adar II", Date: start}, entries[0])
	assert.Equal(t, SignificantDayEntry{Label: "Rosh Chodesh Adar II", Date: day(2022, time.March, 4)}, entries[1])
	assert.Equal(t, SignificantDayEntry{Label: "purim", Date: day(2022, time.March, 17), Day: calendar.Purim}, entries[2])
}

func TestScanner_RoshChodeshFirstDay(t *testing.T) {
	start := day(2022, time.April, 2)
	cal := newStubCalendar()
	cal.roshChodesh[key(start)] = true
	cal.hebrew[key(start)] = calendar.HebrewDate{Year: 5782, Month: calendar.Nissan, Day: 1}

	entries, err := NewScanner(cal, zap.NewNop()).Upcoming(start)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Rosh Chodesh Nissan", entries[0].Label)
}

func TestScanner_WindowIsThirtyDays(t *testing.T) {
	start := day(2022, time.January, 1)
	cal := newStubCalendar()
	cal.days[key(start)] = calendar.TuBeshvat
	cal.days[key(start.AddDate(0, 0, Horizon-1))] = calendar.TuBeshvat
	cal.days[key(start.AddDate(0, 0, Horizon))] = calendar.TuBeshvat

	entries, err := NewScanner(cal, zap.NewNop()).Upcoming(start)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, key(start.AddDate(0, 0, Horizon-1)), key(entries[1].Date))
}

func TestScanner_StopsOnError(t *testing.T) {
	start := day(2022, time.March, 1)
	cal := newStubCalendar()
	oracleErr := errors.New("oracle down")
	cal.days[key(start)] = calendar.TuBeshvat
	cal.failOn[key(day(2022, time.March, 5))] = oracleErr
	cal.days[key(day(2022, time.March, 10))] = calendar.TuBeshvat

	var got []SignificantDayEntry
	var gotErr error
	for entry, err := range NewScanner(cal, zap.NewNop()).Scan(start) {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, entry)
	}

	assert.Len(t, got, 1)
	assert.ErrorIs(t, gotErr, ErrCollaborator)
	assert.ErrorIs(t, gotErr, oracleErr)
	assert.Equal(t, 5, cal.queries)

	_, err := NewScanner(cal, zap.NewNop()).Upcoming(start)
	assert.ErrorIs(t, err, oracleErr)
}

func TestScanner_BreakStopsQuerying(t *testing.T) {
	start := day(2022, time.March, 1)
	cal := newStubCalendar()
	cal.days[key(day(2022, time.March, 2))] = calendar.TuBeshvat

	for range NewScanner(cal, zap.NewNop()).Scan(start) {
		break
	}
	assert.Equal(t, 2, cal.queries)
}

func TestScanner_IsRestartable(t *testing.T) {
	cal := newStubCalendar()
	cal.days[key(day(2022, time.March, 2))] = calendar.TuBeshvat
	seq := NewScanner(cal, zap.NewNop()).Scan(day(2022, time.March, 1))

	count := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		return n
	}

	assert.Equal(t, 1, count())
	cal.days[key(day(2022, time.March, 3))] = calendar.TuBeshvat
	assert.Equal(t, 2, count())
	assert.Equal(t, 2*Horizon, cal.queries)
}
