package zmanim

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/zmanim-sheet/internal/calendar"
	"github.com/username/zmanim-sheet/pkg/clock"
	"go.uber.org/zap"
)

func newTestBuilder(cal *stubCalendar, sun *stubSun) *Builder {
	return NewBuilder(cal, sun, zap.NewNop())
}

func assertTimes(t *testing.T, s *DaySchedule, want []NamedTime) {
	t.Helper()
	require.NotNil(t, s)
	assert.Equal(t, want, s.Times)
}

func TestBuilder_Sunday(t *testing.T) {
	b := newTestBuilder(newStubCalendar(), newStubSun())

	s, err := b.Sunday(day(2022, time.February, 27))
	require.NoError(t, err)
	assertTimes(t, s, []NamedTime{
		{Shacharis, clock.New(9, 0)},
		{MinchaMaariv, clock.New(17, 40)},
		{Maariv, clock.New(19, 0)},
	})
	assert.Nil(t, s.Portion)

	_, err = b.Sunday(day(2022, time.February, 28))
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestBuilder_SundayRoundsToNearest(t *testing.T) {
	tests := []struct {
		sunset clock.TimeOfDay
		want   clock.TimeOfDay
	}{
		{clock.New(16, 12), clock.New(16, 0)},
		{clock.New(16, 13), clock.New(16, 5)},
		{clock.New(16, 15), clock.New(16, 5)},
		{clock.New(20, 59), clock.New(20, 50)},
	}

	for _, tt := range tests {
		sun := newStubSun()
		sun.sunset = tt.sunset
		b := newTestBuilder(newStubCalendar(), sun)

		s, err := b.Sunday(day(2022, time.February, 27))
		require.NoError(t, err)
		got, ok := s.Get(MinchaMaariv)
		require.True(t, ok)
		if got != tt.want {
			t.Errorf("sunset %v: Mincha-Maariv = %v, want %v", tt.sunset, got, tt.want)
		}
	}
}

func TestBuilder_Weekday(t *testing.T) {
	tuesday := day(2021, time.November, 30)

	tests := []struct {
		name        string
		day         calendar.SignificantDay
		roshChodesh bool
		want        clock.TimeOfDay
	}{
		{"ordinary", "", false, clock.New(7, 15)},
		{"chanukah", calendar.Chanukah, false, clock.New(7, 0)},
		{"rosh chodesh", "", true, clock.New(7, 0)},
		{"lag baomer", calendar.LagBaomer, false, clock.New(7, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := newStubCalendar()
			if tt.day != "" {
				cal.days[key(tuesday)] = tt.day
			}
			cal.roshChodesh[key(tuesday)] = tt.roshChodesh

			s, err := newTestBuilder(cal, newStubSun()).Weekday(tuesday)
			require.NoError(t, err)
			assertTimes(t, s, []NamedTime{
				{Shacharis, tt.want},
				{Maariv, clock.New(19, 0)},
			})
		})
	}
}

func TestBuilder_WeekdayFestival(t *testing.T) {
	cal := newStubCalendar()
	thursday := day(2022, time.March, 17)
	cal.days[key(thursday)] = calendar.Purim

	b := newTestBuilder(cal, newStubSun())
	class, err := b.Classifier().Classify(thursday)
	require.NoError(t, err)
	assert.Equal(t, SanctifiedOrMiscWeekday, class)

	s, err := b.Weekday(thursday)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedClassification)
}

func TestBuilder_WeekdayRejectsOtherDays(t *testing.T) {
	b := newTestBuilder(newStubCalendar(), newStubSun())

	for _, date := range []time.Time{
		day(2022, time.February, 27),
		day(2022, time.March, 4),
		day(2022, time.March, 5),
	} {
		_, err := b.Weekday(date)
		assert.ErrorIs(t, err, ErrPrecondition, "Weekday(%s)", key(date))
	}
}

func TestBuilder_ErevShabbos(t *testing.T) {
	friday := day(2022, time.March, 4)

	s, err := newTestBuilder(newStubCalendar(), newStubSun()).ErevShabbos(friday)
	require.NoError(t, err)
	assertTimes(t, s, []NamedTime{
		{Shacharis, clock.New(7, 15)},
		{CandleLighting, clock.New(17, 32)},
		{MinchaKabbalasShabbos, clock.New(17, 35)},
	})
}

func TestBuilder_ErevShabbosHolidayEve(t *testing.T) {
	friday := day(2022, time.April, 15)
	cal := newStubCalendar()
	cal.days[key(friday)] = calendar.ErevPesach

	s, err := newTestBuilder(cal, newStubSun()).ErevShabbos(friday)
	require.NoError(t, err)
	got, ok := s.Get(Shacharis)
	require.True(t, ok)
	assert.Equal(t, clock.New(7, 0), got)
}

func TestBuilder_ErevShabbosCandlesOnBoundary(t *testing.T) {
	sun := newStubSun()
	sun.candles = clock.New(17, 30)

	s, err := newTestBuilder(newStubCalendar(), sun).ErevShabbos(day(2022, time.March, 4))
	require.NoError(t, err)

	candles, _ := s.Get(CandleLighting)
	mincha, _ := s.Get(MinchaKabbalasShabbos)
	assert.Equal(t, clock.New(17, 30), candles)
	assert.Equal(t, clock.New(17, 35), mincha)
}

func TestBuilder_Shabbos(t *testing.T) {
	cal := newStubCalendar()
	cal.portion = &calendar.Portion{Numbers: []int{22}}

	s, err := newTestBuilder(cal, newStubSun()).Shabbos(day(2022, time.March, 5))
	require.NoError(t, err)

	require.NotNil(t, s.Portion)
	assert.Equal(t, "Pekudei", s.Portion.English())
	assertTimes(t, s, []NamedTime{
		{LatestShema, clock.New(9, 22)},
		{LatestMorningPrayer, clock.New(10, 18)},
		{Shacharis, clock.New(9, 30)},
		{Mincha1, clock.New(12, 43)},
		{Mincha2, clock.New(17, 25)},
		{MaarivMotzei, clock.New(18, 36)},
	})
}

func TestBuilder_ShabbosWithoutPortion(t *testing.T) {
	s, err := newTestBuilder(newStubCalendar(), newStubSun()).Shabbos(day(2022, time.April, 16))
	require.NoError(t, err)
	assert.Nil(t, s.Portion)
	assert.Len(t, s.Times, 6)
}

func TestBuilder_ShabbosRejectsFriday(t *testing.T) {
	_, err := newTestBuilder(newStubCalendar(), newStubSun()).Shabbos(day(2022, time.March, 4))
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = newTestBuilder(newStubCalendar(), newStubSun()).ErevShabbos(day(2022, time.March, 5))
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestBuilder_ProviderFailure(t *testing.T) {
	sun := newStubSun()
	providerErr := errors.New("no sunset")
	sun.err = providerErr
	b := newTestBuilder(newStubCalendar(), sun)

	_, err := b.Sunday(day(2022, time.February, 27))
	assert.ErrorIs(t, err, ErrCollaborator)
	assert.ErrorIs(t, err, providerErr)

	_, err = b.ErevShabbos(day(2022, time.March, 4))
	assert.ErrorIs(t, err, ErrCollaborator)

	_, err = b.Shabbos(day(2022, time.March, 5))
	assert.ErrorIs(t, err, ErrCollaborator)
}

func TestBuilder_PortionFailure(t *testing.T) {
	cal := newStubCalendar()
	cal.failOn[key(day(2022, time.March, 5))] = errors.New("no portion")

	_, err := newTestBuilder(cal, newStubSun()).Shabbos(day(2022, time.March, 5))
	assert.ErrorIs(t, err, ErrCollaborator)
}

func TestBuilder_SignificantDay(t *testing.T) {
	_, err := newTestBuilder(newStubCalendar(), newStubSun()).SignificantDay(day(2022, time.March, 17))
	assert.ErrorIs(t, err, ErrUnsupportedClassification)
}

func TestDaySchedule_AddReplacesExistingLabel(t *testing.T) {
	s := NewDaySchedule(day(2022, time.March, 1))
	s.Add(Shacharis, clock.New(7, 15))
	s.Add(Maariv, clock.New(19, 0))
	s.Add(Shacharis, clock.New(7, 0))

	assert.Equal(t, []Label{Shacharis, Maariv}, s.Labels())
	got, ok := s.Get(Shacharis)
	assert.True(t, ok)
	assert.Equal(t, clock.New(7, 0), got)

	_, ok = s.Get(Mincha1)
	assert.False(t, ok)
}

func TestLabel_Text(t *testing.T) {
	text, err := MinchaKabbalasShabbos.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Mincha/Kabbalas Shabbos", string(text))

	var l Label
	require.NoError(t, l.UnmarshalText([]byte("Maariv/Motzei")))
	assert.Equal(t, MaarivMotzei, l)

	assert.Error(t, l.UnmarshalText([]byte("Musaf")))
	assert.Equal(t, "Label(42)", Label(42).String())
}
