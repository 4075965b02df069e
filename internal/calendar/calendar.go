package calendar

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SignificantDay identifies a named date on the Hebrew calendar
type SignificantDay string

const (
	ErevPesach        SignificantDay = "erev_pesach"
	Pesach            SignificantDay = "pesach"
	CholHamoedPesach  SignificantDay = "chol_hamoed_pesach"
	PesachSheni       SignificantDay = "pesach_sheni"
	LagBaomer         SignificantDay = "lag_baomer"
	ErevShavuos       SignificantDay = "erev_shavuos"
	Shavuos           SignificantDay = "shavuos"
	SeventeenOfTammuz SignificantDay = "seventeen_of_tammuz"
	TishaBeav         SignificantDay = "tisha_beav"
	TuBeav            SignificantDay = "tu_beav"
	ErevRoshHashana   SignificantDay = "erev_rosh_hashana"
	RoshHashana       SignificantDay = "rosh_hashana"
	TzomGedalyah      SignificantDay = "tzom_gedalyah"
	ErevYomKippur     SignificantDay = "erev_yom_kippur"
	YomKippur         SignificantDay = "yom_kippur"
	ErevSuccos        SignificantDay = "erev_succos"
	Succos            SignificantDay = "succos"
	CholHamoedSuccos  SignificantDay = "chol_hamoed_succos"
	HoshanaRabbah     SignificantDay = "hoshana_rabbah"
	SheminiAtzeres    SignificantDay = "shemini_atzeres"
	SimchasTorah      SignificantDay = "simchas_torah"
	Chanukah          SignificantDay = "chanukah"
	TenthOfTeves      SignificantDay = "tenth_of_teves"
	TuBeshvat         SignificantDay = "tu_beshvat"
	TaanisEsther      SignificantDay = "taanis_esther"
	Purim             SignificantDay = "purim"
	ShushanPurim      SignificantDay = "shushan_purim"
	PurimKatan        SignificantDay = "purim_katan"
	ShushanPurimKatan SignificantDay = "shushan_purim_katan"
)

// String returns the identifier as reported by the calendar
func (d SignificantDay) String() string {
	return string(d)
}

// Title returns a display name, e.g. "Chol Hamoed Pesach"
func (d SignificantDay) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(d), "_", " "))
}

// HebrewMonth is a month of the Hebrew year, numbered from Nisan as in the Torah
type HebrewMonth int

const (
	Nissan HebrewMonth = iota + 1
	Iyar
	Sivan
	Tammuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Teves
	Shevat
	Adar
	AdarII
)

var monthIDs = [...]string{
	Nissan:   "nissan",
	Iyar:     "iyar",
	Sivan:    "sivan",
	Tammuz:   "tammuz",
	Av:       "av",
	Elul:     "elul",
	Tishrei:  "tishrei",
	Cheshvan: "cheshvan",
	Kislev:   "kislev",
	Teves:    "teves",
	Shevat:   "shevat",
	Adar:     "adar",
	AdarII:   "adar_ii",
}

// ID returns the calendar's internal month name (e.g. "adar_ii")
func (m HebrewMonth) ID() string {
	if m < Nissan || m > AdarII {
		return "unknown"
	}
	return monthIDs[m]
}

// DisplayName returns the month name used on printed sheets
func (m HebrewMonth) DisplayName() string {
	id := m.ID()
	if id == "adar_ii" {
		return "Adar II"
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

// String implements fmt.Stringer
func (m HebrewMonth) String() string {
	return m.DisplayName()
}

// HebrewDate is a date on the Hebrew calendar
type HebrewDate struct {
	Year  int
	Month HebrewMonth
	Day   int
}

// Calendar answers Hebrew-calendar questions about Gregorian dates
type Calendar interface {
	// SignificantDay returns the named day falling on date, if any
	SignificantDay(date time.Time) (SignificantDay, bool, error)

	// IsRoshChodesh reports whether date is a day of Rosh Chodesh
	IsRoshChodesh(date time.Time) (bool, error)

	// WeeklyPortion returns the Torah portion read on the Shabbos of date's week.
	// ok is false when that Shabbos has a festival reading instead.
	WeeklyPortion(date time.Time) (portion Portion, ok bool, err error)

	// HebrewDate converts date to the Hebrew calendar
	HebrewDate(date time.Time) (HebrewDate, error)
}

// SignificantDaySource is the subset of Calendar that override sources implement
type SignificantDaySource interface {
	SignificantDay(date time.Time) (SignificantDay, bool, error)
}
