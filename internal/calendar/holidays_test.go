package calendar

import (
	"testing"
	"time"
)

func TestSignificantDayFor(t *testing.T) {
	tests := []struct {
		name   string
		ctx    dayContext
		want   SignificantDay
		wantOK bool
	}{
		{"first day pesach", dayContext{date: HebrewDate{Month: Nissan, Day: 15}, weekday: time.Saturday}, Pesach, true},
		{"chol hamoed pesach", dayContext{date: HebrewDate{Month: Nissan, Day: 18}, weekday: time.Tuesday}, CholHamoedPesach, true},
		{"last day pesach", dayContext{date: HebrewDate{Month: Nissan, Day: 22}, weekday: time.Sunday}, Pesach, true},
		{"after pesach", dayContext{date: HebrewDate{Month: Nissan, Day: 23}, weekday: time.Monday}, "", false},
		{"lag baomer", dayContext{date: HebrewDate{Month: Iyar, Day: 18}, weekday: time.Thursday}, LagBaomer, true},
		{"17 tammuz on weekday", dayContext{date: HebrewDate{Month: Tammuz, Day: 17}, weekday: time.Tuesday}, SeventeenOfTammuz, true},
		{"17 tammuz on shabbos", dayContext{date: HebrewDate{Month: Tammuz, Day: 17}, weekday: time.Saturday}, "", false},
		{"17 tammuz postponed", dayContext{date: HebrewDate{Month: Tammuz, Day: 18}, weekday: time.Sunday}, SeventeenOfTammuz, true},
		{"18 tammuz not postponed", dayContext{date: HebrewDate{Month: Tammuz, Day: 18}, weekday: time.Wednesday}, "", false},
		{"tisha beav postponed", dayContext{date: HebrewDate{Month: Av, Day: 10}, weekday: time.Sunday}, TishaBeav, true},
		{"tzom gedalyah postponed", dayContext{date: HebrewDate{Month: Tishrei, Day: 4}, weekday: time.Sunday}, TzomGedalyah, true},
		{"rosh hashana second day", dayContext{date: HebrewDate{Month: Tishrei, Day: 2}, weekday: time.Friday}, RoshHashana, true},
		{"hoshana rabbah", dayContext{date: HebrewDate{Month: Tishrei, Day: 21}, weekday: time.Wednesday}, HoshanaRabbah, true},
		{"simchas torah", dayContext{date: HebrewDate{Month: Tishrei, Day: 23}, weekday: time.Friday}, SimchasTorah, true},
		{"chanukah first day", dayContext{date: HebrewDate{Month: Kislev, Day: 25}, weekday: time.Monday, kislevDays: 30}, Chanukah, true},
		{"chanukah 2 teves after long kislev", dayContext{date: HebrewDate{Month: Teves, Day: 2}, weekday: time.Monday, kislevDays: 30}, Chanukah, true},
		{"3 teves after long kislev", dayContext{date: HebrewDate{Month: Teves, Day: 3}, weekday: time.Tuesday, kislevDays: 30}, "", false},
		{"chanukah 3 teves after short kislev", dayContext{date: HebrewDate{Month: Teves, Day: 3}, weekday: time.Tuesday, kislevDays: 29}, Chanukah, true},
		{"tenth of teves", dayContext{date: HebrewDate{Month: Teves, Day: 10}, weekday: time.Friday}, TenthOfTeves, true},
		{"taanis esther", dayContext{date: HebrewDate{Month: Adar, Day: 13}, weekday: time.Wednesday}, TaanisEsther, true},
		{"taanis esther moved back", dayContext{date: HebrewDate{Month: AdarII, Day: 11}, weekday: time.Thursday, leap: true}, TaanisEsther, true},
		{"13 adar on shabbos", dayContext{date: HebrewDate{Month: AdarII, Day: 13}, weekday: time.Saturday, leap: true}, "", false},
		{"purim", dayContext{date: HebrewDate{Month: Adar, Day: 14}, weekday: time.Thursday}, Purim, true},
		{"purim katan", dayContext{date: HebrewDate{Month: Adar, Day: 14}, weekday: time.Tuesday, leap: true}, PurimKatan, true},
		{"13 adar i", dayContext{date: HebrewDate{Month: Adar, Day: 13}, weekday: time.Monday, leap: true}, "", false},
		{"purim in leap year", dayContext{date: HebrewDate{Month: AdarII, Day: 14}, weekday: time.Thursday, leap: true}, Purim, true},
		{"ordinary day", dayContext{date: HebrewDate{Month: Cheshvan, Day: 12}, weekday: time.Monday}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := significantDayFor(tt.ctx)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("significantDayFor(%+v) = (%q, %v), want (%q, %v)", tt.ctx, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsRoshChodesh(t *testing.T) {
	tests := []struct {
		date HebrewDate
		want bool
	}{
		{HebrewDate{Month: Adar, Day: 30}, true},
		{HebrewDate{Month: AdarII, Day: 1}, true},
		{HebrewDate{Month: Tishrei, Day: 1}, false},
		{HebrewDate{Month: Tishrei, Day: 30}, true},
		{HebrewDate{Month: Cheshvan, Day: 2}, false},
	}

	for _, tt := range tests {
		if got := isRoshChodesh(tt.date); got != tt.want {
			t.Errorf("isRoshChodesh(%+v) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestIsFestivalShabbos(t *testing.T) {
	tests := []struct {
		date HebrewDate
		want bool
	}{
		{HebrewDate{Month: Tishrei, Day: 10}, true},
		{HebrewDate{Month: Tishrei, Day: 23}, true},
		{HebrewDate{Month: Tishrei, Day: 24}, false},
		{HebrewDate{Month: Nissan, Day: 22}, true},
		{HebrewDate{Month: Sivan, Day: 7}, true},
		{HebrewDate{Month: Sivan, Day: 8}, false},
		{HebrewDate{Month: Adar, Day: 14}, false},
	}

	for _, tt := range tests {
		if got := isFestivalShabbos(tt.date); got != tt.want {
			t.Errorf("isFestivalShabbos(%+v) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
