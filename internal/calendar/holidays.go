package calendar

import "time"

// dayContext carries everything the holiday rules need about a single date
type dayContext struct {
	date       HebrewDate
	weekday    time.Weekday
	leap       bool
	kislevDays int // 29 or 30
}

// significantDayFor applies the diaspora holiday rules to a Hebrew date
func significantDayFor(c dayContext) (SignificantDay, bool) {
	d := c.date.Day
	wd := c.weekday

	switch c.date.Month {
	case Nissan:
		switch {
		case d == 14:
			return ErevPesach, true
		case d == 15 || d == 16 || d == 21 || d == 22:
			return Pesach, true
		case d >= 17 && d <= 20:
			return CholHamoedPesach, true
		}
	case Iyar:
		switch d {
		case 14:
			return PesachSheni, true
		case 18:
			return LagBaomer, true
		}
	case Sivan:
		switch d {
		case 5:
			return ErevShavuos, true
		case 6, 7:
			return Shavuos, true
		}
	case Tammuz:
		if postponedFast(d, 17, wd) {
			return SeventeenOfTammuz, true
		}
	case Av:
		if postponedFast(d, 9, wd) {
			return TishaBeav, true
		}
		if d == 15 {
			return TuBeav, true
		}
	case Elul:
		if d == 29 {
			return ErevRoshHashana, true
		}
	case Tishrei:
		switch {
		case d == 1 || d == 2:
			return RoshHashana, true
		case postponedFast(d, 3, wd):
			return TzomGedalyah, true
		case d == 9:
			return ErevYomKippur, true
		case d == 10:
			return YomKippur, true
		case d == 14:
			return ErevSuccos, true
		case d == 15 || d == 16:
			return Succos, true
		case d >= 17 && d <= 20:
			return CholHamoedSuccos, true
		case d == 21:
			return HoshanaRabbah, true
		case d == 22:
			return SheminiAtzeres, true
		case d == 23:
			return SimchasTorah, true
		}
	case Kislev:
		if d >= 25 {
			return Chanukah, true
		}
	case Teves:
		// Chanukah runs eight days from 25 Kislev, so it ends on 2 Teves
		// after a 30-day Kislev and on 3 Teves after a 29-day one.
		if d <= 3 && (c.kislevDays-25+d) < 8 {
			return Chanukah, true
		}
		if d == 10 {
			return TenthOfTeves, true
		}
	case Shevat:
		if d == 15 {
			return TuBeshvat, true
		}
	case Adar:
		if c.leap {
			switch d {
			case 14:
				return PurimKatan, true
			case 15:
				return ShushanPurimKatan, true
			}
			return "", false
		}
		return purimSeason(d, wd)
	case AdarII:
		return purimSeason(d, wd)
	}

	return "", false
}

// purimSeason covers the Adar that holds Purim (Adar in a common year, Adar II in a leap year)
func purimSeason(d int, wd time.Weekday) (SignificantDay, bool) {
	switch {
	case (d == 13 && wd != time.Saturday) || (d == 11 && wd == time.Thursday):
		return TaanisEsther, true
	case d == 14:
		return Purim, true
	case d == 15:
		return ShushanPurim, true
	}
	return "", false
}

// postponedFast reports whether day d observes a fast nominally on `day`,
// which moves to Sunday when it falls on Shabbos
func postponedFast(d, day int, wd time.Weekday) bool {
	return (d == day && wd != time.Saturday) || (d == day+1 && wd == time.Sunday)
}

// isRoshChodesh reports whether a Hebrew date is Rosh Chodesh
func isRoshChodesh(hd HebrewDate) bool {
	return hd.Day == 30 || (hd.Day == 1 && hd.Month != Tishrei)
}

// isFestivalShabbos reports whether a Shabbos on hd reads a festival portion
// instead of the weekly one (diaspora)
func isFestivalShabbos(hd HebrewDate) bool {
	d := hd.Day
	switch hd.Month {
	case Tishrei:
		return d == 1 || d == 2 || d == 10 || (d >= 15 && d <= 23)
	case Nissan:
		return d >= 15 && d <= 22
	case Sivan:
		return d == 6 || d == 7
	}
	return false
}
