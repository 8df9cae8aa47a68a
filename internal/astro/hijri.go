package astro

import (
	"fmt"
	"time"
)

// HijriDate is a civil date on the tabular (Kuwaiti) Islamic calendar.
// Accuracy against official moon-sighting calendars is ±1 day, which is
// inherent to the tabular method and acceptable for display purposes.
type HijriDate struct {
	Year  int
	Month int
	Day   int
}

const ramadanMonth = 9

var hijriMonthNames = [12]string{
	"Muharram", "Safar", "Rabiul Awal", "Rabiul Akhir",
	"Jumadil Awal", "Jumadil Akhir", "Rajab", "Syaban",
	"Ramadhan", "Syawal", "Dzulqaidah", "Dzulhijjah",
}

// MonthName returns the Indonesian display name of the Hijri month.
func (h HijriDate) MonthName() string {
	if h.Month < 1 || h.Month > 12 {
		return ""
	}
	return hijriMonthNames[h.Month-1]
}

func (h HijriDate) String() string {
	return fmt.Sprintf("%d %s %d H", h.Day, h.MonthName(), h.Year)
}

// ToHijri converts a Gregorian civil date to the tabular Hijri calendar
// using the Kuwaiti algorithm.
func ToHijri(date time.Time) HijriDate {
	jd := julianDayNumber(date.Year(), int(date.Month()), date.Day())

	l := jd - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354

	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	month := (24 * l) / 709
	day := l - (709*month)/24
	year := 30*n + j - 30

	return HijriDate{Year: year, Month: month, Day: day}
}

// IsRamadan reports whether the given Gregorian date falls in Ramadan on
// the tabular calendar.
func IsRamadan(date time.Time) bool {
	return ToHijri(date).Month == ramadanMonth
}

// julianDayNumber returns the Julian day number at noon of the given
// Gregorian civil date.
func julianDayNumber(year, month, day int) int {
	if month < 3 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	return int(365.25*float64(year+4716)) + int(30.6001*float64(month+1)) + day + b - 1524
}
