package prayer

import (
	"strconv"
	"strings"
	"time"
)

// Status classifies a prayer against the current time. It is derived,
// never authoritative: every evaluation pass rederives it from the adhan
// time, the window length, and the clock.
type Status string

const (
	StatusPassed   Status = "passed"
	StatusCurrent  Status = "current"
	StatusUpcoming Status = "upcoming"
)

// Canonical prayer names, in chronological order. Syuruq (sunrise) is a
// display-only row and never participates in status or alert logic.
const (
	NameSubuh   = "Subuh"
	NameSyuruq  = "Syuruq"
	NameDzuhur  = "Dzuhur"
	NameAshar   = "Ashar"
	NameMaghrib = "Maghrib"
	NameIsya    = "Isya"
)

// CanonicalNames lists the five daily prayers in chronological order.
var CanonicalNames = []string{NameSubuh, NameDzuhur, NameAshar, NameMaghrib, NameIsya}

// Window length bounds in minutes.
const (
	minWindowMinutes     = 5
	maxWindowMinutes     = 60
	defaultWindowMinutes = 20
)

// Prayer is one row of a daily schedule. Times are local wall-clock
// "HH:mm" strings; the calendar day comes from whatever reference date
// the caller evaluates against. Values are replaced wholesale on each
// evaluation pass, never mutated in place.
type Prayer struct {
	Name          string
	AdhanTime     string
	IqamahTime    string
	Status        Status
	Countdown     string
	WindowMinutes int // 0 means derive from the iqamah gap
}

// WindowBounds are the concrete instants of a prayer window on a given
// calendar day. The end bound, not the iqamah instant, decides when the
// prayer stops being current.
type WindowBounds struct {
	Start           time.Time
	End             time.Time
	Iqamah          time.Time
	DurationMinutes int
}

// Bounds resolves the prayer's wall-clock strings against the calendar
// day of ref.
func (p Prayer) Bounds(ref time.Time) WindowBounds {
	start := atClock(ref, p.AdhanTime)
	iqamah := atClock(ref, p.IqamahTime)
	duration := p.windowMinutes()

	return WindowBounds{
		Start:           start,
		End:             start.Add(time.Duration(duration) * time.Minute),
		Iqamah:          iqamah,
		DurationMinutes: duration,
	}
}

// windowMinutes returns the explicit override when set, otherwise derives
// the window from the adhan→iqamah gap, clamped to [5, 60]. A degenerate
// gap (iqamah at or before adhan) falls back to the 20-minute default.
func (p Prayer) windowMinutes() int {
	if p.WindowMinutes > 0 {
		return p.WindowMinutes
	}

	adhanH, adhanM := ParseClock(p.AdhanTime)
	iqamahH, iqamahM := ParseClock(p.IqamahTime)

	gap := (iqamahH*60 + iqamahM) - (adhanH*60 + adhanM)
	if gap <= 0 {
		return defaultWindowMinutes
	}
	if gap < minWindowMinutes {
		return minWindowMinutes
	}
	if gap > maxWindowMinutes {
		return maxWindowMinutes
	}

	return gap
}

// ParseClock parses a "HH:mm" wall-clock string permissively: malformed
// fields become 0, the hour is clamped to [0, 23] and the minute to
// [0, 59]. It never fails; a garbage input reads as midnight.
func ParseClock(clock string) (hour, minute int) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)

	hour, _ = strconv.Atoi(parts[0])
	if len(parts) == 2 {
		minute, _ = strconv.Atoi(parts[1])
	}

	return clampInt(hour, 0, 23), clampInt(minute, 0, 59)
}

// FormatClock renders an hour and minute as "HH:mm", wrapping overflow
// minutes into hours and hours past midnight.
func FormatClock(hour, minute int) string {
	hour = (hour + minute/60) % 24
	minute = minute % 60

	return two(hour) + ":" + two(minute)
}

func atClock(ref time.Time, clock string) time.Time {
	h, m := ParseClock(clock)
	return time.Date(ref.Year(), ref.Month(), ref.Day(), h, m, 0, 0, ref.Location())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func two(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
