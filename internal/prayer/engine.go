package prayer

import "time"

// Evaluate rederives status and countdown for every prayer against now.
// It returns a fresh slice; the input is never mutated, so consecutive
// passes with the same clock yield identical output.
//
// Prayers are visited in chronological order and the first one whose
// window contains now claims "current"; any later window that also
// contains now reports "passed". This keeps at most one prayer current
// even if misconfigured windows overlap.
func Evaluate(prayers []Prayer, now time.Time) []Prayer {
	evaluated := make([]Prayer, len(prayers))
	claimed := false

	for i, p := range prayers {
		bounds := p.Bounds(now)

		switch {
		case p.Name == NameSyuruq:
			// Display-only row: it dims once sunrise passes but never
			// claims a window or a countdown.
			p.Status = StatusUpcoming
			if !now.Before(bounds.Start) {
				p.Status = StatusPassed
			}
			p.Countdown = ""
		case now.Before(bounds.Start):
			p.Status = StatusUpcoming
			p.Countdown = FormatCountdown(minutesUntil(now, bounds.Start))
		case now.Before(bounds.End) && !claimed:
			p.Status = StatusCurrent
			p.Countdown = FormatCountdown(minutesUntil(now, bounds.End))
			claimed = true
		default:
			p.Status = StatusPassed
			p.Countdown = ""
		}

		evaluated[i] = p
	}

	return evaluated
}

// NextPrayer is the upcoming prayer a display should highlight.
type NextPrayer struct {
	Prayer     Prayer
	IsTomorrow bool
}

// Next returns the first upcoming prayer of today. When the whole day has
// passed it falls over to tomorrow's first entry, flagged IsTomorrow. The
// second return is false only when neither schedule has a candidate.
func Next(today, tomorrow []Prayer) (NextPrayer, bool) {
	for _, p := range today {
		if p.Status == StatusUpcoming {
			return NextPrayer{Prayer: p}, true
		}
	}

	if len(tomorrow) > 0 {
		return NextPrayer{Prayer: tomorrow[0], IsTomorrow: true}, true
	}

	return NextPrayer{}, false
}

// Current returns the prayer whose window contains now, if any.
func Current(prayers []Prayer) (Prayer, bool) {
	for _, p := range prayers {
		if p.Status == StatusCurrent {
			return p, true
		}
	}

	return Prayer{}, false
}

// AllPassed reports whether every prayer of the day is over.
func AllPassed(prayers []Prayer) bool {
	for _, p := range prayers {
		if p.Status != StatusPassed {
			return false
		}
	}

	return true
}

// IqamahCountdown renders the remaining time until the prayer's iqamah
// on the calendar day of now. Once the iqamah instant has passed the
// countdown carries no meaning and the placeholder is rendered instead.
func IqamahCountdown(p Prayer, now time.Time) string {
	iqamah := p.Bounds(now).Iqamah
	if !now.Before(iqamah) {
		return CountdownPlaceholder
	}

	return FormatCountdown(minutesUntil(now, iqamah))
}

// minutesUntil returns the ceiling of the minutes from now until t, so a
// boundary 61 seconds away still reads "2m" rather than rounding to zero
// early.
func minutesUntil(now, t time.Time) int {
	seconds := int(t.Sub(now) / time.Second)
	if seconds <= 0 {
		return 0
	}

	return (seconds + 59) / 60
}
