package prayer

import "time"

// Phase is the sub-state of a prayer that is currently in its window.
type Phase string

const (
	PhaseAdhan  Phase = "adhan"
	PhaseIqamah Phase = "iqamah"
)

// ClassifyPhase reports whether a current prayer is still in its adhan
// segment or has reached iqamah. The caller supplies the reference day
// through now; the iqamah instant is resolved on that day.
func ClassifyPhase(p Prayer, now time.Time) Phase {
	if !now.Before(p.Bounds(now).Iqamah) {
		return PhaseIqamah
	}

	return PhaseAdhan
}
