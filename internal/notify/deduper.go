package notify

import "fmt"

// AlertDeduper remembers which transition alerts already fired so a tick
// loop re-observing the same state cannot alert twice. Keys combine the
// prayer name, the phase, and the civil date; Reset drops entries from
// previous days at the midnight rollover.
type AlertDeduper struct {
	fired map[string]bool
}

func NewAlertDeduper() *AlertDeduper {
	return &AlertDeduper{
		fired: make(map[string]bool),
	}
}

// FireOnce reports whether the alert identified by (prayerName, phase,
// civilDate) has not fired yet, and records it as fired.
func (d *AlertDeduper) FireOnce(prayerName, phase, civilDate string) bool {
	key := dedupKey(prayerName, phase, civilDate)
	if d.fired[key] {
		return false
	}

	d.fired[key] = true
	return true
}

// Reset clears every alert that does not belong to the given civil date.
func (d *AlertDeduper) Reset(civilDate string) {
	suffix := "@" + civilDate
	for key := range d.fired {
		if len(key) < len(suffix) || key[len(key)-len(suffix):] != suffix {
			delete(d.fired, key)
		}
	}
}

func dedupKey(prayerName, phase, civilDate string) string {
	return fmt.Sprintf("%s/%s@%s", prayerName, phase, civilDate)
}
