package prayer

import "fmt"

// CountdownPlaceholder is rendered when no meaningful countdown exists.
const CountdownPlaceholder = "--:--"

// FormatCountdown renders a minute count for display: "45m" under an
// hour, "2j 5m" from an hour up (j = jam). Negative input renders the
// placeholder instead of failing.
func FormatCountdown(minutes int) string {
	if minutes < 0 {
		return CountdownPlaceholder
	}

	if minutes >= 60 {
		return fmt.Sprintf("%dj %dm", minutes/60, minutes%60)
	}

	return fmt.Sprintf("%dm", minutes)
}
