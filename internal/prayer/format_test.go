package prayer

import "testing"

func TestFormatCountdown(t *testing.T) {
	countdownTable := []struct {
		name     string
		minutes  int
		expected string
	}{
		{"Countdown/Hours and minutes", 125, "2j 5m"},
		{"Countdown/Under an hour", 45, "45m"},
		{"Countdown/Exactly an hour", 60, "1j 0m"},
		{"Countdown/Zero", 0, "0m"},
		{"Countdown/Negative renders placeholder", -1, "--:--"},
	}

	for _, v := range countdownTable {
		t.Run(v.name, func(t *testing.T) {
			if got := FormatCountdown(v.minutes); got != v.expected {
				t.Errorf("expected %q, got %q", v.expected, got)
			}
		})
	}
}
