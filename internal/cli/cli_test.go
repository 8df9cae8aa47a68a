package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	return out.String()
}

func TestTodayCommand(t *testing.T) {
	out := runCommand(t, "today", "--date", "2025-03-10")

	for _, name := range []string{"Subuh", "Syuruq", "Dzuhur", "Ashar", "Maghrib", "Isya"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected output to list %s, got:\n%s", name, out)
		}
	}

	if !strings.Contains(out, "Ramadhan") {
		t.Errorf("expected hijri date in output, got:\n%s", out)
	}
}

func TestTodayCommandJSON(t *testing.T) {
	out := runCommand(t, "today", "--date", "2025-03-10", "--json")

	if !strings.Contains(out, `"is_ramadan": true`) {
		t.Errorf("expected ramadan flag in JSON output, got:\n%s", out)
	}
}

func TestTodayCommandOtherDate(t *testing.T) {
	out := runCommand(t, "today", "--date", "2025-03-10")

	if strings.Contains(out, "[passed]") || strings.Contains(out, "[current]") {
		t.Errorf("expected no live statuses for another day's schedule, got:\n%s", out)
	}

	if strings.Count(out, "[upcoming]") != 5 {
		t.Errorf("expected all five prayers upcoming, got:\n%s", out)
	}
}

func TestNextCommand(t *testing.T) {
	out := runCommand(t, "next", "--date", "2025-03-10")

	if strings.TrimSpace(out) == "" {
		t.Error("expected next command to print a prayer")
	}
}

func TestNextCommandOtherDate(t *testing.T) {
	out := runCommand(t, "next", "--date", "2025-03-10")

	if !strings.Contains(out, "Subuh") || strings.Contains(out, "besok") {
		t.Errorf("expected the first prayer of the requested day, got:\n%s", out)
	}
}

func TestHijriCommand(t *testing.T) {
	out := runCommand(t, "hijri", "--date", "2024-04-10")

	if !strings.Contains(out, "1 Syawal 1445 H") {
		t.Errorf("expected hijri conversion in output, got:\n%s", out)
	}
}

func TestPolarCoordinatesFail(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"today", "--date", "2025-06-21", "--latitude", "75", "--longitude", "20"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for polar coordinates")
	}
}
