package cli

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/masjidia/jadwal-sholat-service/internal/astro"
	"github.com/masjidia/jadwal-sholat-service/internal/prayer"
	"github.com/spf13/cobra"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the full prayer schedule for the day",
		RunE:  runToday,
	}
}

func runToday(cmd *cobra.Command, args []string) error {
	date, err := resolveDate()
	if err != nil {
		return err
	}

	params := buildParams()
	prayers, err := prayer.Build(date, params)
	if err != nil {
		return fmt.Errorf("failed to build schedule: %w", err)
	}

	syuruq, err := prayer.Syuruq(date, params)
	if err != nil {
		return fmt.Errorf("failed to compute syuruq: %w", err)
	}

	// Statuses and countdowns only make sense against the wall clock of
	// the schedule's own day. Other dates print as built, all upcoming.
	display := prayer.WithSyuruq(prayers, syuruq)
	if now := time.Now().In(date.Location()); sameCivilDay(now, date) {
		display = prayer.Evaluate(display, now)
	}

	hijri := astro.ToHijri(date)

	if flagJSON {
		out, err := json.MarshalIndent(struct {
			CivilDate string          `json:"civil_date"`
			Hijri     string          `json:"hijri"`
			IsRamadan bool            `json:"is_ramadan"`
			Prayers   []prayer.Prayer `json:"prayers"`
		}{date.Format(time.DateOnly), hijri.String(), astro.IsRamadan(date), display}, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", date.Format(time.DateOnly), hijri)
	for _, p := range display {
		if p.IqamahTime == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", p.Name, p.AdhanTime)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s  iqamah %s  [%s]\n", p.Name, p.AdhanTime, p.IqamahTime, p.Status)
	}

	return nil
}
