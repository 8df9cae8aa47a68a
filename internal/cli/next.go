package cli

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/masjidia/jadwal-sholat-service/internal/prayer"
	"github.com/spf13/cobra"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		RunE:  runNext,
	}
}

func runNext(cmd *cobra.Command, args []string) error {
	date, err := resolveDate()
	if err != nil {
		return err
	}

	params := buildParams()
	today, err := prayer.Build(date, params)
	if err != nil {
		return fmt.Errorf("failed to build schedule: %w", err)
	}

	tomorrow, err := prayer.Build(date.AddDate(0, 0, 1), params)
	if err != nil {
		return fmt.Errorf("failed to build tomorrow's schedule: %w", err)
	}

	if now := time.Now().In(date.Location()); sameCivilDay(now, date) {
		today = prayer.Evaluate(today, now)
	}

	next, ok := prayer.Next(today, tomorrow)
	if !ok {
		return fmt.Errorf("no upcoming prayer found")
	}

	if flagJSON {
		out, err := json.MarshalIndent(struct {
			Prayer     prayer.Prayer `json:"prayer"`
			IsTomorrow bool          `json:"is_tomorrow"`
		}{next.Prayer, next.IsTomorrow}, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	suffix := ""
	if next.IsTomorrow {
		suffix = " (besok)"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s", next.Prayer.Name, next.Prayer.AdhanTime, suffix)
	if next.Prayer.Countdown != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " (%s)", next.Prayer.Countdown)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	return nil
}
