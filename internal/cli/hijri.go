package cli

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/masjidia/jadwal-sholat-service/internal/astro"
	"github.com/spf13/cobra"
)

func newHijriCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hijri",
		Short: "Convert a Gregorian date to the Hijri calendar",
		RunE:  runHijri,
	}
}

func runHijri(cmd *cobra.Command, args []string) error {
	date, err := resolveDate()
	if err != nil {
		return err
	}

	hijri := astro.ToHijri(date)

	if flagJSON {
		out, err := json.MarshalIndent(struct {
			CivilDate string `json:"civil_date"`
			Year      int    `json:"year"`
			Month     int    `json:"month"`
			Day       int    `json:"day"`
			MonthName string `json:"month_name"`
			IsRamadan bool   `json:"is_ramadan"`
		}{date.Format(time.DateOnly), hijri.Year, hijri.Month, hijri.Day, hijri.MonthName(), astro.IsRamadan(date)}, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", date.Format(time.DateOnly), hijri)
	if astro.IsRamadan(date) {
		fmt.Fprintln(cmd.OutOrStdout(), "Ramadhan Mubarak")
	}

	return nil
}
