package cli

import (
	"fmt"
	"time"

	"github.com/masjidia/jadwal-sholat-service/internal/prayer"
	"github.com/spf13/cobra"
)

// Global flags shared across all subcommands. Defaults are the Jakarta
// deployment constants.
var (
	flagLatitude  float64
	flagLongitude float64
	flagFajrAngle float64
	flagIshaAngle float64
	flagUTCOffset float64
	flagDate      string
	flagJSON      bool
)

// NewRootCmd creates the root command for the jadwal CLI.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jadwal",
		Short:         "Mosque prayer schedule CLI",
		Long:          "Compute mosque prayer schedules, countdowns, and Hijri dates locally, without the display service.",
		Version:       version,
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagLatitude, "latitude", -6.3140892, "Mosque latitude in degrees")
	pf.Float64Var(&flagLongitude, "longitude", 106.8776666, "Mosque longitude in degrees")
	pf.Float64Var(&flagFajrAngle, "fajr-angle", 20, "Fajr twilight depression angle in degrees")
	pf.Float64Var(&flagIshaAngle, "isha-angle", 18, "Isha twilight depression angle in degrees")
	pf.Float64Var(&flagUTCOffset, "utc-offset", 7, "UTC offset of the civil timezone in hours")
	pf.StringVar(&flagDate, "date", "", "Date to compute (YYYY-MM-DD, default today)")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(newTodayCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newHijriCmd())

	return rootCmd
}

// buildParams assembles the astronomical parameters from the flags.
func buildParams() prayer.BuildParams {
	return prayer.BuildParams{
		Latitude:       flagLatitude,
		Longitude:      flagLongitude,
		FajrAngle:      flagFajrAngle,
		IshaAngle:      flagIshaAngle,
		UTCOffsetHours: flagUTCOffset,
	}
}

// resolveDate returns the --date flag parsed in the configured civil
// timezone, or the current day when unset.
func resolveDate() (time.Time, error) {
	loc := time.FixedZone("local", int(flagUTCOffset*3600))
	if flagDate == "" {
		return time.Now().In(loc), nil
	}

	parsed, err := time.ParseInLocation(time.DateOnly, flagDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse --date: %w", err)
	}

	return parsed, nil
}

// sameCivilDay reports whether both instants fall on the same calendar
// day. Callers pass instants already in the same location.
func sameCivilDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
