package prayer

import (
	"fmt"
	"time"

	"github.com/masjidia/jadwal-sholat-service/internal/astro"
)

// Iqamah follows adhan by a fixed congregational offset: Maghrib gets a
// short gap, every other prayer the standard one.
const (
	standardIqamahOffset = 15
	maghribIqamahOffset  = 5
)

// BuildParams carry the astronomical configuration for one mosque.
type BuildParams struct {
	Latitude       float64
	Longitude      float64
	FajrAngle      float64
	IshaAngle      float64
	UTCOffsetHours float64
}

// Build computes the five canonical prayers for the given civil date. All
// entries start as upcoming; callers must evaluate the schedule against
// the current time before presenting statuses.
func Build(date time.Time, params BuildParams) ([]Prayer, error) {
	times, err := astro.Compute(date, params.Latitude, params.Longitude, params.FajrAngle, params.IshaAngle, params.UTCOffsetHours)
	if err != nil {
		return nil, fmt.Errorf("failed to compute solar times: %w", err)
	}

	adhans := []struct {
		name  string
		hours float64
	}{
		{NameSubuh, times.Fajr},
		{NameDzuhur, times.Dhuhr},
		{NameAshar, times.Asr},
		{NameMaghrib, times.Maghrib},
		{NameIsya, times.Isha},
	}

	prayers := make([]Prayer, 0, len(adhans))
	for _, adhan := range adhans {
		clock := astro.FormatHours(adhan.hours)

		prayers = append(prayers, Prayer{
			Name:       adhan.name,
			AdhanTime:  clock,
			IqamahTime: iqamahFor(adhan.name, clock),
			Status:     StatusUpcoming,
		})
	}

	return prayers, nil
}

// BuildFixed assembles a schedule from five preconfigured "HH:mm" adhan
// times in canonical order, for deployments running without the solar
// calculator.
func BuildFixed(adhanTimes [5]string) []Prayer {
	prayers := make([]Prayer, 0, len(CanonicalNames))
	for i, name := range CanonicalNames {
		prayers = append(prayers, Prayer{
			Name:       name,
			AdhanTime:  adhanTimes[i],
			IqamahTime: iqamahFor(name, adhanTimes[i]),
			Status:     StatusUpcoming,
		})
	}

	return prayers
}

// Syuruq computes the sunrise display row for the given date. It is not a
// prayer: no iqamah, no window, and it never alerts.
func Syuruq(date time.Time, params BuildParams) (Prayer, error) {
	times, err := astro.Compute(date, params.Latitude, params.Longitude, params.FajrAngle, params.IshaAngle, params.UTCOffsetHours)
	if err != nil {
		return Prayer{}, fmt.Errorf("failed to compute solar times: %w", err)
	}

	return Prayer{
		Name:      NameSyuruq,
		AdhanTime: astro.FormatHours(times.Sunrise),
		Status:    StatusUpcoming,
	}, nil
}

// WithSyuruq inserts the sunrise row between Subuh and Dzuhur for display
// lists. The input schedule is not modified.
func WithSyuruq(prayers []Prayer, syuruq Prayer) []Prayer {
	display := make([]Prayer, 0, len(prayers)+1)
	for _, p := range prayers {
		if p.Name == NameDzuhur {
			display = append(display, syuruq)
		}
		display = append(display, p)
	}

	return display
}

func iqamahFor(name, adhanClock string) string {
	offset := standardIqamahOffset
	if name == NameMaghrib {
		offset = maghribIqamahOffset
	}

	h, m := ParseClock(adhanClock)
	return FormatClock(h, m+offset)
}
