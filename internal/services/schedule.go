package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/masjidia/jadwal-sholat-service/configs"
	"github.com/masjidia/jadwal-sholat-service/internal/metrics"
	"github.com/masjidia/jadwal-sholat-service/internal/prayer"
	"github.com/masjidia/jadwal-sholat-service/internal/retryutil"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const scheduleCacheTTL = 48 * time.Hour

type ScheduleServicer interface {
	BuildDay(ctx context.Context, date time.Time) ([]prayer.Prayer, error)
	BuildDisplayDay(ctx context.Context, date time.Time) ([]prayer.Prayer, error)
	Params() prayer.BuildParams
	Location() *time.Location
}

type schedule struct {
	configs  configs.Configs
	params   prayer.BuildParams
	location *time.Location
}

func NewScheduleService(configs configs.Configs) ScheduleServicer {
	return &schedule{
		configs: configs,
		params: prayer.BuildParams{
			Latitude:       configs.Env.Latitude,
			Longitude:      configs.Env.Longitude,
			FajrAngle:      configs.Env.FajrAngle,
			IshaAngle:      configs.Env.IshaAngle,
			UTCOffsetHours: configs.Env.UTCOffsetHours,
		},
		location: time.FixedZone("local", int(configs.Env.UTCOffsetHours*3600)),
	}
}

func (s schedule) Params() prayer.BuildParams {
	return s.params
}

// Location is the fixed-offset civil timezone of the deployment. All
// schedule instants and midnight rollovers resolve against it.
func (s schedule) Location() *time.Location {
	return s.location
}

// BuildDay produces the five canonical prayers for the given date. The
// calculation tier is chosen by configuration alone: precise runs the
// solar calculator, fallback uses the preconfigured times. Computed
// schedules are cached in redis when a cache is wired; cache failures are
// logged and never fail the build.
func (s schedule) BuildDay(ctx context.Context, date time.Time) ([]prayer.Prayer, error) {
	cacheKey := fmt.Sprintf("schedule:%s:%s", s.configs.Env.CalculationMode, date.Format(time.DateOnly))

	if cached, ok := s.cachedSchedule(ctx, cacheKey); ok {
		return cached, nil
	}

	var prayers []prayer.Prayer
	if s.configs.Env.CalculationMode == configs.CalculationModeFallback {
		var fallbackTimes [5]string
		copy(fallbackTimes[:], s.configs.Env.FallbackTimes)
		prayers = prayer.BuildFixed(fallbackTimes)
	} else {
		var err error
		prayers, err = prayer.Build(date, s.params)
		if err != nil {
			return nil, fmt.Errorf("failed to build schedule for %s: %w", date.Format(time.DateOnly), err)
		}
	}

	metrics.ScheduleBuilds.WithLabelValues(s.configs.Env.CalculationMode).Inc()
	s.cacheSchedule(ctx, cacheKey, prayers)

	return prayers, nil
}

// BuildDisplayDay is BuildDay plus the Syuruq sunrise row for TV display
// lists. In fallback mode there is no solar sunrise, so the canonical
// five are returned as-is.
func (s schedule) BuildDisplayDay(ctx context.Context, date time.Time) ([]prayer.Prayer, error) {
	prayers, err := s.BuildDay(ctx, date)
	if err != nil {
		return nil, err
	}

	if s.configs.Env.CalculationMode == configs.CalculationModeFallback {
		return prayers, nil
	}

	syuruq, err := prayer.Syuruq(date, s.params)
	if err != nil {
		return nil, fmt.Errorf("failed to compute syuruq for %s: %w", date.Format(time.DateOnly), err)
	}

	return prayer.WithSyuruq(prayers, syuruq), nil
}

func (s schedule) cachedSchedule(ctx context.Context, key string) ([]prayer.Prayer, bool) {
	if s.configs.Cache == nil {
		return nil, false
	}

	payload, err := retryutil.RetryWithData(func() (string, error) {
		return s.configs.Cache.Get(ctx, key).Result()
	})

	if err != nil {
		if err != redis.Nil {
			log.Error().Err(err).Str("key", key).Msg("failed to read schedule cache")
		}
		return nil, false
	}

	var prayers []prayer.Prayer
	if err := json.Unmarshal([]byte(payload), &prayers); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal cached schedule")
		return nil, false
	}

	return prayers, true
}

func (s schedule) cacheSchedule(ctx context.Context, key string, prayers []prayer.Prayer) {
	if s.configs.Cache == nil {
		return
	}

	payload, err := json.Marshal(prayers)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal schedule for cache")
		return
	}

	err = retryutil.RetryWithoutData(func() error {
		return s.configs.Cache.Set(ctx, key, payload, scheduleCacheTTL).Err()
	})

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write schedule cache")
	}
}
