package main

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/masjidia/jadwal-sholat-service/configs"
	"github.com/masjidia/jadwal-sholat-service/internal/handlers"
	"github.com/masjidia/jadwal-sholat-service/internal/notify"
	"github.com/masjidia/jadwal-sholat-service/internal/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	logger := log.With().Caller().Logger()

	env, err := configs.LoadEnv(".env")
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	ctx := context.Background()
	cache, err := configs.NewCache(ctx, env.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	broker, err := configs.NewBroker(env.MQTTBrokerURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	configs := configs.NewConfigs(env, cache, broker)
	if err := configs.Validate.Struct(configs.Env); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	scheduleService := services.NewScheduleService(configs)
	publisher := notify.NewPublisher(broker, env.MQTTTopicPrefix)
	runtime := services.NewRuntime(scheduleService, publisher)

	go func() {
		if err := runtime.Run(ctx, time.Second); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal().Err(err).Msg("engine runtime stopped")
		}
	}()

	customMiddleware := handlers.NewMiddlewareHandler()
	rest := handlers.NewRestHandler(configs, customMiddleware, runtime)

	if err := http.ListenAndServe(":8080", rest); err != nil {
		logger.Fatal().Err(err).Send()
	}
}
