package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	CalculationModePrecise  = "precise"
	CalculationModeFallback = "fallback"
)

type Env struct {
	Latitude        float64 `validate:"latitude"`
	Longitude       float64 `validate:"longitude"`
	FajrAngle       float64 `validate:"gt=0,lte=24"`
	IshaAngle       float64 `validate:"gt=0,lte=24"`
	UTCOffsetHours  float64 `validate:"gte=-12,lte=14"`
	CalculationMode string  `validate:"oneof=precise fallback"`
	FallbackTimes   []string
	AllowedOrigins  string
	RedisURL        string
	MQTTBrokerURL   string
	MQTTTopicPrefix string
}

func LoadEnv(envPath string) (Env, error) {
	if err := godotenv.Load(envPath); err != nil {
		return Env{}, err
	}

	latitude, err := envFloat("LATITUDE")
	if err != nil {
		return Env{}, err
	}

	longitude, err := envFloat("LONGITUDE")
	if err != nil {
		return Env{}, err
	}

	fajrAngle, err := envFloat("FAJR_ANGLE")
	if err != nil {
		return Env{}, err
	}

	ishaAngle, err := envFloat("ISHA_ANGLE")
	if err != nil {
		return Env{}, err
	}

	utcOffset, err := envFloat("UTC_OFFSET_HOURS")
	if err != nil {
		return Env{}, err
	}

	env := Env{
		Latitude:        latitude,
		Longitude:       longitude,
		FajrAngle:       fajrAngle,
		IshaAngle:       ishaAngle,
		UTCOffsetHours:  utcOffset,
		CalculationMode: os.Getenv("CALCULATION_MODE"),
		AllowedOrigins:  os.Getenv("ALLOWED_ORIGINS"),
		RedisURL:        os.Getenv("REDIS_URL"),
		MQTTBrokerURL:   os.Getenv("MQTT_BROKER_URL"),
		MQTTTopicPrefix: os.Getenv("MQTT_TOPIC_PREFIX"),
	}

	if env.CalculationMode == "" {
		env.CalculationMode = CalculationModePrecise
	}

	if env.MQTTTopicPrefix == "" {
		env.MQTTTopicPrefix = "masjid"
	}

	if fallbackTimes := os.Getenv("FALLBACK_TIMES"); fallbackTimes != "" {
		env.FallbackTimes = strings.Split(fallbackTimes, ",")
		if len(env.FallbackTimes) != 5 {
			return Env{}, fmt.Errorf("FALLBACK_TIMES must list 5 times, got %d", len(env.FallbackTimes))
		}
	}

	if env.CalculationMode == CalculationModeFallback && env.FallbackTimes == nil {
		return Env{}, fmt.Errorf("fallback calculation mode requires FALLBACK_TIMES")
	}

	return env, nil
}

func envFloat(key string) (float64, error) {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s env var: %w", key, err)
	}

	return value, nil
}
