package configs

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

type Configs struct {
	Env      Env
	Cache    *redis.Client
	Broker   mqtt.Client
	Validate *validator.Validate
}

func NewConfigs(env Env, cache *redis.Client, broker mqtt.Client) Configs {
	return Configs{
		Env:      env,
		Cache:    cache,
		Broker:   broker,
		Validate: NewValidate(),
	}
}

func NewValidate() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
