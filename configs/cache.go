package configs

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewCache connects the schedule cache. An empty URL disables caching and
// returns a nil client; every cache consumer tolerates that.
func NewCache(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, nil
	}

	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
