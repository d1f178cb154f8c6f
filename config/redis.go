package config

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds a Redis client from the configured address. The address
// may be a redis:// URL or a plain host:port.
func NewRedis(cfg *Config) (*redis.Client, error) {
	val := cfg.RedisAddr

	var client *redis.Client
	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: val})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
