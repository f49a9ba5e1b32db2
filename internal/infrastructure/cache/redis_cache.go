package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JulienRip/riskbanking/internal/config"
	"github.com/JulienRip/riskbanking/pkg/errors"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

const redisKeyPrefix = "riskbank:response:"

// redisCache is the shared backend for multi-replica deployments.
type redisCache struct {
	client *redis.Client
	log    logger.Logger
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(cfg *config.RedisConfig, log logger.Logger) (ResponseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.ErrCache("redis ping failed").WithCause(err)
	}

	return &redisCache{client: client, log: log.WithComponent("cache")}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, errors.ErrCache("redis get failed").WithCause(err)
	}
	return payload, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, redisKeyPrefix+key, payload, ttl).Err(); err != nil {
		return errors.ErrCache("redis set failed").WithCause(err)
	}
	return nil
}

func (c *redisCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.ErrCache("redis scan failed").WithCause(err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.ErrCache("redis delete failed").WithCause(err)
	}
	return nil
}
