package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlightCache is a read-through cache for flight lookups. Consumed
// flight events invalidate entries so the read path never serves a
// row the event stream has already replaced.
type FlightCache interface {
	GetByID(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type flightCache struct {
	client *RedisClient
	prefix string
}

func NewFlightCache(redisClient *RedisClient) FlightCache {
	return &flightCache{
		client: redisClient,
		prefix: "flight:",
	}
}

func (c *flightCache) key(id string) string {
	return c.prefix + id
}

func (c *flightCache) GetByID(ctx context.Context, id string) ([]byte, error) {
	data, err := c.client.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // cache miss
		}
		return nil, err
	}
	return data, nil
}

func (c *flightCache) Set(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	return c.client.client.Set(ctx, c.key(id), data, ttl).Err()
}

func (c *flightCache) Delete(ctx context.Context, id string) error {
	return c.client.client.Del(ctx, c.key(id)).Err()
}
