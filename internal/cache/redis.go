package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/reinvvay/airport-api/config"
	"github.com/reinvvay/airport-api/internal/domain"
)

const flightsVersionKey = "cache:flights:version"

// RedisCache stores flight listings per query. Invalidation bumps a version
// counter so every cached listing becomes unreachable at once.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetFlights returns the cached listing (nil on a miss) and the version it was
// looked up under. A listing loaded after a miss must be stored with that version.
func (c *RedisCache) GetFlights(ctx context.Context, queryKey string) ([]domain.Flight, int64, error) {
	version, err := c.version(ctx)
	if err != nil {
		return nil, 0, err
	}
	data, err := c.client.Get(ctx, flightsKey(version, queryKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, version, nil
		}
		return nil, version, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, version, err
	}
	return flights, version, nil
}

// SetFlights stores flights under version. If an invalidation happened since the
// read, the entry lands under a retired version and is never served.
func (c *RedisCache) SetFlights(ctx context.Context, version int64, queryKey string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(version, queryKey), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Incr(ctx, flightsVersionKey).Err()
}

func (c *RedisCache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, flightsVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func flightsKey(version int64, queryKey string) string {
	return fmt.Sprintf("cache:flights:v%d:%s", version, queryKey)
}
