package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/reinvvay/airport-api/config"
	"github.com/reinvvay/airport-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, 30*time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestFlightsKey(t *testing.T) {
	assert.Equal(t, "cache:flights:v0:search=&ordering=", flightsKey(0, "search=&ordering="))
	assert.NotEqual(t, flightsKey(1, "route=3"), flightsKey(2, "route=3"))
}

func TestRedisCache_FlightsRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	flights, version, err := c.GetFlights(ctx, "route=3")
	require.NoError(t, err)
	assert.Nil(t, flights)
	assert.Equal(t, int64(0), version)

	listing := []domain.Flight{{ID: 1}, {ID: 2}}
	require.NoError(t, c.SetFlights(ctx, version, "route=3", listing))
	assert.Equal(t, 30*time.Second, mr.TTL(flightsKey(0, "route=3")))

	got, _, err := c.GetFlights(ctx, "route=3")
	require.NoError(t, err)
	assert.Equal(t, listing, got)

	require.NoError(t, c.InvalidateFlights(ctx))
	got, version, err = c.GetFlights(ctx, "route=3")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, int64(1), version)
}

func TestRedisCache_WriteRacingInvalidationIsNotServed(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	// The listing is read from the database before a concurrent write commits.
	_, version, err := c.GetFlights(ctx, "search=oslo")
	require.NoError(t, err)

	require.NoError(t, c.InvalidateFlights(ctx))
	require.NoError(t, c.SetFlights(ctx, version, "search=oslo", []domain.Flight{{ID: 1}}))

	got, _, err := c.GetFlights(ctx, "search=oslo")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_Ping(t *testing.T) {
	c, mr := newTestCache(t)
	assert.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}
