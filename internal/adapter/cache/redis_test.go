package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/govalues/decimal"
	"github.com/redis/go-redis/v9"
	"github.com/restocinta/orderdesk/internal/adapter/cache"
	"github.com/restocinta/orderdesk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client), mr
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestRedisCache_SetThenGet(t *testing.T) {
	c, _ := newTestCache(t)

	menu := []*domain.MenuItem{
		{ID: 1, Name: "Nasi Goreng", Price: decimal.MustParse("25000")},
		{ID: 2, Name: "Es Teh Manis", Price: decimal.MustParse("8000")},
	}

	require.NoError(t, c.Set(context.Background(), menu))

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, menu, got)
}

func TestRedisCache_ExpiredKeyIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)

	menu := []*domain.MenuItem{{ID: 1, Name: "Nasi Goreng", Price: decimal.MustParse("25000")}}
	require.NoError(t, c.Set(context.Background(), menu))

	mr.FastForward(21 * time.Minute)

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}
