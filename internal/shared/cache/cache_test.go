package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"starwars-server/internal/shared/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &redis.Client{Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { _ = client.Close() })

	return New(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func TestCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got []entry
	assert.False(t, c.GetJSON(ctx, KeyPlanets, &got))

	c.SetJSON(ctx, KeyPlanets, []entry{{Name: "Tatooine"}})
	require.True(t, c.GetJSON(ctx, KeyPlanets, &got))
	assert.Equal(t, []entry{{Name: "Tatooine"}}, got)
	assert.Equal(t, time.Minute, mr.TTL(KeyPlanets))

	c.Invalidate(ctx, KeyPlanets, KeyPeople)
	assert.False(t, mr.Exists(KeyPlanets))
}

func TestCacheDropsCorruptEntries(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set(KeyPeople, "not json"))

	var got []entry
	assert.False(t, c.GetJSON(context.Background(), KeyPeople, &got))
	assert.False(t, mr.Exists(KeyPeople))
}

func TestDisabledCacheIsNoop(t *testing.T) {
	c := New(nil, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	assert.False(t, c.Enabled())
	c.SetJSON(ctx, KeyPlanets, []entry{{Name: "Hoth"}})
	var got []entry
	assert.False(t, c.GetJSON(ctx, KeyPlanets, &got))
	c.Invalidate(ctx, KeyPlanets)

	var nilCache *Cache
	assert.False(t, nilCache.Enabled())
}

func TestCacheSurvivesRedisOutage(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	ctx := context.Background()
	c.SetJSON(ctx, KeyPlanets, []entry{{Name: "Endor"}})
	var got []entry
	assert.False(t, c.GetJSON(ctx, KeyPlanets, &got))
}
