//go:build integration

package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/cache"
)

var testRedis *redis.Client

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start Redis resource: %s", err)
	}
	_ = resource.Expire(120)

	url := fmt.Sprintf("redis://%s/0", resource.GetHostPort("6379/tcp"))
	if err := pool.Retry(func() error {
		var errRetry error
		testRedis, errRetry = cache.NewRedisFromURL(context.Background(), url)
		return errRetry
	}); err != nil {
		log.Fatalf("Could not connect to Redis: %s", err)
	}

	code := m.Run()

	cache.Close(testRedis)
	_ = pool.Purge(resource)
	os.Exit(code)
}

func TestProductCacheStore_RoundTripAndTTL(t *testing.T) {
	ctx := context.Background()
	s := NewProductCacheStore(testRedis, time.Minute)
	key := "products:page=1:limit=10"

	require.NoError(t, s.SetProductsPage(ctx, key, samplePage("Phone")))
	got, found, err := s.GetProductsPage(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Phone", got.Products[0].Name)

	ttl, err := testRedis.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)
}

func TestProductCacheStore_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	s := NewProductCacheStore(testRedis, time.Minute)
	require.NoError(t, testRedis.Set(ctx, "products:page=9:limit=9", "{not json", time.Minute).Err())

	_, found, err := s.GetProductsPage(ctx, "products:page=9:limit=9")
	assert.ErrorIs(t, err, contract.ErrCacheEntryCorrupt)
	assert.False(t, found)
}

func TestProductCacheStore_InvalidateManyKeys(t *testing.T) {
	ctx := context.Background()
	s := NewProductCacheStore(testRedis, time.Minute)
	for i := 1; i <= 450; i++ {
		require.NoError(t, s.SetProductsPage(ctx, fmt.Sprintf("products:page=%d:limit=10", i), samplePage("x")))
	}
	require.NoError(t, testRedis.Set(ctx, "sessions:keep", "1", time.Minute).Err())

	require.NoError(t, s.InvalidateProductLists(ctx))

	left, err := testRedis.Keys(ctx, "products:*").Result()
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.Equal(t, int64(1), testRedis.Exists(ctx, "sessions:keep").Val())
}
