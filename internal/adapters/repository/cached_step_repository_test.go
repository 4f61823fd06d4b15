package repository

import (
	"context"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-steps/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	rdb, err := cache.NewRedisClient(context.Background(), cache.RedisParams{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", "secret_redis_pass_local"),
		DB:       2,
	})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	require.NoError(t, rdb.FlushDB(context.Background()).Err())
	return rdb
}

func TestCachedStepRepository_Integration(t *testing.T) {
	rdb := setupRedis(t)
	defer rdb.Close()

	ctx := context.Background()
	next := NewInMemoryStepRepository()
	repo := NewCachedStepRepository(next, rdb, time.UTC)

	require.NoError(t, repo.Upsert(ctx, domain.StepEntry{Date: utcDay(5, 1), Steps: 100}))

	t.Run("Miss fills the cache", func(t *testing.T) {
		all, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)

		cached, err := rdb.Get(ctx, allEntriesKey).Result()
		require.NoError(t, err)
		assert.JSONEq(t, `[{"date":"2023-05-01","steps":100}]`, cached)
	})

	t.Run("Hit is served from redis", func(t *testing.T) {
		// bypass the decorator so only the cache knows the old value
		require.NoError(t, next.Upsert(ctx, domain.StepEntry{Date: utcDay(5, 2), Steps: 200}))

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.StepEntry{{Date: utcDay(5, 1), Steps: 100}}, all)
	})

	t.Run("ListRange is served from the cached list", func(t *testing.T) {
		entries, err := repo.ListRange(ctx, utcDay(5, 1), utcDay(5, 31))
		require.NoError(t, err)
		assert.Equal(t, []domain.StepEntry{{Date: utcDay(5, 1), Steps: 100}}, entries)

		empty, err := repo.ListRange(ctx, utcDay(6, 1), utcDay(6, 30))
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("Upsert invalidates", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, domain.StepEntry{Date: utcDay(5, 3), Steps: 300}))

		exists, err := rdb.Exists(ctx, allEntriesKey).Result()
		require.NoError(t, err)
		assert.Zero(t, exists)

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("Corrupted entry is dropped", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, allEntriesKey, "not-json", time.Minute).Err())

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
