//go:build integration

package stepgate_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/stepgate"
)

func newRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := newRedisClient(t)

	suite.Run(t, &storeSuite{newStore: func() stepgate.Store {
		require.NoError(t, client.FlushDB(context.Background()).Err())
		return stepgate.NewRedisStore(client, time.Minute)
	}})
}

func TestRedisStore_TTLApplied(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := newRedisClient(t)
	ctx := context.Background()
	require.NoError(t, client.FlushDB(ctx).Err())

	store := stepgate.NewRedisStore(client, time.Minute)
	_, err := store.AdvanceTo(ctx, "sess-ttl", domain.StepReview)
	require.NoError(t, err)

	ttl, err := client.PTTL(ctx, "stepgate:sess-ttl").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)
}
