package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/internal/entitlement"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return client, mr, cleanup
}

func TestRedisStore_GetMissing(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewRedisStore(client, "soultria:")

	val, ok, err := store.Get(context.Background(), "nothing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestRedisStore_SetGet(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewRedisStore(client, "soultria:")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user:1:soultria-subscription-plan", "soulplus"))

	val, ok, err := store.Get(ctx, "user:1:soultria-subscription-plan")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "soulplus", val)

	raw, err := mr.Get("soultria:user:1:soultria-subscription-plan")
	require.NoError(t, err)
	assert.Equal(t, "soulplus", raw)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	store := NewRedisStore(client, "")
	mr.Close()

	_, _, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), "k", "v"))
}

func TestRedisStore_AsEntitlementBackend(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()

	backend := NewRedisStore(client, "soultria:")
	ctx := context.Background()

	first := entitlement.New(backend, entitlement.WithKeyPrefix("user:7:"))
	require.True(t, first.UpgradePlan(ctx, entitlement.PlanSoulplus))
	require.True(t, first.UseTarot(ctx))

	// 另一个实例读取同一份数据
	second := entitlement.New(backend, entitlement.WithKeyPrefix("user:7:"))
	assert.Equal(t, entitlement.PlanSoulplus, second.CurrentPlan(ctx).ID)
	assert.Equal(t, 1, second.Usage(ctx).TarotReadings)
}
