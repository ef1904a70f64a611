package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/testutil"
)

func TestKVRepository_GetSet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewKVRepository(db)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "k", "v1"))
	require.NoError(t, repo.Set(ctx, "k", "v2"))

	value, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)
}

func TestKVRepository_AsEntitlementBackend(t *testing.T) {
	var _ entitlement.Backend = (*KVRepository)(nil)

	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewKVRepository(db)
	ctx := context.Background()

	first := entitlement.New(repo, entitlement.WithKeyPrefix("user:7:"))
	require.True(t, first.UpgradePlan(ctx, entitlement.PlanSoulplus))
	require.True(t, first.UseTarot(ctx))

	// 新实例读取同一张表
	second := entitlement.New(repo, entitlement.WithKeyPrefix("user:7:"))
	plan := second.CurrentPlan(ctx)
	assert.Equal(t, entitlement.PlanSoulplus, plan.ID)

	usage := second.Usage(ctx)
	assert.Equal(t, 1, usage.TarotReadings)
}
