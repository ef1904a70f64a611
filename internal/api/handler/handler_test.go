package handler

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/config"
	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/reading"
	"github.com/qs3c/soultria_server/internal/repository"
	"github.com/qs3c/soultria_server/internal/service"
	"github.com/qs3c/soultria_server/internal/testutil"
)

type testContext struct {
	DB   *gorm.DB
	Cfg  *config.Config
	Ents *service.EntitlementService
}

// stubText 固定回复的文本生成器
type stubText struct{}

func (stubText) Complete(ctx context.Context, prompt string) (string, error) {
	return "A gentle light guides your next step.", nil
}

func newTestContext(t *testing.T) (*testContext, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := &config.Config{
		Server: config.ServerConfig{Timezone: "UTC"},
		JWT: config.JWTConfig{
			Secret:      "test-secret-key",
			ExpireHours: 24,
		},
	}

	ctx := &testContext{
		DB:   db,
		Cfg:  cfg,
		Ents: service.NewEntitlementService(entitlement.NewMemoryBackend(), cfg, nil),
	}

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}
	return ctx, cleanup
}

func (tc *testContext) upgrade(t *testing.T, userID int64, plan entitlement.PlanID) {
	t.Helper()
	_, err := tc.Ents.Upgrade(context.Background(), userID, string(plan))
	require.NoError(t, err)
}

func (tc *testContext) journalService() *service.JournalService {
	return service.NewJournalService(repository.NewJournalRepository(tc.DB), tc.Ents)
}

func (tc *testContext) readingService() *service.ReadingService {
	return service.NewReadingService(
		reading.NewGenerator(stubText{}, time.Second),
		reading.NewOracle(nil),
		tc.Ents,
		repository.NewOnboardingRepository(tc.DB),
	)
}

func mockAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func dataMap(t *testing.T, data interface{}) map[string]interface{} {
	t.Helper()
	m, ok := data.(map[string]interface{})
	require.True(t, ok, "unexpected data %T", data)
	return m
}
