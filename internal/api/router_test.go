package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/config"
	"github.com/qs3c/soultria_server/internal/api/handler"
	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/pkg/jwt"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/pkg/ws"
	"github.com/qs3c/soultria_server/internal/reading"
	"github.com/qs3c/soultria_server/internal/repository"
	"github.com/qs3c/soultria_server/internal/service"
	"github.com/qs3c/soultria_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug", Timezone: "UTC"},
		JWT:    config.JWTConfig{Secret: "router-secret", ExpireHours: 1},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	hub := ws.NewHub()
	ents := service.NewEntitlementService(entitlement.NewMemoryBackend(), cfg, hub)
	userRepo := repository.NewUserRepository(db)
	onboardingRepo := repository.NewOnboardingRepository(db)
	journal := service.NewJournalService(repository.NewJournalRepository(db), ents)
	meditation := service.NewMeditationService(repository.NewMeditationRepository(db), journal, ents, hub, cfg)
	readings := service.NewReadingService(reading.NewGenerator(nil, time.Second), reading.NewOracle(nil), ents, onboardingRepo)

	router := NewRouter(
		handler.NewAuthHandler(service.NewAuthService(userRepo, cfg)),
		handler.NewUserHandler(service.NewUserService(userRepo)),
		handler.NewOnboardingHandler(service.NewOnboardingService(onboardingRepo, userRepo)),
		handler.NewReadingHandler(readings),
		handler.NewMeditationHandler(meditation),
		handler.NewJournalHandler(journal),
		handler.NewWisdomHandler(service.NewWisdomService(repository.NewWisdomRepository(db), ents)),
		handler.NewCompanionHandler(service.NewCompanionService(nil, time.Second, ents, hub)),
		handler.NewSubscriptionHandler(ents),
		handler.NewWebSocketHandler(hub, cfg.JWT.Secret, cfg.CORS),
		ents,
		cfg,
	)
	return router.Setup(), cfg
}

func call(engine *gin.Engine, method, path, token string, body interface{}) response.Response {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func TestRouter_PublicRoutes(t *testing.T) {
	engine, _ := setupRouter(t)

	for _, path := range []string{
		"/api/v1/onboarding/questions",
		"/api/v1/readings/catalog",
		"/api/v1/subscription/plans",
	} {
		assert.Equal(t, response.CodeSuccess, call(engine, "GET", path, "", nil).Code, path)
	}
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	engine, _ := setupRouter(t)

	routes := []struct{ method, path string }{
		{"GET", "/api/v1/user/profile"},
		{"GET", "/api/v1/onboarding"},
		{"GET", "/api/v1/subscription"},
		{"POST", "/api/v1/subscription/upgrade"},
		{"POST", "/api/v1/readings/tarot"},
		{"POST", "/api/v1/readings/session"},
		{"GET", "/api/v1/meditation"},
		{"PUT", "/api/v1/meditation/settings"},
		{"GET", "/api/v1/journal"},
		{"GET", "/api/v1/journal/patterns"},
		{"GET", "/api/v1/wisdom/saved"},
		{"POST", "/api/v1/wisdom/moon-rituals/save"},
		{"POST", "/api/v1/companion/messages"},
	}
	for _, r := range routes {
		assert.Equal(t, response.CodeAuthFailed, call(engine, r.method, r.path, "", nil).Code, r.method+" "+r.path)
	}
}

func TestRouter_RegisterUpgradeAndPatterns(t *testing.T) {
	engine, cfg := setupRouter(t)

	resp := call(engine, "POST", "/api/v1/auth/register", "", map[string]string{
		"name":     "Sage",
		"email":    "sage@example.com",
		"password": "password123",
	})
	require.Equal(t, response.CodeSuccess, resp.Code)

	resp = call(engine, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "sage@example.com",
		"password": "password123",
	})
	require.Equal(t, response.CodeSuccess, resp.Code)
	token := resp.Data.(map[string]interface{})["token"].(string)

	claims, err := jwt.ParseToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Positive(t, claims.UserID)

	resp = call(engine, "GET", "/api/v1/journal/patterns", token, nil)
	assert.Equal(t, response.CodeUpgradeRequired, resp.Code)

	resp = call(engine, "POST", "/api/v1/subscription/upgrade", token, map[string]string{"plan_id": "soulplus"})
	require.Equal(t, response.CodeSuccess, resp.Code)

	resp = call(engine, "GET", "/api/v1/journal/patterns", token, nil)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	resp = call(engine, "GET", "/api/v1/subscription/plans", token, nil)
	require.Equal(t, response.CodeSuccess, resp.Code)
	assert.Equal(t, "soulplus", resp.Data.(map[string]interface{})["current_plan"])
}
