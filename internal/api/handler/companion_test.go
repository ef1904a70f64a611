package handler

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/service"
)

func setupCompanionRouter(t *testing.T, userID int64) (*gin.Engine, func()) {
	t.Helper()

	ctx, cleanup := newTestContext(t)
	handler := NewCompanionHandler(service.NewCompanionService(stubText{}, time.Second, ctx.Ents, nil))

	router := gin.New()
	router.Use(mockAuth(userID))
	router.POST("/companion/messages", handler.Send)
	return router, cleanup
}

func TestCompanionHandler_Send(t *testing.T) {
	router, cleanup := setupCompanionRouter(t, 1)
	defer cleanup()

	w := performRequest(router, "POST", "/companion/messages", map[string]string{"message": "How do I find calm?"})
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	data := dataMap(t, resp.Data)
	assert.Equal(t, "A gentle light guides your next step.", data["reply"])
	assert.NotEmpty(t, data["timestamp"])
	assert.Equal(t, float64(4), dataMap(t, data["remaining"])["aiGuide"])
}

func TestCompanionHandler_Send_DailyLimit(t *testing.T) {
	router, cleanup := setupCompanionRouter(t, 1)
	defer cleanup()

	body := map[string]string{"message": "hello"}
	for i := 0; i < 5; i++ {
		w := performRequest(router, "POST", "/companion/messages", body)
		require.Equal(t, response.CodeSuccess, parseResponse(t, w).Code)
	}

	w := performRequest(router, "POST", "/companion/messages", body)
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeQuotaExceeded, resp.Code)
	assert.Equal(t, "ai_guide", dataMap(t, resp.Data)["feature"])
}

func TestCompanionHandler_Send_Invalid(t *testing.T) {
	router, cleanup := setupCompanionRouter(t, 1)
	defer cleanup()

	w := performRequest(router, "POST", "/companion/messages", map[string]string{})
	assert.Equal(t, response.CodeParamError, parseResponse(t, w).Code)

	w = performRequest(router, "POST", "/companion/messages", map[string]string{"message": "   "})
	assert.Equal(t, response.CodeParamError, parseResponse(t, w).Code)
}
