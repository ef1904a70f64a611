package handler

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/repository"
	"github.com/qs3c/soultria_server/internal/service"
)

func setupWisdomRouter(t *testing.T, userID int64) (*gin.Engine, *testContext, func()) {
	t.Helper()

	ctx, cleanup := newTestContext(t)
	handler := NewWisdomHandler(service.NewWisdomService(repository.NewWisdomRepository(ctx.DB), ctx.Ents))

	router := gin.New()
	router.Use(mockAuth(userID))
	router.GET("/wisdom", handler.List)
	router.GET("/wisdom/saved", handler.Saved)
	router.GET("/wisdom/:id", handler.Get)
	router.POST("/wisdom/:id/save", handler.ToggleSaved)
	return router, ctx, cleanup
}

func TestWisdomHandler_List(t *testing.T) {
	router, _, cleanup := setupWisdomRouter(t, 1)
	defer cleanup()

	w := performRequest(router, "GET", "/wisdom", nil)
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	data := dataMap(t, resp.Data)
	assert.Len(t, data["items"], 10)
	assert.Len(t, data["collections"], 4)
	assert.Equal(t, []interface{}{"All", "Meditation", "Learning", "Practice"}, data["categories"])

	w = performRequest(router, "GET", "/wisdom?category=Practice&q=advanced", nil)
	resp = parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)
	items := dataMap(t, resp.Data)["items"].([]interface{})
	require.Len(t, items, 1)
	item := dataMap(t, items[0])
	assert.Equal(t, "advanced-breathwork", item["id"])
	assert.Equal(t, true, item["locked"])
}

func TestWisdomHandler_Get(t *testing.T) {
	router, ctx, cleanup := setupWisdomRouter(t, 1)
	defer cleanup()

	w := performRequest(router, "GET", "/wisdom/mindfulness-101", nil)
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)
	assert.Equal(t, "Mindfulness 101", dataMap(t, resp.Data)["title"])

	w = performRequest(router, "GET", "/wisdom/moon-rituals", nil)
	resp = parseResponse(t, w)
	assert.Equal(t, response.CodeUpgradeRequired, resp.Code)
	assert.Equal(t, "soullite", dataMap(t, resp.Data)["current_plan"])

	w = performRequest(router, "GET", "/wisdom/unknown", nil)
	assert.Equal(t, response.CodeResourceNotFound, parseResponse(t, w).Code)

	ctx.upgrade(t, 1, entitlement.PlanSoulplus)
	w = performRequest(router, "GET", "/wisdom/moon-rituals", nil)
	assert.Equal(t, response.CodeSuccess, parseResponse(t, w).Code)
}

func TestWisdomHandler_ToggleSaved(t *testing.T) {
	router, _, cleanup := setupWisdomRouter(t, 1)
	defer cleanup()

	w := performRequest(router, "POST", "/wisdom/crystal-healing/save", nil)
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)
	assert.Equal(t, true, dataMap(t, resp.Data)["saved"])

	w = performRequest(router, "GET", "/wisdom/saved", nil)
	resp = parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)
	assert.Equal(t, []interface{}{"crystal-healing"}, dataMap(t, resp.Data)["item_ids"])

	w = performRequest(router, "POST", "/wisdom/crystal-healing/save", nil)
	resp = parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)
	assert.Equal(t, false, dataMap(t, resp.Data)["saved"])

	w = performRequest(router, "GET", "/wisdom/saved", nil)
	resp = parseResponse(t, w)
	assert.Equal(t, []interface{}{}, dataMap(t, resp.Data)["item_ids"])

	w = performRequest(router, "POST", "/wisdom/unknown/save", nil)
	assert.Equal(t, response.CodeResourceNotFound, parseResponse(t, w).Code)
}
