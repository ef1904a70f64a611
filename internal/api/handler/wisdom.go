package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/service"
)

type WisdomHandler struct {
	wisdomService *service.WisdomService
}

func NewWisdomHandler(wisdomService *service.WisdomService) *WisdomHandler {
	return &WisdomHandler{
		wisdomService: wisdomService,
	}
}

// List 智慧库列表
// GET /api/v1/wisdom?category=&q=&saved=
func (h *WisdomHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.WisdomListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.wisdomService.List(c.Request.Context(), userID, &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}

// Get 打开条目或合集
// GET /api/v1/wisdom/:id
func (h *WisdomHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	item, err := h.wisdomService.Access(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, item)
}

// ToggleSaved 收藏或取消收藏
// POST /api/v1/wisdom/:id/save
func (h *WisdomHandler) ToggleSaved(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	resp, err := h.wisdomService.ToggleSaved(userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, resp)
}

// Saved 收藏列表
// GET /api/v1/wisdom/saved
func (h *WisdomHandler) Saved(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	ids, err := h.wisdomService.Saved(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{"item_ids": ids})
}

func (h *WisdomHandler) handleError(c *gin.Context, err error) {
	if featureError(c, err) {
		return
	}
	if errors.Is(err, service.ErrWisdomItemNotFound) {
		response.NotFoundError(c, err.Error())
		return
	}
	response.ServerError(c, "")
}
