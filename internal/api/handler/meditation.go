package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/service"
)

type MeditationHandler struct {
	meditationService *service.MeditationService
}

func NewMeditationHandler(meditationService *service.MeditationService) *MeditationHandler {
	return &MeditationHandler{
		meditationService: meditationService,
	}
}

// Overview 冥想首页
// GET /api/v1/meditation
func (h *MeditationHandler) Overview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	resp, err := h.meditationService.Overview(c.Request.Context(), userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}

// Start 开始冥想
// POST /api/v1/meditation/start
func (h *MeditationHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.StartMeditationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.meditationService.Start(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, resp)
}

// Complete 结束冥想
// POST /api/v1/meditation/complete
func (h *MeditationHandler) Complete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CompleteMeditationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.meditationService.Complete(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, resp)
}

// Stats 冥想统计
// GET /api/v1/meditation/stats
func (h *MeditationHandler) Stats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	stats, err := h.meditationService.Stats(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, stats)
}

// GetSettings 冥想设置
// GET /api/v1/meditation/settings
func (h *MeditationHandler) GetSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	settings, err := h.meditationService.Settings(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, settings)
}

// UpdateSettings 保存冥想设置
// PUT /api/v1/meditation/settings
func (h *MeditationHandler) UpdateSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.MeditationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	settings, err := h.meditationService.SaveSettings(userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMessage(c, "settings saved", settings)
}

func (h *MeditationHandler) handleError(c *gin.Context, err error) {
	if featureError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrUnknownMeditation):
		response.NotFoundError(c, err.Error())
	case errors.Is(err, service.ErrInvalidDuration), errors.Is(err, service.ErrInvalidReminderTime):
		response.ParamError(c, err.Error())
	default:
		response.ServerError(c, "")
	}
}
