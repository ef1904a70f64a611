package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/profile"
	"github.com/qs3c/soultria_server/internal/service"
)

type OnboardingHandler struct {
	onboardingService *service.OnboardingService
}

func NewOnboardingHandler(onboardingService *service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// Questions 问卷题目
// GET /api/v1/onboarding/questions
func (h *OnboardingHandler) Questions(c *gin.Context) {
	response.Success(c, h.onboardingService.Questions())
}

// Complete 提交问卷
// POST /api/v1/onboarding
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.onboardingService.Complete(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrUnknownAnswer):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, resp)
}

// Get 读取引导资料
// GET /api/v1/onboarding
func (h *OnboardingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	resp, err := h.onboardingService.Get(userID)
	if err != nil {
		if errors.Is(err, service.ErrOnboardingNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}

// MarkWelcomed 清除首次登录标记
// POST /api/v1/onboarding/welcomed
func (h *OnboardingHandler) MarkWelcomed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	resp, err := h.onboardingService.MarkWelcomed(userID)
	if err != nil {
		if errors.Is(err, service.ErrOnboardingNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}
