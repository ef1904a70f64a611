package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/service"
)

type SubscriptionHandler struct {
	ents *service.EntitlementService
}

func NewSubscriptionHandler(ents *service.EntitlementService) *SubscriptionHandler {
	return &SubscriptionHandler{
		ents: ents,
	}
}

// Get 当前套餐、用量和剩余额度
// GET /api/v1/subscription
func (h *SubscriptionHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	response.Success(c, h.ents.Snapshot(c.Request.Context(), userID))
}

// Plans 套餐列表，已登录时附带当前套餐
// GET /api/v1/subscription/plans
func (h *SubscriptionHandler) Plans(c *gin.Context) {
	data := gin.H{"plans": h.ents.Plans()}
	if userID, ok := middleware.GetUserID(c); ok {
		data["current_plan"] = h.ents.Store(userID).CurrentPlanID(c.Request.Context())
	}
	response.Success(c, data)
}

// Upgrade 切换套餐
// POST /api/v1/subscription/upgrade
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	snap, err := h.ents.Upgrade(c.Request.Context(), userID, req.PlanID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPlan) {
			response.ParamError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "plan updated", snap)
}

// featureError 处理套餐限制导致的错误，返回 false 表示不是此类错误
func featureError(c *gin.Context, err error) bool {
	var fe *service.FeatureError
	if !errors.As(err, &fe) {
		return false
	}

	data := response.UpgradeData{Feature: fe.Feature, CurrentPlan: string(fe.CurrentPlan)}
	if fe.Exhausted {
		response.ErrorWithData(c, response.CodeQuotaExceeded, "", data)
	} else {
		response.ErrorWithData(c, response.CodeUpgradeRequired, "", data)
	}
	return true
}
