package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/service"
)

type CompanionHandler struct {
	companionService *service.CompanionService
}

func NewCompanionHandler(companionService *service.CompanionService) *CompanionHandler {
	return &CompanionHandler{
		companionService: companionService,
	}
}

// Send 给灵性伙伴发消息
// POST /api/v1/companion/messages
func (h *CompanionHandler) Send(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CompanionMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.companionService.Send(c.Request.Context(), userID, &req)
	if err != nil {
		if featureError(c, err) {
			return
		}
		if errors.Is(err, service.ErrEmptyMessage) {
			response.ParamError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}
