package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/service"
)

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// Create 写日记
// POST /api/v1/journal
func (h *JournalHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	entry, err := h.journalService.Save(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyJournal) {
			response.ParamError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, entry)
}

// List 日记列表
// GET /api/v1/journal?type=all|manual|meditation
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.JournalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	entries, err := h.journalService.List(userID, req.Type)
	if err != nil {
		if errors.Is(err, service.ErrInvalidJournalFilter) {
			response.ParamError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, entries)
}

// Patterns 情绪模式
// GET /api/v1/journal/patterns
func (h *JournalHandler) Patterns(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	resp, err := h.journalService.Patterns(c.Request.Context(), userID)
	if err != nil {
		if featureError(c, err) {
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}
