package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/response"
	"github.com/qs3c/soultria_server/internal/reading"
	"github.com/qs3c/soultria_server/internal/service"
)

type ReadingHandler struct {
	readingService *service.ReadingService
}

func NewReadingHandler(readingService *service.ReadingService) *ReadingHandler {
	return &ReadingHandler{
		readingService: readingService,
	}
}

// Generate 单次占卜
// POST /api/v1/readings/:kind
func (h *ReadingHandler) Generate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	kind, ok := reading.ParseKind(c.Param("kind"))
	if !ok {
		response.NotFoundError(c, service.ErrUnsupportedReading.Error())
		return
	}

	var req dto.ReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.readingService.Generate(c.Request.Context(), userID, kind, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, resp)
}

// Session 多体系占卜
// POST /api/v1/readings/session
func (h *ReadingHandler) Session(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.readingService.GenerateSession(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, resp)
}

// Catalog 塔罗、易经、星座等静态目录
// GET /api/v1/readings/catalog
func (h *ReadingHandler) Catalog(c *gin.Context) {
	response.Success(c, gin.H{
		"tarot":      reading.MajorArcana(),
		"hexagrams":  reading.Hexagrams(),
		"zodiac":     reading.ZodiacSigns(),
		"numerology": reading.NumerologyMeanings(),
		"bazi":       reading.BaziElements(),
	})
}

func (h *ReadingHandler) handleError(c *gin.Context, err error) {
	if featureError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrUnsupportedReading):
		response.NotFoundError(c, err.Error())
	case errors.Is(err, service.ErrUnknownCard),
		errors.Is(err, service.ErrUnknownHexagram),
		errors.Is(err, service.ErrInvalidBirthDate):
		response.ParamError(c, err.Error())
	default:
		response.ServerError(c, "")
	}
}
