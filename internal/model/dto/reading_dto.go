package dto

import (
	"github.com/qs3c/soultria_server/internal/reading"
)

// ReadingRequest 单次占卜参数，按占卜类型取用对应字段
type ReadingRequest struct {
	Question string `json:"question" binding:"max=1000"`
	// Card 塔罗牌名，为空时随机抽取
	Card string `json:"card"`
	// Hexagram 卦序，为 0 时随机起卦
	Hexagram int                   `json:"hexagram" binding:"min=0"`
	Birth    reading.BirthData     `json:"birth"`
	FullName string                `json:"full_name"`
	Palm     *reading.PalmFeatures `json:"palm"`
	Face     *reading.FaceFeatures `json:"face"`
}

// SessionRequest 多体系占卜
type SessionRequest struct {
	ReadingRequest
	Systems []string `json:"systems" binding:"required,min=1,max=7,dive,oneof=tarot iching bazi astrology numerology palm face"`
}

// ReadingResponse 占卜结果及所用的牌、卦、星盘等
type ReadingResponse struct {
	reading.Result
	Card     *reading.TarotCard  `json:"card,omitempty"`
	Hexagram *reading.Hexagram   `json:"hexagram,omitempty"`
	Chart    *reading.BirthChart `json:"chart,omitempty"`
	Numbers  *reading.Numbers    `json:"numbers,omitempty"`
}

// SessionResponse 多体系占卜结果
type SessionResponse struct {
	Readings map[reading.Kind]*ReadingResponse `json:"readings"`
	Combined *reading.Result                   `json:"combined,omitempty"`
}
