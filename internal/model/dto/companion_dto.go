package dto

import (
	"github.com/qs3c/soultria_server/internal/entitlement"
)

// CompanionMessageRequest 发给灵性伙伴的消息
type CompanionMessageRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

// CompanionMessageResponse 伙伴回复
type CompanionMessageResponse struct {
	Reply     string                `json:"reply"`
	Timestamp string                `json:"timestamp"`
	Remaining entitlement.Remaining `json:"remaining"`
}
