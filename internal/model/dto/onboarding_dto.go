package dto

import (
	"github.com/qs3c/soultria_server/internal/profile"
)

// OnboardingRequest 完成引导问卷
type OnboardingRequest struct {
	Name               string            `json:"name" binding:"required,max=100"`
	Email              string            `json:"email" binding:"omitempty,email"`
	Phone              string            `json:"phone" binding:"omitempty,max=30"`
	ConnectionLevel    int               `json:"connection_level" binding:"required,min=1,max=10"`
	Devices            []string          `json:"devices"`
	SpiritualAnswers   map[string]string `json:"spiritual_answers" binding:"required"`
	PersonalityAnswers map[string]string `json:"personality_answers" binding:"required"`
}

// OnboardingResponse 引导资料
type OnboardingResponse struct {
	Name               string            `json:"name"`
	FirstName          string            `json:"first_name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone,omitempty"`
	ConnectionLevel    int               `json:"connection_level"`
	Devices            []string          `json:"devices"`
	SpiritualAnswers   map[string]string `json:"spiritual_answers"`
	PersonalityAnswers map[string]string `json:"personality_answers"`
	Profile            profile.Result    `json:"profile"`
	Labels             profile.Labels    `json:"labels"`
	Completed          bool              `json:"completed"`
	CompletedAt        string            `json:"completed_at"`
	IsFirstLogin       bool              `json:"is_first_login"`
}

// QuestionsResponse 问卷题目
type QuestionsResponse struct {
	Spiritual   []profile.SpiritualQuestion   `json:"spiritual"`
	Personality []profile.PersonalityQuestion `json:"personality"`
}
