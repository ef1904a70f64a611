package dto

import (
	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/library"
	"github.com/qs3c/soultria_server/internal/model"
)

// StartMeditationRequest 开始冥想
type StartMeditationRequest struct {
	MeditationID string `json:"meditation_id" binding:"required"`
	Duration     int    `json:"duration" binding:"required,min=1,max=120"`
}

// StartMeditationResponse 开始冥想响应
type StartMeditationResponse struct {
	Meditation library.MeditationType `json:"meditation"`
	Duration   int                    `json:"duration"`
	Remaining  entitlement.Remaining  `json:"remaining"`
}

// CompleteMeditationRequest 结束冥想并反馈
type CompleteMeditationRequest struct {
	MeditationID string `json:"meditation_id" binding:"required"`
	Duration     int    `json:"duration" binding:"min=0,max=600"`
	Rating       int    `json:"rating" binding:"min=0,max=5"`
	Mood         string `json:"mood" binding:"max=50"`
	Experience   string `json:"experience" binding:"max=500"`
	Notes        string `json:"notes" binding:"max=5000"`
}

// CompleteMeditationResponse 结束冥想响应
type CompleteMeditationResponse struct {
	Stats        *model.MeditationStats `json:"stats"`
	JournalEntry *model.JournalEntry    `json:"journal_entry,omitempty"`
}

// MeditationSettingsRequest 冥想设置，整体覆盖
type MeditationSettingsRequest struct {
	VoiceTone            int    `json:"voice_tone" binding:"min=1,max=10"`
	Volume               int    `json:"volume" binding:"min=0,max=100"`
	SoundscapeVolume     int    `json:"soundscape_volume" binding:"min=0,max=100"`
	NotificationSchedule string `json:"notification_schedule" binding:"required,oneof=daily weekdays random"`
	NotificationTime     string `json:"notification_time" binding:"required"`
	ReminderEnabled      bool   `json:"reminder_enabled"`
}

// MeditationOverviewResponse 冥想首页数据
type MeditationOverviewResponse struct {
	Types     []library.MeditationType  `json:"types"`
	Stats     *model.MeditationStats    `json:"stats"`
	Settings  *model.MeditationSettings `json:"settings"`
	Remaining entitlement.Remaining     `json:"remaining"`
}
