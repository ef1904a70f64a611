package model

import (
	"time"
)

const (
	ScheduleDaily    = "daily"
	ScheduleWeekdays = "weekdays"
	ScheduleRandom   = "random"
)

type MeditationStats struct {
	UserID        int64      `gorm:"primaryKey;autoIncrement:false" json:"-"`
	TotalSessions int        `gorm:"default:0" json:"total_sessions"`
	TotalMinutes  int        `gorm:"default:0" json:"total_minutes"`
	CurrentStreak int        `gorm:"default:0" json:"current_streak"`
	LastSessionAt *time.Time `json:"last_session_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (MeditationStats) TableName() string {
	return "meditation_stats"
}

type MeditationSettings struct {
	UserID               int64     `gorm:"primaryKey;autoIncrement:false" json:"-"`
	VoiceTone            int       `json:"voice_tone"`
	Volume               int       `json:"volume"`
	SoundscapeVolume     int       `json:"soundscape_volume"`
	NotificationSchedule string    `gorm:"size:20" json:"notification_schedule"` // daily, weekdays, random
	NotificationTime     string    `gorm:"size:5" json:"notification_time"`
	ReminderEnabled      bool      `json:"reminder_enabled"`
	LastRemindedOn       string    `gorm:"size:10" json:"-"` // YYYY-MM-DD
	UpdatedAt            time.Time `json:"updated_at"`
}

func (MeditationSettings) TableName() string {
	return "meditation_settings"
}

// DefaultMeditationSettings 用户尚未保存设置时的默认值
func DefaultMeditationSettings(userID int64) *MeditationSettings {
	return &MeditationSettings{
		UserID:               userID,
		VoiceTone:            5,
		Volume:               70,
		SoundscapeVolume:     50,
		NotificationSchedule: ScheduleDaily,
		NotificationTime:     "08:00",
		ReminderEnabled:      true,
	}
}
