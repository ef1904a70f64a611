package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	JournalTypeManual     = "manual"
	JournalTypeMeditation = "meditation"
)

// JournalEntry 日记条目，只追加不修改
type JournalEntry struct {
	ID             int64                       `gorm:"primaryKey" json:"-"`
	EntryID        string                      `gorm:"size:36;uniqueIndex;not null" json:"id"`
	UserID         int64                       `gorm:"not null;index" json:"user_id"`
	Type           string                      `gorm:"size:20;not null;index" json:"type"` // manual, meditation
	Content        string                      `gorm:"type:text;not null" json:"content"`
	Emotions       datatypes.JSONSlice[string] `json:"emotions"`
	AIInsights     datatypes.JSONSlice[string] `json:"ai_insights,omitempty"`
	MeditationType string                      `gorm:"size:50" json:"meditation_type,omitempty"`
	Duration       int                         `json:"duration,omitempty"` // 分钟
	Rating         int                         `json:"rating,omitempty"`
	CreatedAt      time.Time                   `gorm:"index" json:"created_at"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
