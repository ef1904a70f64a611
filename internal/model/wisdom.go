package model

import (
	"time"
)

type SavedWisdomItem struct {
	ID        int64     `gorm:"primaryKey" json:"-"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_user_item" json:"-"`
	ItemID    string    `gorm:"size:64;not null;uniqueIndex:idx_user_item" json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (SavedWisdomItem) TableName() string {
	return "saved_wisdom_items"
}
