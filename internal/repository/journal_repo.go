package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/internal/model"
)

type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Create(entry *model.JournalEntry) error {
	return r.db.Create(entry).Error
}

// ListByUser 按时间倒序返回日记，entryType 为空时返回全部
func (r *JournalRepository) ListByUser(userID int64, entryType string) ([]*model.JournalEntry, error) {
	var entries []*model.JournalEntry
	query := r.db.Where("user_id = ?", userID)
	if entryType != "" {
		query = query.Where("type = ?", entryType)
	}
	err := query.Order("created_at DESC, id DESC").Find(&entries).Error
	return entries, err
}

func (r *JournalRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.JournalEntry{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
