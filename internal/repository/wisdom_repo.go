package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/internal/model"
)

type WisdomRepository struct {
	db *gorm.DB
}

func NewWisdomRepository(db *gorm.DB) *WisdomRepository {
	return &WisdomRepository{db: db}
}

func (r *WisdomRepository) Exists(userID int64, itemID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SavedWisdomItem{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *WisdomRepository) Add(userID int64, itemID string) error {
	return r.db.Create(&model.SavedWisdomItem{UserID: userID, ItemID: itemID}).Error
}

func (r *WisdomRepository) Remove(userID int64, itemID string) error {
	return r.db.Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.SavedWisdomItem{}).Error
}

// ListItemIDs 按收藏顺序返回条目 ID
func (r *WisdomRepository) ListItemIDs(userID int64) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.SavedWisdomItem{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("item_id", &ids).Error
	return ids, err
}
