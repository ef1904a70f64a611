package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs3c/soultria_server/internal/model"
)

// KVRepository 以数据库表实现权益存储后端
type KVRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntry
	err := r.db.WithContext(ctx).Where("`key` = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	entry := model.KVEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
