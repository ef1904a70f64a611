package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/internal/model"
)

type MeditationRepository struct {
	db *gorm.DB
}

func NewMeditationRepository(db *gorm.DB) *MeditationRepository {
	return &MeditationRepository{db: db}
}

func (r *MeditationRepository) GetStats(userID int64) (*model.MeditationStats, error) {
	var stats model.MeditationStats
	err := r.db.Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *MeditationRepository) SaveStats(stats *model.MeditationStats) error {
	return r.db.Save(stats).Error
}

func (r *MeditationRepository) GetSettings(userID int64) (*model.MeditationSettings, error) {
	var settings model.MeditationSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *MeditationRepository) SaveSettings(settings *model.MeditationSettings) error {
	return r.db.Save(settings).Error
}

// ListReminderEnabled 开启提醒且今天尚未提醒过的设置
func (r *MeditationRepository) ListReminderEnabled(today string) ([]*model.MeditationSettings, error) {
	var list []*model.MeditationSettings
	err := r.db.Where("reminder_enabled = ?", true).
		Where("last_reminded_on IS NULL OR last_reminded_on <> ?", today).
		Find(&list).Error
	return list, err
}

func (r *MeditationRepository) MarkReminded(userID int64, day string) error {
	return r.db.Model(&model.MeditationSettings{}).Where("user_id = ?", userID).
		Update("last_reminded_on", day).Error
}
