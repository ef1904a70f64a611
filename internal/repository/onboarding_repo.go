package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/internal/model"
)

type OnboardingRepository struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

func (r *OnboardingRepository) GetByUserID(userID int64) (*model.OnboardingProfile, error) {
	var p model.OnboardingProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save 整条覆盖写入
func (r *OnboardingRepository) Save(p *model.OnboardingProfile) error {
	return r.db.Save(p).Error
}

func (r *OnboardingRepository) SetFirstLogin(userID int64, firstLogin bool) error {
	return r.db.Model(&model.OnboardingProfile{}).Where("user_id = ?", userID).
		Update("is_first_login", firstLogin).Error
}
