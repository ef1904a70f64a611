package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/qs3c/soultria_server/internal/profile"
)

type OnboardingProfile struct {
	UserID             int64                                 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Name               string                                `gorm:"size:100;not null" json:"name"`
	FirstName          string                                `gorm:"size:50" json:"first_name"`
	Email              string                                `gorm:"size:100" json:"email"`
	Phone              string                                `gorm:"size:30" json:"phone,omitempty"`
	ConnectionLevel    int                                   `json:"connection_level"`
	Devices            datatypes.JSONSlice[string]           `json:"devices"`
	SpiritualAnswers   datatypes.JSONType[map[string]string] `json:"spiritual_answers"`
	PersonalityAnswers datatypes.JSONType[map[string]string] `json:"personality_answers"`
	DominantElement    string                                `gorm:"size:20" json:"dominant_element"`
	SpiritAnimal       string                                `gorm:"size:20" json:"spirit_animal"`
	AuraColor          string                                `gorm:"size:20" json:"aura_color"`
	Calculation        datatypes.JSONType[profile.Breakdown] `json:"profile_calculation"`
	Completed          bool                                  `json:"completed"`
	CompletedAt        time.Time                             `json:"completed_at"`
	IsFirstLogin       bool                                  `json:"is_first_login"`
	CreatedAt          time.Time                             `json:"created_at"`
	UpdatedAt          time.Time                             `json:"updated_at"`
}

func (OnboardingProfile) TableName() string {
	return "onboarding_profiles"
}

// Result 还原为计算结果
func (p *OnboardingProfile) Result() profile.Result {
	return profile.Result{
		DominantElement: profile.Element(p.DominantElement),
		SpiritAnimal:    profile.Animal(p.SpiritAnimal),
		AuraColor:       profile.Aura(p.AuraColor),
		Breakdown:       p.Calculation.Data(),
	}
}
