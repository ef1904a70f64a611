package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/internal/model"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/profile"
	"github.com/qs3c/soultria_server/internal/repository"
)

var ErrOnboardingNotFound = errors.New("onboarding not completed")

type OnboardingService struct {
	repo     *repository.OnboardingRepository
	userRepo *repository.UserRepository
	now      func() time.Time
}

func NewOnboardingService(repo *repository.OnboardingRepository, userRepo *repository.UserRepository) *OnboardingService {
	return &OnboardingService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Questions 问卷题目
func (s *OnboardingService) Questions() *dto.QuestionsResponse {
	return &dto.QuestionsResponse{
		Spiritual:   profile.SpiritualQuestions(),
		Personality: profile.PersonalityQuestions(),
	}
}

// Complete 提交问卷并计算画像，重复提交视为重新测试，整条覆盖
func (s *OnboardingService) Complete(userID int64, req *dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	if err := profile.Validate(req.SpiritualAnswers, req.PersonalityAnswers); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		user, err := s.userRepo.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		email = user.Email
	}

	name := strings.TrimSpace(req.Name)
	result := profile.Calculate(req.SpiritualAnswers, req.PersonalityAnswers)

	ob := &model.OnboardingProfile{
		UserID:             userID,
		Name:               name,
		FirstName:          firstName(name),
		Email:              email,
		Phone:              strings.TrimSpace(req.Phone),
		ConnectionLevel:    req.ConnectionLevel,
		Devices:            req.Devices,
		SpiritualAnswers:   datatypes.NewJSONType(req.SpiritualAnswers),
		PersonalityAnswers: datatypes.NewJSONType(req.PersonalityAnswers),
		DominantElement:    string(result.DominantElement),
		SpiritAnimal:       string(result.SpiritAnimal),
		AuraColor:          string(result.AuraColor),
		Calculation:        datatypes.NewJSONType(result.Breakdown),
		Completed:          true,
		CompletedAt:        s.now(),
		IsFirstLogin:       true,
	}
	if ob.Devices == nil {
		ob.Devices = []string{}
	}

	if err := s.repo.Save(ob); err != nil {
		return nil, err
	}
	return buildOnboardingResponse(ob), nil
}

// Get 读取已保存的资料，不重新计算
func (s *OnboardingService) Get(userID int64) (*dto.OnboardingResponse, error) {
	ob, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOnboardingNotFound
		}
		return nil, err
	}
	return buildOnboardingResponse(ob), nil
}

// MarkWelcomed 首次进入首页后清除首次登录标记
func (s *OnboardingService) MarkWelcomed(userID int64) (*dto.OnboardingResponse, error) {
	if _, err := s.Get(userID); err != nil {
		return nil, err
	}
	if err := s.repo.SetFirstLogin(userID, false); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func buildOnboardingResponse(ob *model.OnboardingProfile) *dto.OnboardingResponse {
	result := ob.Result()
	return &dto.OnboardingResponse{
		Name:               ob.Name,
		FirstName:          ob.FirstName,
		Email:              ob.Email,
		Phone:              ob.Phone,
		ConnectionLevel:    ob.ConnectionLevel,
		Devices:            ob.Devices,
		SpiritualAnswers:   ob.SpiritualAnswers.Data(),
		PersonalityAnswers: ob.PersonalityAnswers.Data(),
		Profile:            result,
		Labels:             result.Labels(),
		Completed:          ob.Completed,
		CompletedAt:        ob.CompletedAt.Format(time.RFC3339),
		IsFirstLogin:       ob.IsFirstLogin,
	}
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
