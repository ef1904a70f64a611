package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile 获取用户详情
func (s *UserService) GetProfile(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return buildUserInfo(user), nil
}

// UpdateProfile 更新姓名、手机号
func (s *UserService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}

	if len(fields) > 0 {
		if _, err := s.GetProfile(userID); err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdateFields(userID, fields); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(userID)
}
