package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/internal/model"
)

// TestPassword TestUser 创建的用户的明文密码
const TestPassword = "password123"

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &model.User{
		Name:         "Luna Rivers",
		Email:        fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		PasswordHash: string(hash),
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithName 设置用户名
func WithName(name string) func(*model.User) {
	return func(u *model.User) {
		u.Name = name
	}
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithPhone 设置手机号
func WithPhone(phone string) func(*model.User) {
	return func(u *model.User) {
		u.Phone = phone
	}
}

// TestJournalEntry 创建测试日记
func TestJournalEntry(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.JournalEntry)) *model.JournalEntry {
	t.Helper()

	entry := &model.JournalEntry{
		EntryID:  uuid.NewString(),
		UserID:   userID,
		Type:     model.JournalTypeManual,
		Content:  "Felt calm after the morning walk.",
		Emotions: []string{"peaceful"},
	}

	for _, opt := range opts {
		opt(entry)
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("Failed to create test journal entry: %v", err)
	}

	return entry
}

// WithEmotions 设置情绪标签
func WithEmotions(emotions ...string) func(*model.JournalEntry) {
	return func(e *model.JournalEntry) {
		e.Emotions = emotions
	}
}

// WithMeditation 设置为冥想日记
func WithMeditation(meditationType string, duration, rating int) func(*model.JournalEntry) {
	return func(e *model.JournalEntry) {
		e.Type = model.JournalTypeMeditation
		e.MeditationType = meditationType
		e.Duration = duration
		e.Rating = rating
	}
}

// WithCreatedAt 设置创建时间
func WithCreatedAt(at time.Time) func(*model.JournalEntry) {
	return func(e *model.JournalEntry) {
		e.CreatedAt = at
	}
}

// TestSettings 创建测试冥想设置
func TestSettings(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.MeditationSettings)) *model.MeditationSettings {
	t.Helper()

	settings := model.DefaultMeditationSettings(userID)
	for _, opt := range opts {
		opt(settings)
	}

	if err := db.Create(settings).Error; err != nil {
		t.Fatalf("Failed to create test settings: %v", err)
	}

	return settings
}

// WithReminder 设置提醒计划
func WithReminder(schedule, at string, enabled bool) func(*model.MeditationSettings) {
	return func(s *model.MeditationSettings) {
		s.NotificationSchedule = schedule
		s.NotificationTime = at
		s.ReminderEnabled = enabled
	}
}
