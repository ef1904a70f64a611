package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/config"
	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/library"
	"github.com/qs3c/soultria_server/internal/model"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/ws"
	"github.com/qs3c/soultria_server/internal/repository"
)

var (
	ErrUnknownMeditation   = errors.New("unknown meditation type")
	ErrInvalidDuration     = errors.New("duration not offered for this meditation")
	ErrInvalidReminderTime = errors.New("reminder time must be HH:MM")
)

const (
	dayLayout = "2006-01-02"
	// 随机提醒落在 08:00 到 20:00 之间
	randomWindowStart = 8 * 60
	randomWindowSize  = 12 * 60
)

type MeditationService struct {
	repo     *repository.MeditationRepository
	journal  *JournalService
	ents     *EntitlementService
	notifier Notifier
	loc      *time.Location
	now      func() time.Time
}

func NewMeditationService(
	repo *repository.MeditationRepository,
	journal *JournalService,
	ents *EntitlementService,
	notifier Notifier,
	cfg *config.Config,
) *MeditationService {
	loc, err := cfg.Server.Location()
	if err != nil {
		loc = time.Local
	}
	return &MeditationService{
		repo:     repo,
		journal:  journal,
		ents:     ents,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}
}

// Overview 课程列表、统计、设置和剩余次数
func (s *MeditationService) Overview(ctx context.Context, userID int64) (*dto.MeditationOverviewResponse, error) {
	stats, err := s.Stats(userID)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings(userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeditationOverviewResponse{
		Types:     library.MeditationTypes(),
		Stats:     stats,
		Settings:  settings,
		Remaining: s.ents.Store(userID).RemainingUsage(ctx),
	}, nil
}

// Start 开始一次冥想，消耗一次冥想额度
func (s *MeditationService) Start(ctx context.Context, userID int64, req *dto.StartMeditationRequest) (*dto.StartMeditationResponse, error) {
	m, ok := library.FindMeditationType(req.MeditationID)
	if !ok {
		return nil, ErrUnknownMeditation
	}
	if !offers(m, req.Duration) {
		return nil, ErrInvalidDuration
	}

	if err := s.ents.Consume(ctx, userID, entitlement.Meditation); err != nil {
		return nil, err
	}

	return &dto.StartMeditationResponse{
		Meditation: m,
		Duration:   req.Duration,
		Remaining:  s.ents.Store(userID).RemainingUsage(ctx),
	}, nil
}

// Complete 结束冥想：更新统计，评分大于 0 时写入日记
func (s *MeditationService) Complete(ctx context.Context, userID int64, req *dto.CompleteMeditationRequest) (*dto.CompleteMeditationResponse, error) {
	m, ok := library.FindMeditationType(req.MeditationID)
	if !ok {
		return nil, ErrUnknownMeditation
	}

	stats, err := s.Stats(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats.CurrentStreak = nextStreak(stats, now, s.loc)
	stats.TotalSessions++
	stats.TotalMinutes += req.Duration
	stats.LastSessionAt = &now
	if err := s.repo.SaveStats(stats); err != nil {
		return nil, err
	}

	resp := &dto.CompleteMeditationResponse{Stats: stats}
	if req.Rating > 0 {
		entry, err := s.journal.AddMeditationEntry(userID, MeditationNote{
			MeditationType: m.Name,
			Duration:       req.Duration,
			Rating:         req.Rating,
			Mood:           req.Mood,
			Notes:          req.Notes,
		})
		if err != nil {
			return nil, err
		}
		resp.JournalEntry = entry
	}
	return resp, nil
}

// Stats 用户尚无记录时返回全零统计
func (s *MeditationService) Stats(userID int64) (*model.MeditationStats, error) {
	stats, err := s.repo.GetStats(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.MeditationStats{UserID: userID}, nil
	}
	return stats, err
}

// Settings 用户尚未保存时返回默认设置
func (s *MeditationService) Settings(userID int64) (*model.MeditationSettings, error) {
	settings, err := s.repo.GetSettings(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultMeditationSettings(userID), nil
	}
	return settings, err
}

func (s *MeditationService) SaveSettings(userID int64, req *dto.MeditationSettingsRequest) (*model.MeditationSettings, error) {
	if _, err := time.Parse("15:04", req.NotificationTime); err != nil {
		return nil, ErrInvalidReminderTime
	}

	settings, err := s.Settings(userID)
	if err != nil {
		return nil, err
	}
	settings.VoiceTone = req.VoiceTone
	settings.Volume = req.Volume
	settings.SoundscapeVolume = req.SoundscapeVolume
	settings.NotificationSchedule = req.NotificationSchedule
	settings.NotificationTime = req.NotificationTime
	settings.ReminderEnabled = req.ReminderEnabled

	if err := s.repo.SaveSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// DispatchReminders 推送当前到期的冥想提醒，每个用户每天最多一次
func (s *MeditationService) DispatchReminders(ctx context.Context) (int, error) {
	now := s.now().In(s.loc)
	today := now.Format(dayLayout)

	candidates, err := s.repo.ListReminderEnabled(today)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, settings := range candidates {
		if !reminderDue(settings, now) {
			continue
		}
		if err := s.repo.MarkReminded(settings.UserID, today); err != nil {
			log.Printf("meditation: mark reminder for user %d failed: %v", settings.UserID, err)
			continue
		}
		if s.notifier != nil {
			payload := map[string]string{
				"message": "Time to pause and reconnect with your breath.",
				"time":    settings.NotificationTime,
			}
			if err := s.notifier.Notify(ctx, settings.UserID, ws.TypeMeditationReminder, payload); err != nil {
				log.Printf("meditation: notify user %d failed: %v", settings.UserID, err)
			}
		}
		sent++
	}
	return sent, nil
}

func offers(m library.MeditationType, duration int) bool {
	for _, d := range m.Durations {
		if d == duration {
			return true
		}
	}
	return false
}

// nextStreak 同一天保持，连续一天加一，中断后从 1 开始
func nextStreak(stats *model.MeditationStats, now time.Time, loc *time.Location) int {
	if stats.LastSessionAt == nil {
		return 1
	}
	last := dayStart(stats.LastSessionAt.In(loc))
	today := dayStart(now.In(loc))

	switch {
	case last.Equal(today):
		if stats.CurrentStreak < 1 {
			return 1
		}
		return stats.CurrentStreak
	case last.AddDate(0, 0, 1).Equal(today):
		return stats.CurrentStreak + 1
	default:
		return 1
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// reminderDue now 需已转换到服务时区
func reminderDue(settings *model.MeditationSettings, now time.Time) bool {
	minutes := now.Hour()*60 + now.Minute()

	switch settings.NotificationSchedule {
	case model.ScheduleWeekdays:
		if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return false
		}
		fallthrough
	case model.ScheduleDaily:
		at, err := time.Parse("15:04", settings.NotificationTime)
		if err != nil {
			return false
		}
		return minutes >= at.Hour()*60+at.Minute()
	case model.ScheduleRandom:
		return minutes >= randomReminderMinute(settings.UserID, now.Format(dayLayout))
	}
	return false
}

// randomReminderMinute 按用户和日期确定当天的随机提醒时刻
func randomReminderMinute(userID int64, day string) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d:%s", userID, day)
	return randomWindowStart + int(h.Sum32()%randomWindowSize)
}
