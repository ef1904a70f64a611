package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/model"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/repository"
)

var (
	ErrEmptyJournal         = errors.New("journal content is empty")
	ErrInvalidJournalFilter = errors.New("journal filter must be all, manual or meditation")
)

const defaultEmotion = "reflective"

var journalInsights = []string{
	"Your emotional patterns suggest a need for grounding practices",
	"Consider exploring the root cause of these overwhelming feelings",
	"Your energy seems scattered - try focusing meditation",
	"This emotional state often precedes breakthrough moments",
	"Your intuition is heightened during this emotional phase",
}

// MeditationNote 冥想结束后写入日记的反馈
type MeditationNote struct {
	MeditationType string
	Duration       int
	Rating         int
	Mood           string
	Notes          string
}

type JournalService struct {
	repo *repository.JournalRepository
	ents *EntitlementService
	now  func() time.Time
}

func NewJournalService(repo *repository.JournalRepository, ents *EntitlementService) *JournalService {
	return &JournalService{
		repo: repo,
		ents: ents,
		now:  time.Now,
	}
}

// Save 写一篇手动日记，套餐开放时附带洞察
func (s *JournalService) Save(ctx context.Context, userID int64, req *dto.CreateJournalRequest) (*model.JournalEntry, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyJournal
	}

	emotions := make([]string, 0, len(req.Emotions))
	for _, e := range req.Emotions {
		if e = strings.TrimSpace(e); e != "" {
			emotions = append(emotions, e)
		}
	}
	if len(emotions) == 0 {
		emotions = []string{defaultEmotion}
	}

	entry := &model.JournalEntry{
		EntryID:  uuid.NewString(),
		UserID:   userID,
		Type:     model.JournalTypeManual,
		Content:  content,
		Emotions: emotions,
	}
	if s.ents.Store(userID).Allows(ctx, entitlement.GateJournalInsights) {
		entry.AIInsights = insightsFor(content)
	}

	if err := s.create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// AddMeditationEntry 由冥想反馈生成一篇日记
func (s *JournalService) AddMeditationEntry(userID int64, note MeditationNote) (*model.JournalEntry, error) {
	mood := strings.TrimSpace(note.Mood)
	content := strings.TrimSpace(note.Notes)
	if content == "" {
		feeling := mood
		if feeling == "" {
			feeling = "peaceful"
		}
		content = fmt.Sprintf("Completed a %d-minute %s meditation. Feeling %s.", note.Duration, note.MeditationType, feeling)
	}
	if mood == "" {
		mood = "peaceful"
	}

	entry := &model.JournalEntry{
		EntryID:        uuid.NewString(),
		UserID:         userID,
		Type:           model.JournalTypeMeditation,
		Content:        content,
		Emotions:       []string{mood, "centered"},
		MeditationType: note.MeditationType,
		Duration:       note.Duration,
		Rating:         note.Rating,
	}
	if err := s.create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List 按时间倒序列出日记
func (s *JournalService) List(userID int64, filter string) ([]*model.JournalEntry, error) {
	var entryType string
	switch filter {
	case "", "all":
	case model.JournalTypeManual, model.JournalTypeMeditation:
		entryType = filter
	default:
		return nil, ErrInvalidJournalFilter
	}

	entries, err := s.repo.ListByUser(userID, entryType)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*model.JournalEntry{}
	}
	return entries, nil
}

// Patterns 出现最多的三种情绪，需要日记洞察权益
func (s *JournalService) Patterns(ctx context.Context, userID int64) (*dto.JournalPatternsResponse, error) {
	if err := s.ents.Require(ctx, userID, entitlement.GateJournalInsights); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByUser(userID, "")
	if err != nil {
		return nil, err
	}
	return &dto.JournalPatternsResponse{
		TotalEntries: int64(len(entries)),
		Patterns:     topEmotions(entries, 3),
	}, nil
}

func (s *JournalService) create(entry *model.JournalEntry) error {
	entry.CreatedAt = s.now()
	return s.repo.Create(entry)
}

// insightsFor 按内容长度取前两条或前三条
func insightsFor(content string) []string {
	n := 2 + utf8.RuneCountInString(content)%2
	out := make([]string, n)
	copy(out, journalInsights[:n])
	return out
}

// topEmotions 次数相同时按首次出现的顺序
func topEmotions(entries []*model.JournalEntry, limit int) []dto.EmotionCount {
	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		for _, e := range entry.Emotions {
			if counts[e] == 0 {
				order = append(order, e)
			}
			counts[e]++
		}
	}

	out := make([]dto.EmotionCount, 0, len(order))
	for _, e := range order {
		out = append(out, dto.EmotionCount{Emotion: e, Count: counts[e]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
