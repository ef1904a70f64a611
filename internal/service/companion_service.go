package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/pkg/ws"
	"github.com/qs3c/soultria_server/internal/reading"
)

var ErrEmptyMessage = errors.New("message is empty")

const companionSystemPrompt = "You are Soultria, a gentle spiritual companion. Answer with warmth and grounded wisdom in two or three short paragraphs."

var companionFallbacks = []string{
	"Your question touches the depths of spiritual wisdom. Remember, every challenge is an opportunity for growth.",
	"I feel your energy shifting. Trust in your inner knowing - it will guide you to the answers you seek.",
	"The universe is conspiring to help you. Sometimes the path forward requires letting go of what we think we need.",
}

// CompanionService 灵性伙伴对话，每条消息消耗一次 AI 向导额度
type CompanionService struct {
	text     reading.TextGenerator
	timeout  time.Duration
	ents     *EntitlementService
	notifier Notifier
	now      func() time.Time
}

func NewCompanionService(text reading.TextGenerator, timeout time.Duration, ents *EntitlementService, notifier Notifier) *CompanionService {
	if timeout <= 0 {
		timeout = reading.DefaultTimeout
	}
	return &CompanionService{
		text:     text,
		timeout:  timeout,
		ents:     ents,
		notifier: notifier,
		now:      time.Now,
	}
}

// Send 发送消息，生成失败时返回固定回复
func (s *CompanionService) Send(ctx context.Context, userID int64, req *dto.CompanionMessageRequest) (*dto.CompanionMessageResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if err := s.ents.Consume(ctx, userID, entitlement.AIGuide); err != nil {
		return nil, err
	}

	resp := &dto.CompanionMessageResponse{
		Reply:     s.reply(ctx, message),
		Timestamp: s.now().Format(time.RFC3339),
		Remaining: s.ents.Store(userID).RemainingUsage(ctx),
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, userID, ws.TypeCompanionReply, resp); err != nil {
			log.Printf("companion: notify user %d failed: %v", userID, err)
		}
	}
	return resp, nil
}

func (s *CompanionService) reply(ctx context.Context, message string) string {
	fallback := companionFallbacks[utf8.RuneCountInString(message)%len(companionFallbacks)]
	if s.text == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var text string
	var err error
	if chat, ok := s.text.(chatGenerator); ok {
		text, err = chat.Chat(ctx, companionSystemPrompt, message)
	} else {
		text, err = s.text.Complete(ctx, message)
	}
	if err != nil {
		log.Printf("companion: generate reply failed: %v", err)
		return fallback
	}
	if text = strings.TrimSpace(text); text == "" {
		return fallback
	}
	return text
}

// chatGenerator 支持系统提示的生成器，llm.Client 实现了该接口
type chatGenerator interface {
	Chat(ctx context.Context, system, prompt string) (string, error)
}
