package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/profile"
	"github.com/qs3c/soultria_server/internal/reading"
	"github.com/qs3c/soultria_server/internal/repository"
)

var (
	ErrUnsupportedReading = errors.New("unsupported reading type")
	ErrUnknownCard        = errors.New("unknown tarot card")
	ErrUnknownHexagram    = errors.New("unknown hexagram")
	ErrInvalidBirthDate   = errors.New("birth date must be YYYY-MM-DD")
)

// 每种占卜对应的布尔权益，塔罗按次计量，八字不设限
var readingGates = map[reading.Kind]entitlement.Gate{
	reading.KindPalm:       entitlement.GatePalmReading,
	reading.KindFace:       entitlement.GateFaceReading,
	reading.KindIChing:     entitlement.GateIChingReading,
	reading.KindAstrology:  entitlement.GateAstrologyReading,
	reading.KindNumerology: entitlement.GateNumerologyReading,
	reading.KindCombined:   entitlement.GateCombinedReadings,
}

type ReadingService struct {
	generator      *reading.Generator
	oracle         *reading.Oracle
	ents           *EntitlementService
	onboardingRepo *repository.OnboardingRepository
	now            func() time.Time
}

func NewReadingService(
	generator *reading.Generator,
	oracle *reading.Oracle,
	ents *EntitlementService,
	onboardingRepo *repository.OnboardingRepository,
) *ReadingService {
	return &ReadingService{
		generator:      generator,
		oracle:         oracle,
		ents:           ents,
		onboardingRepo: onboardingRepo,
		now:            time.Now,
	}
}

// Generate 单次占卜：先校验参数，再检查套餐，最后生成解读
func (s *ReadingService) Generate(ctx context.Context, userID int64, kind reading.Kind, in *dto.ReadingRequest) (*dto.ReadingResponse, error) {
	if kind == reading.KindCombined {
		return nil, ErrUnsupportedReading
	}

	p := s.loadProfile(userID)
	req, resp, err := s.build(ctx, userID, kind, in, p)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, userID, []reading.Kind{kind}); err != nil {
		return nil, err
	}

	resp.Result = s.generator.Generate(ctx, req, p)
	return resp, nil
}

// GenerateSession 多体系占卜，多于一个体系时需要综合解读权益
func (s *ReadingService) GenerateSession(ctx context.Context, userID int64, in *dto.SessionRequest) (*dto.SessionResponse, error) {
	kinds := make([]reading.Kind, 0, len(in.Systems))
	seen := make(map[reading.Kind]bool, len(in.Systems))
	for _, name := range in.Systems {
		kind, ok := reading.ParseKind(name)
		if !ok || kind == reading.KindCombined {
			return nil, ErrUnsupportedReading
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}

	p := s.loadProfile(userID)
	reqs := make([]reading.Request, 0, len(kinds))
	resps := make(map[reading.Kind]*dto.ReadingResponse, len(kinds))
	for _, kind := range kinds {
		req, resp, err := s.build(ctx, userID, kind, &in.ReadingRequest, p)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
		resps[kind] = resp
	}

	checks := kinds
	if len(kinds) > 1 {
		checks = append(append([]reading.Kind{}, kinds...), reading.KindCombined)
	}
	if err := s.authorize(ctx, userID, checks); err != nil {
		return nil, err
	}

	session := s.generator.GenerateSession(ctx, reqs, in.Question, p)
	for kind, result := range session.Readings {
		resps[kind].Result = result
	}
	return &dto.SessionResponse{Readings: resps, Combined: session.Combined}, nil
}

// authorize 先检查全部布尔权益，全部通过后才消耗塔罗次数
func (s *ReadingService) authorize(ctx context.Context, userID int64, kinds []reading.Kind) error {
	metered := false
	for _, kind := range kinds {
		if kind == reading.KindTarot {
			metered = true
			continue
		}
		gate, ok := readingGates[kind]
		if !ok {
			continue
		}
		if err := s.ents.Require(ctx, userID, gate); err != nil {
			return err
		}
	}
	if metered {
		return s.ents.Consume(ctx, userID, entitlement.Tarot)
	}
	return nil
}

func (s *ReadingService) build(ctx context.Context, userID int64, kind reading.Kind, in *dto.ReadingRequest, p *profile.Result) (reading.Request, *dto.ReadingResponse, error) {
	resp := &dto.ReadingResponse{}

	switch kind {
	case reading.KindTarot:
		card := s.oracle.DrawCard()
		if in.Card != "" {
			found, ok := reading.FindCard(in.Card)
			if !ok {
				return nil, nil, ErrUnknownCard
			}
			card = found
		}
		resp.Card = &card
		return reading.TarotInput{Card: card.Name, Question: in.Question}, resp, nil

	case reading.KindIChing:
		hexagram := s.oracle.CastHexagram()
		if in.Hexagram > 0 {
			found, ok := reading.FindHexagram(in.Hexagram)
			if !ok {
				return nil, nil, ErrUnknownHexagram
			}
			hexagram = found
		}
		resp.Hexagram = &hexagram
		return reading.IChingInput{Hexagram: hexagram, Question: in.Question}, resp, nil

	case reading.KindBazi:
		if err := validateBirthDate(in.Birth.Date); err != nil {
			return nil, nil, err
		}
		depth := s.ents.Store(userID).CurrentPlan(ctx).Features.BaziReading
		return reading.BaziInput{Birth: in.Birth, Depth: string(depth)}, resp, nil

	case reading.KindAstrology:
		if err := validateBirthDate(in.Birth.Date); err != nil {
			return nil, nil, err
		}
		chart := s.oracle.ChartFor(in.Birth)
		resp.Chart = &chart
		return reading.AstrologyInput{Chart: chart}, resp, nil

	case reading.KindNumerology:
		if err := validateBirthDate(in.Birth.Date); err != nil {
			return nil, nil, err
		}
		numbers := reading.Numerology(in.Birth.Date, s.fullName(userID, in), s.now())
		resp.Numbers = &numbers
		return reading.NumerologyInput{Numbers: numbers}, resp, nil

	case reading.KindPalm:
		features := reading.DefaultPalmFeatures()
		if in.Palm != nil {
			features = *in.Palm
		}
		return reading.PalmInput{Features: features}, resp, nil

	case reading.KindFace:
		features := reading.DefaultFaceFeatures()
		if in.Face != nil {
			features = *in.Face
		}
		return reading.FaceInput{Features: features}, resp, nil
	}

	return nil, nil, ErrUnsupportedReading
}

// fullName 依次取请求中的姓名、出生信息中的姓名、引导问卷中的姓名
func (s *ReadingService) fullName(userID int64, in *dto.ReadingRequest) string {
	for _, name := range []string{in.FullName, in.Birth.Name} {
		if strings.TrimSpace(name) != "" {
			return name
		}
	}
	if ob, err := s.onboardingRepo.GetByUserID(userID); err == nil {
		return ob.Name
	}
	return ""
}

// loadProfile 用户尚未完成引导问卷时返回 nil
func (s *ReadingService) loadProfile(userID int64) *profile.Result {
	ob, err := s.onboardingRepo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("reading: load profile for user %d failed: %v", userID, err)
		}
		return nil
	}
	if !ob.Completed {
		return nil
	}
	result := ob.Result()
	return &result
}

func validateBirthDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidBirthDate
	}
	return nil
}
