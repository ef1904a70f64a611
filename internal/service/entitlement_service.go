package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/qs3c/soultria_server/config"
	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/pkg/ws"
)

var (
	ErrUnknownPlan     = errors.New("unknown subscription plan")
	ErrPlanNotSaved    = errors.New("failed to save subscription plan")
	ErrUpgradeRequired = errors.New("feature not included in current plan")
	ErrQuotaExceeded   = errors.New("usage limit reached for current plan")
)

// FeatureError 套餐限制导致的拒绝
type FeatureError struct {
	Feature     string
	CurrentPlan entitlement.PlanID
	// Exhausted 为 true 表示计量额度用尽，否则为套餐未开放
	Exhausted bool
}

func (e *FeatureError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("%s: usage limit reached on plan %s", e.Feature, e.CurrentPlan)
	}
	return fmt.Sprintf("%s: not included in plan %s", e.Feature, e.CurrentPlan)
}

func (e *FeatureError) Unwrap() error {
	if e.Exhausted {
		return ErrQuotaExceeded
	}
	return ErrUpgradeRequired
}

// Notifier 向用户的在线连接推送事件，由 ws.Hub 或 pubsub.Publisher 实现
type Notifier interface {
	Notify(ctx context.Context, userID int64, msgType string, data interface{}) error
}

// storeLockStripes 用户锁分片数，同一用户总是落在同一片
const storeLockStripes = 64

// EntitlementService 按用户构造权益存储，同一用户的读改写串行执行
type EntitlementService struct {
	backend  entitlement.Backend
	prefix   string
	opts     []entitlement.Option
	notifier Notifier

	locks [storeLockStripes]sync.Mutex
}

func NewEntitlementService(backend entitlement.Backend, cfg *config.Config, notifier Notifier, opts ...entitlement.Option) *EntitlementService {
	loc, err := cfg.Server.Location()
	if err != nil {
		log.Printf("entitlement: invalid timezone %q, using local: %v", cfg.Server.Timezone, err)
		loc = nil
	}

	base := []entitlement.Option{
		entitlement.WithLocation(loc),
		entitlement.WithPreviewUnlocked(cfg.Entitlement.PreviewUnlocked),
	}
	return &EntitlementService{
		backend:  backend,
		prefix:   cfg.Entitlement.KeyPrefix,
		opts:     append(base, opts...),
		notifier: notifier,
	}
}

// Store 返回用户的权益存储，同一用户的实例共用一把分片锁
func (s *EntitlementService) Store(userID int64) *entitlement.Store {
	opts := append([]entitlement.Option{
		entitlement.WithKeyPrefix(fmt.Sprintf("%suser:%d:", s.prefix, userID)),
		entitlement.WithLocker(&s.locks[uint64(userID)%storeLockStripes]),
	}, s.opts...)
	return entitlement.New(s.backend, opts...)
}

func (s *EntitlementService) Snapshot(ctx context.Context, userID int64) entitlement.Snapshot {
	return s.Store(userID).Snapshot(ctx)
}

func (s *EntitlementService) Plans() []entitlement.Plan {
	return entitlement.Plans()
}

// Upgrade 切换套餐，已有用量保留
func (s *EntitlementService) Upgrade(ctx context.Context, userID int64, planID string) (entitlement.Snapshot, error) {
	id := entitlement.PlanID(planID)
	if _, ok := entitlement.LookupPlan(id); !ok {
		return entitlement.Snapshot{}, ErrUnknownPlan
	}
	store := s.Store(userID)
	if !store.UpgradePlan(ctx, id) {
		return entitlement.Snapshot{}, ErrPlanNotSaved
	}
	snap := store.Snapshot(ctx)
	s.publish(ctx, userID, snap)
	return snap, nil
}

// Consume 消耗一次计量额度，用尽时返回 FeatureError
func (s *EntitlementService) Consume(ctx context.Context, userID int64, m entitlement.Metered) error {
	store := s.Store(userID)
	if !store.Use(ctx, m) {
		return &FeatureError{
			Feature:     m.String(),
			CurrentPlan: store.CurrentPlan(ctx).ID,
			Exhausted:   true,
		}
	}
	s.PublishUsage(ctx, userID)
	return nil
}

// Require 检查布尔权益，未开放时返回 FeatureError
func (s *EntitlementService) Require(ctx context.Context, userID int64, g entitlement.Gate) error {
	store := s.Store(userID)
	if !store.Allows(ctx, g) {
		return &FeatureError{
			Feature:     string(g),
			CurrentPlan: store.CurrentPlan(ctx).ID,
		}
	}
	return nil
}

// RequireWisdom 检查智慧库内容的访问权限
func (s *EntitlementService) RequireWisdom(ctx context.Context, userID int64, content entitlement.WisdomContent) error {
	store := s.Store(userID)
	if !store.CanAccessWisdomLibrary(ctx, content) {
		return &FeatureError{
			Feature:     "wisdom_library_" + string(content),
			CurrentPlan: store.CurrentPlan(ctx).ID,
		}
	}
	return nil
}

// PublishUsage 推送最新用量
func (s *EntitlementService) PublishUsage(ctx context.Context, userID int64) {
	s.publish(ctx, userID, s.Store(userID).Snapshot(ctx))
}

func (s *EntitlementService) publish(ctx context.Context, userID int64, snap entitlement.Snapshot) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, ws.TypeUsageUpdated, snap); err != nil {
		log.Printf("entitlement: notify user %d failed: %v", userID, err)
	}
}
