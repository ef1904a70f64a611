package entitlement

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

const (
	PlanKey  = "soultria-subscription-plan"
	UsageKey = "soultria-usage-data"
)

// Store 单个用户的订阅与用量状态
//
// 所有方法都不返回错误：后端读写失败只记录日志。读取失败时本次按全新用量计算，
// 但不会写回，避免覆盖后端里仍然有效的计数。
// 同一 Store 上的 Use 系列方法是原子的；多个进程共享同一后端时仍是后写覆盖。
type Store struct {
	backend         Backend
	prefix          string
	now             func() time.Time
	loc             *time.Location
	previewUnlocked bool

	mu sync.Locker
}

type Option func(*Store)

// WithClock 注入时钟，测试用
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation 指定判断跨日、跨月所用的时区
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithPreviewUnlocked 免费套餐临时开放五种占卜
func WithPreviewUnlocked(on bool) Option {
	return func(s *Store) { s.previewUnlocked = on }
}

// WithLocker 与其他 Store 共用同一把锁，键名相同的 Store 必须共用
func WithLocker(l sync.Locker) Option {
	return func(s *Store) {
		if l != nil {
			s.mu = l
		}
	}
}

// WithKeyPrefix 键名前缀，用于按用户隔离
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
		loc:     time.Local,
		mu:      &sync.Mutex{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot 一次读取得到的完整状态
type Snapshot struct {
	PlanID    PlanID      `json:"planId"`
	Plan      Plan        `json:"plan"`
	Usage     UsageRecord `json:"usage"`
	Remaining Remaining   `json:"remaining"`
}

// CurrentPlan 当前套餐，未知 ID 按免费套餐处理
func (s *Store) CurrentPlan(ctx context.Context) Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolvePlan(s.loadPlanID(ctx))
}

// CurrentPlanID 存储中的套餐 ID，未知值原样返回
func (s *Store) CurrentPlanID(ctx context.Context) PlanID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPlanID(ctx)
}

// Usage 当前用量，读取前先执行周期重置
func (s *Store) Usage(ctx context.Context) UsageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	usage, _ := s.loadUsage(ctx)
	return usage
}

// Snapshot 返回套餐、用量和剩余额度
func (s *Store) Snapshot(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.loadPlanID(ctx)
	plan := s.resolvePlan(id)
	usage, _ := s.loadUsage(ctx)
	return Snapshot{
		PlanID:    plan.ID,
		Plan:      plan,
		Usage:     usage,
		Remaining: remaining(plan.Features, usage),
	}
}

// CanUse 计量功能是否还有额度
func (s *Store) CanUse(ctx context.Context, m Metered) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := s.resolvePlan(s.loadPlanID(ctx))
	usage, _ := s.loadUsage(ctx)
	return canUse(m, plan.Features, usage)
}

// Use 检查并消耗一次额度，额度不足时返回 false 且不改变状态
//
// 读取用量失败时按全新用量放行，但不写回。
func (s *Store) Use(ctx context.Context, m Metered) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := s.resolvePlan(s.loadPlanID(ctx))
	usage, loaded := s.loadUsage(ctx)
	if !canUse(m, plan.Features, usage) {
		return false
	}
	*m.counter(&usage)++
	if loaded {
		s.saveUsage(ctx, usage)
	}
	return true
}

// Allows 开关类功能是否开放
func (s *Store) Allows(ctx context.Context, g Gate) bool {
	return g.allowed(s.CurrentPlan(ctx).Features)
}

func (s *Store) CanUseMeditation(ctx context.Context) bool { return s.CanUse(ctx, Meditation) }
func (s *Store) CanUseTarot(ctx context.Context) bool      { return s.CanUse(ctx, Tarot) }
func (s *Store) CanUseAIGuide(ctx context.Context) bool    { return s.CanUse(ctx, AIGuide) }

func (s *Store) UseMeditation(ctx context.Context) bool { return s.Use(ctx, Meditation) }
func (s *Store) UseTarot(ctx context.Context) bool      { return s.Use(ctx, Tarot) }
func (s *Store) UseAIGuide(ctx context.Context) bool    { return s.Use(ctx, AIGuide) }

func (s *Store) CanUsePalmReading(ctx context.Context) bool {
	return s.Allows(ctx, GatePalmReading)
}

func (s *Store) CanUseFaceReading(ctx context.Context) bool {
	return s.Allows(ctx, GateFaceReading)
}

func (s *Store) CanUseIChingReading(ctx context.Context) bool {
	return s.Allows(ctx, GateIChingReading)
}

func (s *Store) CanUseAstrologyReading(ctx context.Context) bool {
	return s.Allows(ctx, GateAstrologyReading)
}

func (s *Store) CanUseNumerologyReading(ctx context.Context) bool {
	return s.Allows(ctx, GateNumerologyReading)
}

func (s *Store) CanUseCombinedReadings(ctx context.Context) bool {
	return s.Allows(ctx, GateCombinedReadings)
}

// CanAccessWisdomLibrary 完整权限可访问全部内容，受限权限只能访问基础内容
func (s *Store) CanAccessWisdomLibrary(ctx context.Context, content WisdomContent) bool {
	if s.CurrentPlan(ctx).Features.WisdomLibrary == LibraryFull {
		return true
	}
	return content != WisdomPremium
}

// UpgradePlan 切换套餐，用量保持不变；未知 ID 或写入失败时返回 false
func (s *Store) UpgradePlan(ctx context.Context, id PlanID) bool {
	if _, ok := LookupPlan(id); !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Set(ctx, s.key(PlanKey), string(id)); err != nil {
		log.Printf("entitlement: save plan %s failed: %v", s.key(PlanKey), err)
		return false
	}
	return true
}

// RemainingUsage 剩余额度，不限为 -1，否则最小为 0
func (s *Store) RemainingUsage(ctx context.Context) Remaining {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := s.resolvePlan(s.loadPlanID(ctx))
	usage, _ := s.loadUsage(ctx)
	return remaining(plan.Features, usage)
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) loadPlanID(ctx context.Context) PlanID {
	raw, ok, err := s.backend.Get(ctx, s.key(PlanKey))
	if err != nil {
		log.Printf("entitlement: load plan %s failed: %v", s.key(PlanKey), err)
		return DefaultPlan
	}
	if !ok || raw == "" {
		return DefaultPlan
	}
	return PlanID(raw)
}

func (s *Store) resolvePlan(id PlanID) Plan {
	plan, ok := LookupPlan(id)
	if !ok {
		log.Printf("entitlement: unknown plan %q at %s, using %s", id, s.key(PlanKey), DefaultPlan)
		plan, _ = LookupPlan(DefaultPlan)
	}
	if s.previewUnlocked {
		plan = withPreviewUnlocked(plan)
	}
	return plan
}

// loadUsage 读取用量并执行重置；首次访问、记录损坏或发生重置时写回
//
// 后端读取失败时返回内存中的全新用量且不写回，第二个返回值为 false。
func (s *Store) loadUsage(ctx context.Context) (UsageRecord, bool) {
	now := s.now().In(s.loc)

	raw, ok, err := s.backend.Get(ctx, s.key(UsageKey))
	if err != nil {
		log.Printf("entitlement: load usage %s failed: %v", s.key(UsageKey), err)
		return newUsageRecord(now), false
	}

	var usage UsageRecord
	dirty := false
	if !ok {
		usage = newUsageRecord(now)
		dirty = true
	} else if err := json.Unmarshal([]byte(raw), &usage); err != nil {
		log.Printf("entitlement: corrupt usage at %s, starting fresh: %v", s.key(UsageKey), err)
		usage = newUsageRecord(now)
		dirty = true
	}

	if usage.clampNegative() {
		dirty = true
	}
	if usage.resetIfNeeded(now) {
		dirty = true
	}
	if dirty {
		s.saveUsage(ctx, usage)
	}
	return usage, true
}

func (s *Store) saveUsage(ctx context.Context, usage UsageRecord) {
	data, err := json.Marshal(usage)
	if err != nil {
		log.Printf("entitlement: marshal usage failed: %v", err)
		return
	}
	if err := s.backend.Set(ctx, s.key(UsageKey), string(data)); err != nil {
		log.Printf("entitlement: save usage %s failed: %v", s.key(UsageKey), err)
	}
}

func canUse(m Metered, f Features, u UsageRecord) bool {
	limit := m.limit(f)
	if limit == Unlimited {
		return true
	}
	return *m.counter(&u) < limit
}

func remaining(f Features, u UsageRecord) Remaining {
	return Remaining{
		Meditation: remainingFor(Meditation, f, u),
		Tarot:      remainingFor(Tarot, f, u),
		AIGuide:    remainingFor(AIGuide, f, u),
	}
}
