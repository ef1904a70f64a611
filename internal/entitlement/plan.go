package entitlement

// PlanID 套餐标识
type PlanID string

const (
	PlanSoullite PlanID = "soullite"
	PlanSoulplus PlanID = "soulplus"
	PlanSoulsync PlanID = "soulsync"
)

// DefaultPlan 新用户及无法识别的套餐一律按免费套餐处理
const DefaultPlan = PlanSoullite

// Tier 套餐等级
type Tier string

const (
	TierFree Tier = "free"
	TierPlus Tier = "plus"
	TierSync Tier = "sync"
)

// BaziDepth 八字解读深度
type BaziDepth string

const (
	BaziBasic    BaziDepth = "basic"
	BaziDetailed BaziDepth = "detailed"
	BaziAdvanced BaziDepth = "advanced"
)

// LibraryAccess 智慧库访问范围
type LibraryAccess string

const (
	LibraryLimited LibraryAccess = "limited"
	LibraryFull    LibraryAccess = "full"
)

// Unlimited 计数类功能的无限额度标记
const Unlimited = -1

type Features struct {
	MeditationSessions   int           `json:"meditationSessions"` // 每月
	TarotReadings        int           `json:"tarotReadings"`      // 每月
	BaziReading          BaziDepth     `json:"baziReading"`
	PalmReading          bool          `json:"palmReading"`
	FaceReading          bool          `json:"faceReading"`
	IChingReading        bool          `json:"iChingReading"`
	AstrologyReading     bool          `json:"astrologyReading"`
	NumerologyReading    bool          `json:"numerologyReading"`
	CombinedReadings     bool          `json:"combinedReadings"`
	WisdomLibrary        LibraryAccess `json:"wisdomLibrary"`
	AIGuideConversations int           `json:"aiGuideConversations"` // 每日
	JournalInsights      bool          `json:"journalInsights"`
	Affirmations         bool          `json:"affirmations"`
	SpiritualAdvisor     bool          `json:"spiritualAdvisor"`
	RetreatCommunity     bool          `json:"retreatCommunity"`
}

type Price struct {
	Monthly float64 `json:"monthly"`
	Annual  float64 `json:"annual"`
}

// Plan 套餐定义，静态只读数据
type Plan struct {
	ID       PlanID   `json:"id"`
	Name     string   `json:"name"`
	Tier     Tier     `json:"tier"`
	Features Features `json:"features"`
	Price    Price    `json:"price"`
}

// PlanIDs 按价格升序排列
var PlanIDs = []PlanID{PlanSoullite, PlanSoulplus, PlanSoulsync}

// LookupPlan 按 ID 查找套餐，每次返回新的值，调用方修改不会影响套餐表
func LookupPlan(id PlanID) (Plan, bool) {
	switch id {
	case PlanSoullite:
		return Plan{
			ID:   PlanSoullite,
			Name: "Soullite",
			Tier: TierFree,
			Features: Features{
				MeditationSessions:   3,
				TarotReadings:        1,
				BaziReading:          BaziBasic,
				WisdomLibrary:        LibraryLimited,
				AIGuideConversations: 5,
			},
		}, true
	case PlanSoulplus:
		return Plan{
			ID:   PlanSoulplus,
			Name: "Soulplus",
			Tier: TierPlus,
			Features: Features{
				MeditationSessions:   30,
				TarotReadings:        20,
				BaziReading:          BaziDetailed,
				PalmReading:          true,
				FaceReading:          true,
				IChingReading:        true,
				AstrologyReading:     true,
				NumerologyReading:    true,
				CombinedReadings:     true,
				WisdomLibrary:        LibraryFull,
				AIGuideConversations: 20,
				JournalInsights:      true,
				Affirmations:         true,
				SpiritualAdvisor:     true,
			},
			Price: Price{Monthly: 9.9, Annual: 8.91},
		}, true
	case PlanSoulsync:
		return Plan{
			ID:   PlanSoulsync,
			Name: "SoulSync",
			Tier: TierSync,
			Features: Features{
				MeditationSessions:   Unlimited,
				TarotReadings:        Unlimited,
				BaziReading:          BaziAdvanced,
				PalmReading:          true,
				FaceReading:          true,
				IChingReading:        true,
				AstrologyReading:     true,
				NumerologyReading:    true,
				CombinedReadings:     true,
				WisdomLibrary:        LibraryFull,
				AIGuideConversations: Unlimited,
				JournalInsights:      true,
				Affirmations:         true,
				SpiritualAdvisor:     true,
				RetreatCommunity:     true,
			},
			Price: Price{Monthly: 24.99, Annual: 22.49},
		}, true
	}
	return Plan{}, false
}

// Plans 返回全部套餐
func Plans() []Plan {
	plans := make([]Plan, 0, len(PlanIDs))
	for _, id := range PlanIDs {
		p, _ := LookupPlan(id)
		plans = append(plans, p)
	}
	return plans
}

// withPreviewUnlocked 预览模式：免费套餐临时开放五种占卜
func withPreviewUnlocked(p Plan) Plan {
	if p.Tier != TierFree {
		return p
	}
	p.Features.PalmReading = true
	p.Features.FaceReading = true
	p.Features.IChingReading = true
	p.Features.AstrologyReading = true
	p.Features.NumerologyReading = true
	return p
}
