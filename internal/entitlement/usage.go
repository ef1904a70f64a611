package entitlement

import "time"

// Metered 按次计量的功能
type Metered int

const (
	Meditation Metered = iota
	Tarot
	AIGuide
)

func (m Metered) String() string {
	switch m {
	case Meditation:
		return "meditation"
	case Tarot:
		return "tarot"
	case AIGuide:
		return "ai_guide"
	}
	return "unknown"
}

func (m Metered) limit(f Features) int {
	switch m {
	case Meditation:
		return f.MeditationSessions
	case Tarot:
		return f.TarotReadings
	case AIGuide:
		return f.AIGuideConversations
	}
	return 0
}

func (m Metered) counter(u *UsageRecord) *int {
	switch m {
	case Meditation:
		return &u.MeditationSessions
	case Tarot:
		return &u.TarotReadings
	case AIGuide:
		return &u.AIGuideConversations
	}
	return nil
}

// Gate 按套餐开关的功能
type Gate string

const (
	GatePalmReading       Gate = "palm_reading"
	GateFaceReading       Gate = "face_reading"
	GateIChingReading     Gate = "iching_reading"
	GateAstrologyReading  Gate = "astrology_reading"
	GateNumerologyReading Gate = "numerology_reading"
	GateCombinedReadings  Gate = "combined_readings"
	GateJournalInsights   Gate = "journal_insights"
	GateAffirmations      Gate = "affirmations"
	GateSpiritualAdvisor  Gate = "spiritual_advisor"
	GateRetreatCommunity  Gate = "retreat_community"
)

func (g Gate) allowed(f Features) bool {
	switch g {
	case GatePalmReading:
		return f.PalmReading
	case GateFaceReading:
		return f.FaceReading
	case GateIChingReading:
		return f.IChingReading
	case GateAstrologyReading:
		return f.AstrologyReading
	case GateNumerologyReading:
		return f.NumerologyReading
	case GateCombinedReadings:
		return f.CombinedReadings
	case GateJournalInsights:
		return f.JournalInsights
	case GateAffirmations:
		return f.Affirmations
	case GateSpiritualAdvisor:
		return f.SpiritualAdvisor
	case GateRetreatCommunity:
		return f.RetreatCommunity
	}
	return false
}

// WisdomContent 智慧库内容等级
type WisdomContent string

const (
	WisdomBasic   WisdomContent = "basic"
	WisdomPremium WisdomContent = "premium"
)

type ResetStamps struct {
	Monthly time.Time `json:"monthly"`
	Daily   time.Time `json:"daily"`
}

// UsageRecord 用户当前周期内的用量
type UsageRecord struct {
	MeditationSessions   int         `json:"meditationSessions"`
	TarotReadings        int         `json:"tarotReadings"`
	AIGuideConversations int         `json:"aiGuideConversations"`
	LastReset            ResetStamps `json:"lastReset"`
}

func newUsageRecord(now time.Time) UsageRecord {
	return UsageRecord{LastReset: ResetStamps{Monthly: now, Daily: now}}
}

// resetIfNeeded 跨月清零月度计数，跨日清零每日计数，两者互不影响
func (u *UsageRecord) resetIfNeeded(now time.Time) bool {
	changed := false

	lastMonthly := u.LastReset.Monthly.In(now.Location())
	if lastMonthly.Year() != now.Year() || lastMonthly.Month() != now.Month() {
		u.MeditationSessions = 0
		u.TarotReadings = 0
		u.LastReset.Monthly = now
		changed = true
	}

	if !sameDay(u.LastReset.Daily.In(now.Location()), now) {
		u.AIGuideConversations = 0
		u.LastReset.Daily = now
		changed = true
	}

	return changed
}

// clampNegative 计数器不允许为负
func (u *UsageRecord) clampNegative() bool {
	changed := false
	for _, c := range []*int{&u.MeditationSessions, &u.TarotReadings, &u.AIGuideConversations} {
		if *c < 0 {
			*c = 0
			changed = true
		}
	}
	return changed
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Remaining 剩余额度，Unlimited 表示不限
type Remaining struct {
	Meditation int `json:"meditation"`
	Tarot      int `json:"tarot"`
	AIGuide    int `json:"aiGuide"`
}

func remainingFor(m Metered, f Features, u UsageRecord) int {
	limit := m.limit(f)
	if limit == Unlimited {
		return Unlimited
	}
	left := limit - *m.counter(&u)
	if left < 0 {
		return 0
	}
	return left
}
