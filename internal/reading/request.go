package reading

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Request 占卜请求
//
// 每种占卜对应一个具体类型，必须同时提供提示词和兜底文本；
// 接口方法不导出，包外无法新增实现。
type Request interface {
	Kind() Kind
	prompt(profileJSON string) string
	fallback() string
}

// BirthData 出生信息
type BirthData struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Place string `json:"place"`
	Name  string `json:"name,omitempty"`
}

// BirthChart 星盘
type BirthChart struct {
	BirthData
	SunSign    ZodiacSign `json:"sunSign"`
	MoonSign   ZodiacSign `json:"moonSign"`
	RisingSign ZodiacSign `json:"risingSign"`
}

// PalmFeatures 手相特征描述
type PalmFeatures struct {
	LifeLine  string `json:"lifeLine"`
	HeartLine string `json:"heartLine"`
	HeadLine  string `json:"headLine"`
	FateLine  string `json:"fateLine"`
	HandShape string `json:"handShape"`
}

// FaceFeatures 面相特征描述
type FaceFeatures struct {
	FaceShape string `json:"faceShape"`
	Forehead  string `json:"forehead"`
	Eyes      string `json:"eyes"`
	Nose      string `json:"nose"`
	Mouth     string `json:"mouth"`
	Chin      string `json:"chin"`
}

type TarotInput struct {
	Card     string
	Question string
}

type IChingInput struct {
	Hexagram Hexagram
	Question string
}

type BaziInput struct {
	Birth BirthData
	// Depth 来自当前套餐的八字解读深度
	Depth string
}

type AstrologyInput struct {
	Chart BirthChart
}

type NumerologyInput struct {
	Numbers Numbers
}

type PalmInput struct {
	Features PalmFeatures
}

type FaceInput struct {
	Features FaceFeatures
}

// CombinedInput 多体系综合解读
type CombinedInput struct {
	Systems  []Kind
	Readings map[Kind]Result
	Question string
}

func (TarotInput) Kind() Kind      { return KindTarot }
func (IChingInput) Kind() Kind     { return KindIChing }
func (BaziInput) Kind() Kind       { return KindBazi }
func (AstrologyInput) Kind() Kind  { return KindAstrology }
func (NumerologyInput) Kind() Kind { return KindNumerology }
func (PalmInput) Kind() Kind       { return KindPalm }
func (FaceInput) Kind() Kind       { return KindFace }
func (CombinedInput) Kind() Kind   { return KindCombined }

func (in TarotInput) prompt(profileJSON string) string {
	var b strings.Builder
	b.WriteString("You are a master tarot reader with 30+ years of experience. Provide a deeply insightful reading for:\n\n")
	fmt.Fprintf(&b, "Card: %s\nQuestion: %s\n", in.Card, in.Question)
	writeProfile(&b, profileJSON)
	b.WriteString(`
Structure your reading with:
1. Card's core message and symbolism
2. Direct answer to the question
3. Hidden influences and subconscious factors
4. Practical guidance and next steps
5. Spiritual practice recommendation

Be mystical yet practical, compassionate yet honest. 4-5 paragraphs.`)
	return b.String()
}

func (in IChingInput) prompt(profileJSON string) string {
	var b strings.Builder
	b.WriteString("You are a wise I Ching master versed in ancient Chinese wisdom. Provide guidance for:\n\n")
	fmt.Fprintf(&b, "Hexagram: %s (%d)\n", in.Hexagram.Name, in.Hexagram.Number)
	fmt.Fprintf(&b, "Trigrams: %s over %s\n", in.Hexagram.UpperTrigram, in.Hexagram.LowerTrigram)
	fmt.Fprintf(&b, "Question: %s\n", in.Question)
	writeProfile(&b, profileJSON)
	b.WriteString(`
Provide:
1. Hexagram meaning and current situation analysis
2. The natural flow and timing of events
3. Proper action vs. non-action guidance
4. Changing lines interpretation if applicable
5. Harmony with natural cycles recommendation

Use Taoist wisdom, speak of balance, timing, and natural flow. 4-5 paragraphs.`)
	return b.String()
}

func (in BaziInput) prompt(profileJSON string) string {
	var b strings.Builder
	b.WriteString("You are a Bazi master with deep knowledge of Chinese metaphysics. Analyze this birth chart:\n\n")
	fmt.Fprintf(&b, "Birth Data: %s\n", mustJSON(in.Birth))
	if in.Depth != "" {
		fmt.Fprintf(&b, "Depth of analysis: %s\n", in.Depth)
	}
	writeProfile(&b, profileJSON)
	b.WriteString(`
Provide comprehensive analysis:
1. Day Master strength and elemental balance
2. 10-year luck pillar analysis and current phase
3. Personality traits and natural talents
4. Career and relationship compatibility
5. Timing for major life decisions
6. Elemental remedies and feng shui recommendations

Be specific about timing, cycles, and practical applications. 5-6 paragraphs.`)
	return b.String()
}

func (in AstrologyInput) prompt(profileJSON string) string {
	var b strings.Builder
	b.WriteString("You are a professional astrologer with expertise in psychological astrology. Analyze:\n\n")
	fmt.Fprintf(&b, "Birth Chart: %s\n", mustJSON(in.Chart))
	writeProfile(&b, profileJSON)
	b.WriteString(`
Provide soul-level insights:
1. Sun, Moon, Rising sign synthesis and life purpose
2. Planetary aspects and psychological patterns
3. Current transits and their influence
4. Karmic lessons and soul growth opportunities
5. Relationship patterns and compatibility insights
6. Career path and creative expression guidance

Focus on psychological depth and spiritual evolution. 5-6 paragraphs.`)
	return b.String()
}

func (in NumerologyInput) prompt(profileJSON string) string {
	var b strings.Builder
	b.WriteString("You are a master numerologist with deep understanding of sacred numbers. Calculate and interpret:\n\n")
	fmt.Fprintf(&b, "Numbers: %s\n", mustJSON(in.Numbers))
	writeProfile(&b, profileJSON)
	b.WriteString(`
Provide detailed analysis:
1. Life Path number and soul mission
2. Expression number and natural talents
3. Soul Urge and inner motivations
4. Personal Year cycle and current themes
5. Compatibility numbers for relationships
6. Lucky numbers and timing recommendations

Connect numbers to practical life guidance. 4-5 paragraphs.`)
	return b.String()
}

func (in PalmInput) prompt(profileJSON string) string {
	var b strings.Builder
	b.WriteString("You are an expert palmist with knowledge of both Western and Eastern palm reading traditions. Analyze:\n\n")
	fmt.Fprintf(&b, "Palm Features: %s\n", mustJSON(in.Features))
	writeProfile(&b, profileJSON)
	b.WriteString(`
Provide comprehensive reading:
1. Life line analysis - vitality, health, major life changes
2. Heart line - emotional nature, relationships, love patterns
3. Head line - mental approach, decision-making style
4. Fate line - career path and life direction
5. Minor lines and mounts - special talents and characteristics
6. Hand shape and finger analysis - personality traits

Be specific about timing and practical implications. 5-6 paragraphs.`)
	return b.String()
}

func (in FaceInput) prompt(profileJSON string) string {
	var b strings.Builder
	b.WriteString("You are a master of Chinese face reading (Mian Xiang) with deep knowledge of physiognomy. Analyze:\n\n")
	fmt.Fprintf(&b, "Facial Features: %s\n", mustJSON(in.Features))
	writeProfile(&b, profileJSON)
	b.WriteString(`
Provide detailed analysis:
1. Face shape and overall constitution
2. Eyes - intelligence, emotional nature, life force
3. Nose - wealth potential, career success, willpower
4. Mouth and lips - communication style, relationships
5. Forehead and eyebrows - early life, thinking patterns
6. Ears and chin - longevity, determination, late life fortune

Include timing analysis and practical life guidance. 5-6 paragraphs.`)
	return b.String()
}

func (in CombinedInput) prompt(profileJSON string) string {
	systems := make([]string, 0, len(in.Systems))
	for _, k := range in.Systems {
		systems = append(systems, string(k))
	}

	var b strings.Builder
	b.WriteString("You are a master metaphysician versed in both Eastern and Western divination systems. Provide a unified reading combining:\n\n")
	fmt.Fprintf(&b, "Systems Used: %s\n", strings.Join(systems, ", "))
	fmt.Fprintf(&b, "Data: %s\n", mustJSON(in.Readings))
	fmt.Fprintf(&b, "Question: %s\n", in.Question)
	writeProfile(&b, profileJSON)
	b.WriteString(`
Create a comprehensive analysis that:
1. Synthesizes insights from all systems used
2. Identifies common themes and patterns
3. Resolves any apparent contradictions with wisdom
4. Provides timing guidance from multiple perspectives
5. Offers practical steps combining Eastern and Western approaches
6. Suggests spiritual practices that honor both traditions

Create a unified, coherent reading that respects each tradition while providing clear guidance. 6-8 paragraphs.`)
	return b.String()
}

func writeProfile(b *strings.Builder, profileJSON string) {
	if profileJSON == "" {
		return
	}
	fmt.Fprintf(b, "User Profile: %s\n", profileJSON)
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
