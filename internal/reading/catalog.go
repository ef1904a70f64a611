package reading

import (
	"math/rand"
	"sync"
	"time"
)

type TarotCard struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
	Element string `json:"element"`
}

type Hexagram struct {
	Number       int      `json:"number"`
	Name         string   `json:"name"`
	Chinese      string   `json:"chinese"`
	UpperTrigram string   `json:"upperTrigram"`
	LowerTrigram string   `json:"lowerTrigram"`
	Element      string   `json:"element"`
	Meaning      string   `json:"meaning"`
	Keywords     []string `json:"keywords"`
}

type ZodiacSign struct {
	Name    string `json:"name"`
	Element string `json:"element"`
	Quality string `json:"quality"`
	Ruler   string `json:"ruler"`
	Dates   string `json:"dates"`

	startMonth time.Month
	startDay   int
}

type NumerologyMeaning struct {
	Number  int      `json:"number"`
	Meaning string   `json:"meaning"`
	Traits  []string `json:"traits"`
}

type BaziElement struct {
	Name      string `json:"name"`
	Chinese   string `json:"chinese"`
	Nature    string `json:"nature"`
	Season    string `json:"season"`
	Direction string `json:"direction"`
}

// MajorArcana 22 张大阿卡纳
func MajorArcana() []TarotCard {
	return []TarotCard{
		{"The Fool", "New beginnings, innocence, spontaneity", "Air"},
		{"The Magician", "Manifestation, power, skill", "Air"},
		{"The High Priestess", "Intuition, unconscious, divine feminine", "Water"},
		{"The Empress", "Fertility, nurturing, abundance", "Earth"},
		{"The Emperor", "Authority, structure, control", "Fire"},
		{"The Hierophant", "Tradition, conformity, morality", "Earth"},
		{"The Lovers", "Love, harmony, relationships", "Air"},
		{"The Chariot", "Control, willpower, success", "Water"},
		{"Strength", "Strength, courage, patience", "Fire"},
		{"The Hermit", "Soul searching, seeking truth", "Earth"},
		{"Wheel of Fortune", "Good luck, karma, life cycles", "Fire"},
		{"Justice", "Justice, fairness, truth", "Air"},
		{"The Hanged Man", "Suspension, restriction, letting go", "Water"},
		{"Death", "Endings, beginnings, change", "Water"},
		{"Temperance", "Balance, moderation, patience", "Fire"},
		{"The Devil", "Bondage, addiction, sexuality", "Earth"},
		{"The Tower", "Sudden change, upheaval, chaos", "Fire"},
		{"The Star", "Hope, spirituality, renewal", "Air"},
		{"The Moon", "Illusion, fear, anxiety", "Water"},
		{"The Sun", "Joy, success, celebration", "Fire"},
		{"Judgement", "Judgement, rebirth, inner calling", "Fire"},
		{"The World", "Completion, accomplishment, travel", "Earth"},
	}
}

// FindCard 按名称查找大阿卡纳
func FindCard(name string) (TarotCard, bool) {
	for _, c := range MajorArcana() {
		if c.Name == name {
			return c, true
		}
	}
	return TarotCard{}, false
}

func Hexagrams() []Hexagram {
	return []Hexagram{
		{1, "The Creative", "乾", "Heaven", "Heaven", "Metal", "Pure creative energy, leadership, initiative",
			[]string{"Leadership", "Creativity", "Initiative", "Power"}},
		{2, "The Receptive", "坤", "Earth", "Earth", "Earth", "Receptivity, nurturing, following",
			[]string{"Receptivity", "Nurturing", "Support", "Yielding"}},
		{3, "Difficulty at the Beginning", "屯", "Water", "Thunder", "Water", "Initial difficulties, perseverance needed",
			[]string{"Challenges", "Perseverance", "New beginnings", "Growth"}},
		{8, "Holding Together", "比", "Water", "Earth", "Water", "Unity, cooperation, seeking guidance",
			[]string{"Unity", "Cooperation", "Guidance", "Support"}},
		{11, "Peace", "泰", "Earth", "Heaven", "Earth", "Harmony, prosperity, good fortune",
			[]string{"Harmony", "Prosperity", "Balance", "Success"}},
		{25, "Innocence", "无妄", "Heaven", "Thunder", "Metal", "Natural action, spontaneity, authenticity",
			[]string{"Authenticity", "Natural action", "Spontaneity", "Truth"}},
	}
}

// FindHexagram 按卦序查找
func FindHexagram(number int) (Hexagram, bool) {
	for _, h := range Hexagrams() {
		if h.Number == number {
			return h, true
		}
	}
	return Hexagram{}, false
}

func ZodiacSigns() []ZodiacSign {
	return []ZodiacSign{
		{"Aries", "Fire", "Cardinal", "Mars", "Mar 21 - Apr 19", time.March, 21},
		{"Taurus", "Earth", "Fixed", "Venus", "Apr 20 - May 20", time.April, 20},
		{"Gemini", "Air", "Mutable", "Mercury", "May 21 - Jun 20", time.May, 21},
		{"Cancer", "Water", "Cardinal", "Moon", "Jun 21 - Jul 22", time.June, 21},
		{"Leo", "Fire", "Fixed", "Sun", "Jul 23 - Aug 22", time.July, 23},
		{"Virgo", "Earth", "Mutable", "Mercury", "Aug 23 - Sep 22", time.August, 23},
		{"Libra", "Air", "Cardinal", "Venus", "Sep 23 - Oct 22", time.September, 23},
		{"Scorpio", "Water", "Fixed", "Pluto", "Oct 23 - Nov 21", time.October, 23},
		{"Sagittarius", "Fire", "Mutable", "Jupiter", "Nov 22 - Dec 21", time.November, 22},
		{"Capricorn", "Earth", "Cardinal", "Saturn", "Dec 22 - Jan 19", time.December, 22},
		{"Aquarius", "Air", "Fixed", "Uranus", "Jan 20 - Feb 18", time.January, 20},
		{"Pisces", "Water", "Mutable", "Neptune", "Feb 19 - Mar 20", time.February, 19},
	}
}

// SunSign 按出生月日确定太阳星座
func SunSign(birth time.Time) ZodiacSign {
	key := int(birth.Month())*100 + birth.Day()

	signs := ZodiacSigns()
	var (
		best      ZodiacSign
		bestStart = -1
		latest    ZodiacSign
		latestKey = -1
	)
	for _, s := range signs {
		start := int(s.startMonth)*100 + s.startDay
		if start <= key && start > bestStart {
			best, bestStart = s, start
		}
		if start > latestKey {
			latest, latestKey = s, start
		}
	}
	// 1 月 1 日至 1 月 19 日属于上一年 12 月开始的摩羯座
	if bestStart < 0 {
		return latest
	}
	return best
}

func NumerologyMeanings() []NumerologyMeaning {
	return []NumerologyMeaning{
		{1, "Leadership, Independence", []string{"Leader", "Pioneer", "Independent", "Original"}},
		{2, "Cooperation, Harmony", []string{"Diplomatic", "Cooperative", "Sensitive", "Peaceful"}},
		{3, "Creativity, Expression", []string{"Creative", "Expressive", "Optimistic", "Social"}},
		{4, "Stability, Hard Work", []string{"Practical", "Reliable", "Organized", "Patient"}},
		{5, "Freedom, Adventure", []string{"Adventurous", "Free-spirited", "Curious", "Dynamic"}},
		{6, "Nurturing, Responsibility", []string{"Caring", "Responsible", "Protective", "Healing"}},
		{7, "Spirituality, Analysis", []string{"Spiritual", "Analytical", "Intuitive", "Mysterious"}},
		{8, "Material Success, Power", []string{"Ambitious", "Practical", "Authoritative", "Successful"}},
		{9, "Universal Love, Completion", []string{"Humanitarian", "Generous", "Wise", "Compassionate"}},
	}
}

func BaziElements() []BaziElement {
	return []BaziElement{
		{"wood", "木", "Growth", "Spring", "East"},
		{"fire", "火", "Expansion", "Summer", "South"},
		{"earth", "土", "Stability", "Late Summer", "Center"},
		{"metal", "金", "Contraction", "Autumn", "West"},
		{"water", "水", "Flow", "Winter", "North"},
	}
}

// DefaultPalmFeatures 未提供特征描述时使用
func DefaultPalmFeatures() PalmFeatures {
	return PalmFeatures{
		LifeLine:  "Strong and clear",
		HeartLine: "Deep with gentle curves",
		HeadLine:  "Well-defined",
		FateLine:  "Present with branches",
		HandShape: "Earth hand",
	}
}

func DefaultFaceFeatures() FaceFeatures {
	return FaceFeatures{
		FaceShape: "Oval",
		Forehead:  "Broad and clear",
		Eyes:      "Bright and focused",
		Nose:      "Well-proportioned",
		Mouth:     "Balanced",
		Chin:      "Strong",
	}
}

// Oracle 抽牌、起卦等随机操作
type Oracle struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewOracle src 为 nil 时以当前时间为种子
func NewOracle(src rand.Source) *Oracle {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Oracle{rnd: rand.New(src)}
}

func (o *Oracle) intn(n int) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rnd.Intn(n)
}

// DrawCard 随机抽取一张大阿卡纳
func (o *Oracle) DrawCard() TarotCard {
	cards := MajorArcana()
	return cards[o.intn(len(cards))]
}

// CastHexagram 随机起一卦
func (o *Oracle) CastHexagram() Hexagram {
	hexagrams := Hexagrams()
	return hexagrams[o.intn(len(hexagrams))]
}

// RandomSign 随机星座，用于月亮与上升星座
func (o *Oracle) RandomSign() ZodiacSign {
	signs := ZodiacSigns()
	return signs[o.intn(len(signs))]
}

// ChartFor 根据出生信息排盘：太阳星座按日期计算，月亮与上升星座随机
func (o *Oracle) ChartFor(birth BirthData) BirthChart {
	chart := BirthChart{
		BirthData:  birth,
		MoonSign:   o.RandomSign(),
		RisingSign: o.RandomSign(),
	}
	if t, err := time.Parse("2006-01-02", birth.Date); err == nil {
		chart.SunSign = SunSign(t)
	} else {
		chart.SunSign = o.RandomSign()
	}
	return chart
}
