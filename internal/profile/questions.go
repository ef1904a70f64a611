package profile

// Element 元素
type Element string

const (
	Earth Element = "earth"
	Water Element = "water"
	Air   Element = "air"
	Fire  Element = "fire"
)

// Elements 声明顺序即平分时的优先顺序
var Elements = []Element{Earth, Water, Air, Fire}

// Animal 守护灵兽
type Animal string

const (
	Wolf      Animal = "wolf"
	Owl       Animal = "owl"
	Butterfly Animal = "butterfly"
	Turtle    Animal = "turtle"
	Dragon    Animal = "dragon"
	Eagle     Animal = "eagle"
)

var Animals = []Animal{Wolf, Owl, Butterfly, Turtle, Dragon, Eagle}

// Aura 气场颜色
type Aura string

const (
	Indigo Aura = "indigo"
	Violet Aura = "violet"
	Green  Aura = "green"
	Blue   Aura = "blue"
	Red    Aura = "red"
	Orange Aura = "orange"
	Yellow Aura = "yellow"
)

var Auras = []Aura{Indigo, Violet, Green, Blue, Red, Orange, Yellow}

// SpiritualOption 灵性问题的选项，按元素加分
type SpiritualOption struct {
	Value  string          `json:"value"`
	Label  string          `json:"label"`
	Points map[Element]int `json:"points"`
}

type SpiritualQuestion struct {
	ID       string            `json:"id"`
	Question string            `json:"question"`
	Options  []SpiritualOption `json:"options"`
}

// PersonalityOption 性格问题的选项，对应一个灵兽和一个气场颜色
type PersonalityOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Animal Animal `json:"animal"`
	Aura   Aura   `json:"aura"`
}

type PersonalityQuestion struct {
	ID       string              `json:"id"`
	Question string              `json:"question"`
	Options  []PersonalityOption `json:"options"`
}

// SpiritualQuestions 五道灵性问题
func SpiritualQuestions() []SpiritualQuestion {
	return []SpiritualQuestion{
		{
			ID:       "meditation_experience",
			Question: "How would you describe your meditation experience?",
			Options: []SpiritualOption{
				{Value: "beginner", Label: "Complete beginner", Points: map[Element]int{Earth: 2, Water: 1}},
				{Value: "occasional", Label: "I've tried it a few times", Points: map[Element]int{Air: 1, Water: 2}},
				{Value: "regular", Label: "I meditate regularly", Points: map[Element]int{Air: 2, Fire: 1}},
				{Value: "advanced", Label: "Advanced practitioner", Points: map[Element]int{Fire: 2, Air: 1}},
			},
		},
		{
			ID:       "stress_response",
			Question: "When faced with stress, you typically:",
			Options: []SpiritualOption{
				{Value: "withdraw", Label: "Withdraw and reflect internally", Points: map[Element]int{Water: 2, Earth: 1}},
				{Value: "analyze", Label: "Analyze and plan solutions", Points: map[Element]int{Air: 2, Earth: 1}},
				{Value: "take_action", Label: "Take immediate action", Points: map[Element]int{Fire: 2, Air: 1}},
				{Value: "seek_support", Label: "Seek support from others", Points: map[Element]int{Water: 1, Earth: 2}},
			},
		},
		{
			ID:       "spiritual_practices",
			Question: "Which spiritual practices resonate most with you?",
			Options: []SpiritualOption{
				{Value: "nature", Label: "Nature connection & grounding", Points: map[Element]int{Earth: 3}},
				{Value: "energy", Label: "Energy work & chakra healing", Points: map[Element]int{Fire: 2, Air: 1}},
				{Value: "intuition", Label: "Intuitive practices & divination", Points: map[Element]int{Water: 3}},
				{Value: "study", Label: "Study of spiritual texts & philosophy", Points: map[Element]int{Air: 3}},
			},
		},
		{
			ID:       "life_goals",
			Question: "Your primary spiritual goal is:",
			Options: []SpiritualOption{
				{Value: "peace", Label: "Finding inner peace and calm", Points: map[Element]int{Water: 2, Earth: 1}},
				{Value: "purpose", Label: "Discovering life purpose", Points: map[Element]int{Fire: 2, Air: 1}},
				{Value: "wisdom", Label: "Gaining spiritual wisdom", Points: map[Element]int{Air: 2, Water: 1}},
				{Value: "healing", Label: "Healing and transformation", Points: map[Element]int{Earth: 2, Water: 1}},
			},
		},
		{
			ID:       "energy_preference",
			Question: "You feel most energized when:",
			Options: []SpiritualOption{
				{Value: "alone", Label: "Spending time alone in nature", Points: map[Element]int{Earth: 2, Water: 1}},
				{Value: "learning", Label: "Learning something new", Points: map[Element]int{Air: 2, Fire: 1}},
				{Value: "creating", Label: "Creating or expressing yourself", Points: map[Element]int{Fire: 2, Air: 1}},
				{Value: "connecting", Label: "Connecting deeply with others", Points: map[Element]int{Water: 2, Earth: 1}},
			},
		},
	}
}

// PersonalityQuestions 三道性格问题
func PersonalityQuestions() []PersonalityQuestion {
	return []PersonalityQuestion{
		{
			ID:       "decision_making",
			Question: "When making important decisions, you rely on:",
			Options: []PersonalityOption{
				{Value: "intuition", Label: "Gut feeling and intuition", Animal: Wolf, Aura: Indigo},
				{Value: "analysis", Label: "Careful analysis and research", Animal: Owl, Aura: Violet},
				{Value: "heart", Label: "What feels right in your heart", Animal: Butterfly, Aura: Green},
				{Value: "experience", Label: "Past experience and wisdom", Animal: Turtle, Aura: Blue},
			},
		},
		{
			ID:       "challenges",
			Question: "When facing challenges, you:",
			Options: []PersonalityOption{
				{Value: "persist", Label: "Keep pushing through with determination", Animal: Dragon, Aura: Red},
				{Value: "adapt", Label: "Adapt and find creative solutions", Animal: Butterfly, Aura: Orange},
				{Value: "seek_perspective", Label: "Step back for broader perspective", Animal: Eagle, Aura: Yellow},
				{Value: "trust_process", Label: "Trust the process and flow", Animal: Turtle, Aura: Blue},
			},
		},
		{
			ID:       "communication",
			Question: "Your communication style is:",
			Options: []PersonalityOption{
				{Value: "direct", Label: "Direct and straightforward", Animal: Eagle, Aura: Red},
				{Value: "thoughtful", Label: "Thoughtful and measured", Animal: Owl, Aura: Violet},
				{Value: "empathetic", Label: "Empathetic and understanding", Animal: Wolf, Aura: Green},
				{Value: "inspiring", Label: "Inspiring and uplifting", Animal: Dragon, Aura: Yellow},
			},
		},
	}
}
