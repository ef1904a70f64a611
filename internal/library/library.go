package library

import (
	"sort"
	"strings"
)

// Item 智慧库条目
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"` // Meditation, Learning, Practice
	Duration    string   `json:"duration"`
	Match       int      `json:"match"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Premium     bool     `json:"premium"`
}

// Collection 条目合集
type Collection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Items       int    `json:"items"`
	Premium     bool   `json:"premium"`
}

// MeditationType 冥想课程
type MeditationType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Durations   []int    `json:"durations"` // 分钟
	Waves       string   `json:"waves"`
	Benefits    []string `json:"benefits"`
	Recommended bool     `json:"recommended"`
	Premium     bool     `json:"premium"`
}

// Categories 智慧库分类，All 表示不过滤
var Categories = []string{"All", "Meditation", "Learning", "Practice"}

func Items() []Item {
	return []Item{
		{"aura-cleansing", "3-min Aura Cleansing", "Meditation", "3 min", 87, "Clear negative energy and restore your natural radiance", []string{"Energy", "Cleansing", "Quick"}, true, false},
		{"chakra-alignment", "Understanding Chakra Alignment", "Learning", "8 min", 92, "Deep dive into balancing your energy centers", []string{"Chakras", "Balance", "Foundation"}, false, false},
		{"moon-rituals", "Moon Cycle Rituals", "Practice", "12 min", 78, "Harness lunar energy for manifestation and release", []string{"Moon", "Rituals", "Cycles"}, false, true},
		{"sacred-geometry", "Sacred Geometry Meditation", "Meditation", "15 min", 83, "Connect with universal patterns and divine order", []string{"Geometry", "Patterns", "Advanced"}, false, true},
		{"crystal-healing", "Crystal Healing Basics", "Learning", "10 min", 76, "Learn how to use crystals for energy healing", []string{"Crystals", "Healing", "Beginner"}, true, false},
		{"mindfulness-101", "Mindfulness 101", "Practice", "5 min", 95, "Simple techniques for present moment awareness", []string{"Mindfulness", "Beginner", "Daily"}, true, false},
		{"astral-projection", "Astral Projection Guide", "Learning", "20 min", 68, "Techniques for out-of-body experiences", []string{"Astral", "Advanced", "Exploration"}, false, true},
		{"sound-healing", "Sound Bath Experience", "Meditation", "25 min", 89, "Immersive sound healing for deep relaxation", []string{"Sound", "Healing", "Immersive"}, true, true},
		{"advanced-breathwork", "Advanced Breathwork Techniques", "Practice", "18 min", 91, "Master advanced breathing patterns for transformation", []string{"Breathwork", "Advanced", "Transformation"}, false, true},
		{"energy-protection", "Psychic Protection Methods", "Learning", "12 min", 85, "Shield yourself from negative energies", []string{"Protection", "Energy", "Defense"}, false, true},
	}
}

func Collections() []Collection {
	return []Collection{
		{"beginner-journey", "Beginner's Spiritual Journey", "Essential practices for those starting their spiritual path", 5, false},
		{"energy-healing", "Energy Healing Techniques", "Methods to balance and restore your energy field", 7, true},
		{"meditation-mastery", "Meditation Mastery", "Advanced practices for experienced meditators", 9, true},
		{"intuition-development", "Intuition Development", "Strengthen your connection to inner wisdom", 6, false},
	}
}

func MeditationTypes() []MeditationType {
	return []MeditationType{
		{"third-eye-calm", "Third Eye Calm", "Activate your intuition and inner vision", []int{7, 20, 30}, "Delta", []string{"Intuition", "Clarity", "Inner peace"}, true, false},
		{"heart-center", "Heart Center Healing", "Open your heart to compassion and love", []int{7, 20, 30}, "Alpha", []string{"Emotional healing", "Compassion", "Self-love"}, false, false},
		{"root-grounding", "Root Grounding", "Connect to earth energy and feel secure", []int{7, 20, 30}, "Theta", []string{"Stability", "Security", "Presence"}, true, false},
		{"full-chakra-balance", "Full Chakra Balance", "Harmonize all energy centers", []int{20, 30, 45}, "Mixed", []string{"Energy balance", "Alignment", "Wholeness"}, false, true},
		{"astral-projection", "Astral Projection Journey", "Explore beyond physical boundaries", []int{30, 45, 60}, "Theta", []string{"Spiritual travel", "Consciousness expansion", "Higher awareness"}, false, true},
	}
}

// FindItem 按 ID 查找条目，同时查找合集
func FindItem(id string) (Item, bool) {
	for _, it := range Items() {
		if it.ID == id {
			return it, true
		}
	}
	for _, c := range Collections() {
		if c.ID == id {
			return Item{ID: c.ID, Title: c.Title, Description: c.Description, Premium: c.Premium}, true
		}
	}
	return Item{}, false
}

func FindMeditationType(id string) (MeditationType, bool) {
	for _, m := range MeditationTypes() {
		if m.ID == id {
			return m, true
		}
	}
	return MeditationType{}, false
}

// Filter 按分类和关键字过滤，精选在前，其余按匹配度降序
func Filter(category, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Item
	for _, it := range Items() {
		if category != "" && category != "All" && it.Type != category {
			continue
		}
		if query != "" && !it.matches(query) {
			continue
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].Match > out[j].Match
	})
	return out
}

func (it Item) matches(query string) bool {
	if strings.Contains(strings.ToLower(it.Title), query) ||
		strings.Contains(strings.ToLower(it.Description), query) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
