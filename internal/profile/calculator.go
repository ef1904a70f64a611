package profile

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrUnknownAnswer = errors.New("unknown question or answer")

// Breakdown 计分明细
type Breakdown struct {
	ElementScores map[Element]int `json:"elementScores"`
	AnimalCounts  map[Animal]int  `json:"animalCounts"`
	AuraCounts    map[Aura]int    `json:"auraCounts"`
}

// Result 灵性画像
type Result struct {
	DominantElement Element   `json:"dominantElement"`
	SpiritAnimal    Animal    `json:"spiritAnimal"`
	AuraColor       Aura      `json:"auraColor"`
	Breakdown       Breakdown `json:"profileCalculation"`
}

// Labels 展示用的名称
type Labels struct {
	Element string `json:"element"`
	Animal  string `json:"animal"`
	Aura    string `json:"aura"`
}

// Calculate 根据问卷答案计算画像
//
// 未作答或无法识别的答案不计分。最高分平分时取声明顺序靠前的一项，
// 没有任何性格答案时灵兽和气场颜色分别为 wolf 与 indigo。
func Calculate(spiritual, personality map[string]string) Result {
	elementScores := make(map[Element]int, len(Elements))
	for _, e := range Elements {
		elementScores[e] = 0
	}
	for _, q := range SpiritualQuestions() {
		answer, ok := spiritual[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.Value != answer {
				continue
			}
			for e, pts := range opt.Points {
				elementScores[e] += pts
			}
			break
		}
	}

	animalCounts := make(map[Animal]int)
	auraCounts := make(map[Aura]int)
	for _, q := range PersonalityQuestions() {
		answer, ok := personality[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.Value != answer {
				continue
			}
			animalCounts[opt.Animal]++
			auraCounts[opt.Aura]++
			break
		}
	}

	return Result{
		DominantElement: pickMax(Elements, elementScores),
		SpiritAnimal:    pickMax(Animals, animalCounts),
		AuraColor:       pickMax(Auras, auraCounts),
		Breakdown: Breakdown{
			ElementScores: elementScores,
			AnimalCounts:  animalCounts,
			AuraCounts:    auraCounts,
		},
	}
}

// pickMax 只有严格更高的分数才会替换当前最优，因此平分时靠前者胜出
func pickMax[T comparable](order []T, scores map[T]int) T {
	best := order[0]
	for _, k := range order[1:] {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return best
}

// Validate 检查答案是否都属于问卷中的题目和选项
func Validate(spiritual, personality map[string]string) error {
	spiritualOpts := make(map[string]map[string]bool)
	for _, q := range SpiritualQuestions() {
		spiritualOpts[q.ID] = make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			spiritualOpts[q.ID][opt.Value] = true
		}
	}
	for id, answer := range spiritual {
		if !spiritualOpts[id][answer] {
			return fmt.Errorf("%w: %s=%s", ErrUnknownAnswer, id, answer)
		}
	}

	personalityOpts := make(map[string]map[string]bool)
	for _, q := range PersonalityQuestions() {
		personalityOpts[q.ID] = make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			personalityOpts[q.ID][opt.Value] = true
		}
	}
	for id, answer := range personality {
		if !personalityOpts[id][answer] {
			return fmt.Errorf("%w: %s=%s", ErrUnknownAnswer, id, answer)
		}
	}
	return nil
}

// Labels 首字母大写的展示名称
func (r Result) Labels() Labels {
	title := cases.Title(language.English)
	return Labels{
		Element: title.String(string(r.DominantElement)),
		Animal:  title.String(string(r.SpiritAnimal)),
		Aura:    title.String(string(r.AuraColor)),
	}
}
