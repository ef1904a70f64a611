package reading

import (
	"strings"
	"time"
)

// Numbers 数字命理结果
type Numbers struct {
	LifePath     int `json:"lifePath"`
	Expression   int `json:"expression"`
	PersonalYear int `json:"personalYear"`
}

// Numerology 生命灵数取出生日期各位数字之和，表达数取姓名字母序号之和，均化简为一位数
func Numerology(birthDate, fullName string, now time.Time) Numbers {
	lifePath := 0
	for _, r := range birthDate {
		if r >= '0' && r <= '9' {
			lifePath += int(r - '0')
		}
	}

	expression := 0
	for _, r := range strings.ToUpper(fullName) {
		if r >= 'A' && r <= 'Z' {
			expression += int(r-'A') + 1
		}
	}

	personalYear := now.Year() % 9
	if personalYear == 0 {
		personalYear = 9
	}

	return Numbers{
		LifePath:     reduceDigits(lifePath),
		Expression:   reduceDigits(expression),
		PersonalYear: personalYear,
	}
}

func reduceDigits(n int) int {
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}
