package reading

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/qs3c/soultria_server/internal/profile"
)

// DefaultTimeout 外部生成调用的默认超时
const DefaultTimeout = 30 * time.Second

var errEmptyReading = errors.New("empty reading")

// TextGenerator 外部文本生成服务
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Result 占卜结果，Success 恒为 true
type Result struct {
	Success bool   `json:"success"`
	Reading string `json:"reading"`
	Kind    Kind   `json:"type"`
}

type Generator struct {
	text    TextGenerator
	timeout time.Duration
}

// NewGenerator text 为 nil 时所有请求都使用兜底文本
func NewGenerator(text TextGenerator, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{text: text, timeout: timeout}
}

// Generate 生成解读
//
// 外部调用超时、出错、返回空文本或未配置时，返回该类型的兜底文本，失败只记录日志。
func (g *Generator) Generate(ctx context.Context, req Request, p *profile.Result) Result {
	reading, err := g.complete(ctx, req.prompt(profileJSON(p)))
	if err != nil {
		log.Printf("reading: generate %s reading failed: %v", req.Kind(), err)
		reading = req.fallback()
	}
	return Result{Success: true, Reading: reading, Kind: req.Kind()}
}

func (g *Generator) complete(ctx context.Context, prompt string) (text string, err error) {
	if g.text == nil {
		return "", errors.New("text generator not configured")
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.New("text generator panicked")
			log.Printf("reading: recovered from panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err = g.text.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyReading
	}
	return text, nil
}

func profileJSON(p *profile.Result) string {
	if p == nil {
		return ""
	}
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(data)
}
