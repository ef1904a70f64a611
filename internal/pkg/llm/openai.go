package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrNoCredential = errors.New("llm: OPENAI_API_KEY not set")
	ErrNoChoices    = errors.New("llm: no choices returned")
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
}

// Client 基于 OpenAI Chat Completions 的文本生成客户端
type Client struct {
	client *openai.Client
	cfg    Config
}

func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4o
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 800
	}

	ocfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		ocfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(ocfg),
		cfg:    cfg,
	}
}

// Configured 是否配置了凭证
func (c *Client) Configured() bool {
	return c != nil && c.cfg.APIKey != ""
}

// Complete 单轮生成
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.Chat(ctx, "", prompt)
}

// Chat 带系统提示的单轮生成
func (c *Client) Chat(ctx context.Context, system, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNoCredential
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("llm: create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
