package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// ArkConfig selects and tunes the Volcengine Ark model behind the classifier.
type ArkConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Region      string
	Temperature float64
	MaxTokens   int
}

// Enabled reports whether enough is configured to call the model.
func (c ArkConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewChatModel builds the Ark chat model.
func NewChatModel(ctx context.Context, c ArkConfig) (model.BaseChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark api key and model are required")
	}

	temperature := float32(c.Temperature)
	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		Model:       c.Model,
		Temperature: &temperature,
	}
	if c.MaxTokens > 0 {
		maxTokens := c.MaxTokens
		cfg.MaxTokens = &maxTokens
	}

	cm, err := ark.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create ark chat model: %w", err)
	}
	return cm, nil
}
