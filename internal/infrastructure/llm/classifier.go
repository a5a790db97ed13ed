// Package llm implements the intent classifier on top of an eino chat chain.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// Classifier sends one chat message plus Instructions to the model and
// returns the raw reply text.
type Classifier struct {
	chain        compose.Runnable[map[string]any, *schema.Message]
	instructions string
	log          zerolog.Logger
}

// NewClassifier compiles the prompt-then-model chain. The system message is
// passed as a template variable so braces in the instructions are not read
// as placeholders.
func NewClassifier(ctx context.Context, chatModel model.BaseChatModel, log zerolog.Logger) (*Classifier, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	tpl := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{instructions}"),
		schema.UserMessage("{message}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(tpl)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile classifier chain: %w", err)
	}

	return &Classifier{chain: runnable, instructions: Instructions, log: log}, nil
}

func (c *Classifier) Classify(ctx context.Context, message string) (string, error) {
	out, err := c.chain.Invoke(ctx, map[string]any{
		"instructions": c.instructions,
		"message":      message,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if out == nil {
		return "", fmt.Errorf("%w: empty model reply", domain.ErrUpstream)
	}

	content := strings.TrimSpace(out.Content)
	c.log.Debug().Int("reply_len", len(content)).Msg("classifier replied")
	return content, nil
}
