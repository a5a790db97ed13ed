package ports

import (
	"context"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// IntentClassifier sends a chat message to the language model and returns
// its raw text. Transport and model failures wrap domain.ErrUpstream.
type IntentClassifier interface {
	Classify(ctx context.Context, message string) (string, error)
}

// ChatService turns one free-text message into at most one directory operation.
type ChatService interface {
	Handle(ctx context.Context, message string) (*domain.ChatReply, error)
}
