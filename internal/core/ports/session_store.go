package ports

import (
	"context"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// SessionStore maps opaque tokens to sessions. Get returns
// domain.ErrSessionNotFound on a miss.
type SessionStore interface {
	Put(ctx context.Context, token string, s domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
