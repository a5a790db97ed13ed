package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

const sessionPrefix = "session:"

// SessionStore keeps the session table in Redis so several server processes
// can share it. Keys never expire; a session ends on logout or when the key
// is removed out of band.
type SessionStore struct {
	client *redis.Client
	prefix string
}

// NewSessionStore wraps an existing client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, prefix: sessionPrefix}
}

func (s *SessionStore) key(token string) string {
	return s.prefix + token
}

func (s *SessionStore) Put(ctx context.Context, token string, sess domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), data, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
