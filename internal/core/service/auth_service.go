package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/profiledesk/profile-directory/internal/api/metrics"
	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

// tokenBytes is the entropy of a session token (128 bits, 32 hex chars).
const tokenBytes = 16

// AuthService implements admin login, the session table and password changes.
type AuthService struct {
	repo     ports.ProfileRepository
	sessions ports.SessionStore
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(repo ports.ProfileRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, log: log, now: storeNow}
}

// Login checks, in order: the profile exists, it is an admin, and the
// password matches. Only then is a session minted.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.PublicUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return "", domain.PublicUser{}, domain.Errorf(domain.ErrValidation, "Email and password are required")
	}

	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
			return "", domain.PublicUser{}, domain.ErrInvalidCredentials
		}
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return "", domain.PublicUser{}, err
	}

	if !p.IsAdmin() {
		metrics.LoginAttempts.WithLabelValues("forbidden").Inc()
		s.log.Warn().Str("profile_id", p.ID).Msg("login rejected: not an admin")
		return "", domain.PublicUser{}, domain.Errorf(domain.ErrForbidden, "Access denied: not an admin")
	}

	if !p.HasPassword() {
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		s.log.Warn().Str("profile_id", p.ID).Msg("login rejected: no password set")
		return "", domain.PublicUser{}, domain.ErrInvalidCredentials
	}

	if !VerifyPassword(p.PasswordHash, password) {
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return "", domain.PublicUser{}, domain.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return "", domain.PublicUser{}, fmt.Errorf("generate token: %w", err)
	}

	sess := domain.Session{UserID: p.ID, Role: domain.RoleAdmin, CreatedAt: s.now()}
	if err := s.sessions.Put(ctx, token, sess); err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return "", domain.PublicUser{}, fmt.Errorf("store session: %w", err)
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.log.Info().Str("profile_id", p.ID).Msg("admin logged in")
	return token, p.Public(), nil
}

// Authenticate looks the token up in the session table. It does not consult
// the live profile.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.Errorf(domain.ErrForbidden, "Access denied: missing session token")
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.Errorf(domain.ErrForbidden, "Access denied: invalid session token")
		}
		return nil, err
	}
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ChangePassword replaces the stored hash after checking the current
// password. Other sessions of the same user stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.Errorf(domain.ErrValidation, "Current and new password are required")
	}
	if err := checkPasswordLength(newPassword); err != nil {
		return err
	}

	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !VerifyPassword(p.PasswordHash, currentPassword) {
		return domain.Errorf(domain.ErrInvalidCredentials, "Current password is incorrect")
	}

	if err := s.storeHash(ctx, p, newPassword); err != nil {
		return err
	}

	s.log.Info().Str("profile_id", p.ID).Msg("password changed")
	return nil
}

// SetPassword sets a password without checking the old one. It backs the
// admin bootstrap command and is not reachable over HTTP.
func (s *AuthService) SetPassword(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return domain.Errorf(domain.ErrValidation, "Email and password are required")
	}
	if err := checkPasswordLength(password); err != nil {
		return err
	}

	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	return s.storeHash(ctx, p, password)
}

func (s *AuthService) storeHash(ctx context.Context, p *domain.Profile, plain string) error {
	hash, err := HashPassword(plain)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.repo.Update(ctx, p.ID, ports.ProfileChanges{
		PasswordHash: &hash,
		UpdatedAt:    nextUpdatedAt(s.now(), p.UpdatedAt),
	})
	return err
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
