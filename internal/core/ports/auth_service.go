package ports

import (
	"context"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, domain.PublicUser, error)
	// Authenticate resolves a token to its session. Unknown or empty tokens
	// yield domain.ErrForbidden.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	SetPassword(ctx context.Context, email, password string) error
}
