package ports

import (
	"context"
	"time"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// ProfileFilter carries the query parameters for listing profiles.
// Results are always ordered newest createdAt first.
type ProfileFilter struct {
	Query        string // optional: case-insensitive literal substring over name, email or role
	NameContains string // optional: case-insensitive literal substring over name only
	Limit        int    // 0 = unbounded
}

// ProfileChanges is a partial update. Nil fields are left untouched.
type ProfileChanges struct {
	Name         *string
	Email        *string
	Role         *string
	Bio          *string
	PasswordHash *string
	UpdatedAt    time.Time
}

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	List(ctx context.Context, filter ProfileFilter) ([]*domain.Profile, error)
	// FindByID returns domain.ErrInvalidID for malformed ids and
	// domain.ErrNotFound when nothing matches.
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	// FindByEmail matches the email case-insensitively and exactly.
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	// Update applies changes atomically and returns the stored record after
	// the update.
	Update(ctx context.Context, id string, changes ProfileChanges) (*domain.Profile, error)
	Delete(ctx context.Context, id string) error
}
