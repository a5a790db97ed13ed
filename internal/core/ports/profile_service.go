package ports

import (
	"context"

	"github.com/profiledesk/profile-directory/internal/core/domain"
)

// CreateProfileInput carries the fields for a new profile.
type CreateProfileInput struct {
	Name  string
	Email string
	Role  string
	Bio   string
}

// UpdateProfileInput is a partial update; nil means "not supplied".
type UpdateProfileInput struct {
	Name  *string
	Email *string
	Role  *string
	Bio   *string
}

// Empty reports whether no field was supplied.
func (in UpdateProfileInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Role == nil && in.Bio == nil
}

// ProfileService defines use-case operations over the profile directory.
type ProfileService interface {
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)
	RecentProfiles(ctx context.Context, limit int) ([]*domain.Profile, error)
	SearchProfiles(ctx context.Context, query string) ([]*domain.Profile, error)
	FindProfilesByName(ctx context.Context, name string) ([]*domain.Profile, error)
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)
	CreateProfile(ctx context.Context, in CreateProfileInput) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, id string) error
}
