package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/profiledesk/profile-directory/internal/api/metrics"
	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

// ProfileService implements the directory use-cases on top of a ProfileRepository.
type ProfileService struct {
	repo ports.ProfileRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewProfileService(repo ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log, now: storeNow}
}

// storeNow returns the current instant at the precision the document store keeps.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// nextUpdatedAt keeps updatedAt strictly increasing when two writes land in
// the same millisecond.
func nextUpdatedAt(now, prev time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Millisecond)
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]*domain.Profile, error) {
	return s.repo.List(ctx, ports.ProfileFilter{})
}

func (s *ProfileService) RecentProfiles(ctx context.Context, limit int) ([]*domain.Profile, error) {
	if limit < 0 {
		limit = 0
	}
	return s.repo.List(ctx, ports.ProfileFilter{Limit: limit})
}

// SearchProfiles matches query as a literal, case-insensitive substring of
// name, email or role. A blank query lists everything.
func (s *ProfileService) SearchProfiles(ctx context.Context, query string) ([]*domain.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListProfiles(ctx)
	}
	return s.repo.List(ctx, ports.ProfileFilter{Query: query})
}

func (s *ProfileService) FindProfilesByName(ctx context.Context, name string) ([]*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Errorf(domain.ErrValidation, "Name is required")
	}
	return s.repo.List(ctx, ports.ProfileFilter{NameContains: name})
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProfileService) CreateProfile(ctx context.Context, in ports.CreateProfileInput) (*domain.Profile, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, domain.Errorf(domain.ErrValidation, "Name and email are required")
	}

	now := s.now()
	p := &domain.Profile{
		Name:      name,
		Email:     email,
		Role:      strings.TrimSpace(in.Role),
		Bio:       strings.TrimSpace(in.Bio),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	metrics.ProfileMutations.WithLabelValues("create").Inc()
	s.log.Info().Str("profile_id", created.ID).Msg("profile created")
	return created, nil
}

// UpdateProfile applies only the supplied fields and always refreshes updatedAt.
func (s *ProfileService) UpdateProfile(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.Profile, error) {
	if in.Empty() {
		return nil, domain.Errorf(domain.ErrValidation, "No update fields provided")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.Errorf(domain.ErrValidation, "Name cannot be empty")
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		return nil, domain.Errorf(domain.ErrValidation, "Email cannot be empty")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := ports.ProfileChanges{
		Name:      trimmed(in.Name),
		Email:     trimmed(in.Email),
		Role:      trimmed(in.Role),
		Bio:       trimmed(in.Bio),
		UpdatedAt: nextUpdatedAt(s.now(), current.UpdatedAt),
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	metrics.ProfileMutations.WithLabelValues("update").Inc()
	s.log.Info().Str("profile_id", updated.ID).Msg("profile updated")
	return updated, nil
}

func (s *ProfileService) DeleteProfile(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ProfileMutations.WithLabelValues("delete").Inc()
	s.log.Info().Str("profile_id", id).Msg("profile deleted")
	return nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
