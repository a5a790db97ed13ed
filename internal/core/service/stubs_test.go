package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProfileRepo struct {
	mu        sync.Mutex
	order     []string
	byID      map[string]*domain.Profile
	seq       int
	listErr   error // if set, List returns this error
	createErr error // if set, Create returns this error
	lastList  ports.ProfileFilter
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byID: make(map[string]*domain.Profile)}
}

func validStubID(id string) bool {
	if len(id) != 24 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

// List applies the same filters and ordering the real Mongo repo would use.
func (r *stubProfileRepo) List(_ context.Context, f ports.ProfileFilter) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = f
	if r.listErr != nil {
		return nil, r.listErr
	}

	matched := []*domain.Profile{}
	for _, id := range r.order {
		p := r.byID[id]
		if f.Query != "" && !containsFold(p.Name, f.Query) && !containsFold(p.Email, f.Query) && !containsFold(p.Role, f.Query) {
			continue
		}
		if f.NameContains != "" && !containsFold(p.Name, f.NameContains) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validStubID(id) {
		return nil, domain.ErrInvalidID
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) FindByEmail(_ context.Context, email string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if strings.EqualFold(r.byID[id].Email, email) {
			clone := *r.byID[id]
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("%024x", r.seq)
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubProfileRepo) Update(_ context.Context, id string, c ports.ProfileChanges) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validStubID(id) {
		return nil, domain.ErrInvalidID
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Email != nil {
		p.Email = *c.Email
	}
	if c.Role != nil {
		p.Role = *c.Role
	}
	if c.Bio != nil {
		p.Bio = *c.Bio
	}
	if c.PasswordHash != nil {
		p.PasswordHash = *c.PasswordHash
	}
	p.UpdatedAt = c.UpdatedAt
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !validStubID(id) {
		return domain.ErrInvalidID
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// seed stores p directly, bypassing validation.
func (r *stubProfileRepo) seed(p domain.Profile) *domain.Profile {
	stored, _ := r.Create(context.Background(), &p)
	return stored
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ---------------------------------------------------------------------------
// In-memory stub session store
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Put(_ context.Context, token string, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = sess
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// ---------------------------------------------------------------------------
// Stub classifier
// ---------------------------------------------------------------------------

type stubClassifier struct {
	raw      string
	err      error
	received []string
}

func (c *stubClassifier) Classify(_ context.Context, message string) (string, error) {
	c.received = append(c.received, message)
	return c.raw, c.err
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := cur
		cur = cur.Add(time.Second)
		return t
	}
}

func strPtr(s string) *string { return &s }
