package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

type stubProfileService struct {
	profiles  []*domain.Profile
	err       error
	lastQuery string
	created   ports.CreateProfileInput
	updated   ports.UpdateProfileInput
	updatedID string
	deletedID string
}

func (s *stubProfileService) ListProfiles(context.Context) ([]*domain.Profile, error) {
	return s.profiles, s.err
}

func (s *stubProfileService) RecentProfiles(_ context.Context, limit int) ([]*domain.Profile, error) {
	if len(s.profiles) > limit {
		return s.profiles[:limit], s.err
	}
	return s.profiles, s.err
}

func (s *stubProfileService) SearchProfiles(_ context.Context, q string) ([]*domain.Profile, error) {
	s.lastQuery = q
	return s.profiles, s.err
}

func (s *stubProfileService) FindProfilesByName(_ context.Context, name string) ([]*domain.Profile, error) {
	s.lastQuery = name
	return s.profiles, s.err
}

func (s *stubProfileService) GetProfile(_ context.Context, id string) (*domain.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, p := range s.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProfileService) CreateProfile(_ context.Context, in ports.CreateProfileInput) (*domain.Profile, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Profile{ID: "new", Name: in.Name, Email: in.Email, Role: in.Role, Bio: in.Bio}, nil
}

func (s *stubProfileService) UpdateProfile(_ context.Context, id string, in ports.UpdateProfileInput) (*domain.Profile, error) {
	s.updatedID, s.updated = id, in
	if s.err != nil {
		return nil, s.err
	}
	p := &domain.Profile{ID: id}
	if in.Role != nil {
		p.Role = *in.Role
	}
	return p, nil
}

func (s *stubProfileService) DeleteProfile(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

type stubAuthService struct {
	token      string
	user       domain.PublicUser
	err        error
	loggedOut  string
	changedFor string
	newPass    string
}

func (s *stubAuthService) Login(context.Context, string, string) (string, domain.PublicUser, error) {
	return s.token, s.user, s.err
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrForbidden
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.loggedOut = token
	return s.err
}

func (s *stubAuthService) ChangePassword(_ context.Context, userID, _, newPassword string) error {
	s.changedFor, s.newPass = userID, newPassword
	return s.err
}

func (s *stubAuthService) SetPassword(context.Context, string, string) error { return s.err }

type stubChatService struct {
	reply *domain.ChatReply
	err   error
	got   string
}

func (s *stubChatService) Handle(_ context.Context, message string) (*domain.ChatReply, error) {
	s.got = message
	return s.reply, s.err
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
