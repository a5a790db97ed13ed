package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiledesk/profile-directory/internal/api/middleware"
	"github.com/profiledesk/profile-directory/internal/core/domain"
)

func TestAuthHandler_Login(t *testing.T) {
	auth := &stubAuthService{
		token: "deadbeef",
		user:  domain.PublicUser{Name: "Ada", Email: "ada@x.io", Role: "admin"},
	}
	h := NewAuthHandler(auth)
	c, rec := newContext(http.MethodPost, "/api/login", `{"email":"ada@x.io","password":"pw"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"token":"deadbeef","user":{"name":"Ada","email":"ada@x.io","role":"admin"}}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_LoginRequiresFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newContext(http.MethodPost, "/api/login", `{"email":"ada@x.io"}`)

	err := h.Login(c)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "password is required", domain.Message(err))
}

func TestAuthHandler_LoginPropagatesCredentialsError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})
	c, _ := newContext(http.MethodPost, "/api/login", `{"email":"ada@x.io","password":"nope"}`)

	assert.ErrorIs(t, h.Login(c), domain.ErrInvalidCredentials)
}

func withSession(c interface{ Set(string, any) }, userID, token string) {
	c.Set(middleware.CtxSession, &domain.Session{UserID: userID, Role: domain.RoleAdmin, CreatedAt: time.Now()})
	c.Set(middleware.CtxToken, token)
	c.Set(middleware.CtxRole, domain.RoleAdmin)
}

func TestAuthHandler_Logout(t *testing.T) {
	auth := &stubAuthService{}
	h := NewAuthHandler(auth)
	c, rec := newContext(http.MethodPost, "/api/logout", "")
	withSession(c, "u1", "tok")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, "tok", auth.loggedOut)
	assert.JSONEq(t, `{"success":true,"message":"Logged out successfully"}`, rec.Body.String())
}

func TestAuthHandler_LogoutWithoutSession(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newContext(http.MethodPost, "/api/logout", "")

	err := h.Logout(c)
	require.Error(t, err)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	auth := &stubAuthService{}
	h := NewAuthHandler(auth)
	c, rec := newContext(http.MethodPost, "/api/change-password", `{"currentPassword":"old","newPassword":"a-longer-secret"}`)
	withSession(c, "u1", "tok")

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", auth.changedFor)
	assert.Equal(t, "a-longer-secret", auth.newPass)
}

func TestAuthHandler_ChangePasswordTooShort(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newContext(http.MethodPost, "/api/change-password", `{"currentPassword":"old","newPassword":"short"}`)
	withSession(c, "u1", "tok")

	err := h.ChangePassword(c)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "newPassword must be at least 8 characters", domain.Message(err))
}
