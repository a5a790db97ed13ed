package handler

import "github.com/profiledesk/profile-directory/internal/core/domain"

// --- Requests ---

// Presence of name and email is checked by the service so REST and chat
// share one message; the tags here only bound sizes.
type createProfileRequest struct {
	Name  string `json:"name" validate:"max=200"`
	Email string `json:"email" validate:"max=320"`
	Role  string `json:"role" validate:"max=100"`
	Bio   string `json:"bio" validate:"max=2000"`
}

// updateProfileRequest uses pointers so absent fields stay untouched.
type updateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Email *string `json:"email" validate:"omitempty,max=320"`
	Role  *string `json:"role" validate:"omitempty,max=100"`
	Bio   *string `json:"bio" validate:"omitempty,max=2000"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// --- Responses ---

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type profileListResponse struct {
	Success  bool              `json:"success"`
	Profiles []*domain.Profile `json:"profiles"`
	Count    int               `json:"count"`
}

type profileResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Profile *domain.Profile `json:"profile"`
}

type loginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

type chatResponse struct {
	Success  bool           `json:"success"`
	Intent   domain.Intent  `json:"intent"`
	Response string         `json:"response"`
	Action   *domain.Action `json:"action"`
}

// ErrorResponse is the error envelope rendered by the central error handler.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
