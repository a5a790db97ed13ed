package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
)

// Profile is a directory record. PasswordHash is empty for accounts that
// cannot authenticate.
type Profile struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the profile carries the privilege-bearing role.
// The comparison is case-insensitive ("Admin" and "ADMIN" both qualify).
func (p *Profile) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(p.Role), RoleAdmin)
}

// HasPassword reports whether the account can authenticate at all.
func (p *Profile) HasPassword() bool {
	return p.PasswordHash != ""
}

// Public returns the view of the profile that is safe to hand back after login.
func (p *Profile) Public() PublicUser {
	return PublicUser{Name: p.Name, Email: p.Email, Role: p.Role}
}

// PublicUser is the login response view. It never carries the password hash.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
