package domain

import "time"

// Session binds an opaque token to the profile that logged in. Role is
// copied at login time and is not re-checked against the live profile.
type Session struct {
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
