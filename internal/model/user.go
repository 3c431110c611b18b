package model

import "time"

// User represents an authenticated user in the system. Users are persisted
// through JSON, so the hash must serialize; it is stripped at the response
// layer via PublicUser.
type User struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	PasswordHash          string     `json:"passwordHash,omitempty"`
	Role                  string     `json:"role"`
	PasswordSet           bool       `json:"passwordSet"`
	RequirePasswordChange bool       `json:"requirePasswordChange"`
	CreatedAt             time.Time  `json:"createdAt"`
	LastLogin             *time.Time `json:"lastLogin"`
}

// PublicUser is the user shape returned from management endpoints.
type PublicUser struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}

// Public strips credential fields.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
