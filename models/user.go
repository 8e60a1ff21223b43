package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole enum
type UserRole int

const (
	RoleCitizen UserRole = iota
	RoleAuthority
	RoleAdmin
)

// Label returns the display name for a role.
func (r UserRole) Label() string {
	switch r {
	case RoleAuthority:
		return "Authority"
	case RoleAdmin:
		return "Admin"
	default:
		return "Citizen"
	}
}

// User represents a registered citizen, authority member, or admin
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	District  string    `json:"district,omitempty"`
	IsGoogle  bool      `json:"is_google"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateUserRequest is a partial profile update
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	District *string `json:"district,omitempty" validate:"omitempty,max=100"`
}

// SignupRequest is the payload for account registration
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	District string `json:"district,omitempty" validate:"omitempty,max=100"`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleAuthRequest carries the identity-provider credential
type GoogleAuthRequest struct {
	Credential string `json:"credential" validate:"required"`
}

// AuthResponse is returned by signup, login, and Google sign-in
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}
