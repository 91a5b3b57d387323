package models

import "time"

// Role is a user authorization level.
type Role string

const (
	RoleViewer Role = "VIEWER"
	RoleEditor Role = "EDITOR"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

// DefaultURLCreationLimit is the daily URL creation allowance for new users.
const DefaultURLCreationLimit = 10

// User is the account document. Password never serializes.
type User struct {
	ID               string    `json:"id,omitempty"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	FirstName        string    `json:"firstName,omitempty"`
	LastName         string    `json:"lastName,omitempty"`
	Roles            []Role    `json:"roles"`
	URLCreationLimit int       `json:"urlCreationLimit"`
	URLCreatedCount  int       `json:"urlCreatedCount"`
	APIKey           string    `json:"apiKey,omitempty"`
	PremiumAccount   bool      `json:"premiumAccount"`
	AccountLocked    bool      `json:"accountLocked"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
	LastLoginAt      time.Time `json:"lastLoginAt,omitzero"`
}

// NewUser builds a user with the documented defaults: viewer role, the
// default creation limit, and a creation timestamp of now.
func NewUser(username, email, password string) *User {
	return &User{
		Username:         username,
		Email:            email,
		Password:         password,
		Roles:            []Role{RoleViewer},
		URLCreationLimit: DefaultURLCreationLimit,
		CreatedAt:        time.Now(),
	}
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
