package users

import "github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"

// GuestUsername marks the distinguished transient account that is never
// persisted.
const GuestUsername = "Guest"

// User is one stored account. Projects are ordered most-recent-first.
type User struct {
	Username     string           `json:"username"`
	PasswordHash string           `json:"password_hash,omitempty"`
	Email        string           `json:"email,omitempty"`
	Projects     []domain.Project `json:"projects"`
}

// IsGuest reports whether this is the transient guest account.
func (u *User) IsGuest() bool {
	return u.Username == GuestUsername
}
