package session

import "family-organizer/internal/domain/access"

// User is the signed-in projection of a family member.
type User struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role access.Role `json:"role"`
}

func (u User) Principal() access.Principal {
	return access.Principal{Role: u.Role, Name: u.Name}
}

// Candidate is one entry of the login picker. PasswordHint is only filled in
// insecure demo mode.
type Candidate struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Role         access.Role `json:"role"`
	Avatar       string      `json:"avatar,omitempty"`
	PasswordHint string      `json:"passwordHint,omitempty"`
}
