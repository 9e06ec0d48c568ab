package session

import "time"

// User is the cached profile of the authenticated principal, as returned by
// the auth endpoints and GET /users/me.
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"firstName,omitempty"`
	LastName         string     `json:"lastName,omitempty"`
	EmailConfirmedAt *time.Time `json:"emailConfirmedAt,omitempty"`
}

// EmailConfirmed reports whether the user has confirmed their email address.
func (u *User) EmailConfirmed() bool {
	return u != nil && u.EmailConfirmedAt != nil
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
