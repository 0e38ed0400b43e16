/*
Package session contains the simplified user record exposed to every screen.

The identity provider's session object is reduced to this one struct at sign-in;
it is the only cross-screen state in the system and is read-only to consumers.
*/
package session

import "sangini/internal/pkg/auth/jwt"

// User is the simplified session record derived from an authenticated identity.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Verified bool   `json:"verified"`
}

// FromPayload builds the session user record from a verified token payload.
// A nil payload means the request is anonymous and yields a nil user.
func FromPayload(p *jwt.Payload) *User {
	if p == nil {
		return nil
	}

	return &User{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Avatar:   p.Avatar,
		Verified: p.Verified,
	}
}
