package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the structure of the JSON Web Token (JWT) claims for Health Sangini.
// It carries the simplified session user record that every screen reads: the
// identity provider's session object reduced to id, name, email, avatar, and
// a verified flag.
type Payload struct {
	// StandardClaims embeds the necessary JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), and Iss (Issuer). These are crucial for token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// ID is the account identifier assigned at registration.
	ID string `json:"id"`

	// SessionID references the session row recorded at sign-in, so sign-out
	// can invalidate the matching database entry.
	SessionID string `json:"session_id"`

	// Name is the account's display name.
	Name string `json:"name"`

	// Email is the account's sign-in address.
	Email string `json:"email"`

	// Avatar is the URL of the account's profile image, if any.
	Avatar string `json:"avatar,omitempty"`

	// Verified reports whether the identity behind this session has been confirmed.
	// Mirrors the provider's treatment of a completed sign-in as verified.
	Verified bool `json:"verified"`
}
