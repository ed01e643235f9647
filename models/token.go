package models

import "time"

// TokenInfo is a diagnostic, unverified view of a bearer credential that
// happens to be a JWT. Nothing in the request path depends on it.
type TokenInfo struct {
	// Subject is the "sub" claim, or the backend's "user" claim when "sub"
	// is absent.
	Subject string `json:"subject,omitempty"`
	// Algorithm is the "alg" header value.
	Algorithm string `json:"alg,omitempty"`
	// IssuedAt is the "iat" claim; zero when absent.
	IssuedAt time.Time `json:"issued_at,omitzero"`
	// ExpiresAt is the "exp" claim; zero when absent.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
	// Expired reports whether ExpiresAt is set and in the past.
	Expired bool `json:"expired"`
}
