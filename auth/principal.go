package auth

import "time"

// Role is a capability tier name
type Role = string

const (
	// RoleUser is the baseline tier every active account holds
	RoleUser Role = "user"
	// RoleAdmin is the elevated tier
	RoleAdmin Role = "admin"
)

// Principal is the verified, request-scoped identity. It is only ever
// constructed from successfully verified claims, never from request
// input, and is discarded when request handling ends.
type Principal struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Active    bool      `json:"active"`
	Admin     bool      `json:"admin"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin reports whether the principal holds the elevated tier.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Admin
}

func newPrincipal(claims *Claims) *Principal {
	return &Principal{
		ID:        claims.UserID(),
		Email:     claims.Email,
		Firstname: claims.Firstname,
		Lastname:  claims.Lastname,
		Active:    claims.Active,
		Admin:     claims.Admin,
		Role:      claims.Role(),
		IssuedAt:  claims.IssuedTime(),
		ExpiresAt: claims.Expires(),
	}
}
