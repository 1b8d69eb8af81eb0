package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in every issued token. The JSON keys
// match the wire format clients already hold tokens for: id, firstname,
// lastname, email, active, admin plus the registered exp/iat/sub/jti.
type Claims struct {
	jwt.RegisteredClaims
	UID       string `json:"id,omitempty"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
	Active    bool   `json:"active"`
	Admin     bool   `json:"admin"`
}

var _ jwt.Claims = (*Claims)(nil)

// UserID returns the stable user identifier, falling back to the subject.
func (c *Claims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// Role maps the admin flag onto the capability tier name.
func (c *Claims) Role() string {
	if c.Admin {
		return RoleAdmin
	}
	return RoleUser
}

// Expires returns the expiration time
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedTime returns the issued at time
func (c *Claims) IssuedTime() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// complete reports whether every identity field verification depends on
// is present. A token missing any of them is rejected as malformed.
func (c *Claims) complete() bool {
	return c.UserID() != "" &&
		c.Email != "" &&
		c.Firstname != "" &&
		c.Lastname != "" &&
		c.RegisteredClaims.ExpiresAt != nil &&
		c.RegisteredClaims.IssuedAt != nil
}
