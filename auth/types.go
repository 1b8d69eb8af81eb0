package auth

import (
	"context"
	"fmt"
	"time"
)

// Logger is the minimal logging surface the auth package needs. Arguments
// are alternating key/value pairs, compatible with log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetTokenTTL() time.Duration
}

// IdentityProvider is the external identity provider boundary. It owns
// password credentials; this package never stores or compares passwords
// for provider-backed accounts.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	VerifyPassword(ctx context.Context, email, password string) error
	DeleteAccount(ctx context.Context, providerID string) error
}

// ProfileStore is the document-store boundary the core depends on. The
// core issues only these two point lookups; it never constructs queries.
type ProfileStore interface {
	// FindProfileByEmail returns (nil, nil) when no profile exists.
	FindProfileByEmail(ctx context.Context, email string) (*Profile, error)
	InsertProfile(ctx context.Context, profile *Profile) (string, error)
}

// Profile is the stored account record: identity fields plus the status
// and role flags that end up in issued claims.
type Profile struct {
	ID        string `json:"id,omitempty"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
	Admin     bool   `json:"admin"`
}

// DefaultLogger returns the fallback stdout logger used when a component
// is constructed without one.
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Debug(msg string, args ...any) { d.print("DBG", msg, args) }
func (d defLogger) Info(msg string, args ...any)  { d.print("INF", msg, args) }
func (d defLogger) Warn(msg string, args ...any)  { d.print("WRN", msg, args) }
func (d defLogger) Error(msg string, args ...any) { d.print("ERR", msg, args) }

func (d defLogger) print(level, msg string, args []any) {
	if len(args) == 0 {
		fmt.Printf("[%s] AUTH %s\n", level, msg)
		return
	}
	fmt.Printf("[%s] AUTH %s %v\n", level, msg, args)
}
