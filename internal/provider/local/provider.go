// Package local implements auth.IdentityProvider with bcrypt hashes kept
// in the service's own database. It exists for development and tests so
// the server runs without a Firebase project.
package local

import (
	"context"
	"fmt"

	"github.com/altuslab/challenges-api/auth"
)

// CredentialStore persists password hashes keyed by email. The store is
// separate from the profile collection so the registration flow keeps the
// same create-credential-then-insert-profile ordering as the hosted
// provider, compensation included.
type CredentialStore interface {
	InsertCredential(ctx context.Context, email, hash string) (string, error)
	// FindCredentialByEmail returns the credential ID and hash.
	FindCredentialByEmail(ctx context.Context, email string) (string, string, error)
	DeleteCredential(ctx context.Context, id string) error
}

// IdentityProvider verifies passwords against locally stored bcrypt hashes.
type IdentityProvider struct {
	credentials CredentialStore
	logger      auth.Logger
}

// NewIdentityProvider creates a local identity provider.
func NewIdentityProvider(credentials CredentialStore, logger auth.Logger) (*IdentityProvider, error) {
	if credentials == nil {
		return nil, fmt.Errorf("local: credential store is required")
	}
	if logger == nil {
		logger = auth.DefaultLogger()
	}
	return &IdentityProvider{credentials: credentials, logger: logger}, nil
}

// CreateAccount hashes the password and stores the credential, returning
// the credential ID as the provider account ID.
func (p *IdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("local: hash password: %w", err)
	}

	id, err := p.credentials.InsertCredential(ctx, email, hash)
	if err != nil {
		return "", fmt.Errorf("local: store credential: %w", err)
	}
	return id, nil
}

// VerifyPassword compares the cleartext against the stored hash.
func (p *IdentityProvider) VerifyPassword(ctx context.Context, email, password string) error {
	_, hash, err := p.credentials.FindCredentialByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("local: lookup credential: %w", err)
	}
	if err := auth.ComparePasswordAndHash(password, hash); err != nil {
		return fmt.Errorf("local: verify password: %w", err)
	}
	return nil
}

// DeleteAccount removes the stored credential.
func (p *IdentityProvider) DeleteAccount(ctx context.Context, providerID string) error {
	if err := p.credentials.DeleteCredential(ctx, providerID); err != nil {
		return fmt.Errorf("local: delete credential: %w", err)
	}
	return nil
}
