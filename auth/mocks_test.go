package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/altuslab/challenges-api/auth"
)

// MockIdentityProvider implements auth.IdentityProvider for testing
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityProvider) VerifyPassword(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockIdentityProvider) DeleteAccount(ctx context.Context, providerID string) error {
	args := m.Called(ctx, providerID)
	return args.Error(0)
}

// MockProfileStore implements auth.ProfileStore for testing
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) FindProfileByEmail(ctx context.Context, email string) (*auth.Profile, error) {
	args := m.Called(ctx, email)
	if p, ok := args.Get(0).(*auth.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileStore) InsertProfile(ctx context.Context, profile *auth.Profile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

// MockVerifier implements auth.TokenVerifier for testing
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) VerifyUser(token string) (*auth.Principal, error) {
	args := m.Called(token)
	if p, ok := args.Get(0).(*auth.Principal); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVerifier) VerifyAdmin(token string) (*auth.Principal, error) {
	args := m.Called(token)
	if p, ok := args.Get(0).(*auth.Principal); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func testProfile() auth.Profile {
	return auth.Profile{
		ID:        "u1",
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Active:    true,
		Admin:     false,
	}
}
