package local

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("credential not found")

type fakeCredentialStore struct {
	byEmail map[string]struct {
		id   string
		hash string
	}
	nextID    int
	insertErr error
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{byEmail: map[string]struct {
		id   string
		hash string
	}{}}
}

func (s *fakeCredentialStore) InsertCredential(_ context.Context, email, hash string) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	s.nextID++
	id := fmt.Sprintf("cred-%d", s.nextID)
	s.byEmail[email] = struct {
		id   string
		hash string
	}{id, hash}
	return id, nil
}

func (s *fakeCredentialStore) FindCredentialByEmail(_ context.Context, email string) (string, string, error) {
	cred, ok := s.byEmail[email]
	if !ok {
		return "", "", errNotFound
	}
	return cred.id, cred.hash, nil
}

func (s *fakeCredentialStore) DeleteCredential(_ context.Context, id string) error {
	for email, cred := range s.byEmail {
		if cred.id == id {
			delete(s.byEmail, email)
			return nil
		}
	}
	return errNotFound
}

func TestNewIdentityProvider_RequiresStore(t *testing.T) {
	_, err := NewIdentityProvider(nil, nil)
	assert.Error(t, err)
}

func TestLocalProvider_RoundTrip(t *testing.T) {
	store := newFakeCredentialStore()
	provider, err := NewIdentityProvider(store, nil)
	require.NoError(t, err)

	ctx := context.Background()

	id, err := provider.CreateAccount(ctx, "ada@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	t.Run("correct password verifies", func(t *testing.T) {
		assert.NoError(t, provider.VerifyPassword(ctx, "ada@example.com", "s3cret-password"))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		assert.Error(t, provider.VerifyPassword(ctx, "ada@example.com", "wrong"))
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		assert.Error(t, provider.VerifyPassword(ctx, "nobody@example.com", "s3cret-password"))
	})

	t.Run("deleted account no longer verifies", func(t *testing.T) {
		require.NoError(t, provider.DeleteAccount(ctx, id))
		assert.Error(t, provider.VerifyPassword(ctx, "ada@example.com", "s3cret-password"))
	})
}

func TestLocalProvider_CreateAccount(t *testing.T) {
	t.Run("rejects empty password", func(t *testing.T) {
		provider, err := NewIdentityProvider(newFakeCredentialStore(), nil)
		require.NoError(t, err)

		_, err = provider.CreateAccount(context.Background(), "ada@example.com", "")
		assert.Error(t, err)
	})

	t.Run("surfaces store failure", func(t *testing.T) {
		store := newFakeCredentialStore()
		store.insertErr = errors.New("write concern timeout")
		provider, err := NewIdentityProvider(store, nil)
		require.NoError(t, err)

		_, err = provider.CreateAccount(context.Background(), "ada@example.com", "s3cret-password")
		assert.Error(t, err)
	})
}

func TestLocalProvider_DeleteAccount_Unknown(t *testing.T) {
	provider, err := NewIdentityProvider(newFakeCredentialStore(), nil)
	require.NoError(t, err)

	assert.Error(t, provider.DeleteAccount(context.Background(), "cred-404"))
}
