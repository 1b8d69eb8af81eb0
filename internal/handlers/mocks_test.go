package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/altuslab/challenges-api/auth"
	"github.com/altuslab/challenges-api/internal/store"
)

type mockIdentityProvider struct {
	mock.Mock
}

func (m *mockIdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockIdentityProvider) VerifyPassword(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *mockIdentityProvider) DeleteAccount(ctx context.Context, providerID string) error {
	args := m.Called(ctx, providerID)
	return args.Error(0)
}

type mockProfileStore struct {
	mock.Mock
}

func (m *mockProfileStore) FindProfileByEmail(ctx context.Context, email string) (*auth.Profile, error) {
	args := m.Called(ctx, email)
	if p, ok := args.Get(0).(*auth.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileStore) InsertProfile(ctx context.Context, profile *auth.Profile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) CreateCategory(ctx context.Context, category *store.Category) (*store.Category, error) {
	args := m.Called(ctx, category)
	if c, ok := args.Get(0).(*store.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]store.CategoryWithChallenges, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]store.CategoryWithChallenges); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryStore) GetCategory(ctx context.Context, id string) (*store.CategoryWithChallenges, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*store.CategoryWithChallenges); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryStore) UpdateCategory(ctx context.Context, id string, category *store.Category) (*store.CategoryWithChallenges, error) {
	args := m.Called(ctx, id, category)
	if c, ok := args.Get(0).(*store.CategoryWithChallenges); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryStore) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockChallengeStore struct {
	mock.Mock
}

func (m *mockChallengeStore) CreateChallenge(ctx context.Context, challenge *store.Challenge) (*store.Challenge, error) {
	args := m.Called(ctx, challenge)
	if c, ok := args.Get(0).(*store.Challenge); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChallengeStore) GetChallenge(ctx context.Context, id string) (*store.Challenge, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*store.Challenge); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChallengeStore) ListChallenges(ctx context.Context, filter store.ChallengeFilter) ([]store.Challenge, error) {
	args := m.Called(ctx, filter)
	if c, ok := args.Get(0).([]store.Challenge); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChallengeStore) UpdateChallenge(ctx context.Context, id string, update store.ChallengeUpdate) (*store.Challenge, error) {
	args := m.Called(ctx, id, update)
	if c, ok := args.Get(0).(*store.Challenge); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChallengeStore) DeleteChallenge(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockParticipationStore struct {
	mock.Mock
}

func (m *mockParticipationStore) CreateParticipation(ctx context.Context, userID, challengeID string) (*store.Participation, error) {
	args := m.Called(ctx, userID, challengeID)
	if p, ok := args.Get(0).(*store.Participation); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockParticipationStore) ListParticipationsByUser(ctx context.Context, userID string) ([]store.Participation, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).([]store.Participation); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCommentStore struct {
	mock.Mock
}

func (m *mockCommentStore) CreateComment(ctx context.Context, comment *store.Comment) (*store.Comment, error) {
	args := m.Called(ctx, comment)
	if c, ok := args.Get(0).(*store.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentStore) ListCommentsByChallenge(ctx context.Context, challengeID string) ([]store.Comment, error) {
	args := m.Called(ctx, challengeID)
	if c, ok := args.Get(0).([]store.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentStore) DeleteComment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
