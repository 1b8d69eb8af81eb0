package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslab/challenges-api/auth"
)

func TestPrincipalContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		principal := &auth.Principal{ID: "u1", Email: "ada@example.com", Role: auth.RoleUser}
		ctx := auth.WithPrincipal(context.Background(), principal)

		got, ok := auth.PrincipalFromContext(ctx)
		require.True(t, ok)
		assert.Same(t, principal, got)
	})

	t.Run("empty context", func(t *testing.T) {
		got, ok := auth.PrincipalFromContext(context.Background())
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("nil principal is not found", func(t *testing.T) {
		ctx := auth.WithPrincipal(context.Background(), nil)
		_, ok := auth.PrincipalFromContext(ctx)
		assert.False(t, ok)
	})
}
