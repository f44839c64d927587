package sessions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/pairs-go/internal/adapters/sessions"
	"github.com/randomtoy/pairs-go/internal/domain"
	"github.com/randomtoy/pairs-go/internal/ports"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := sessions.NewMemoryStore()

	sess, err := domain.NewSession(4, domain.NewSeededRNG(1))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "g1", sess))
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, store.Delete(ctx, "g1"))
	_, err = store.Get(ctx, "g1")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
	assert.Zero(t, store.Len())
}

func TestMemoryStore_UnknownGame(t *testing.T) {
	_, err := sessions.NewMemoryStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrGameNotFound)
}
