package wishlist

import (
	"context"
	"testing"

	"github.com/sportshop/storefront/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewSet(ctx, kvstore.NewMemoryStore())

	assert.True(t, s.Add(ctx, 1))
	assert.False(t, s.Add(ctx, 1), "adding a present id must not duplicate it")
	assert.Equal(t, []int{1}, s.IDs())
	assert.Equal(t, 1, s.Count())
}

func TestSetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewSet(ctx, kvstore.NewMemoryStore())
	s.Add(ctx, 1)
	s.Add(ctx, 2)
	s.Add(ctx, 3)

	assert.True(t, s.Remove(ctx, 2))
	assert.Equal(t, []int{1, 3}, s.IDs())

	assert.False(t, s.Remove(ctx, 42), "removing an absent id is a no-op")
	assert.Equal(t, []int{1, 3}, s.IDs())
}

func TestSetToggleIsAnInvolution(t *testing.T) {
	ctx := context.Background()
	s := NewSet(ctx, kvstore.NewMemoryStore())
	s.Add(ctx, 1)
	s.Add(ctx, 2)
	before := s.IDs()

	assert.True(t, s.Toggle(ctx, 7))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Toggle(ctx, 7))
	assert.False(t, s.Contains(7))

	assert.ElementsMatch(t, before, s.IDs(), "toggling twice restores membership")
}

func TestSetPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewSet(ctx, kvstore.NewMemoryStore())
	for _, id := range []int{5, 3, 9, 1} {
		s.Add(ctx, id)
	}
	assert.Equal(t, []int{5, 3, 9, 1}, s.IDs())
}

func TestSetClear(t *testing.T) {
	ctx := context.Background()
	s := NewSet(ctx, kvstore.NewMemoryStore())
	s.Add(ctx, 1)
	s.Add(ctx, 2)

	s.Clear(ctx)
	assert.Zero(t, s.Count())
	assert.Empty(t, s.IDs())
}

func TestSetRestoresFromStore(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	s := NewSet(ctx, store)
	s.Add(ctx, 4)
	s.Add(ctx, 8)

	restored := NewSet(ctx, store)
	assert.Equal(t, []int{4, 8}, restored.IDs())
}

func TestSetIDsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewSet(ctx, kvstore.NewMemoryStore())
	require.True(t, s.Add(ctx, 1))

	ids := s.IDs()
	ids[0] = 999
	assert.Equal(t, []int{1}, s.IDs())
}
