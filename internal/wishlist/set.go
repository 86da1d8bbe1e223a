package wishlist

import (
	"context"
	"sync"

	"github.com/sportshop/storefront/pkg/kvstore"
)

// StorageKey is the blob key the wishlist persists under.
const StorageKey = "sportsShop_wishlist"

// Set owns the wishlist: a deduplicated, order-preserving set of product
// ids. Mutations persist synchronously, same contract as the cart ledger.
type Set struct {
	mu    sync.RWMutex
	ids   []int
	store kvstore.Store
}

// NewSet restores the persisted wishlist, falling back to an empty one
func NewSet(ctx context.Context, store kvstore.Store) *Set {
	s := &Set{store: store, ids: []int{}}
	kvstore.LoadOrDefault(ctx, store, StorageKey, &s.ids)
	return s
}

// Add inserts a product id. Adding a present id is a no-op, never a
// duplicate.
func (s *Set) Add(ctx context.Context, productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containsLocked(productID) {
		return false
	}
	s.ids = append(s.ids, productID)
	s.persist(ctx)
	return true
}

// Remove deletes a product id; absent ids are a no-op
func (s *Set) Remove(ctx context.Context, productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.ids {
		if id == productID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// Toggle adds the id if absent and removes it if present, reporting the
// resulting membership.
func (s *Set) Toggle(ctx context.Context, productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.ids {
		if id == productID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			s.persist(ctx)
			return false
		}
	}
	s.ids = append(s.ids, productID)
	s.persist(ctx)
	return true
}

// Contains reports membership
func (s *Set) Contains(productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.containsLocked(productID)
}

// Clear empties the wishlist
func (s *Set) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = []int{}
	s.persist(ctx)
}

// IDs returns the wishlist ids in insertion order
func (s *Set) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Count returns the number of wishlist entries
func (s *Set) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Set) containsLocked(productID int) bool {
	for _, id := range s.ids {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *Set) persist(ctx context.Context) {
	kvstore.SaveBestEffort(ctx, s.store, StorageKey, s.ids)
}
