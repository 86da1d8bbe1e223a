package kvstore

import (
	"context"
	"errors"

	"github.com/sportshop/storefront/pkg/logger"
)

// ErrNotFound is returned by Load when no value is stored under the key.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a persisted key-value blob store. Values are JSON-encoded on
// Save and decoded on Load. Implementations must be safe for concurrent use.
type Store interface {
	Load(ctx context.Context, key string, into interface{}) error
	Save(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// LoadOrDefault decodes the value stored under key into target. The caller
// pre-populates target with its default; a missing key, a corrupt blob, or a
// backend failure leaves the default in place and logs the problem instead
// of surfacing it.
func LoadOrDefault(ctx context.Context, s Store, key string, into interface{}) {
	err := s.Load(ctx, key, into)
	if err == nil || errors.Is(err, ErrNotFound) {
		return
	}
	logger.Logger.Warn().
		Err(err).
		Str("key", key).
		Msg("Failed to load persisted state, using default")
}

// SaveBestEffort persists value under key. A write failure is logged and
// swallowed; in-memory state remains the source of truth.
func SaveBestEffort(ctx context.Context, s Store, key string, value interface{}) {
	if err := s.Save(ctx, key, value); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("key", key).
			Msg("Failed to persist state")
	}
}
