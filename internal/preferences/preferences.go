package preferences

import (
	"context"
	"sync"

	"github.com/sportshop/storefront/pkg/kvstore"
)

// StorageKey is the blob key the theme preference persists under.
const StorageKey = "sportsShop_theme"

// Themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store owns the persisted UI preferences.
type Store struct {
	mu    sync.RWMutex
	theme string
	store kvstore.Store
}

// NewStore restores the persisted theme, defaulting to light
func NewStore(ctx context.Context, kv kvstore.Store) *Store {
	s := &Store{theme: ThemeLight, store: kv}
	kvstore.LoadOrDefault(ctx, kv, StorageKey, &s.theme)
	if s.theme != ThemeLight && s.theme != ThemeDark {
		s.theme = ThemeLight
	}
	return s
}

// Theme returns the active theme
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme stores a theme; unknown values are ignored
func (s *Store) SetTheme(ctx context.Context, theme string) string {
	if theme != ThemeLight && theme != ThemeDark {
		return s.Theme()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = theme
	kvstore.SaveBestEffort(ctx, s.store, StorageKey, s.theme)
	return s.theme
}

// ToggleTheme flips between light and dark
func (s *Store) ToggleTheme(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	kvstore.SaveBestEffort(ctx, s.store, StorageKey, s.theme)
	return s.theme
}
