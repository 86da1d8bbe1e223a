package preferences

import (
	"context"
	"testing"

	"github.com/sportshop/storefront/pkg/kvstore"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsToLight(t *testing.T) {
	s := NewStore(context.Background(), kvstore.NewMemoryStore())
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestSetTheme(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, kvstore.NewMemoryStore())

	assert.Equal(t, ThemeDark, s.SetTheme(ctx, ThemeDark))
	assert.Equal(t, ThemeDark, s.Theme())

	assert.Equal(t, ThemeDark, s.SetTheme(ctx, "neon"), "unknown themes are ignored")
	assert.Equal(t, ThemeDark, s.Theme())
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, kvstore.NewMemoryStore())

	assert.Equal(t, ThemeDark, s.ToggleTheme(ctx))
	assert.Equal(t, ThemeLight, s.ToggleTheme(ctx))
	assert.Equal(t, ThemeDark, s.ToggleTheme(ctx))
}

func TestThemeSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	s := NewStore(ctx, kv)
	s.SetTheme(ctx, ThemeDark)

	restored := NewStore(ctx, kv)
	assert.Equal(t, ThemeDark, restored.Theme())
}

func TestCorruptPersistedThemeFallsBack(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	_ = kv.Save(ctx, StorageKey, "sepia")

	s := NewStore(ctx, kv)
	assert.Equal(t, ThemeLight, s.Theme())
}
