package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preachit/logistics-site/internal/config"
	"github.com/preachit/logistics-site/internal/model"
)

func TestNewResolver_FreshStoreFollowsSystem(t *testing.T) {
	for _, systemDark := range []bool{false, true} {
		r := NewResolver(config.NewMemoryStore(), NewStaticScheme(systemDark), nil)

		assert.Equal(t, model.ThemeSystem, r.Mode())
		assert.Equal(t, systemDark, r.IsDark())
		r.Close()
	}
}

func TestNewResolver_StoredDarkIgnoresSystem(t *testing.T) {
	store := config.NewMemoryStore()
	store.Save(config.KeyTheme, "dark")
	source := NewStaticScheme(false)

	r := NewResolver(store, source, nil)
	defer r.Close()

	assert.Equal(t, model.ThemeDark, r.Mode())
	assert.True(t, r.IsDark())

	source.Set(true)
	source.Set(false)
	assert.True(t, r.IsDark())
}

func TestNewResolver_InvalidStoredMode(t *testing.T) {
	store := config.NewMemoryStore()
	store.Save(config.KeyTheme, "sepia")

	r := NewResolver(store, NewStaticScheme(true), nil)
	defer r.Close()

	assert.Equal(t, model.ThemeSystem, r.Mode())
	assert.True(t, r.IsDark())
}

func TestResolver_SetThemeTable(t *testing.T) {
	tests := []struct {
		mode     string
		system   bool
		expected bool
	}{
		{"light", false, false},
		{"light", true, false},
		{"dark", false, true},
		{"dark", true, true},
		{"system", false, false},
		{"system", true, true},
	}

	for _, test := range tests {
		store := config.NewMemoryStore()
		r := NewResolver(store, NewStaticScheme(test.system), nil)

		require.True(t, r.SetTheme(test.mode))
		assert.Equal(t, test.expected, r.IsDark(), "mode=%s system=%v", test.mode, test.system)

		stored, _ := store.Load(config.KeyTheme)
		assert.Equal(t, test.mode, stored)
		r.Close()
	}
}

func TestResolver_SetThemeRejectsUnknownMode(t *testing.T) {
	store := config.NewMemoryStore()
	r := NewResolver(store, NewStaticScheme(false), nil)
	defer r.Close()
	require.True(t, r.SetTheme("dark"))

	assert.False(t, r.SetTheme("midnight"))
	assert.Equal(t, model.ThemeDark, r.Mode())
	stored, _ := store.Load(config.KeyTheme)
	assert.Equal(t, "dark", stored)
}

func TestResolver_SystemChangeFlipsWithoutSetTheme(t *testing.T) {
	source := NewStaticScheme(false)
	r := NewResolver(config.NewMemoryStore(), source, nil)
	defer r.Close()

	var seen []bool
	r.OnChange(func(dark bool) { seen = append(seen, dark) })

	assert.False(t, r.IsDark())
	source.Set(true)
	assert.True(t, r.IsDark())
	assert.Equal(t, []bool{true}, seen)
}

func TestResolver_OnChangeOnlyOnFlip(t *testing.T) {
	source := NewStaticScheme(true)
	r := NewResolver(config.NewMemoryStore(), source, nil)
	defer r.Close()

	var seen []bool
	unsubscribe := r.OnChange(func(dark bool) { seen = append(seen, dark) })

	r.SetTheme("dark")   // already dark via system
	r.SetTheme("light")  // flip
	source.Set(false)    // ignored while light
	r.SetTheme("system") // system is now light, no flip
	source.Set(true)     // flip

	assert.Equal(t, []bool{false, true}, seen)

	unsubscribe()
	r.SetTheme("light")
	assert.Len(t, seen, 2)
}

func TestResolver_RoundTripAcrossRestart(t *testing.T) {
	store := config.NewMemoryStore()
	source := NewStaticScheme(false)

	first := NewResolver(store, source, nil)
	first.SetTheme("dark")
	first.Close()

	restarted := NewResolver(store, source, nil)
	defer restarted.Close()
	assert.Equal(t, model.ThemeDark, restarted.Mode())
}

func TestResolver_CloseUnsubscribes(t *testing.T) {
	source := NewStaticScheme(false)
	r := NewResolver(config.NewMemoryStore(), source, nil)
	require.Equal(t, 1, source.Subscribers())

	called := false
	r.OnChange(func(bool) { called = true })

	r.Close()
	r.Close()

	assert.Equal(t, 0, source.Subscribers())
	source.Set(true)
	assert.False(t, called)
}
