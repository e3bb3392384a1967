package theme

import (
	"sync"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// FyneScheme reads the system theme variant from Fyne settings. Fyne offers no
// way to remove a settings listener, so one listener is registered for the
// life of the value and fans out to subscribers until Close.
type FyneScheme struct {
	settings fyne.Settings
	subs     subscribers

	mu     sync.Mutex
	last   bool
	closed bool
}

var _ SchemeSource = (*FyneScheme)(nil)

// NewFyneScheme starts listening to settings changes
func NewFyneScheme(settings fyne.Settings) *FyneScheme {
	s := &FyneScheme{settings: settings}
	s.last = variantIsDark(settings.ThemeVariant())
	settings.AddListener(s.onSettingsChanged)
	return s
}

func variantIsDark(v fyne.ThemeVariant) bool {
	return v == fynetheme.VariantDark
}

// PrefersDark reports whether the system currently asks for a dark variant
func (s *FyneScheme) PrefersDark() bool {
	return variantIsDark(s.settings.ThemeVariant())
}

// Subscribe registers fn for variant changes
func (s *FyneScheme) Subscribe(fn func(bool)) func() {
	return s.subs.add(fn)
}

// Close drops every subscriber and ignores later settings changes
func (s *FyneScheme) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.subs.clear()
}

// onSettingsChanged also fires for theme, scale and colour changes, so only a
// variant flip is forwarded.
func (s *FyneScheme) onSettingsChanged(settings fyne.Settings) {
	dark := variantIsDark(settings.ThemeVariant())

	s.mu.Lock()
	if s.closed || dark == s.last {
		s.mu.Unlock()
		return
	}
	s.last = dark
	s.mu.Unlock()

	s.subs.notify(dark)
}
