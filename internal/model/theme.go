package model

// ThemeMode is the user's colour scheme choice
type ThemeMode string

const (
	// ThemeLight always renders light
	ThemeLight ThemeMode = "light"

	// ThemeDark always renders dark
	ThemeDark ThemeMode = "dark"

	// ThemeSystem follows the operating system preference
	ThemeSystem ThemeMode = "system"
)

// DefaultThemeMode is used when no valid theme preference is stored
const DefaultThemeMode = ThemeSystem

// ThemeOption describes a selectable theme mode for the header menu
type ThemeOption struct {
	Mode ThemeMode
	Name string
}

var themeOptions = []ThemeOption{
	{Mode: ThemeLight, Name: "Light"},
	{Mode: ThemeDark, Name: "Dark"},
	{Mode: ThemeSystem, Name: "System"},
}

// String returns the string representation of ThemeMode
func (m ThemeMode) String() string {
	return string(m)
}

// IsValid reports whether m is one of the three modes
func (m ThemeMode) IsValid() bool {
	return m == ThemeLight || m == ThemeDark || m == ThemeSystem
}

// FollowsSystem returns true if the ambient signal decides the effective theme
func (m ThemeMode) FollowsSystem() bool {
	return m == ThemeSystem
}

// ParseThemeMode returns the ThemeMode for s. Matching is exact.
func ParseThemeMode(s string) (ThemeMode, bool) {
	m := ThemeMode(s)
	if !m.IsValid() {
		return "", false
	}
	return m, true
}

// ThemeModes returns the selectable theme modes in menu order
func ThemeModes() []ThemeOption {
	out := make([]ThemeOption, len(themeOptions))
	copy(out, themeOptions)
	return out
}

// ResolveDark computes the effective dark flag for m given the ambient signal
func (m ThemeMode) ResolveDark(systemPrefersDark bool) bool {
	switch m {
	case ThemeLight:
		return false
	case ThemeDark:
		return true
	default:
		return systemPrefersDark
	}
}
