package model

// Package model defines the closed value sets shared across the app: the
// supported language codes and the theme modes, plus the display metadata the
// header selectors show for them. Parsing is strict so callers can treat any
// unknown stored value as absent.
