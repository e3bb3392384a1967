// Package theme turns the stored theme mode and the operating system colour
// scheme into the effective dark/light flag the UI renders with. The system
// signal is injected as a SchemeSource so it can be backed by Fyne settings or
// driven by hand in tests.
package theme
