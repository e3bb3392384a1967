// Package appstate owns the process-wide language and theme state. It is
// created once at start-up, injected into every view that needs translated
// strings or the dark flag, and closed at shutdown to release the system
// colour scheme subscription.
package appstate
