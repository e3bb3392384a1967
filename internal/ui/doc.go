package ui

// Package ui contains the Fyne-based desktop rendering of the site: header
// navigation with language and theme selectors, the page sections and the
// footer. Every string comes from appstate.State and views rebuild when the
// state publishes a change.
