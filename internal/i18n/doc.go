package i18n

// Package i18n resolves user-visible strings for the site. The catalog is a
// fixed set of embedded TOML message files, one per supported language, parsed
// once at start-up. Lookups never fail: a key missing from the current
// language resolves to the key itself.
