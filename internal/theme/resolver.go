package theme

import (
	"sync"

	"go.uber.org/zap"

	"github.com/preachit/logistics-site/internal/config"
	"github.com/preachit/logistics-site/internal/model"
)

// Resolver holds the theme mode preference and derives the effective dark
// flag from it and the ambient signal. It stays subscribed to the source until
// Close.
type Resolver struct {
	store  config.Store
	source SchemeSource
	logger *zap.Logger

	mu       sync.Mutex
	mode     model.ThemeMode
	lastDark bool

	listeners   subscribers
	unsubscribe func()
	closeOnce   sync.Once
}

// NewResolver reads the stored mode, falling back to system, and subscribes
// to source.
func NewResolver(store config.Store, source SchemeSource, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Resolver{
		store:  store,
		source: source,
		logger: logger,
		mode:   model.DefaultThemeMode,
	}

	if stored, ok := store.Load(config.KeyTheme); ok {
		if mode, valid := model.ParseThemeMode(stored); valid {
			r.mode = mode
		} else {
			logger.Info("Ignoring stored theme", zap.String("value", stored))
		}
	}

	r.lastDark = r.mode.ResolveDark(source.PrefersDark())
	r.unsubscribe = source.Subscribe(r.onSystemChange)
	return r
}

// Mode returns the current theme mode
func (r *Resolver) Mode() model.ThemeMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// IsDark evaluates the effective theme now. In system mode this reads the
// ambient signal at the moment of the call.
func (r *Resolver) IsDark() bool {
	r.mu.Lock()
	mode := r.mode
	r.mu.Unlock()
	return mode.ResolveDark(r.source.PrefersDark())
}

// SetTheme persists mode and recomputes the dark flag. Unknown modes leave the
// state untouched and report false.
func (r *Resolver) SetTheme(mode string) bool {
	m, ok := model.ParseThemeMode(mode)
	if !ok {
		r.logger.Warn("Rejected unsupported theme", zap.String("mode", mode))
		return false
	}

	r.mu.Lock()
	r.store.Save(config.KeyTheme, string(m))
	r.mode = m
	dark, changed := r.recomputeLocked()
	r.mu.Unlock()

	r.logger.Debug("Theme changed", zap.String("mode", string(m)), zap.Bool("dark", dark))
	if changed {
		r.listeners.notify(dark)
	}
	return true
}

// OnChange registers fn to run whenever the effective dark flag flips
func (r *Resolver) OnChange(fn func(isDark bool)) func() {
	return r.listeners.add(fn)
}

// Close removes the ambient signal subscription and all listeners. It is safe
// to call more than once.
func (r *Resolver) Close() {
	r.closeOnce.Do(func() {
		if r.unsubscribe != nil {
			r.unsubscribe()
		}
		r.listeners.clear()
	})
}

func (r *Resolver) onSystemChange(prefersDark bool) {
	r.mu.Lock()
	if !r.mode.FollowsSystem() {
		r.mu.Unlock()
		return
	}
	dark := r.mode.ResolveDark(prefersDark)
	changed := dark != r.lastDark
	r.lastDark = dark
	r.mu.Unlock()

	if changed {
		r.logger.Debug("System colour scheme changed", zap.Bool("dark", dark))
		r.listeners.notify(dark)
	}
}

func (r *Resolver) recomputeLocked() (dark, changed bool) {
	dark = r.mode.ResolveDark(r.source.PrefersDark())
	changed = dark != r.lastDark
	r.lastDark = dark
	return dark, changed
}
