package appstate

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/preachit/logistics-site/internal/config"
	"github.com/preachit/logistics-site/internal/i18n"
	"github.com/preachit/logistics-site/internal/model"
	"github.com/preachit/logistics-site/internal/theme"
)

// ChangeKind says which preference a Change is about
type ChangeKind int

const (
	// LanguageChanged follows a successful SetLanguage
	LanguageChanged ChangeKind = iota
	// ThemeChanged follows a SetTheme or a system scheme flip
	ThemeChanged
)

// Change is delivered to subscribers after the state update is visible
type Change struct {
	Kind     ChangeKind
	Language model.LanguageCode
	Mode     model.ThemeMode
	IsDark   bool
}

// Options configures New. Store and Scheme are required.
type Options struct {
	Store   config.Store
	Scheme  theme.SchemeSource
	Catalog *i18n.Catalog
	Logger  *zap.Logger
}

// State composes the translator and the theme resolver behind one handle
type State struct {
	translator *i18n.Translator
	resolver   *theme.Resolver
	logger     *zap.Logger

	mu        sync.Mutex
	listeners map[uuid.UUID]func(Change)
	stopTheme func()
	closed    bool
}

// New initializes both resolvers from the store
func New(opts Options) *State {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &State{
		translator: i18n.NewTranslator(opts.Catalog, opts.Store, logger.Named("i18n")),
		resolver:   theme.NewResolver(opts.Store, opts.Scheme, logger.Named("theme")),
		logger:     logger,
		listeners:  make(map[uuid.UUID]func(Change)),
	}
	s.stopTheme = s.resolver.OnChange(func(bool) {
		s.publish(ThemeChanged)
	})

	logger.Info("Preferences loaded",
		zap.String("language", string(s.Language())),
		zap.String("theme", string(s.Mode())),
		zap.Bool("dark", s.IsDark()))
	return s
}

// T returns the translation of key in the current language, or key
func (s *State) T(key string) string {
	return s.translator.T(key)
}

// Tf is T with fmt.Sprintf formatting
func (s *State) Tf(key string, args ...any) string {
	return s.translator.Tf(key, args...)
}

// Language returns the current language
func (s *State) Language() model.LanguageCode {
	return s.translator.Language()
}

// SetLanguage switches and persists the language. Unsupported codes are
// ignored and report false.
func (s *State) SetLanguage(code string) bool {
	if !s.translator.SetLanguage(code) {
		return false
	}
	s.publish(LanguageChanged)
	return true
}

// Mode returns the current theme mode
func (s *State) Mode() model.ThemeMode {
	return s.resolver.Mode()
}

// IsDark returns the effective dark flag
func (s *State) IsDark() bool {
	return s.resolver.IsDark()
}

// SetTheme switches and persists the theme mode. Unknown modes are ignored
// and report false. Subscribers hear about it only when the dark flag flips
// or the mode itself changed.
func (s *State) SetTheme(mode string) bool {
	before := s.resolver.Mode()
	beforeDark := s.resolver.IsDark()
	if !s.resolver.SetTheme(mode) {
		return false
	}
	// A flip of the dark flag is already published through the resolver
	if s.resolver.Mode() != before && s.resolver.IsDark() == beforeDark {
		s.publish(ThemeChanged)
	}
	return true
}

// Reset restores the default language and theme mode
func (s *State) Reset() {
	s.SetLanguage(string(model.DefaultLanguage))
	s.SetTheme(string(model.DefaultThemeMode))
}

// Subscribe registers fn for state changes. Views re-read strings and the
// dark flag from State when called.
func (s *State) Subscribe(fn func(Change)) func() {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Close tears down the theme subscription and drops all listeners
func (s *State) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.listeners = make(map[uuid.UUID]func(Change))
	s.mu.Unlock()

	s.stopTheme()
	s.resolver.Close()
	s.logger.Debug("Preferences state closed")
}

func (s *State) publish(kind ChangeKind) {
	change := Change{
		Kind:     kind,
		Language: s.Language(),
		Mode:     s.Mode(),
		IsDark:   s.IsDark(),
	}

	s.mu.Lock()
	fns := make([]func(Change), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}
