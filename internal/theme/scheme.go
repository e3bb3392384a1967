package theme

import (
	"sync"

	"github.com/google/uuid"
)

// SchemeSource reports the host's ambient colour scheme and notifies
// subscribers when it changes. The returned function removes the subscription.
type SchemeSource interface {
	PrefersDark() bool
	Subscribe(fn func(prefersDark bool)) (unsubscribe func())
}

// subscribers is a set of change callbacks keyed by handle
type subscribers struct {
	mu  sync.Mutex
	fns map[uuid.UUID]func(bool)
}

func (s *subscribers) add(fn func(bool)) func() {
	id := uuid.New()

	s.mu.Lock()
	if s.fns == nil {
		s.fns = make(map[uuid.UUID]func(bool))
	}
	s.fns[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.fns, id)
			s.mu.Unlock()
		})
	}
}

func (s *subscribers) snapshot() []func(bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]func(bool), 0, len(s.fns))
	for _, fn := range s.fns {
		out = append(out, fn)
	}
	return out
}

func (s *subscribers) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fns)
}

func (s *subscribers) clear() {
	s.mu.Lock()
	s.fns = nil
	s.mu.Unlock()
}

func (s *subscribers) notify(v bool) {
	for _, fn := range s.snapshot() {
		fn(v)
	}
}

// StaticScheme is a SchemeSource whose value is set by hand
type StaticScheme struct {
	mu   sync.Mutex
	dark bool
	subs subscribers
}

var _ SchemeSource = (*StaticScheme)(nil)

// NewStaticScheme creates a source reporting dark
func NewStaticScheme(dark bool) *StaticScheme {
	return &StaticScheme{dark: dark}
}

// PrefersDark returns the current value
func (s *StaticScheme) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Set changes the value and notifies subscribers if it differs
func (s *StaticScheme) Set(dark bool) {
	s.mu.Lock()
	changed := s.dark != dark
	s.dark = dark
	s.mu.Unlock()

	if changed {
		s.subs.notify(dark)
	}
}

// Subscribe registers fn for value changes
func (s *StaticScheme) Subscribe(fn func(bool)) func() {
	return s.subs.add(fn)
}

// Subscribers returns the number of live subscriptions
func (s *StaticScheme) Subscribers() int {
	return s.subs.len()
}
