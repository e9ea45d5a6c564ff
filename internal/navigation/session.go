package navigation

import (
	"strings"
	"sync"

	"github.com/goliatone/go-localize/pkg/interfaces"
)

// MemorySession is a session-scoped state holder for the redirect marker and
// the visitor's explicit language choice. It lives exactly as long as the
// session object itself; nothing is persisted.
type MemorySession struct {
	mu         sync.Mutex
	redirected bool
	chosen     string
}

var _ interfaces.SessionState = (*MemorySession)(nil)

// NewMemorySession constructs an empty session.
func NewMemorySession() *MemorySession {
	return &MemorySession{}
}

func (s *MemorySession) Redirected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redirected
}

func (s *MemorySession) MarkRedirected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirected = true
}

func (s *MemorySession) ChosenLanguage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chosen
}

func (s *MemorySession) SetChosenLanguage(language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chosen = strings.TrimSpace(language)
}
