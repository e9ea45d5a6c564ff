package translations

import (
	"context"
	"strings"
	"sync"

	"github.com/goliatone/go-localize/pkg/interfaces"
)

// MemoryStore is an in-memory translation store for scaffolding/tests.
type MemoryStore struct {
	mu              sync.RWMutex
	bundles         map[string]interfaces.Bundle
	activeLanguage  string
	activeNamespace string
}

// NewMemoryStore constructs the store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bundles: make(map[string]interfaces.Bundle)}
}

// Add registers a bundle for (language, namespace).
func (m *MemoryStore) Add(language, namespace string, bundle interfaces.Bundle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bundles[memoryKey(language, namespace)] = cloneBundle(bundle)
}

// Load returns the registered bundle, or an empty one when absent.
func (m *MemoryStore) Load(_ context.Context, language, namespace string) (interfaces.Bundle, error) {
	if strings.TrimSpace(language) == "" {
		return nil, ErrLanguageRequired
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if bundle, ok := m.bundles[memoryKey(language, namespace)]; ok {
		return cloneBundle(bundle), nil
	}
	return interfaces.Bundle{}, nil
}

// Activate records the active (language, namespace) pair.
func (m *MemoryStore) Activate(_ context.Context, language, namespace string) error {
	if strings.TrimSpace(language) == "" {
		return ErrLanguageRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeLanguage = strings.TrimSpace(language)
	m.activeNamespace = normalizeNamespace(namespace)
	return nil
}

// Active returns the currently active (language, namespace) pair.
func (m *MemoryStore) Active() (string, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeLanguage, m.activeNamespace
}

func memoryKey(language, namespace string) string {
	return strings.TrimSpace(language) + "/" + normalizeNamespace(namespace)
}
