// Package translations implements the resource-bundle store consumed by the
// page planner and the runtime language switcher. Bundles live on disk as
// <root>/<language>/<namespace>.json files holding flat or nested
// string-to-string mappings.
package translations

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

var (
	// ErrRootRequired indicates the store was constructed without a resource directory.
	ErrRootRequired = errors.New("translations: resource directory is required")
	// ErrLanguageRequired indicates a bundle lookup with an empty language code.
	ErrLanguageRequired = errors.New("translations: language is required")
)

// FSStore loads translation bundles from a resource directory. Missing or
// malformed resource files degrade to an empty bundle so a page with missing
// translations still renders with key fallback text.
type FSStore struct {
	root   string
	logger interfaces.Logger

	mu              sync.RWMutex
	cache           map[string]interfaces.Bundle
	activeLanguage  string
	activeNamespace string
}

// FSOption configures an FSStore.
type FSOption func(*FSStore)

// WithLogger injects the logger used for degradation warnings.
func WithLogger(logger interfaces.Logger) FSOption {
	return func(s *FSStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFSStore constructs a filesystem-backed store rooted at the given
// resource directory.
func NewFSStore(root string, opts ...FSOption) *FSStore {
	store := &FSStore{
		root:   strings.TrimSpace(root),
		logger: logging.NoOp(),
		cache:  make(map[string]interfaces.Bundle),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// CheckRoot reports whether the resource directory exists and is usable.
// Planners call this before emitting anything so a misconfigured resource
// path fails the build up front rather than degrading every bundle.
func (s *FSStore) CheckRoot() error {
	if s == nil || s.root == "" {
		return ErrRootRequired
	}
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("translations: resource directory %q: %w", s.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("translations: resource path %q is not a directory", s.root)
	}
	return nil
}

// Load returns the bundle for (language, namespace), flattening nested maps
// into dot-joined keys. The namespace defaults to interfaces.DefaultNamespace.
func (s *FSStore) Load(ctx context.Context, language, namespace string) (interfaces.Bundle, error) {
	if s == nil || s.root == "" {
		return nil, ErrRootRequired
	}
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, ErrLanguageRequired
	}
	namespace = normalizeNamespace(namespace)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	key := language + "/" + namespace
	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cloneBundle(cached), nil
	}

	bundle := s.read(language, namespace)

	s.mu.Lock()
	s.cache[key] = bundle
	s.mu.Unlock()

	return cloneBundle(bundle), nil
}

// Activate swaps the active bundle to (language, namespace), loading it if
// needed. It satisfies interfaces.BundleActivator.
func (s *FSStore) Activate(ctx context.Context, language, namespace string) error {
	if _, err := s.Load(ctx, language, namespace); err != nil {
		return err
	}
	s.mu.Lock()
	s.activeLanguage = strings.TrimSpace(language)
	s.activeNamespace = normalizeNamespace(namespace)
	s.mu.Unlock()
	return nil
}

// Active returns the currently active (language, namespace) pair.
func (s *FSStore) Active() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeLanguage, s.activeNamespace
}

func (s *FSStore) read(language, namespace string) interfaces.Bundle {
	path := filepath.Join(s.root, language, namespace+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("translations.read.failed", "path", path, "error", err)
		} else {
			s.logger.Warn("translations.bundle.missing", "language", language, "namespace", namespace)
		}
		return interfaces.Bundle{}
	}

	raw, err := decodeResource(data)
	if err != nil {
		s.logger.Warn("translations.bundle.invalid", "path", path, "error", err)
		return interfaces.Bundle{}
	}

	return Flatten(raw)
}

// Flatten converts a possibly nested resource mapping into a flat bundle
// with dot-joined keys.
func Flatten(raw map[string]any) interfaces.Bundle {
	bundle := make(interfaces.Bundle, len(raw))
	flattenInto(bundle, "", raw)
	return bundle
}

func flattenInto(bundle interfaces.Bundle, prefix string, raw map[string]any) {
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch value := raw[key].(type) {
		case string:
			bundle[full] = value
		case map[string]any:
			flattenInto(bundle, full, value)
		}
	}
}

func normalizeNamespace(namespace string) string {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return interfaces.DefaultNamespace
	}
	return namespace
}

func cloneBundle(bundle interfaces.Bundle) interfaces.Bundle {
	out := make(interfaces.Bundle, len(bundle))
	for key, value := range bundle {
		out[key] = value
	}
	return out
}
