package interfaces

import "context"

// DefaultNamespace is the resource namespace assumed when a page definition
// does not declare one.
const DefaultNamespace = "translation"

// Bundle is a flattened key to string mapping for one language/namespace
// pair. Nested resource files are flattened with dot-joined keys before they
// reach consumers.
type Bundle map[string]string

// TranslationStore loads translation resource bundles. Implementations own
// resource discovery (filesystem layout, embedded data, remote catalogs);
// callers only name a language and namespace.
//
// A missing bundle is not an error: implementations return an empty Bundle so
// pages render with translation keys as fallback text.
type TranslationStore interface {
	Load(ctx context.Context, language, namespace string) (Bundle, error)
}

// BundleActivator is an optional TranslationStore extension for runtimes that
// keep one bundle active at a time. Activate resolves when the swap has
// settled.
type BundleActivator interface {
	Activate(ctx context.Context, language, namespace string) error
}
