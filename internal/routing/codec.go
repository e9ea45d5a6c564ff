package routing

import "strings"

// Codec maps language-neutral original paths to localized paths and back.
// Both translations are pure and total: malformed input is normalized, never
// rejected, so build-time planning and runtime navigation agree bit-for-bit
// without sharing state.
type Codec struct {
	// RoutedDefault prefixes the default language like any other language.
	// When false (the default) the default language is served unprefixed.
	RoutedDefault bool
}

// Localize returns the path served for originalPath in the given language.
// The default language keeps originalPath unchanged unless RoutedDefault is
// set; every other language gets the code inserted as the first path segment.
// Trailing slashes survive exactly as declared.
func (c Codec) Localize(originalPath, language, defaultLanguage string) string {
	original := NormalizePath(originalPath)
	language = strings.TrimSpace(language)
	defaultLanguage = strings.TrimSpace(defaultLanguage)

	if language == "" {
		language = defaultLanguage
	}
	if language == "" {
		return original
	}
	if language == defaultLanguage && !c.RoutedDefault {
		return original
	}

	return "/" + language + original
}

// Delocalize strips a leading segment when it exactly matches a member of
// languages, returning the remainder and the matched language. Paths without
// a recognized prefix come back unchanged with an empty language, meaning the
// path is already in default/unrouted form.
func (c Codec) Delocalize(localizedPath string, languages []string) (string, string) {
	localized := NormalizePath(localizedPath)

	segment := localized[1:]
	rest := ""
	if idx := strings.IndexByte(segment, '/'); idx >= 0 {
		rest = segment[idx:]
		segment = segment[:idx]
	}

	if segment == "" {
		return localized, ""
	}

	for _, candidate := range languages {
		if segment == strings.TrimSpace(candidate) {
			if rest == "" {
				return "/", segment
			}
			return rest, segment
		}
	}

	return localized, ""
}

// NormalizePath coerces arbitrary author input into a rooted path: leading
// slash enforced, interior slash runs collapsed, whitespace trimmed. The
// empty string maps to the site root.
func NormalizePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "/"
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	for strings.Contains(trimmed, "//") {
		trimmed = strings.ReplaceAll(trimmed, "//", "/")
	}
	return trimmed
}
