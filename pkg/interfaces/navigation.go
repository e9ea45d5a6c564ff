package interfaces

import "context"

// Navigator performs a client-side navigation to the given localized path.
// Navigate resolves once the navigation has settled.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// PreferenceReader reports the visitor's ranked language preferences, most
// preferred first. Implementations typically wrap the browser language list
// or an Accept-Language header.
type PreferenceReader interface {
	Preferences() []string
}

// SessionState tracks per-session language decisions so the automatic
// redirect runs at most once per fresh session. State must not survive the
// session.
type SessionState interface {
	// Redirected reports whether the automatic redirect already ran.
	Redirected() bool
	// MarkRedirected records that the automatic redirect ran.
	MarkRedirected()
	// ChosenLanguage returns the language the visitor explicitly selected,
	// or "" when no explicit choice was made.
	ChosenLanguage() string
	// SetChosenLanguage records an explicit language selection.
	SetChosenLanguage(language string)
}
