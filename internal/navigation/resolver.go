// Package navigation computes link targets and performs language switches at
// request time. It calls the same path codec the build-time planner used, so
// both executions agree on every localized path without communicating.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/negotiate"
	"github.com/goliatone/go-localize/internal/planner"
	"github.com/goliatone/go-localize/internal/routing"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

var (
	// ErrNavigatorRequired indicates the resolver has no navigator to perform redirects with.
	ErrNavigatorRequired = errors.New("navigation: navigator is required")
	// ErrStoreRequired indicates the resolver has no translation store.
	ErrStoreRequired = errors.New("navigation: translation store is required")
	// ErrSuperseded reports that a later ChangeLanguage call took over before
	// this one navigated. The bundle swap of the superseded call completed.
	ErrSuperseded = errors.New("navigation: language change superseded")
	// ErrNavigationIncomplete reports that the bundle swap completed but the
	// follow-up navigation failed.
	ErrNavigationIncomplete = errors.New("navigation: bundle swapped but navigation failed")
)

// Resolver computes localized link targets and drives language switches.
type Resolver struct {
	codec     routing.Codec
	store     interfaces.TranslationStore
	navigator interfaces.Navigator
	session   interfaces.SessionState
	prefs     interfaces.PreferenceReader
	logger    interfaces.Logger
	namespace string

	// calls sequences ChangeLanguage so a later call supersedes an earlier
	// in-flight one (last-call-wins, never stacked).
	calls atomic.Uint64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger injects the navigation logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithPreferenceReader injects the visitor preference collaborator used by
// the redirect decision.
func WithPreferenceReader(prefs interfaces.PreferenceReader) Option {
	return func(r *Resolver) {
		r.prefs = prefs
	}
}

// WithNamespace overrides the resource namespace activated on language switches.
func WithNamespace(namespace string) Option {
	return func(r *Resolver) {
		if ns := strings.TrimSpace(namespace); ns != "" {
			r.namespace = ns
		}
	}
}

// New constructs a Resolver. The codec must be the planner's codec so link
// resolution matches the emitted page set.
func New(codec routing.Codec, store interfaces.TranslationStore, navigator interfaces.Navigator, session interfaces.SessionState, opts ...Option) (*Resolver, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if navigator == nil {
		return nil, ErrNavigatorRequired
	}
	if session == nil {
		session = NewMemorySession()
	}

	r := &Resolver{
		codec:     codec,
		store:     store,
		navigator: navigator,
		session:   session,
		logger:    logging.NoOp(),
		namespace: interfaces.DefaultNamespace,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ResolveLink localizes an in-page navigation target. An empty target
// language keeps the current one; a code outside the configured set silently
// falls back to the default language, since navigation must never fail on a
// malformed language prop.
func (r *Resolver) ResolveLink(to string, targetLanguage string, current routing.Context) string {
	language := strings.TrimSpace(targetLanguage)
	switch {
	case language == "":
		language = current.Language
	case !current.Supports(language):
		language = current.DefaultLanguage
	}
	return r.codec.Localize(to, language, current.DefaultLanguage)
}

// ChangeLanguage swaps the active resource bundle to language and, unless to
// is empty, navigates to that path in the new language (to defaults to the
// current original path via DefaultTarget). The call settles only when both
// the bundle swap and the navigation finished; when navigation cannot run the
// returned error states that the bundle swap alone completed.
func (r *Resolver) ChangeLanguage(ctx context.Context, current routing.Context, language, to string) error {
	seq := r.calls.Add(1)

	language = strings.TrimSpace(language)
	if language == "" || !current.Supports(language) {
		language = current.DefaultLanguage
	}

	if err := r.activate(ctx, language); err != nil {
		return fmt.Errorf("navigation: bundle swap to %s: %w", language, err)
	}
	r.session.SetChosenLanguage(language)

	if strings.TrimSpace(to) == "" {
		return nil
	}

	if r.calls.Load() != seq {
		r.logger.Debug("navigation.change_language.superseded", "language", language)
		return ErrSuperseded
	}

	target := r.ResolveLink(to, language, current)
	if err := r.navigator.Navigate(ctx, target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNavigationIncomplete, target, err)
	}

	r.logger.Info("navigation.language_changed", "language", language, "path", target)
	return nil
}

// DefaultTarget returns the path ChangeLanguage should navigate to when the
// caller does not name one: the current page in its original form.
func (r *Resolver) DefaultTarget(current routing.Context) string {
	return current.OriginalPath
}

// OnMount runs the first-visit redirect decision for a freshly mounted page
// record. It navigates at most once per session: an earlier automatic
// redirect or an explicit language choice disables it, which keeps a manual
// switch back to the default language from looping.
func (r *Resolver) OnMount(ctx context.Context, record planner.Record) (bool, error) {
	if !record.Redirect || record.Routing.Routed {
		return false, nil
	}
	if r.session.Redirected() || r.session.ChosenLanguage() != "" {
		return false, nil
	}

	// The decision itself is consumed for this session, whatever its outcome.
	r.session.MarkRedirected()

	var prefs []string
	if r.prefs != nil {
		prefs = r.prefs.Preferences()
	}

	picked := negotiate.Pick(prefs, record.Routing.Languages, record.Routing.DefaultLanguage)
	if picked == record.Routing.DefaultLanguage {
		return false, nil
	}

	target := r.ResolveLink(record.Routing.OriginalPath, picked, record.Routing)
	if err := r.navigator.Navigate(ctx, target); err != nil {
		return false, fmt.Errorf("navigation: redirect to %s: %w", target, err)
	}

	r.logger.Info("navigation.redirected", "language", picked, "path", target)
	return true, nil
}

func (r *Resolver) activate(ctx context.Context, language string) error {
	if activator, ok := r.store.(interfaces.BundleActivator); ok {
		return activator.Activate(ctx, language, r.namespace)
	}
	_, err := r.store.Load(ctx, language, r.namespace)
	return err
}
