// Package localize turns language-neutral page definitions into a fully
// localized page set: one record per language with deterministic paths, a
// translation bundle, and the routing context the rendered page ships with.
// At request time the same path codec resolves links, language switches, and
// the first-visit browser-language redirect.
package localize

import (
	"context"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/logging/gologger"
	"github.com/goliatone/go-localize/internal/meta"
	"github.com/goliatone/go-localize/internal/navigation"
	"github.com/goliatone/go-localize/internal/planner"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/routing"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
	"github.com/goliatone/go-localize/internal/translations"
	"github.com/goliatone/go-localize/internal/urlroutes"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Definition exports the language-neutral page definition.
type Definition = planner.Definition

// Record exports the emitted page record.
type Record = planner.Record

// RoutingContext exports the per-page routing context.
type RoutingContext = routing.Context

// Bundle exports the flattened translation bundle.
type Bundle = interfaces.Bundle

// AlternateLink exports one hreflang alternate link.
type AlternateLink = meta.AlternateLink

// SitemapOptions exports the sitemap emission options.
type SitemapOptions = meta.SitemapOptions

// PageRecord exports the persisted manifest row.
type PageRecord = records.PageRecord

// Repository exports the manifest storage contract.
type Repository = records.Repository

// Module is the top level localize runtime façade. Build-time consumers use
// the planner and emitter; request-time consumers use the resolver.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider

	store     interfaces.TranslationStore
	planner   *planner.Planner
	source    *planner.Source
	emitter   meta.Emitter
	repo      records.Repository
	routes    *urlroutes.Registry
	resolver  *navigation.Resolver
	navigator interfaces.Navigator
	session   interfaces.SessionState
	prefs     interfaces.PreferenceReader
	routeSet  map[string]string
}

// Option overrides one module collaborator during construction.
type Option func(*Module)

// WithLoggerProvider injects the logger provider. Defaults to a go-logger
// backed provider configured from the Logging section.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithTranslationStore replaces the filesystem translation store.
func WithTranslationStore(store interfaces.TranslationStore) Option {
	return func(m *Module) {
		m.store = store
	}
}

// WithRepository injects the build manifest store. Defaults to in-memory.
func WithRepository(repo records.Repository) Option {
	return func(m *Module) {
		m.repo = repo
	}
}

// WithNavigator wires the host navigation callback, enabling the resolver.
func WithNavigator(navigator interfaces.Navigator) Option {
	return func(m *Module) {
		m.navigator = navigator
	}
}

// WithSessionState injects the per-session redirect/choice state.
func WithSessionState(session interfaces.SessionState) Option {
	return func(m *Module) {
		m.session = session
	}
}

// WithPreferenceReader injects the browser language preference source.
func WithPreferenceReader(prefs interfaces.PreferenceReader) Option {
	return func(m *Module) {
		m.prefs = prefs
	}
}

// WithRoutes registers named routes (name to original path) with the urlkit
// backed route registry.
func WithRoutes(routes map[string]string) Option {
	return func(m *Module) {
		m.routeSet = routes
	}
}

// New validates the configuration and assembles the module. Configuration
// errors are fatal; nothing is emitted from a bad configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.store == nil {
		if cfg.ResourcePath == "" {
			return nil, runtimeconfig.ErrResourcePathRequired
		}
		store := translations.NewFSStore(cfg.ResourcePath,
			translations.WithLogger(logging.TranslationsLogger(m.provider)))
		if err := store.CheckRoot(); err != nil {
			return nil, err
		}
		m.store = store
	}

	p, err := planner.New(cfg, m.store, planner.WithLogger(logging.PlannerLogger(m.provider)))
	if err != nil {
		return nil, err
	}
	m.planner = p
	m.emitter = meta.NewEmitter(p.Codec())

	if cfg.Sources.Enabled {
		source, err := planner.NewSource(cfg.Sources,
			planner.WithSourceLogger(logging.PlannerLogger(m.provider)))
		if err != nil {
			return nil, err
		}
		m.source = source
	}

	if m.repo == nil {
		m.repo = records.NewMemoryRepository()
	}

	if len(m.routeSet) > 0 {
		registry, err := urlroutes.New(cfg, p.Codec(), m.routeSet)
		if err != nil {
			return nil, err
		}
		m.routes = registry
	}

	if m.navigator != nil {
		resolverOpts := []navigation.Option{
			navigation.WithLogger(logging.NavigationLogger(m.provider)),
			navigation.WithNamespace(cfg.NormalizedNamespace()),
		}
		if m.prefs != nil {
			resolverOpts = append(resolverOpts, navigation.WithPreferenceReader(m.prefs))
		}
		resolver, err := navigation.New(p.Codec(), m.store, m.navigator, m.session, resolverOpts...)
		if err != nil {
			return nil, err
		}
		m.resolver = resolver
	}

	return m, nil
}

// Config returns the validated configuration.
func (m *Module) Config() Config {
	return m.cfg
}

// Planner returns the page planner.
func (m *Module) Planner() *planner.Planner {
	return m.planner
}

// Store returns the translation store.
func (m *Module) Store() interfaces.TranslationStore {
	return m.store
}

// TranslationOptions returns the passthrough options for the client
// translation runtime, untouched.
func (m *Module) TranslationOptions() map[string]any {
	return m.cfg.I18NextOptions
}

// Records returns the build manifest store.
func (m *Module) Records() records.Repository {
	return m.repo
}

// Routes returns the urlkit route registry, or nil when no routes were
// registered.
func (m *Module) Routes() *urlroutes.Registry {
	return m.routes
}

// Resolver returns the navigation resolver, or nil when no navigator was
// wired.
func (m *Module) Resolver() *navigation.Resolver {
	return m.resolver
}

// Localize maps an original path to its localized form for the language.
func (m *Module) Localize(originalPath, language string) string {
	return m.planner.Codec().Localize(originalPath, language, m.cfg.DefaultLanguage)
}

// Delocalize recovers the original path and language from a localized path.
// The language is empty when the path carries no prefix.
func (m *Module) Delocalize(localizedPath string) (string, string) {
	return m.planner.Codec().Delocalize(localizedPath, m.cfg.Languages)
}

// Plan expands one definition into per-language records.
func (m *Module) Plan(ctx context.Context, def Definition) ([]Record, error) {
	return m.planner.Plan(ctx, def)
}

// PlanSite expands every definition and checks for cross-page collisions.
func (m *Module) PlanSite(ctx context.Context, defs []Definition) ([]Record, error) {
	return m.planner.PlanSite(ctx, defs)
}

// PlanFromSources loads markdown page definitions and plans the full site.
// Requires cfg.Sources.Enabled.
func (m *Module) PlanFromSources(ctx context.Context) ([]Record, error) {
	if m.source == nil {
		return nil, planner.ErrContentDirRequired
	}
	defs, err := m.source.LoadDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	return m.planner.PlanSite(ctx, defs)
}

// PersistRecords writes planned records to the build manifest.
func (m *Module) PersistRecords(ctx context.Context, planned []Record) error {
	for _, record := range planned {
		if _, err := m.repo.Save(ctx, records.FromPlan(record)); err != nil {
			return err
		}
	}
	return nil
}

// AlternateLinks returns the hreflang link set for a routing context.
func (m *Module) AlternateLinks(rc RoutingContext) []AlternateLink {
	return m.emitter.AlternateLinks(rc)
}

// Sitemap renders the sitemap XML for the planned records.
func (m *Module) Sitemap(planned []Record, opts SitemapOptions) string {
	return m.emitter.BuildSitemap(m.cfg.SiteURL, planned, opts)
}

// Robots renders a permissive robots.txt pointing at the sitemap.
func (m *Module) Robots() string {
	return meta.BuildRobots(m.cfg.SiteURL, true)
}
