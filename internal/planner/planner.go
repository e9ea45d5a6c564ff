// Package planner expands language-neutral page definitions into per-language
// page records. Planning happens once per build; the emitted records carry
// everything the runtime needs (routing context, resource bundle) so no state
// is shared between build and request time.
package planner

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/routing"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
	"github.com/goliatone/go-localize/pkg/interfaces"
	"github.com/google/uuid"

	"github.com/goliatone/go-localize/internal/identity"
)

// Definition is one language-neutral page as declared by the site author.
type Definition struct {
	// Path is the canonical original path, rooted at "/".
	Path string
	// Component references the page implementation shipped to the client.
	Component string
	// Context is author-supplied page context threaded through untouched.
	Context map[string]any
	// Namespace selects the translation resource namespace; empty uses the
	// configured default.
	Namespace string
}

// Record is one emitted page variant: a localized path plus the routing
// context and resource bundle the rendered page ships with.
type Record struct {
	ID          uuid.UUID
	Component   string
	PageContext map[string]any
	Bundle      interfaces.Bundle
	Routing     routing.Context
	// Redirect marks the record that runs the browser-language redirect on
	// mount. At most one record per original path carries it.
	Redirect bool
}

// Planner owns page record creation. It is safe for concurrent use; each
// Plan call touches only its own inputs.
type Planner struct {
	cfg    runtimeconfig.Config
	codec  routing.Codec
	store  interfaces.TranslationStore
	logger interfaces.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger injects the planner logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New validates the configuration and constructs a Planner. Configuration
// errors are fatal here, before anything is emitted.
func New(cfg runtimeconfig.Config, store interfaces.TranslationStore, opts ...Option) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	p := &Planner{
		cfg:    cfg,
		codec:  routing.Codec{RoutedDefault: cfg.RoutedDefault},
		store:  store,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Codec exposes the codec the planner localizes with, so runtime consumers
// resolve links with identical behavior.
func (p *Planner) Codec() routing.Codec {
	return p.codec
}

// Config returns the validated configuration.
func (p *Planner) Config() runtimeconfig.Config {
	return p.cfg
}

// Plan expands one definition into one record per configured language, in
// declared order. Resource bundles load concurrently per language; emission
// waits for every load so the output is deterministic across runs.
func (p *Planner) Plan(ctx context.Context, def Definition) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	originalPath := routing.NormalizePath(def.Path)
	namespace := strings.TrimSpace(def.Namespace)
	if namespace == "" {
		namespace = p.cfg.NormalizedNamespace()
	}

	bundles, err := p.loadBundles(ctx, namespace)
	if err != nil {
		return nil, err
	}

	defaultLanguage := strings.TrimSpace(p.cfg.DefaultLanguage)
	records := make([]Record, 0, len(p.cfg.Languages)+1)

	for _, language := range p.cfg.Languages {
		language = strings.TrimSpace(language)
		localized := p.codec.Localize(originalPath, language, defaultLanguage)
		routed := language != defaultLanguage || p.cfg.RoutedDefault

		record := Record{
			ID:          identity.RecordUUID(localized),
			Component:   def.Component,
			PageContext: cloneContext(def.Context),
			Bundle:      bundles[language],
			Routing: routing.NewContext(
				language,
				p.cfg.Languages,
				defaultLanguage,
				originalPath,
				localized,
				routed,
				strings.TrimSpace(p.cfg.SiteURL),
			),
		}

		// The unrouted default-language record doubles as the redirect page;
		// emitting a second record at the same path would break uniqueness.
		if p.cfg.Redirect && language == defaultLanguage && !routed {
			record.Redirect = true
		}

		records = append(records, record)
	}

	if p.cfg.Redirect && p.cfg.RoutedDefault {
		records = append(records, p.syntheticRedirect(def, originalPath, defaultLanguage, bundles[defaultLanguage]))
	}

	p.logger.Debug("planner.page.planned",
		"original_path", originalPath,
		"records", len(records),
	)

	return records, nil
}

// PlanSite plans every definition, fanning out across a bounded worker pool,
// and enforces the localized-path uniqueness invariant across the full set.
// Output order follows definition order, then language declaration order.
func (p *Planner) PlanSite(ctx context.Context, defs []Definition) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, nil
	}

	type result struct {
		records []Record
		err     error
	}

	results := make([]result, len(defs))
	indexes := make(chan int)

	workers := p.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(defs) {
		workers = len(defs)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				records, err := p.Plan(ctx, defs[idx])
				results[idx] = result{records: records, err: err}
			}
		}()
	}

	for idx := range defs {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	seen := make(map[string]string)
	var out []Record
	for _, res := range results {
		if res.err != nil {
			return nil, res.err
		}
		for _, record := range res.records {
			path := record.Routing.Path
			if first, dup := seen[path]; dup {
				return nil, &PathCollisionError{
					LocalizedPath:  path,
					FirstOriginal:  first,
					SecondOriginal: record.Routing.OriginalPath,
				}
			}
			seen[path] = record.Routing.OriginalPath
			out = append(out, record)
		}
	}

	p.logger.Info("planner.site.planned", "pages", len(defs), "records", len(out))
	return out, nil
}

// syntheticRedirect emits the redirect-only record served at the bare
// original path when the default language is routed.
func (p *Planner) syntheticRedirect(def Definition, originalPath, defaultLanguage string, bundle interfaces.Bundle) Record {
	return Record{
		ID:          identity.RecordUUID(originalPath),
		Component:   def.Component,
		PageContext: cloneContext(def.Context),
		Bundle:      bundle,
		Routing: routing.NewContext(
			defaultLanguage,
			p.cfg.Languages,
			defaultLanguage,
			originalPath,
			originalPath,
			false,
			strings.TrimSpace(p.cfg.SiteURL),
		),
		Redirect: true,
	}
}

func (p *Planner) loadBundles(ctx context.Context, namespace string) (map[string]interfaces.Bundle, error) {
	bundles := make(map[string]interfaces.Bundle, len(p.cfg.Languages))
	errs := make([]error, len(p.cfg.Languages))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for i, language := range p.cfg.Languages {
		wg.Add(1)
		go func(i int, language string) {
			defer wg.Done()
			bundle, err := p.store.Load(ctx, strings.TrimSpace(language), namespace)
			if err != nil {
				errs[i] = err
				return
			}
			mu.Lock()
			bundles[strings.TrimSpace(language)] = bundle
			mu.Unlock()
		}(i, language)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return bundles, nil
}

func cloneContext(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
