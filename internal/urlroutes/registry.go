// Package urlroutes registers localized route groups with go-urlkit so hosts
// can build absolute URLs for every language variant of a named route.
package urlroutes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-localize/internal/routing"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
)

const rootGroupName = "site"

// ErrRoutesRequired indicates the registry was constructed without routes.
var ErrRoutesRequired = errors.New("urlroutes: at least one route is required")

// Registry exposes named routes through a urlkit RouteManager, one route group
// per routed language. The default language uses the root group unless the
// codec routes it.
type Registry struct {
	manager *urlkit.RouteManager
	cfg     runtimeconfig.Config
	codec   routing.Codec
	routes  map[string]string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// New builds a registry from a map of route name to original path. Paths are
// normalized before registration.
func New(cfg runtimeconfig.Config, codec routing.Codec, routes map[string]string) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, ErrRoutesRequired
	}

	normalized := make(map[string]string, len(routes))
	for name, path := range routes {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("urlroutes: route name must not be blank")
		}
		normalized[name] = routing.NormalizePath(path)
	}

	root := urlkit.GroupConfig{
		Name:    rootGroupName,
		BaseURL: cfg.SiteURL,
		Paths:   normalized,
	}
	for _, language := range cfg.Languages {
		if language == cfg.DefaultLanguage && !codec.RoutedDefault {
			continue
		}
		root.Groups = append(root.Groups, urlkit.GroupConfig{
			Name:  language,
			Path:  "/" + language,
			Paths: normalized,
		})
	}

	return &Registry{
		manager:    urlkit.NewRouteManager(&urlkit.Config{Groups: []urlkit.GroupConfig{root}}),
		cfg:        cfg,
		codec:      codec,
		routes:     normalized,
		groupCache: make(map[string]*urlkit.Group),
	}, nil
}

// Routes returns the registered route names sorted alphabetically.
func (r *Registry) Routes() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// URL builds the absolute URL for a route in the given language. Unknown
// languages fall back to the default language, mirroring link resolution.
func (r *Registry) URL(language, route string, params map[string]any) (string, error) {
	language = strings.TrimSpace(language)
	if !r.supports(language) {
		language = r.cfg.DefaultLanguage
	}

	groupPath := rootGroupName
	if language != r.cfg.DefaultLanguage || r.codec.RoutedDefault {
		groupPath = rootGroupName + "." + language
	}

	group, err := r.groupForPath(groupPath)
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}
	return builder.Build()
}

func (r *Registry) supports(language string) bool {
	for _, candidate := range r.cfg.Languages {
		if candidate == language {
			return true
		}
	}
	return false
}

func (r *Registry) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	current, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("urlroutes: route group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urlroutes: route %q not registered: %v", route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("urlroutes: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urlroutes: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("urlroutes: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urlroutes: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
