package planner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/routing"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// ErrContentDirRequired indicates source discovery is enabled without a content directory.
var ErrContentDirRequired = errors.New("planner: content directory is required")

// Source discovers page definitions from markdown files with YAML
// frontmatter. The frontmatter declares routing metadata (path, namespace,
// component); the rendered body travels in the page context.
type Source struct {
	dir     string
	pattern string
	engine  goldmark.Markdown
	logger  interfaces.Logger
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithSourceLogger injects the source discovery logger.
func WithSourceLogger(logger interfaces.Logger) SourceOption {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSource constructs a markdown-backed definition source.
func NewSource(cfg runtimeconfig.SourcesConfig, opts ...SourceOption) (*Source, error) {
	dir := strings.TrimSpace(cfg.ContentDir)
	if dir == "" {
		return nil, ErrContentDirRequired
	}

	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}

	s := &Source{
		dir:     dir,
		pattern: pattern,
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type sourceFrontMatter struct {
	Title     string         `yaml:"title"`
	Path      string         `yaml:"path"`
	Slug      string         `yaml:"slug"`
	Component string         `yaml:"component"`
	Namespace string         `yaml:"namespace"`
	Draft     bool           `yaml:"draft"`
	Custom    map[string]any `yaml:",inline"`
}

// LoadDefinitions walks the content directory and parses every matching file
// into a Definition. Output is sorted by original path so planning input is
// stable across runs.
func (s *Source) LoadDefinitions(ctx context.Context) ([]Definition, error) {
	if _, err := os.Stat(s.dir); err != nil {
		return nil, fmt.Errorf("planner: content directory %q: %w", s.dir, err)
	}

	var defs []Definition
	err := filepath.WalkDir(s.dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if entry.IsDir() {
			return nil
		}
		matched, matchErr := filepath.Match(s.pattern, entry.Name())
		if matchErr != nil {
			return matchErr
		}
		if !matched {
			return nil
		}

		def, ok, parseErr := s.parseFile(path)
		if parseErr != nil {
			return parseErr
		}
		if ok {
			defs = append(defs, def)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Path < defs[j].Path
	})

	s.logger.Debug("planner.sources.loaded", "dir", s.dir, "definitions", len(defs))
	return defs, nil
}

func (s *Source) parseFile(path string) (Definition, bool, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, false, fmt.Errorf("planner: read source %q: %w", path, err)
	}

	var meta sourceFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Definition{}, false, fmt.Errorf("planner: parse frontmatter %q: %w", path, err)
	}

	if meta.Draft {
		s.logger.Debug("planner.sources.skip_draft", "path", path)
		return Definition{}, false, nil
	}

	originalPath, err := s.resolvePath(path, meta)
	if err != nil {
		return Definition{}, false, err
	}

	var rendered bytes.Buffer
	if err := s.engine.Convert(body, &rendered); err != nil {
		return Definition{}, false, fmt.Errorf("planner: render %q: %w", path, err)
	}

	pageContext := make(map[string]any, len(meta.Custom)+2)
	for key, value := range meta.Custom {
		pageContext[key] = value
	}
	if meta.Title != "" {
		pageContext["title"] = meta.Title
	}
	pageContext["body_html"] = rendered.String()

	return Definition{
		Path:      originalPath,
		Component: strings.TrimSpace(meta.Component),
		Context:   pageContext,
		Namespace: strings.TrimSpace(meta.Namespace),
	}, true, nil
}

// resolvePath prefers an explicit frontmatter path, then a declared slug,
// then the file name. Derived segments go through slug normalization.
func (s *Source) resolvePath(path string, meta sourceFrontMatter) (string, error) {
	if declared := strings.TrimSpace(meta.Path); declared != "" {
		return routing.NormalizePath(declared), nil
	}

	candidate := strings.TrimSpace(meta.Slug)
	if candidate == "" {
		base := filepath.Base(path)
		candidate = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if candidate == "index" {
		return "/", nil
	}

	normalized, err := slug.Normalize(candidate)
	if err != nil {
		return "", fmt.Errorf("planner: derive path for %q: %w", path, err)
	}
	return "/" + normalized, nil
}
