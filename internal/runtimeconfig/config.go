package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLanguagesRequired indicates the language set is empty.
var ErrLanguagesRequired = errors.New("localize config: at least one language is required")

// ErrLanguageDuplicated indicates the language set declares a code twice.
var ErrLanguageDuplicated = errors.New("localize config: language declared twice")

// ErrLanguageInvalid indicates a language code is blank or contains a path separator.
var ErrLanguageInvalid = errors.New("localize config: language code is invalid")

// ErrDefaultLanguageRequired indicates no default language was configured.
var ErrDefaultLanguageRequired = errors.New("localize config: default language is required")

// ErrDefaultLanguageNotMember indicates the default language is missing from the language set.
var ErrDefaultLanguageNotMember = errors.New("localize config: default language must be a member of the language set")

// ErrResourcePathRequired indicates translations are enabled without a resource directory.
var ErrResourcePathRequired = errors.New("localize config: translation resource path is required")

var ErrSiteURLInvalid = errors.New("localize config: site url must not end with a slash")
var ErrWorkersInvalid = errors.New("localize config: workers must be zero or positive")
var ErrLoggingLevelInvalid = errors.New("localize config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("localize config: logging format is invalid")

// Config aggregates the plugin configuration consumed once at build start.
// Fields intentionally use simple types so host applications can construct it
// from whatever configuration surface they already carry.
type Config struct {
	// ResourcePath is the root directory of translation resources, laid out
	// as <ResourcePath>/<language>/<namespace>.json.
	ResourcePath string
	// Languages is the ordered language set; declaration order becomes
	// display order.
	Languages []string
	// DefaultLanguage must be a member of Languages.
	DefaultLanguage string
	// Redirect enables the first-visit browser-language redirect on the
	// unrouted default-language page.
	Redirect bool
	// RoutedDefault prefixes the default language like any other language.
	RoutedDefault bool
	// SiteURL is the absolute site origin used for alternate links and the
	// sitemap. Optional; meta emission is skipped when empty.
	SiteURL string
	// Namespace is the default resource namespace for pages that do not
	// declare one.
	Namespace string
	// Workers bounds planner fan-out across pages. Zero selects a sensible
	// default.
	Workers int
	// I18NextOptions is passed through to the translation runtime untouched.
	I18NextOptions map[string]any

	Sources SourcesConfig
	Logging LoggingConfig
}

// SourcesConfig controls markdown page-definition discovery.
type SourcesConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
}

// LoggingConfig mirrors the go-logger adapter options.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the baseline configuration: redirect enabled,
// unrouted default language, the standard namespace.
func DefaultConfig() Config {
	return Config{
		Languages:       []string{"en"},
		DefaultLanguage: "en",
		Redirect:        true,
		Namespace:       "translation",
		Sources: SourcesConfig{
			ContentDir: "content",
			Pattern:    "*.md",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate performs the fatal configuration checks. It runs before any page
// record is emitted so a bad configuration never yields a partial page set.
func (cfg Config) Validate() error {
	if len(cfg.Languages) == 0 {
		return ErrLanguagesRequired
	}

	seen := make(map[string]struct{}, len(cfg.Languages))
	for _, language := range cfg.Languages {
		code := strings.TrimSpace(language)
		if code == "" || strings.ContainsAny(code, "/ ") {
			return fmt.Errorf("%w: %q", ErrLanguageInvalid, language)
		}
		if _, dup := seen[code]; dup {
			return fmt.Errorf("%w: %s", ErrLanguageDuplicated, code)
		}
		seen[code] = struct{}{}
	}

	defaultLanguage := strings.TrimSpace(cfg.DefaultLanguage)
	if defaultLanguage == "" {
		return ErrDefaultLanguageRequired
	}
	if _, ok := seen[defaultLanguage]; !ok {
		return fmt.Errorf("%w: %s", ErrDefaultLanguageNotMember, defaultLanguage)
	}

	if site := strings.TrimSpace(cfg.SiteURL); site != "" && strings.HasSuffix(site, "/") {
		return fmt.Errorf("%w: %s", ErrSiteURLInvalid, site)
	}
	if cfg.Workers < 0 {
		return ErrWorkersInvalid
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}

	return nil
}

// NormalizedNamespace returns the configured namespace or the standard one.
func (cfg Config) NormalizedNamespace() string {
	if ns := strings.TrimSpace(cfg.Namespace); ns != "" {
		return ns
	}
	return "translation"
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
