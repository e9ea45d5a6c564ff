package localize

import (
	"github.com/goliatone/go-localize/internal/runtimeconfig"
)

// Config captures the runtime configuration for the localize module.
type Config = runtimeconfig.Config

// SourcesConfig configures markdown-backed page definitions.
type SourcesConfig = runtimeconfig.SourcesConfig

// LoggingConfig configures the go-logger backed provider.
type LoggingConfig = runtimeconfig.LoggingConfig

// DefaultConfig returns a single-language configuration with redirects
// enabled. Hosts extend it with their language set and resource path.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
