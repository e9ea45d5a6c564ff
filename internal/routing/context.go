package routing

import "strings"

// Context is the read-only language/path metadata attached to every rendered
// page. A language switch produces a new Context for a different page record;
// nothing mutates a Context after the planner creates it.
type Context struct {
	Language        string
	Languages       []string
	DefaultLanguage string
	OriginalPath    string
	Path            string
	Routed          bool
	SiteURL         string
}

// NewContext builds a Context with a defensive copy of the language set.
func NewContext(language string, languages []string, defaultLanguage, originalPath, path string, routed bool, siteURL string) Context {
	return Context{
		Language:        language,
		Languages:       cloneLanguages(languages),
		DefaultLanguage: defaultLanguage,
		OriginalPath:    originalPath,
		Path:            path,
		Routed:          routed,
		SiteURL:         siteURL,
	}
}

// Supports reports whether the given code is a member of the configured
// language set.
func (c Context) Supports(language string) bool {
	language = strings.TrimSpace(language)
	if language == "" {
		return false
	}
	for _, candidate := range c.Languages {
		if candidate == language {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no mutable state with the receiver.
func (c Context) Clone() Context {
	clone := c
	clone.Languages = cloneLanguages(c.Languages)
	return clone
}

func cloneLanguages(languages []string) []string {
	if languages == nil {
		return nil
	}
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}
