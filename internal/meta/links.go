// Package meta formats language/path pairs for page-head renderers and the
// sitemap. It owns no routing logic; every path comes from the shared codec.
package meta

import (
	"strings"

	"github.com/goliatone/go-localize/internal/routing"
)

// XDefault is the hreflang value for the language-neutral alternate entry.
const XDefault = "x-default"

// AlternateLink is one (language, absolute URL) pair for a page head.
type AlternateLink struct {
	Lang string
	URL  string
}

// Emitter formats alternate-link lists using the planner's codec.
type Emitter struct {
	codec routing.Codec
}

// NewEmitter constructs an Emitter around the shared codec.
func NewEmitter(codec routing.Codec) Emitter {
	return Emitter{codec: codec}
}

// AlternateLinks returns one entry per configured language plus an x-default
// entry pointing at the default-language URL, in declaration order. Without a
// configured site URL nothing is emitted; that is not an error.
func (e Emitter) AlternateLinks(ctx routing.Context) []AlternateLink {
	base := strings.TrimRight(strings.TrimSpace(ctx.SiteURL), "/")
	if base == "" {
		return nil
	}

	links := make([]AlternateLink, 0, len(ctx.Languages)+1)
	for _, language := range ctx.Languages {
		links = append(links, AlternateLink{
			Lang: language,
			URL:  base + e.codec.Localize(ctx.OriginalPath, language, ctx.DefaultLanguage),
		})
	}
	links = append(links, AlternateLink{
		Lang: XDefault,
		URL:  base + e.codec.Localize(ctx.OriginalPath, ctx.DefaultLanguage, ctx.DefaultLanguage),
	})
	return links
}
