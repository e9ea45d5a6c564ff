package meta

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-localize/internal/planner"
)

// SitemapOptions controls sitemap emission.
type SitemapOptions struct {
	// OriginalOnly keeps only unrouted records, one entry per logical page.
	OriginalOnly bool
	// Alternates embeds xhtml:link alternate entries per URL.
	Alternates bool
}

// BuildSitemap renders a sitemap for the planned record set. Entries are
// deduplicated by location and sorted so output is stable across builds.
func (e Emitter) BuildSitemap(siteURL string, records []planner.Record, opts SitemapOptions) string {
	base := strings.TrimRight(strings.TrimSpace(siteURL), "/")
	if base == "" {
		return ""
	}

	type entry struct {
		location   string
		alternates []AlternateLink
	}

	entries := make([]entry, 0, len(records))
	seen := map[string]struct{}{}
	for _, record := range records {
		if opts.OriginalOnly && record.Routing.Routed {
			continue
		}
		location := base + record.Routing.Path
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}

		item := entry{location: location}
		if opts.Alternates {
			item.alternates = e.AlternateLinks(record.Routing)
		}
		entries = append(entries, item)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].location < entries[j].location
	})

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	if opts.Alternates {
		builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n")
	} else {
		builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	}
	for _, item := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", item.location))
		for _, alternate := range item.alternates {
			builder.WriteString(fmt.Sprintf("    <xhtml:link rel=\"alternate\" hreflang=\"%s\" href=\"%s\"/>\n",
				alternate.Lang, alternate.URL))
		}
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

// BuildRobots renders a permissive robots.txt, optionally pointing at the sitemap.
func BuildRobots(siteURL string, includeSitemap bool) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	if includeSitemap {
		base := strings.TrimRight(strings.TrimSpace(siteURL), "/")
		if base != "" {
			builder.WriteString("\n")
			builder.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", base))
		}
	}
	return builder.String()
}
