package meta

import (
	"strings"
	"testing"

	"github.com/goliatone/go-localize/internal/planner"
	"github.com/goliatone/go-localize/internal/routing"
)

func TestAlternateLinks(t *testing.T) {
	emitter := NewEmitter(routing.Codec{})
	ctx := routing.NewContext("en", []string{"en", "es"}, "en", "/about", "/about", false, "https://x.test")

	links := emitter.AlternateLinks(ctx)
	want := []AlternateLink{
		{Lang: "en", URL: "https://x.test/about"},
		{Lang: "es", URL: "https://x.test/es/about"},
		{Lang: XDefault, URL: "https://x.test/about"},
	}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %d", len(want), len(links))
	}
	for i := range want {
		if links[i] != want[i] {
			t.Fatalf("link %d = %+v, want %+v", i, links[i], want[i])
		}
	}
}

func TestAlternateLinksWithoutSiteURL(t *testing.T) {
	emitter := NewEmitter(routing.Codec{})
	ctx := routing.NewContext("en", []string{"en", "es"}, "en", "/about", "/about", false, "")

	if links := emitter.AlternateLinks(ctx); links != nil {
		t.Fatalf("expected no links without a site url, got %v", links)
	}
}

func TestAlternateLinksRoutedDefault(t *testing.T) {
	emitter := NewEmitter(routing.Codec{RoutedDefault: true})
	ctx := routing.NewContext("en", []string{"en", "es"}, "en", "/about", "/en/about", true, "https://x.test")

	links := emitter.AlternateLinks(ctx)
	if links[0].URL != "https://x.test/en/about" {
		t.Fatalf("routed default must prefix the default alternate, got %q", links[0].URL)
	}
	if links[len(links)-1].URL != "https://x.test/en/about" {
		t.Fatalf("x-default must point at the default-language URL, got %q", links[len(links)-1].URL)
	}
}

func sitemapRecords() []planner.Record {
	languages := []string{"en", "es"}
	return []planner.Record{
		{Routing: routing.NewContext("en", languages, "en", "/about", "/about", false, "https://x.test")},
		{Routing: routing.NewContext("es", languages, "en", "/about", "/es/about", true, "https://x.test")},
	}
}

func TestBuildSitemap(t *testing.T) {
	emitter := NewEmitter(routing.Codec{})

	output := emitter.BuildSitemap("https://x.test", sitemapRecords(), SitemapOptions{})
	if !strings.Contains(output, "<loc>https://x.test/about</loc>") {
		t.Fatalf("missing default entry:\n%s", output)
	}
	if !strings.Contains(output, "<loc>https://x.test/es/about</loc>") {
		t.Fatalf("missing localized entry:\n%s", output)
	}
}

func TestBuildSitemapOriginalOnlyWithAlternates(t *testing.T) {
	emitter := NewEmitter(routing.Codec{})

	output := emitter.BuildSitemap("https://x.test", sitemapRecords(), SitemapOptions{
		OriginalOnly: true,
		Alternates:   true,
	})
	if strings.Contains(output, "<loc>https://x.test/es/about</loc>") {
		t.Fatalf("routed record must be filtered:\n%s", output)
	}
	if !strings.Contains(output, `hreflang="es" href="https://x.test/es/about"`) {
		t.Fatalf("missing alternate link:\n%s", output)
	}
	if !strings.Contains(output, `hreflang="x-default"`) {
		t.Fatalf("missing x-default alternate:\n%s", output)
	}
}

func TestBuildSitemapRequiresSiteURL(t *testing.T) {
	emitter := NewEmitter(routing.Codec{})
	if output := emitter.BuildSitemap("  ", sitemapRecords(), SitemapOptions{}); output != "" {
		t.Fatalf("expected empty output without site url")
	}
}

func TestBuildRobots(t *testing.T) {
	output := BuildRobots("https://x.test", true)
	if !strings.Contains(output, "Sitemap: https://x.test/sitemap.xml") {
		t.Fatalf("missing sitemap pointer:\n%s", output)
	}
	if !strings.HasPrefix(output, "User-agent: *\n") {
		t.Fatalf("unexpected robots output:\n%s", output)
	}
}
