package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-localize/internal/runtimeconfig"
	"github.com/goliatone/go-localize/internal/translations"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

func testConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Languages = []string{"en", "es", "de"}
	cfg.DefaultLanguage = "en"
	cfg.SiteURL = "https://x.test"
	return cfg
}

func testStore() *translations.MemoryStore {
	store := translations.NewMemoryStore()
	store.Add("en", "", map[string]string{"greeting": "Hello"})
	store.Add("es", "", map[string]string{"greeting": "Hola"})
	store.Add("de", "", map[string]string{"greeting": "Hallo"})
	return store
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLanguage = "fr"

	if _, err := New(cfg, testStore()); !errors.Is(err, runtimeconfig.ErrDefaultLanguageNotMember) {
		t.Fatalf("expected config error, got %v", err)
	}
	if _, err := New(testConfig(), nil); !errors.Is(err, ErrStoreRequired) {
		t.Fatalf("expected ErrStoreRequired, got %v", err)
	}
}

func TestPlanEmitsOneRecordPerLanguage(t *testing.T) {
	p, err := New(testConfig(), testStore())
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}

	records, err := p.Plan(context.Background(), Definition{Path: "/about", Component: "about"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	expected := []struct {
		path     string
		language string
		routed   bool
	}{
		{"/about", "en", false},
		{"/es/about", "es", true},
		{"/de/about", "de", true},
	}
	for i, want := range expected {
		got := records[i]
		if got.Routing.Path != want.path || got.Routing.Language != want.language || got.Routing.Routed != want.routed {
			t.Fatalf("record %d = {%s %s %v}, want {%s %s %v}",
				i, got.Routing.Path, got.Routing.Language, got.Routing.Routed,
				want.path, want.language, want.routed)
		}
		if got.Routing.OriginalPath != "/about" {
			t.Fatalf("record %d original path = %q", i, got.Routing.OriginalPath)
		}
		if got.Routing.SiteURL != "https://x.test" {
			t.Fatalf("record %d site url = %q", i, got.Routing.SiteURL)
		}
		if got.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Fatalf("record %d has nil id", i)
		}
	}

	if records[0].Bundle["greeting"] != "Hello" || records[1].Bundle["greeting"] != "Hola" {
		t.Fatalf("bundles not attached per language")
	}
}

func TestPlanMarksUnroutedDefaultAsRedirect(t *testing.T) {
	cfg := testConfig()
	cfg.Redirect = true

	p, err := New(cfg, testStore())
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}

	records, err := p.Plan(context.Background(), Definition{Path: "/about"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	if !records[0].Redirect {
		t.Fatalf("unrouted default record must carry the redirect marker")
	}
	for _, record := range records[1:] {
		if record.Redirect {
			t.Fatalf("routed record %s must not carry the redirect marker", record.Routing.Path)
		}
	}

	// No duplicate record was emitted at the original path.
	seen := map[string]int{}
	for _, record := range records {
		seen[record.Routing.Path]++
	}
	if seen["/about"] != 1 {
		t.Fatalf("expected exactly one record at /about, got %d", seen["/about"])
	}
}

func TestPlanRedirectDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Redirect = false

	p, err := New(cfg, testStore())
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}

	records, err := p.Plan(context.Background(), Definition{Path: "/about"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	for _, record := range records {
		if record.Redirect {
			t.Fatalf("no record may carry the redirect marker when redirects are off")
		}
	}
}

func TestPlanRoutedDefaultEmitsSyntheticRedirect(t *testing.T) {
	cfg := testConfig()
	cfg.RoutedDefault = true
	cfg.Redirect = true

	p, err := New(cfg, testStore())
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}

	records, err := p.Plan(context.Background(), Definition{Path: "/about"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 3 language records + 1 redirect record, got %d", len(records))
	}

	if records[0].Routing.Path != "/en/about" || !records[0].Routing.Routed {
		t.Fatalf("routed default must prefix the default language, got %+v", records[0].Routing)
	}

	redirect := records[len(records)-1]
	if redirect.Routing.Path != "/about" || !redirect.Redirect || redirect.Routing.Routed {
		t.Fatalf("expected synthetic redirect at /about, got %+v", redirect)
	}

	seen := map[string]int{}
	for _, record := range records {
		seen[record.Routing.Path]++
	}
	for path, count := range seen {
		if count != 1 {
			t.Fatalf("path %s emitted %d times", path, count)
		}
	}
}

func TestPlanSiteUniquenessAndOrder(t *testing.T) {
	p, err := New(testConfig(), testStore())
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}

	records, err := p.PlanSite(context.Background(), []Definition{
		{Path: "/"},
		{Path: "/about"},
		{Path: "/contact"},
	})
	if err != nil {
		t.Fatalf("plan site: %v", err)
	}
	if len(records) != 9 {
		t.Fatalf("expected 9 records, got %d", len(records))
	}

	wantOrder := []string{"/", "/es/", "/de/", "/about", "/es/about", "/de/about", "/contact", "/es/contact", "/de/contact"}
	for i, want := range wantOrder {
		if records[i].Routing.Path != want {
			t.Fatalf("record %d path = %q, want %q", i, records[i].Routing.Path, want)
		}
	}
}

func TestPlanSiteReportsCollisions(t *testing.T) {
	p, err := New(testConfig(), testStore())
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}

	// "/es/about" collides with the es variant of "/about".
	_, err = p.PlanSite(context.Background(), []Definition{
		{Path: "/about"},
		{Path: "/es/about"},
	})
	if !errors.Is(err, ErrPathCollision) {
		t.Fatalf("expected collision error, got %v", err)
	}

	var collision *PathCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected PathCollisionError, got %T", err)
	}
	if collision.LocalizedPath != "/es/about" {
		t.Fatalf("collision path = %q", collision.LocalizedPath)
	}
	if collision.FirstOriginal == collision.SecondOriginal {
		t.Fatalf("expected both contending original paths, got %q twice", collision.FirstOriginal)
	}
}

type failingStore struct{}

func (failingStore) Load(context.Context, string, string) (interfaces.Bundle, error) {
	return nil, fmt.Errorf("store down")
}

func TestPlanPropagatesStoreErrors(t *testing.T) {
	p, err := New(testConfig(), failingStore{})
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}

	if _, err := p.Plan(context.Background(), Definition{Path: "/about"}); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

func TestPlanIsolatesPageContext(t *testing.T) {
	p, err := New(testConfig(), testStore())
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}

	pageCtx := map[string]any{"section": "company"}
	records, err := p.Plan(context.Background(), Definition{Path: "/about", Context: pageCtx})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	pageCtx["section"] = "mutated"
	if records[0].PageContext["section"] != "company" {
		t.Fatalf("planner must copy page context, got %v", records[0].PageContext)
	}
}
