package planner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-localize/internal/runtimeconfig"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write source %s: %v", name, err)
	}
}

func TestSourceLoadDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.md", "---\ntitle: Home\ncomponent: home\n---\n# Welcome\n")
	writeSource(t, dir, "about.md", "---\ntitle: About Us\npath: /about\nnamespace: company\nsection: company\n---\nBody text.\n")
	writeSource(t, dir, "contact.md", "---\ntitle: Contact\nslug: Contact Us\n---\n")
	writeSource(t, dir, "draft.md", "---\ntitle: WIP\ndraft: true\n---\n")
	writeSource(t, dir, "notes.txt", "not a page")

	source, err := NewSource(runtimeconfig.SourcesConfig{ContentDir: dir})
	if err != nil {
		t.Fatalf("new source: %v", err)
	}

	defs, err := source.LoadDefinitions(context.Background())
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d: %+v", len(defs), defs)
	}

	if defs[0].Path != "/" || defs[0].Component != "home" {
		t.Fatalf("expected index at /, got %+v", defs[0])
	}
	if body, _ := defs[0].Context["body_html"].(string); !strings.Contains(body, "<h1") {
		t.Fatalf("expected rendered markdown body, got %q", body)
	}

	if defs[1].Path != "/about" || defs[1].Namespace != "company" {
		t.Fatalf("expected explicit path and namespace, got %+v", defs[1])
	}
	if defs[1].Context["section"] != "company" {
		t.Fatalf("expected inline frontmatter in context, got %v", defs[1].Context)
	}

	if defs[2].Path != "/contact-us" {
		t.Fatalf("expected slugified path, got %q", defs[2].Path)
	}
}

func TestSourceRequiresContentDir(t *testing.T) {
	if _, err := NewSource(runtimeconfig.SourcesConfig{}); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}

	source, err := NewSource(runtimeconfig.SourcesConfig{ContentDir: "does-not-exist"})
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	if _, err := source.LoadDefinitions(context.Background()); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestSourceFeedsPlanner(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.md", "---\ntitle: Home\n---\n")
	writeSource(t, dir, "about.md", "---\ntitle: About\n---\n")

	source, err := NewSource(runtimeconfig.SourcesConfig{ContentDir: dir})
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	defs, err := source.LoadDefinitions(context.Background())
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}

	p, err := New(testConfig(), testStore())
	if err != nil {
		t.Fatalf("new planner: %v", err)
	}
	records, err := p.PlanSite(context.Background(), defs)
	if err != nil {
		t.Fatalf("plan site: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
}
