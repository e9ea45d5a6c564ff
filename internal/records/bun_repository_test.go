package records_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"

	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/pkg/testsupport"
)

func newBunRepository(t *testing.T) *records.BunRepository {
	t.Helper()

	db, err := testsupport.NewSQLiteBunDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	repo := records.NewBunRepository(db)
	if err := repo.CreateTables(context.Background()); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return repo
}

func TestBunRepository_SaveAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := newBunRepository(t)

	saved, err := repo.Save(ctx, sampleRecord("/es/about", "es"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	byID, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Path != "/es/about" {
		t.Fatalf("expected path /es/about, got %q", byID.Path)
	}

	byPath, err := repo.GetByPath(ctx, "/es/about")
	if err != nil {
		t.Fatalf("get by path: %v", err)
	}
	if byPath.Language != "es" || byPath.OriginalPath != "/about" {
		t.Fatalf("unexpected record: %+v", byPath)
	}
	if len(byPath.Languages) != 3 {
		t.Fatalf("expected 3 declared languages, got %v", byPath.Languages)
	}
	if byPath.Bundle["title"] != "About" {
		t.Fatalf("unexpected bundle: %v", byPath.Bundle)
	}
}

func TestBunRepository_SaveReplacesPath(t *testing.T) {
	ctx := context.Background()
	repo := newBunRepository(t)

	if _, err := repo.Save(ctx, sampleRecord("/es/about", "es")); err != nil {
		t.Fatalf("save first: %v", err)
	}

	replacement := sampleRecord("/es/about", "es")
	replacement.Component = "AboutPageV2"
	if _, err := repo.Save(ctx, replacement); err != nil {
		t.Fatalf("save replacement: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record after replace, got %d", len(all))
	}
	if all[0].Component != "AboutPageV2" {
		t.Fatalf("expected replacement record, got component %q", all[0].Component)
	}
}

func TestBunRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newBunRepository(t)

	_, err := repo.GetByPath(ctx, "/missing")
	if !errors.Is(err, records.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestBunRepository_ListByOriginalAndClear(t *testing.T) {
	ctx := context.Background()
	repo := newBunRepository(t)

	for path, language := range map[string]string{
		"/about":    "en",
		"/es/about": "es",
		"/de/about": "de",
	} {
		if _, err := repo.Save(ctx, sampleRecord(path, language)); err != nil {
			t.Fatalf("save %s: %v", path, err)
		}
	}

	variants, err := repo.ListByOriginal(ctx, "/about")
	if err != nil {
		t.Fatalf("list by original: %v", err)
	}
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(variants))
	}
	want := []string{"/about", "/de/about", "/es/about"}
	for i, variant := range variants {
		if variant.Path != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, variant.Path)
		}
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty manifest, got %d records", len(all))
	}
}

func TestBunRepository_WithCache(t *testing.T) {
	ctx := context.Background()

	db, err := testsupport.NewSQLiteBunDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}

	repo := records.NewBunRepositoryWithCache(db, cacheService, repocache.NewDefaultKeySerializer())
	if err := repo.CreateTables(ctx); err != nil {
		t.Fatalf("create tables: %v", err)
	}

	saved, err := repo.Save(ctx, sampleRecord("/es/about", "es"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	for i := 0; i < 2; i++ {
		got, err := repo.GetByID(ctx, saved.ID)
		if err != nil {
			t.Fatalf("get by id (read %d): %v", i, err)
		}
		if got.Path != "/es/about" {
			t.Fatalf("expected path /es/about, got %q", got.Path)
		}
	}
}
