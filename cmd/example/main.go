package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	localize "github.com/goliatone/go-localize"
	"github.com/goliatone/go-localize/internal/commands"
	"github.com/goliatone/go-localize/internal/commands/sitecmd"
	"github.com/goliatone/go-localize/internal/logging/gologger"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/pkg/testsupport"
)

type consoleNavigator struct{}

func (consoleNavigator) Navigate(_ context.Context, path string) error {
	fmt.Printf("navigate -> %s\n", path)
	return nil
}

func main() {
	ctx := context.Background()

	resourceDir, contentDir, err := writeFixtures()
	if err != nil {
		log.Fatalf("write fixtures: %v", err)
	}

	cfg := localize.DefaultConfig()
	cfg.Languages = []string{"en", "es", "de"}
	cfg.DefaultLanguage = "en"
	cfg.ResourcePath = resourceDir
	cfg.SiteURL = "https://example.com"
	cfg.Sources.Enabled = true
	cfg.Sources.ContentDir = contentDir
	cfg.Logging.Format = "console"

	db, err := testsupport.NewSQLiteBunDB()
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	repo := records.NewBunRepository(db)
	if err := repo.CreateTables(ctx); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	module, err := localize.New(cfg,
		localize.WithRepository(repo),
		localize.WithNavigator(consoleNavigator{}),
		localize.WithRoutes(map[string]string{
			"home":  "/",
			"about": "/about",
		}),
	)
	if err != nil {
		log.Fatalf("initialise localize: %v", err)
	}

	planned, err := module.PlanFromSources(ctx)
	if err != nil {
		log.Fatalf("plan site: %v", err)
	}
	if err := module.PersistRecords(ctx, planned); err != nil {
		log.Fatalf("persist records: %v", err)
	}

	fmt.Println("planned records:")
	for _, record := range planned {
		fmt.Printf("  %-12s %-4s routed=%-5v redirect=%v\n",
			record.Routing.Path, record.Routing.Language, record.Routing.Routed, record.Redirect)
	}

	fmt.Println("\nalternate links for /about:")
	for _, record := range planned {
		if record.Routing.OriginalPath != "/about" || record.Routing.Language != cfg.DefaultLanguage {
			continue
		}
		for _, link := range module.AlternateLinks(record.Routing) {
			fmt.Printf("  hreflang=%-9s %s\n", link.Lang, link.URL)
		}
	}

	if registry := module.Routes(); registry != nil {
		url, err := registry.URL("es", "about", nil)
		if err != nil {
			log.Fatalf("route url: %v", err)
		}
		fmt.Printf("\nroute about[es]: %s\n", url)
	}

	resolver := module.Resolver()
	current := planned[0].Routing
	fmt.Printf("link to /about in de: %s\n", resolver.ResolveLink("/about", "de", current))

	fmt.Println("\nswitch language to es:")
	if err := resolver.ChangeLanguage(ctx, current, "es", current.OriginalPath); err != nil {
		log.Fatalf("change language: %v", err)
	}

	stored, err := module.Records().List(ctx)
	if err != nil {
		log.Fatalf("list manifest: %v", err)
	}
	fmt.Printf("\nmanifest rows: %d\n", len(stored))

	provider, err := gologger.NewProvider(gologger.Config{Level: "info", Format: "console"})
	if err != nil {
		log.Fatalf("logger provider: %v", err)
	}

	cleanHandler := sitecmd.NewCleanManifestHandler(repo, commands.CommandLogger(provider, "manifest"))
	if err := cleanHandler.Execute(ctx, sitecmd.CleanManifestCommand{}); err != nil {
		log.Fatalf("clean manifest: %v", err)
	}

	planHandler := sitecmd.NewPlanSiteHandler(module.Planner(), repo, commands.CommandLogger(provider, "site"))
	err = planHandler.Execute(ctx, sitecmd.PlanSiteCommand{
		Definitions: []localize.Definition{
			{Path: "/pricing", Component: "PricingPage"},
		},
		Persist: true,
	})
	if err != nil {
		log.Fatalf("plan command: %v", err)
	}

	stored, err = module.Records().List(ctx)
	if err != nil {
		log.Fatalf("list manifest: %v", err)
	}
	fmt.Printf("manifest rows after rebuild: %d\n", len(stored))

	fmt.Println("\nsitemap:")
	fmt.Println(module.Sitemap(planned, localize.SitemapOptions{Alternates: true}))
}

func writeFixtures() (string, string, error) {
	root, err := os.MkdirTemp("", "localize-example-*")
	if err != nil {
		return "", "", err
	}

	resources := map[string]map[string]any{
		"en": {"title": "Welcome", "nav": map[string]any{"about": "About us"}},
		"es": {"title": "Bienvenido", "nav": map[string]any{"about": "Sobre nosotros"}},
		"de": {"title": "Willkommen", "nav": map[string]any{"about": "Über uns"}},
	}

	resourceDir := filepath.Join(root, "resources")
	for language, payload := range resources {
		dir := filepath.Join(resourceDir, language)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", err
		}
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", "", err
		}
		if err := os.WriteFile(filepath.Join(dir, "translation.json"), encoded, 0o644); err != nil {
			return "", "", err
		}
	}

	pages := map[string]string{
		"index.md": `---
title: Home
slug: index
component: HomePage
---
# Welcome
`,
		"about.md": `---
title: About
path: /about
component: AboutPage
---
## Who we are
`,
	}

	contentDir := filepath.Join(root, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return "", "", err
	}
	for name, body := range pages {
		if err := os.WriteFile(filepath.Join(contentDir, name), []byte(body), 0o644); err != nil {
			return "", "", err
		}
	}

	return resourceDir, contentDir, nil
}
