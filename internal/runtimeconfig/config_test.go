package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			"empty languages",
			func(c *Config) { c.Languages = nil },
			ErrLanguagesRequired,
		},
		{
			"duplicate language",
			func(c *Config) { c.Languages = []string{"en", "es", "en"} },
			ErrLanguageDuplicated,
		},
		{
			"blank language",
			func(c *Config) { c.Languages = []string{"en", " "} },
			ErrLanguageInvalid,
		},
		{
			"language with slash",
			func(c *Config) { c.Languages = []string{"en", "e/s"} },
			ErrLanguageInvalid,
		},
		{
			"missing default",
			func(c *Config) { c.DefaultLanguage = "" },
			ErrDefaultLanguageRequired,
		},
		{
			"default not member",
			func(c *Config) {
				c.Languages = []string{"es", "de"}
				c.DefaultLanguage = "en"
			},
			ErrDefaultLanguageNotMember,
		},
		{
			"site url trailing slash",
			func(c *Config) { c.SiteURL = "https://x.test/" },
			ErrSiteURLInvalid,
		},
		{
			"negative workers",
			func(c *Config) { c.Workers = -1 },
			ErrWorkersInvalid,
		},
		{
			"bad logging level",
			func(c *Config) { c.Logging.Level = "verbose" },
			ErrLoggingLevelInvalid,
		},
		{
			"bad logging format",
			func(c *Config) { c.Logging.Format = "xml" },
			ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNormalizedNamespace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Namespace = ""
	if got := cfg.NormalizedNamespace(); got != "translation" {
		t.Fatalf("expected standard namespace, got %q", got)
	}
	cfg.Namespace = " common "
	if got := cfg.NormalizedNamespace(); got != "common" {
		t.Fatalf("expected trimmed namespace, got %q", got)
	}
}
