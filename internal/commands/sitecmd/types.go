// Package sitecmd exposes the site planning workflows as commands: plan the
// full page set, warm translation bundles, and reset the build manifest.
package sitecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-localize/internal/planner"
)

const (
	planSiteMessageType         = "localize.site.plan"
	warmTranslationsMessageType = "localize.translations.warm"
	cleanManifestMessageType    = "localize.manifest.clean"
)

// ResultCallback receives planning results. The callback is optional and is
// invoked synchronously from the handler once the plan is available.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a plan execution.
type ResultEnvelope struct {
	Records  []planner.Record
	Metadata map[string]any
}

// PlanSiteCommand expands the provided page definitions across every
// configured language. When Persist is set the resulting records are written
// to the build manifest.
type PlanSiteCommand struct {
	Definitions    []planner.Definition `json:"definitions"`
	Persist        bool                 `json:"persist,omitempty"`
	ResultCallback ResultCallback       `json:"-"`
}

// Type implements command.Message.
func (PlanSiteCommand) Type() string { return planSiteMessageType }

// Validate ensures the plan has at least one definition and no blank paths.
func (m PlanSiteCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Definitions) == 0 {
		errs["definitions"] = validation.NewError("localize.site.plan.definitions_required", "definitions must not be empty")
	}
	for _, def := range m.Definitions {
		if strings.TrimSpace(def.Path) == "" {
			errs["definitions"] = validation.NewError("localize.site.plan.path_required", "definitions must not contain blank paths")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WarmTranslationsCommand preloads translation bundles so subsequent plans hit
// the store cache.
type WarmTranslationsCommand struct {
	Languages  []string `json:"languages"`
	Namespaces []string `json:"namespaces,omitempty"`
}

// Type implements command.Message.
func (WarmTranslationsCommand) Type() string { return warmTranslationsMessageType }

// Validate ensures languages are present and well-formed.
func (m WarmTranslationsCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Languages) == 0 {
		errs["languages"] = validation.NewError("localize.translations.warm.languages_required", "languages must not be empty")
	}
	for _, language := range m.Languages {
		if strings.TrimSpace(language) == "" {
			errs["languages"] = validation.NewError("localize.translations.warm.language_invalid", "languages must not contain empty values")
			break
		}
	}
	for _, namespace := range m.Namespaces {
		if strings.TrimSpace(namespace) == "" {
			errs["namespaces"] = validation.NewError("localize.translations.warm.namespace_invalid", "namespaces must not contain empty values")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanManifestCommand clears every record from the build manifest.
type CleanManifestCommand struct{}

// Type implements command.Message.
func (CleanManifestCommand) Type() string { return cleanManifestMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanManifestCommand) Validate() error { return nil }
