// Package records persists the build manifest: every page record emitted by
// the planner, keyed by its localized path. Hosts use it for sitemap
// emission and path lookups after the build.
package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-localize/internal/planner"
	"github.com/goliatone/go-localize/internal/routing"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// PageRecord is the persisted form of one emitted page variant.
type PageRecord struct {
	bun.BaseModel `bun:"table:page_records,alias:pr"`

	ID              uuid.UUID         `bun:",pk,type:uuid" json:"id"`
	OriginalPath    string            `bun:"original_path,notnull" json:"original_path"`
	Path            string            `bun:"path,notnull,unique" json:"path"`
	Language        string            `bun:"language,notnull" json:"language"`
	Languages       []string          `bun:"languages,type:jsonb,notnull" json:"languages"`
	DefaultLanguage string            `bun:"default_language,notnull" json:"default_language"`
	Routed          bool              `bun:"routed,notnull" json:"routed"`
	Redirect        bool              `bun:"redirect,notnull" json:"redirect"`
	Component       string            `bun:"component" json:"component,omitempty"`
	SiteURL         string            `bun:"site_url" json:"site_url,omitempty"`
	PageContext     map[string]any    `bun:"page_context,type:jsonb" json:"page_context,omitempty"`
	Bundle          map[string]string `bun:"bundle,type:jsonb" json:"bundle,omitempty"`
	CreatedAt       time.Time         `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time         `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// FromPlan converts an emitted planner record into its persisted form.
func FromPlan(record planner.Record) *PageRecord {
	return &PageRecord{
		ID:              record.ID,
		OriginalPath:    record.Routing.OriginalPath,
		Path:            record.Routing.Path,
		Language:        record.Routing.Language,
		Languages:       append([]string(nil), record.Routing.Languages...),
		DefaultLanguage: record.Routing.DefaultLanguage,
		Routed:          record.Routing.Routed,
		Redirect:        record.Redirect,
		Component:       record.Component,
		SiteURL:         record.Routing.SiteURL,
		PageContext:     record.PageContext,
		Bundle:          record.Bundle,
	}
}

// ToPlan reconstructs the planner record view of a persisted row.
func (r *PageRecord) ToPlan() planner.Record {
	return planner.Record{
		ID:          r.ID,
		Component:   r.Component,
		PageContext: r.PageContext,
		Bundle:      interfaces.Bundle(r.Bundle),
		Redirect:    r.Redirect,
		Routing: routing.NewContext(
			r.Language,
			r.Languages,
			r.DefaultLanguage,
			r.OriginalPath,
			r.Path,
			r.Routed,
			r.SiteURL,
		),
	}
}
