package sitecmd

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-localize/internal/commands"
	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/planner"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// ErrPlannerRequired indicates a handler was constructed without a planner.
var ErrPlannerRequired = errors.New("sitecmd: planner is required")

// ErrStoreRequired indicates a handler was constructed without a translation store.
var ErrStoreRequired = errors.New("sitecmd: translation store is required")

// ErrRepositoryRequired indicates a handler needs a manifest repository.
var ErrRepositoryRequired = errors.New("sitecmd: manifest repository is required")

// PlanSiteHandler expands page definitions and optionally persists the result.
type PlanSiteHandler struct {
	inner *commands.Handler[PlanSiteCommand]
}

// NewPlanSiteHandler constructs a handler wired to the provided planner. The
// repository is optional; it is only touched when a command asks to persist.
func NewPlanSiteHandler(service *planner.Planner, repo records.Repository, logger interfaces.Logger, opts ...commands.HandlerOption[PlanSiteCommand]) *PlanSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PlanSiteCommand) error {
		if service == nil {
			return ErrPlannerRequired
		}

		planned, err := service.PlanSite(ctx, msg.Definitions)
		if err != nil {
			return err
		}

		if msg.Persist {
			if repo == nil {
				return ErrRepositoryRequired
			}
			for _, record := range planned {
				if _, err := repo.Save(ctx, records.FromPlan(record)); err != nil {
					return err
				}
			}
		}

		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Records: planned,
			Metadata: map[string]any{
				"operation": "plan_site",
				"records":   len(planned),
				"persisted": msg.Persist,
			},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[PlanSiteCommand]{
		commands.WithLogger[PlanSiteCommand](baseLogger),
		commands.WithOperation[PlanSiteCommand]("site.plan"),
		commands.WithMessageFields(func(msg PlanSiteCommand) map[string]any {
			fields := map[string]any{
				"definitions": len(msg.Definitions),
			}
			if msg.Persist {
				fields["persist"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PlanSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PlanSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PlanSiteCommand].
func (h *PlanSiteHandler) Execute(ctx context.Context, msg PlanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// WarmTranslationsHandler preloads bundles into the translation store cache.
type WarmTranslationsHandler struct {
	inner *commands.Handler[WarmTranslationsCommand]
}

// NewWarmTranslationsHandler constructs a handler that loads every requested
// language/namespace pair. Namespaces default to the translation namespace.
func NewWarmTranslationsHandler(store interfaces.TranslationStore, logger interfaces.Logger, opts ...commands.HandlerOption[WarmTranslationsCommand]) *WarmTranslationsHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg WarmTranslationsCommand) error {
		if store == nil {
			return ErrStoreRequired
		}

		namespaces := msg.Namespaces
		if len(namespaces) == 0 {
			namespaces = []string{interfaces.DefaultNamespace}
		}

		for _, language := range msg.Languages {
			language = strings.TrimSpace(language)
			for _, namespace := range namespaces {
				if _, err := store.Load(ctx, language, strings.TrimSpace(namespace)); err != nil {
					return err
				}
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[WarmTranslationsCommand]{
		commands.WithLogger[WarmTranslationsCommand](baseLogger),
		commands.WithOperation[WarmTranslationsCommand]("translations.warm"),
		commands.WithMessageFields(func(msg WarmTranslationsCommand) map[string]any {
			return map[string]any{
				"languages":  len(msg.Languages),
				"namespaces": len(msg.Namespaces),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[WarmTranslationsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &WarmTranslationsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[WarmTranslationsCommand].
func (h *WarmTranslationsHandler) Execute(ctx context.Context, msg WarmTranslationsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanManifestHandler clears the build manifest.
type CleanManifestHandler struct {
	inner *commands.Handler[CleanManifestCommand]
}

// NewCleanManifestHandler constructs a handler wired to the manifest repository.
func NewCleanManifestHandler(repo records.Repository, logger interfaces.Logger, opts ...commands.HandlerOption[CleanManifestCommand]) *CleanManifestHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CleanManifestCommand) error {
		if repo == nil {
			return ErrRepositoryRequired
		}
		return repo.Clear(ctx)
	}

	handlerOpts := []commands.HandlerOption[CleanManifestCommand]{
		commands.WithLogger[CleanManifestCommand](baseLogger),
		commands.WithOperation[CleanManifestCommand]("manifest.clean"),
		commands.WithTelemetry(commands.DefaultTelemetry[CleanManifestCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanManifestHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CleanManifestCommand].
func (h *CleanManifestHandler) Execute(ctx context.Context, msg CleanManifestCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
