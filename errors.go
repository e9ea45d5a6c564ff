package localize

import (
	"github.com/goliatone/go-localize/internal/navigation"
	"github.com/goliatone/go-localize/internal/planner"
	"github.com/goliatone/go-localize/internal/records"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
)

// Configuration errors surfaced by New.
var (
	ErrLanguagesRequired        = runtimeconfig.ErrLanguagesRequired
	ErrLanguageDuplicated       = runtimeconfig.ErrLanguageDuplicated
	ErrLanguageInvalid          = runtimeconfig.ErrLanguageInvalid
	ErrDefaultLanguageRequired  = runtimeconfig.ErrDefaultLanguageRequired
	ErrDefaultLanguageNotMember = runtimeconfig.ErrDefaultLanguageNotMember
	ErrResourcePathRequired     = runtimeconfig.ErrResourcePathRequired
	ErrSiteURLInvalid           = runtimeconfig.ErrSiteURLInvalid
)

// Planning errors.
var (
	ErrPathCollision = planner.ErrPathCollision
)

// PathCollisionError reports two original paths mapping to one localized path.
type PathCollisionError = planner.PathCollisionError

// Navigation errors.
var (
	ErrSuperseded           = navigation.ErrSuperseded
	ErrNavigationIncomplete = navigation.ErrNavigationIncomplete
)

// Manifest errors.
var (
	ErrRecordNotFound = records.ErrRecordNotFound
)
