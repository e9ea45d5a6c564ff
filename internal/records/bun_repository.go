package records

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository is the bun-backed manifest store.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*PageRecord]
}

// NewBunRepository constructs a manifest store without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs a manifest store backed by bun with
// optional read caching.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewPageRecordRepository(db)
	return &BunRepository{
		db:   db,
		repo: wrapWithCache(base, cacheService, keySerializer),
	}
}

// CreateTables provisions the manifest schema. Intended for example/test
// wiring; production hosts own their migrations.
func (r *BunRepository) CreateTables(ctx context.Context) error {
	_, err := r.db.NewCreateTable().Model((*PageRecord)(nil)).IfNotExists().Exec(ctx)
	return err
}

// Save inserts the record, replacing any earlier record at the same
// localized path.
func (r *BunRepository) Save(ctx context.Context, record *PageRecord) (*PageRecord, error) {
	existing, err := r.GetByPath(ctx, record.Path)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		record.ID = existing.ID
		updated, err := r.repo.Update(ctx, record,
			repository.UpdateByID(existing.ID.String()),
			repository.UpdateColumns(
				"original_path", "path", "language", "languages", "default_language",
				"routed", "redirect", "component", "site_url", "page_context", "bundle",
			),
		)
		if err != nil {
			return nil, mapRepositoryError(err, record.Path)
		}
		return updated, nil
	}

	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.Path)
	}
	return created, nil
}

// GetByID retrieves a record by identifier.
func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*PageRecord, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return record, nil
}

// GetByPath retrieves a record by localized path.
func (r *BunRepository) GetByPath(ctx context.Context, path string) (*PageRecord, error) {
	matches, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.path = ?", path)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, path)
	}
	if len(matches) == 0 {
		return nil, &NotFoundError{Key: path}
	}
	return matches[0], nil
}

// ListByOriginal returns every language variant of one logical page.
func (r *BunRepository) ListByOriginal(ctx context.Context, originalPath string) ([]*PageRecord, error) {
	matches, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.original_path = ?", originalPath).Order("path ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, originalPath)
	}
	return matches, nil
}

// List returns the full manifest sorted by localized path.
func (r *BunRepository) List(ctx context.Context) ([]*PageRecord, error) {
	matches, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("path ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "")
	}
	return matches, nil
}

// Clear empties the manifest.
func (r *BunRepository) Clear(ctx context.Context) error {
	_, err := r.db.NewDelete().Model((*PageRecord)(nil)).Where("1 = 1").Exec(ctx)
	return err
}

var _ Repository = (*BunRepository)(nil)

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}

	return fmt.Errorf("records repository error: %w", err)
}
