package records

import (
	"context"
	"errors"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrRecordNotFound indicates a manifest lookup failed.
var ErrRecordNotFound = errors.New("records: page record not found")

// NotFoundError describes an unknown manifest key and unwraps to ErrRecordNotFound.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return "records: page record not found"
	}
	return fmt.Sprintf("records: page record %q not found", e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// Repository is the manifest storage contract.
type Repository interface {
	Save(ctx context.Context, record *PageRecord) (*PageRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PageRecord, error)
	GetByPath(ctx context.Context, path string) (*PageRecord, error)
	ListByOriginal(ctx context.Context, originalPath string) ([]*PageRecord, error)
	List(ctx context.Context) ([]*PageRecord, error)
	Clear(ctx context.Context) error
}

// NewPageRecordRepository builds the generic bun repository used by the
// bun-backed manifest store.
func NewPageRecordRepository(db *bun.DB) repository.Repository[*PageRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageRecord]{
		NewRecord: func() *PageRecord { return &PageRecord{} },
		GetID: func(r *PageRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *PageRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "path"
		},
		GetIdentifierValue: func(r *PageRecord) string {
			return r.Path
		},
	})
}
