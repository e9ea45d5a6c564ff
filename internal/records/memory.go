package records

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory manifest store for scaffolding/tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*PageRecord
	pathIndex map[string]uuid.UUID
}

// NewMemoryRepository constructs the repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records:   make(map[uuid.UUID]*PageRecord),
		pathIndex: make(map[string]uuid.UUID),
	}
}

// Save inserts or replaces the record at its localized path.
func (m *MemoryRepository) Save(_ context.Context, record *PageRecord) (*PageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRecord(record)
	if existing, ok := m.pathIndex[copied.Path]; ok && existing != copied.ID {
		delete(m.records, existing)
	}
	m.records[copied.ID] = copied
	m.pathIndex[copied.Path] = copied.ID
	return cloneRecord(copied), nil
}

// GetByID retrieves a record by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*PageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return cloneRecord(record), nil
}

// GetByPath retrieves a record by localized path.
func (m *MemoryRepository) GetByPath(_ context.Context, path string) (*PageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.pathIndex[path]
	if !ok {
		return nil, &NotFoundError{Key: path}
	}
	return cloneRecord(m.records[id]), nil
}

// ListByOriginal returns every language variant of one logical page.
func (m *MemoryRepository) ListByOriginal(_ context.Context, originalPath string) ([]*PageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*PageRecord
	for _, record := range m.records {
		if record.OriginalPath == originalPath {
			out = append(out, cloneRecord(record))
		}
	}
	sortRecords(out)
	return out, nil
}

// List returns the full manifest sorted by localized path.
func (m *MemoryRepository) List(_ context.Context) ([]*PageRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*PageRecord, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, cloneRecord(record))
	}
	sortRecords(out)
	return out, nil
}

// Clear empties the manifest.
func (m *MemoryRepository) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[uuid.UUID]*PageRecord)
	m.pathIndex = make(map[string]uuid.UUID)
	return nil
}

var _ Repository = (*MemoryRepository)(nil)

func sortRecords(records []*PageRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})
}

func cloneRecord(record *PageRecord) *PageRecord {
	if record == nil {
		return nil
	}
	copied := *record
	copied.Languages = append([]string(nil), record.Languages...)
	if record.PageContext != nil {
		copied.PageContext = make(map[string]any, len(record.PageContext))
		for key, value := range record.PageContext {
			copied.PageContext[key] = value
		}
	}
	if record.Bundle != nil {
		copied.Bundle = make(map[string]string, len(record.Bundle))
		for key, value := range record.Bundle {
			copied.Bundle[key] = value
		}
	}
	return &copied
}
