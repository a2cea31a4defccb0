// internal/storage/memory/memory.go
package memory

import (
	"sync"

	"github.com/poseform/coach/internal/storage"
	"github.com/poseform/coach/pkg/core"
)

// Backend stores feedback records in memory for the process lifetime.
// Unbounded growth is acceptable for the stated scope.
type Backend struct {
	records map[string]*core.FeedbackRecord
	order   []string // insertion order, for debugging/export
	mu      sync.RWMutex
}

// New creates a new memory backend.
func New() *Backend {
	return &Backend{
		records: make(map[string]*core.FeedbackRecord),
	}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources.
func (b *Backend) Close() error {
	return nil
}

// Put appends a record. Duplicate identifiers are rejected.
func (b *Backend) Put(r *core.FeedbackRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.records[r.ID]; exists {
		return storage.ErrDuplicateID
	}

	copied := *r
	b.records[r.ID] = &copied
	b.order = append(b.order, r.ID)
	return nil
}

// Get looks up a record by identifier.
func (b *Backend) Get(id string) (*core.FeedbackRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	record, ok := b.records[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

// Len returns the number of stored records.
func (b *Backend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}
