// internal/storage/storage.go
package storage

import (
	"errors"

	"github.com/poseform/coach/pkg/core"
)

// ErrNotFound is returned by Get when no record with the identifier exists.
var ErrNotFound = errors.New("feedback record not found")

// ErrDuplicateID is returned by Put when a record with the identifier has
// already been stored. The collection is append-only: records are never
// updated or deleted, so a duplicate identifier is always a caller bug.
var ErrDuplicateID = errors.New("feedback record identifier already stored")

// Store is the interface all feedback store implementations satisfy.
// It is constructed once by the orchestrating caller and passed in by
// reference; implementations must support concurrent Put calls without
// lost writes.
type Store interface {
	// Lifecycle
	Init() error
	Close() error

	// Put appends a completed record. Append-only; no update path exists.
	Put(r *core.FeedbackRecord) error

	// Get returns the record with the given identifier or ErrNotFound.
	Get(id string) (*core.FeedbackRecord, error)
}
