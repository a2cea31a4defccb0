// Package gormstorage implements storage.Store on top of a GORM database
// handle. It is shared by the SQLite and Postgres backends, which only
// differ in how they obtain and maintain the handle.
package gormstorage

import (
	"errors"
	"fmt"

	"github.com/poseform/coach/internal/logging"
	"github.com/poseform/coach/internal/model"
	"github.com/poseform/coach/internal/model/convert"
	"github.com/poseform/coach/internal/storage"
	"github.com/poseform/coach/pkg/core"

	"gorm.io/gorm"
)

// Dependencies holds everything the backend needs.
type Dependencies struct {
	DB         *gorm.DB
	LogManager *logging.SlogManager
}

// Backend persists feedback records through GORM.
type Backend struct {
	deps Dependencies
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	return &Backend{deps: deps}
}

// Init migrates the feedback schema.
func (b *Backend) Init() error {
	if err := b.deps.DB.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate feedback schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (b *Backend) Close() error {
	sqlDB, err := b.deps.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Put appends a record. The table is append-only; an existing identifier
// is reported as storage.ErrDuplicateID rather than updated.
func (b *Backend) Put(r *core.FeedbackRecord) error {
	row, err := convert.ToModel(r)
	if err != nil {
		return fmt.Errorf("failed to convert record %s: %w", r.ID, err)
	}

	err = b.deps.DB.Create(row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storage.ErrDuplicateID
		}
		return fmt.Errorf("failed to store record %s: %w", r.ID, err)
	}
	return nil
}

// Get looks up a record by identifier.
func (b *Backend) Get(id string) (*core.FeedbackRecord, error) {
	var row model.FeedbackRecord
	err := b.deps.DB.First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load record %s: %w", id, err)
	}

	record, err := convert.FromModel(&row)
	if err != nil {
		return nil, fmt.Errorf("failed to convert record %s: %w", id, err)
	}
	return record, nil
}
