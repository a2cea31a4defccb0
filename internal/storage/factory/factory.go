// Package factory builds the configured feedback store. It lives outside
// the storage package so the backend subpackages can keep importing the
// Store interface without a cycle.
package factory

import (
	"fmt"

	"github.com/poseform/coach/internal/config"
	"github.com/poseform/coach/internal/logging"
	"github.com/poseform/coach/internal/storage"
	"github.com/poseform/coach/internal/storage/memory"
	postgresstorage "github.com/poseform/coach/internal/storage/postgres"
	sqlitestorage "github.com/poseform/coach/internal/storage/sqlite"
	"github.com/poseform/coach/internal/storage/websocket"
)

// NewStore creates a storage backend based on configuration. When the
// stream mirror is enabled the backend is wrapped so commits are also
// forwarded to the dashboard.
func NewStore(cfg config.StorageConfig, logManager *logging.SlogManager) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)

	switch cfg.Type {
	case "postgres":
		store, err = postgresstorage.New(logManager)
	case "sqlite":
		store, err = sqlitestorage.New(sqlitestorage.Config{
			DumpInterval: cfg.Sqlite.DumpInterval,
			DumpPath:     cfg.Sqlite.DumpPath,
		}, logManager)
	case "memory":
		store = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s store: %w", cfg.Type, err)
	}

	if cfg.Stream.Enabled {
		store = websocket.NewMirror(store, websocket.Config{
			URL:    cfg.Stream.URL,
			Secret: cfg.Stream.Secret,
		}, logManager.Logger())
	}

	return store, nil
}
