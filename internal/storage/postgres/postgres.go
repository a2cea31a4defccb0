// Package postgresstorage implements storage.Store on Postgres. The
// connection comes from the viper-configured database manager, which
// falls back to in-memory SQLite when Postgres is unreachable so an
// analysis session can proceed without the server.
package postgresstorage

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/poseform/coach/internal/database"
	"github.com/poseform/coach/internal/logging"
	gormstorage "github.com/poseform/coach/internal/storage/gorm"
)

// Backend is a GORM backend bound to a managed database connection.
type Backend struct {
	*gormstorage.Backend
	mgr *database.Manager
}

// New creates a new Postgres storage backend. If the Postgres server is
// unreachable the backend runs on in-memory SQLite instead; the fallback
// is logged as a warning.
func New(logManager *logging.SlogManager) (*Backend, error) {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	mgr := database.NewManager(zl)

	if err := mgr.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect feedback database: %w", err)
	}
	if mgr.ShouldSaveLocal {
		logManager.WriteLog("postgresstorage:New",
			"Postgres unreachable, feedback records are kept in memory only", "WARN")
	}

	return &Backend{
		Backend: gormstorage.New(gormstorage.Dependencies{
			DB:         mgr.DB,
			LogManager: logManager,
		}),
		mgr: mgr,
	}, nil
}

// Init migrates the feedback schema through the manager.
func (b *Backend) Init() error {
	return b.mgr.Setup()
}

// Local reports whether the backend fell back to in-memory SQLite.
func (b *Backend) Local() bool {
	return b.mgr.ShouldSaveLocal
}
