package postgresstorage

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poseform/coach/internal/logging"
	"github.com/poseform/coach/pkg/core"
)

// Point the manager at a port nothing listens on so it falls back to
// in-memory SQLite without waiting on a real server.
func newFallbackBackend(t *testing.T) *Backend {
	t.Helper()
	t.Cleanup(viper.Reset)

	viper.Set("db.host", "127.0.0.1")
	viper.Set("db.port", "1")
	viper.Set("db.username", "postgres")
	viper.Set("db.password", "postgres")
	viper.Set("db.database", "posecoach")

	b, err := New(logging.NewSlogManager())
	require.NoError(t, err)
	require.NoError(t, b.Init())
	return b
}

func TestNew_FallsBackToLocal(t *testing.T) {
	b := newFallbackBackend(t)
	assert.True(t, b.Local(), "unreachable Postgres must fall back to local SQLite")
}

func TestFallback_PutGetRoundTrip(t *testing.T) {
	b := newFallbackBackend(t)

	// The shared-cache in-memory database persists across opens in one
	// process, so the ID must be unique to this test.
	record := &core.FeedbackRecord{
		ID: "pg-fallback:prac:eeee5555",
		Reference: core.Frame{
			ID:     "ref",
			Angles: []core.Angle{core.DefinedAngle(180), core.DefinedAngle(135)},
		},
		Practice: core.Frame{
			ID:     "prac",
			Angles: []core.Angle{core.DefinedAngle(175), core.DefinedAngle(135)},
		},
		Feedback: "Nearly perfect, keep that elbow line.",
		Accuracy: 98.75,
	}
	require.NoError(t, b.Put(record))

	got, err := b.Get(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Feedback, got.Feedback)
	assert.Equal(t, record.Accuracy, got.Accuracy)
}
