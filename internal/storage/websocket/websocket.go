// Package websocket provides a mirror store: every record committed to the
// wrapped inner store is also streamed as a JSON envelope to a live
// coaching dashboard. Reads are served by the inner store; streaming is
// fire-and-forget and never blocks or fails a commit.
package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/poseform/coach/internal/storage"
	"github.com/poseform/coach/pkg/core"
	"github.com/poseform/coach/pkg/streaming"
)

// Config holds WebSocket mirror configuration.
type Config struct {
	URL    string
	Secret string
}

// Mirror wraps an inner store and forwards committed records to the
// dashboard. It implements storage.Store.
type Mirror struct {
	inner storage.Store
	conn  *connection
	cfg   Config
}

// NewMirror creates a streaming mirror around an inner store.
func NewMirror(inner storage.Store, cfg Config, logger *slog.Logger) *Mirror {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mirror{
		inner: inner,
		conn:  newConnection(logger),
		cfg:   cfg,
	}
}

// Init initializes the inner store, connects to the dashboard and sends
// the hello envelope.
func (m *Mirror) Init() error {
	if err := m.inner.Init(); err != nil {
		return err
	}
	if err := m.conn.dial(m.cfg.URL, m.cfg.Secret); err != nil {
		return err
	}

	hello, err := marshalEnvelope(streaming.TypeHello, streaming.HelloPayload{Service: "posecoach"})
	if err != nil {
		return err
	}
	m.conn.mu.Lock()
	m.conn.cachedHello = hello
	m.conn.mu.Unlock()
	m.conn.send(hello)
	return nil
}

// Close disconnects from the dashboard and closes the inner store.
func (m *Mirror) Close() error {
	connErr := m.conn.close()
	innerErr := m.inner.Close()
	if innerErr != nil {
		return innerErr
	}
	return connErr
}

// Put commits the record to the inner store, then streams it. A streaming
// marshal failure is deliberately not a commit failure.
func (m *Mirror) Put(r *core.FeedbackRecord) error {
	if err := m.inner.Put(r); err != nil {
		return err
	}

	data, err := marshalEnvelope(streaming.TypeFeedback, streaming.FeedbackPayload{
		ID:               r.ID,
		ReferenceFrameID: r.Reference.ID,
		PracticeFrameID:  r.Practice.ID,
		Feedback:         r.Feedback,
		Accuracy:         r.Accuracy,
	})
	if err != nil {
		m.conn.logger.Warn("Failed to marshal feedback envelope", "id", r.ID, "error", err)
		return nil
	}
	m.conn.send(data)
	return nil
}

// Get delegates to the inner store.
func (m *Mirror) Get(id string) (*core.FeedbackRecord, error) {
	return m.inner.Get(id)
}

// marshalEnvelope builds a JSON-encoded Envelope from a message type and payload.
func marshalEnvelope(msgType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	env := streaming.Envelope{Type: msgType, Payload: raw}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal %s envelope: %w", msgType, err)
	}
	return data, nil
}
