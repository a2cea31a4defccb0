// Package streaming defines the wire envelope used to push completed
// feedback records to a live coaching dashboard over WebSocket.
package streaming

import "encoding/json"

// Message types.
const (
	TypeFeedback = "feedback_record"
	TypeHello    = "hello"
)

// Envelope wraps every message with its type.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// HelloPayload identifies the producer when the connection opens.
type HelloPayload struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// FeedbackPayload is the dashboard-facing shape of one completed analysis.
type FeedbackPayload struct {
	ID               string  `json:"id"`
	ReferenceFrameID string  `json:"referenceFrameId"`
	PracticeFrameID  string  `json:"practiceFrameId"`
	Feedback         string  `json:"feedback"`
	Accuracy         float64 `json:"accuracy"`
}
