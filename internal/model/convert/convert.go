// Package convert translates between the in-memory core types and the
// JSON-columned database model.
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/poseform/coach/internal/model"
	"github.com/poseform/coach/pkg/core"
)

// jsonPoint mirrors core.Point for snapshot serialization.
type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// jsonAngle serializes one angle-sequence entry. Undefined entries carry
// no degrees field so they can never be read back as a numeric zero.
type jsonAngle struct {
	Degrees *float64 `json:"degrees,omitempty"`
}

// SnapshotToJSON keys points by vocabulary name so the stored document
// stays readable and stable across enum reordering.
func SnapshotToJSON(snap core.Snapshot) ([]byte, error) {
	out := make(map[string]jsonPoint, len(snap))
	for lm, pt := range snap {
		out[lm.String()] = jsonPoint{X: pt.X, Y: pt.Y}
	}
	return json.Marshal(out)
}

func SnapshotFromJSON(raw []byte) (core.Snapshot, error) {
	var in map[string]jsonPoint
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	snap := make(core.Snapshot, len(in))
	for name, pt := range in {
		lm, ok := core.LandmarkByName(name)
		if !ok {
			return nil, fmt.Errorf("stored snapshot references unknown landmark %q", name)
		}
		snap[lm] = core.Point{X: pt.X, Y: pt.Y}
	}
	return snap, nil
}

func anglesToJSON(angles []core.Angle) ([]byte, error) {
	out := make([]jsonAngle, len(angles))
	for i, a := range angles {
		if a.Defined() {
			deg := a.Degrees
			out[i] = jsonAngle{Degrees: &deg}
		}
	}
	return json.Marshal(out)
}

func anglesFromJSON(raw []byte) ([]core.Angle, error) {
	var in []jsonAngle
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("failed to decode angle sequence: %w", err)
	}
	angles := make([]core.Angle, len(in))
	for i, a := range in {
		if a.Degrees != nil {
			angles[i] = core.DefinedAngle(*a.Degrees)
		} else {
			angles[i] = core.UndefinedAngle()
		}
	}
	return angles, nil
}

// ToModel converts a core record into its database representation.
func ToModel(r *core.FeedbackRecord) (*model.FeedbackRecord, error) {
	refSnap, err := SnapshotToJSON(r.Reference.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("reference snapshot: %w", err)
	}
	pracSnap, err := SnapshotToJSON(r.Practice.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("practice snapshot: %w", err)
	}
	refAngles, err := anglesToJSON(r.Reference.Angles)
	if err != nil {
		return nil, fmt.Errorf("reference angles: %w", err)
	}
	pracAngles, err := anglesToJSON(r.Practice.Angles)
	if err != nil {
		return nil, fmt.Errorf("practice angles: %w", err)
	}

	return &model.FeedbackRecord{
		ID:                r.ID,
		ReferenceFrameID:  r.Reference.ID,
		PracticeFrameID:   r.Practice.ID,
		ReferenceSequence: r.Reference.Sequence,
		PracticeSequence:  r.Practice.Sequence,
		ReferenceSnapshot: refSnap,
		PracticeSnapshot:  pracSnap,
		ReferenceAngles:   refAngles,
		PracticeAngles:    pracAngles,
		Feedback:          r.Feedback,
		Accuracy:          r.Accuracy,
	}, nil
}

// FromModel converts a database row back into a core record.
func FromModel(m *model.FeedbackRecord) (*core.FeedbackRecord, error) {
	refSnap, err := SnapshotFromJSON(m.ReferenceSnapshot)
	if err != nil {
		return nil, fmt.Errorf("reference snapshot: %w", err)
	}
	pracSnap, err := SnapshotFromJSON(m.PracticeSnapshot)
	if err != nil {
		return nil, fmt.Errorf("practice snapshot: %w", err)
	}
	refAngles, err := anglesFromJSON(m.ReferenceAngles)
	if err != nil {
		return nil, fmt.Errorf("reference angles: %w", err)
	}
	pracAngles, err := anglesFromJSON(m.PracticeAngles)
	if err != nil {
		return nil, fmt.Errorf("practice angles: %w", err)
	}

	return &core.FeedbackRecord{
		ID: m.ID,
		Reference: core.Frame{
			ID:       m.ReferenceFrameID,
			Snapshot: refSnap,
			Angles:   refAngles,
			Sequence: m.ReferenceSequence,
		},
		Practice: core.Frame{
			ID:       m.PracticeFrameID,
			Snapshot: pracSnap,
			Angles:   pracAngles,
			Sequence: m.PracticeSequence,
		},
		Feedback: m.Feedback,
		Accuracy: m.Accuracy,
	}, nil
}
