// pkg/core/feedback.go
package core

// DeltaState describes how one comparison position was derived.
type DeltaState uint8

const (
	// DeltaNumeric means both angle positions held values; Degrees is
	// practice minus reference in signed degrees.
	DeltaNumeric DeltaState = iota
	// DeltaUndefined means at least one side held the undefined angle
	// marker. The position is excluded from the aggregate average.
	DeltaUndefined
	// DeltaAbsent means the practice sequence had no entry at this
	// position at all. Scored as a numeric zero by explicit policy.
	DeltaAbsent
)

// Delta is one per-connection comparison result.
type Delta struct {
	Degrees float64
	State   DeltaState
}

// Numeric reports whether the delta contributes a value to the
// aggregate accuracy (numeric and absent positions do, undefined do not).
func (d Delta) Numeric() bool {
	return d.State != DeltaUndefined
}

// Comparison holds the per-connection deltas and the aggregate accuracy
// for one reference/practice frame pair. Accuracy is always in [0, 100].
type Comparison struct {
	Deltas   []Delta
	Accuracy float64
}

// FeedbackRecord is one completed analysis. Records are append-only:
// once stored they are never updated or deleted.
type FeedbackRecord struct {
	ID        string
	Reference Frame
	Practice  Frame
	Feedback  string
	Accuracy  float64
}
