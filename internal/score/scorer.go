package score

import (
	"math"

	"github.com/poseform/coach/pkg/core"
)

// Compare scores a practice angle sequence against a reference sequence.
// Position policy, per delta state:
//   - numeric: both sides defined, delta = practice - reference (signed degrees)
//   - undefined: either side carries the undefined marker; the position is
//     excluded from the aggregate average entirely
//   - absent: the practice sequence has no entry at that position; the
//     position scores as a numeric zero
//
// Aggregate accuracy = 100 - mean(|delta|) over the contributing positions,
// clamped to [0, 100]. If no position contributes, accuracy is 0.
func Compare(reference, practice []core.Angle) core.Comparison {
	deltas := make([]core.Delta, 0, len(reference))

	for i, ref := range reference {
		if i >= len(practice) {
			deltas = append(deltas, core.Delta{State: core.DeltaAbsent})
			continue
		}
		prac := practice[i]
		if !ref.Defined() || !prac.Defined() {
			deltas = append(deltas, core.Delta{State: core.DeltaUndefined})
			continue
		}
		deltas = append(deltas, core.Delta{
			Degrees: prac.Degrees - ref.Degrees,
			State:   core.DeltaNumeric,
		})
	}

	return core.Comparison{
		Deltas:   deltas,
		Accuracy: accuracy(deltas),
	}
}

// accuracy derives the aggregate [0, 100] score from a delta sequence.
func accuracy(deltas []core.Delta) float64 {
	var sum float64
	var count int
	for _, d := range deltas {
		if !d.Numeric() {
			continue
		}
		sum += math.Abs(d.Degrees)
		count++
	}
	if count == 0 {
		return 0
	}

	acc := 100 - sum/float64(count)
	if acc < 0 {
		return 0
	}
	if acc > 100 {
		return 100
	}
	return acc
}
