// Package mockpose generates synthetic pose snapshots for demos and
// tests. Generators are seeded so runs are reproducible.
package mockpose

import (
	"fmt"
	"math/rand"

	"github.com/poseform/coach/internal/pose"
	"github.com/poseform/coach/pkg/core"
)

// ReferencePose returns the canonical arms-down pose. Its derived angle
// sequence is [180, 135, 180, 135].
func ReferencePose() core.Snapshot {
	return core.Snapshot{
		core.LeftShoulder:  {X: 2, Y: 4},
		core.LeftElbow:     {X: 2, Y: 3},
		core.LeftWrist:     {X: 1, Y: 2},
		core.RightShoulder: {X: 4, Y: 4},
		core.RightElbow:    {X: 4, Y: 3},
		core.RightWrist:    {X: 5, Y: 2},
	}
}

// Jittered returns the reference pose with every coordinate offset by a
// seeded random amount within [-maxOffset, maxOffset].
func Jittered(seed int64, maxOffset float64) core.Snapshot {
	rng := rand.New(rand.NewSource(seed))
	snap := ReferencePose()

	out := make(core.Snapshot, len(snap))
	for _, lm := range core.Landmarks() {
		pt := snap[lm]
		out[lm] = core.Point{
			X: pt.X + (rng.Float64()*2-1)*maxOffset,
			Y: pt.Y + (rng.Float64()*2-1)*maxOffset,
		}
	}
	return out
}

// WithMissing returns a copy of snap with the given landmarks removed,
// simulating detector dropouts.
func WithMissing(snap core.Snapshot, missing ...core.Landmark) core.Snapshot {
	out := make(core.Snapshot, len(snap))
	for lm, pt := range snap {
		out[lm] = pt
	}
	for _, lm := range missing {
		delete(out, lm)
	}
	return out
}

// PracticeSequence builds n practice frames of increasing jitter, as a
// stand-in for a dancer drifting away from the reference over time.
func PracticeSequence(n int, seed int64) []core.Frame {
	frames := make([]core.Frame, 0, n)
	for i := 0; i < n; i++ {
		snap := Jittered(seed+int64(i), 0.1*float64(i+1))
		frames = append(frames, pose.NewFrame(fmt.Sprintf("practice-%d", i), snap, i))
	}
	return frames
}
