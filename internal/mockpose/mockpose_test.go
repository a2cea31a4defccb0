package mockpose

import (
	"math"
	"testing"

	"github.com/poseform/coach/internal/pose"
	"github.com/poseform/coach/pkg/core"
)

func TestReferencePose_Angles(t *testing.T) {
	angles := pose.ExtractAngles(ReferencePose())
	expected := []float64{180, 135, 180, 135}

	for i, want := range expected {
		if !angles[i].Defined() {
			t.Fatalf("angle %d undefined", i)
		}
		if math.Abs(angles[i].Degrees-want) > 1e-9 {
			t.Errorf("angle %d: want %f, got %f", i, want, angles[i].Degrees)
		}
	}
}

func TestJittered_Deterministic(t *testing.T) {
	a := Jittered(42, 0.5)
	b := Jittered(42, 0.5)

	for _, lm := range core.Landmarks() {
		if a[lm] != b[lm] {
			t.Errorf("%s: same seed produced different points: %+v vs %+v", lm, a[lm], b[lm])
		}
	}
}

func TestJittered_StaysWithinOffset(t *testing.T) {
	ref := ReferencePose()
	snap := Jittered(7, 0.25)

	for _, lm := range core.Landmarks() {
		dx := math.Abs(snap[lm].X - ref[lm].X)
		dy := math.Abs(snap[lm].Y - ref[lm].Y)
		if dx > 0.25 || dy > 0.25 {
			t.Errorf("%s drifted beyond offset: dx=%f dy=%f", lm, dx, dy)
		}
	}
}

func TestWithMissing(t *testing.T) {
	snap := WithMissing(ReferencePose(), core.RightWrist)

	if _, ok := snap[core.RightWrist]; ok {
		t.Error("right wrist should be removed")
	}
	if len(snap) != len(ReferencePose())-1 {
		t.Errorf("unexpected snapshot size %d", len(snap))
	}

	// original untouched
	if _, ok := ReferencePose()[core.RightWrist]; !ok {
		t.Error("source pose must not be mutated")
	}
}

func TestPracticeSequence(t *testing.T) {
	frames := PracticeSequence(3, 1)

	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Sequence != i {
			t.Errorf("frame %d: sequence = %d", i, f.Sequence)
		}
		if len(f.Angles) != len(core.Connections()) {
			t.Errorf("frame %d: %d angles", i, len(f.Angles))
		}
	}
}
