package pose

import (
	"math"
	"testing"

	"github.com/poseform/coach/pkg/core"
)

// referenceSnapshot is the canonical arms-down test pose.
func referenceSnapshot() core.Snapshot {
	return core.Snapshot{
		core.LeftShoulder:  {X: 2, Y: 4},
		core.LeftElbow:     {X: 2, Y: 3},
		core.LeftWrist:     {X: 1, Y: 2},
		core.RightShoulder: {X: 4, Y: 4},
		core.RightElbow:    {X: 4, Y: 3},
		core.RightWrist:    {X: 5, Y: 2},
	}
}

func TestExtractAngles_ReferencePose(t *testing.T) {
	angles := ExtractAngles(referenceSnapshot())

	expected := []float64{180.0, 135.0, 180.0, 135.0}
	if len(angles) != len(expected) {
		t.Fatalf("expected %d angles, got %d", len(expected), len(angles))
	}
	for i, want := range expected {
		if !angles[i].Defined() {
			t.Errorf("angle %d: expected defined, got undefined", i)
			continue
		}
		if math.Abs(angles[i].Degrees-want) > 1e-9 {
			t.Errorf("angle %d: expected %f, got %f", i, want, angles[i].Degrees)
		}
	}
}

func TestExtractAngles_ShiftedWrist(t *testing.T) {
	snap := referenceSnapshot()
	snap[core.LeftWrist] = core.Point{X: 2, Y: 2}

	angles := ExtractAngles(snap)
	if !angles[1].Defined() {
		t.Fatal("expected defined angle for shifted wrist")
	}
	if math.Abs(angles[1].Degrees-180.0) > 1e-9 {
		t.Errorf("expected second angle 180.0 after wrist shift, got %f", angles[1].Degrees)
	}
}

func TestExtractAngles_MissingEndpoint(t *testing.T) {
	snap := referenceSnapshot()
	delete(snap, core.RightWrist)

	angles := ExtractAngles(snap)
	if len(angles) != len(core.Connections()) {
		t.Fatalf("expected one entry per connection even with missing joints, got %d", len(angles))
	}
	if angles[3].Defined() {
		t.Error("expected undefined angle when right wrist is missing")
	}
	// the other connections are unaffected
	for i := 0; i < 3; i++ {
		if !angles[i].Defined() {
			t.Errorf("angle %d: expected defined, got undefined", i)
		}
	}
}

func TestExtractAngles_EmptySnapshot(t *testing.T) {
	angles := ExtractAngles(core.Snapshot{})

	if len(angles) != len(core.Connections()) {
		t.Fatalf("expected one entry per connection, got %d", len(angles))
	}
	for i, a := range angles {
		if a.Defined() {
			t.Errorf("angle %d: expected undefined for empty snapshot", i)
		}
	}
}

func TestExtractAngles_RangeInvariant(t *testing.T) {
	// sweep directions all around the circle; every folded angle must
	// land in [0, 180]
	for deg := 0; deg < 360; deg += 5 {
		rad := float64(deg) * math.Pi / 180
		snap := core.Snapshot{
			core.LeftShoulder: {X: 0, Y: 0},
			core.LeftElbow:    {X: math.Cos(rad), Y: math.Sin(rad)},
		}
		angles := ExtractAngles(snap)
		if !angles[0].Defined() {
			t.Fatalf("direction %d: expected defined angle", deg)
		}
		if angles[0].Degrees < 0 || angles[0].Degrees > 180 {
			t.Errorf("direction %d: angle %f outside [0, 180]", deg, angles[0].Degrees)
		}
	}
}

func TestExtractAngles_HorizontalReadsNinety(t *testing.T) {
	snap := core.Snapshot{
		core.LeftShoulder: {X: 0, Y: 0},
		core.LeftElbow:    {X: 3, Y: 0},
	}
	angles := ExtractAngles(snap)
	if math.Abs(angles[0].Degrees-90.0) > 1e-9 {
		t.Errorf("expected horizontal limb to read 90, got %f", angles[0].Degrees)
	}
}

func TestExtractAngles_Idempotent(t *testing.T) {
	snap := referenceSnapshot()

	first := ExtractAngles(snap)
	second := ExtractAngles(snap)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("angle %d: repeated extraction diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestNewFrame_CopiesSnapshot(t *testing.T) {
	snap := referenceSnapshot()
	frame := NewFrame("ref-1", snap, 0)

	// mutating the caller's snapshot must not affect the frame
	snap[core.LeftWrist] = core.Point{X: 99, Y: 99}

	if frame.Snapshot[core.LeftWrist] != (core.Point{X: 1, Y: 2}) {
		t.Error("frame snapshot was aliased to the caller's map")
	}
	if math.Abs(frame.Angles[1].Degrees-135.0) > 1e-9 {
		t.Errorf("expected derived angle 135.0, got %f", frame.Angles[1].Degrees)
	}
}
