package pose

import (
	"math"

	"github.com/poseform/coach/pkg/core"

	geom "github.com/peterstace/simplefeatures/geom"
)

// ANGLE CONVENTION
// Segment angles are measured from the vertical axis, not the horizontal:
// atan2 is called with the x and y displacement components swapped relative
// to the mathematical convention. A vertical limb reads near 0 (or 180 after
// folding), a horizontal limb reads near 90. This ordering is load-bearing;
// every derived angle in the system depends on it.

// ExtractAngles derives one angle per tracked connection from a snapshot.
// The result always has exactly one entry per core.Connection, in
// connection order, using the undefined marker wherever an endpoint is
// missing. The snapshot is never mutated.
func ExtractAngles(snap core.Snapshot) []core.Angle {
	conns := core.Connections()
	angles := make([]core.Angle, 0, len(conns))

	for _, conn := range conns {
		start, startOK := snap[conn.Start]
		end, endOK := snap[conn.End]
		if !startOK || !endOK {
			angles = append(angles, core.UndefinedAngle())
			continue
		}

		a := geom.XY{X: start.X, Y: start.Y}
		b := geom.XY{X: end.X, Y: end.Y}
		angles = append(angles, core.DefinedAngle(segmentAngle(a, b)))
	}

	return angles
}

// segmentAngle computes the folded from-vertical angle in degrees for the
// segment from start to end. Result is always in [0, 180].
func segmentAngle(start, end geom.XY) float64 {
	d := end.Sub(start)

	// swapped arguments: angle from the vertical axis
	rad := math.Atan2(d.X, d.Y)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	if rad > math.Pi {
		rad = 2*math.Pi - rad
	}
	return rad * 180 / math.Pi
}

// NewFrame builds an immutable frame from a snapshot, deriving its angle
// sequence. The snapshot is copied so later caller mutations cannot
// desynchronize the derived angles.
func NewFrame(id string, snap core.Snapshot, sequence int) core.Frame {
	copied := make(core.Snapshot, len(snap))
	for lm, pt := range snap {
		copied[lm] = pt
	}
	return core.Frame{
		ID:       id,
		Snapshot: copied,
		Angles:   ExtractAngles(copied),
		Sequence: sequence,
	}
}
