// pkg/core/pose.go
package core

// Point is a 2-D detector-space position. Units and origin are whatever
// the upstream pose detector emits; the pipeline never rescales them.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot maps each detected landmark to its position at one instant.
// A landmark missing from the map was not detected in that instant.
type Snapshot map[Landmark]Point

// AngleState describes whether an angle (or delta) position holds a value.
type AngleState uint8

const (
	// AngleDefined means both endpoints were detected and a value exists.
	AngleDefined AngleState = iota
	// AngleUndefined means at least one endpoint was missing from the
	// snapshot; the position carries no value and must never be averaged.
	AngleUndefined
)

// Angle is one entry of a derived angle sequence: either a degree value
// in [0, 180] or an explicit undefined marker.
type Angle struct {
	Degrees float64
	State   AngleState
}

// Defined reports whether the angle carries a numeric value.
func (a Angle) Defined() bool {
	return a.State == AngleDefined
}

// DefinedAngle wraps a degree value.
func DefinedAngle(degrees float64) Angle {
	return Angle{Degrees: degrees, State: AngleDefined}
}

// UndefinedAngle returns the explicit no-value marker.
func UndefinedAngle() Angle {
	return Angle{State: AngleUndefined}
}

// Frame is one captured pose: its identifier, the raw snapshot, the
// derived angle sequence (one entry per Connection, same order) and the
// sequence position it was captured at. Frames are never mutated after
// construction; the angle sequence is always derived from the snapshot.
type Frame struct {
	ID       string
	Snapshot Snapshot
	Angles   []Angle
	Sequence int
}
