// pkg/core/landmark.go
package core

// Landmark identifies one anatomical joint in a pose snapshot.
// The declaration order is the canonical serialization order for
// every snapshot and vocabulary listing produced by the pipeline.
type Landmark uint8

const (
	LeftShoulder Landmark = iota
	LeftElbow
	LeftWrist
	RightShoulder
	RightElbow
	RightWrist
)

// landmarkNames maps each Landmark to its wire/vocabulary name.
var landmarkNames = [...]string{
	LeftShoulder:  "LEFT_SHOULDER",
	LeftElbow:     "LEFT_ELBOW",
	LeftWrist:     "LEFT_WRIST",
	RightShoulder: "RIGHT_SHOULDER",
	RightElbow:    "RIGHT_ELBOW",
	RightWrist:    "RIGHT_WRIST",
}

// String returns the upper-case underscore-delimited vocabulary name.
func (l Landmark) String() string {
	if int(l) < len(landmarkNames) {
		return landmarkNames[l]
	}
	return "UNKNOWN"
}

// Landmarks returns the full vocabulary in declaration order.
func Landmarks() []Landmark {
	return []Landmark{
		LeftShoulder, LeftElbow, LeftWrist,
		RightShoulder, RightElbow, RightWrist,
	}
}

// LandmarkByName resolves a vocabulary name back to its Landmark.
func LandmarkByName(name string) (Landmark, bool) {
	for i, n := range landmarkNames {
		if n == name {
			return Landmark(i), true
		}
	}
	return 0, false
}

// Connection is an ordered pair of landmarks defining a skeletal segment
// whose orientation is tracked as an angle.
type Connection struct {
	Start Landmark
	End   Landmark
}

// String returns "START->END" using vocabulary names.
func (c Connection) String() string {
	return c.Start.String() + "->" + c.End.String()
}

// Connections returns the fixed, ordered list of tracked limb connections.
// This order defines the positional meaning of every angle sequence.
func Connections() []Connection {
	return []Connection{
		{Start: LeftShoulder, End: LeftElbow},
		{Start: LeftElbow, End: LeftWrist},
		{Start: RightShoulder, End: RightElbow},
		{Start: RightElbow, End: RightWrist},
	}
}
