package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poseform/coach/internal/pose"
	"github.com/poseform/coach/pkg/core"
)

func sampleRecord() *core.FeedbackRecord {
	ref := pose.NewFrame("ref-1", core.Snapshot{
		core.LeftShoulder: {X: 2, Y: 4},
		core.LeftElbow:    {X: 2, Y: 3},
		core.LeftWrist:    {X: 1, Y: 2},
	}, 0)
	prac := pose.NewFrame("prac-1", core.Snapshot{
		core.LeftShoulder: {X: 2.5, Y: 4},
		core.LeftElbow:    {X: 2, Y: 3},
	}, 1)
	return &core.FeedbackRecord{
		ID:        "ref-1:prac-1:abc12345",
		Reference: ref,
		Practice:  prac,
		Feedback:  "Lift the left wrist a little higher.",
		Accuracy:  91.25,
	}
}

func TestToModel_FromModel_RoundTrip(t *testing.T) {
	original := sampleRecord()

	m, err := ToModel(original)
	require.NoError(t, err)
	assert.Equal(t, original.ID, m.ID)
	assert.Equal(t, "ref-1", m.ReferenceFrameID)
	assert.Equal(t, "prac-1", m.PracticeFrameID)

	restored, err := FromModel(m)
	require.NoError(t, err)

	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Feedback, restored.Feedback)
	assert.Equal(t, original.Accuracy, restored.Accuracy)
	assert.Equal(t, original.Reference.Snapshot, restored.Reference.Snapshot)
	assert.Equal(t, original.Practice.Snapshot, restored.Practice.Snapshot)
	assert.Equal(t, original.Reference.Angles, restored.Reference.Angles)
	assert.Equal(t, original.Practice.Angles, restored.Practice.Angles)
	assert.Equal(t, original.Reference.Sequence, restored.Reference.Sequence)
	assert.Equal(t, original.Practice.Sequence, restored.Practice.Sequence)
}

func TestRoundTrip_PreservesUndefinedAngles(t *testing.T) {
	original := sampleRecord()

	m, err := ToModel(original)
	require.NoError(t, err)
	restored, err := FromModel(m)
	require.NoError(t, err)

	// the sample frames both miss right-side joints, so the trailing
	// positions must come back undefined, never as numeric zero
	refAngles := restored.Reference.Angles
	require.Len(t, refAngles, len(core.Connections()))
	assert.False(t, refAngles[2].Defined(), "missing right shoulder must stay undefined")
	assert.False(t, refAngles[3].Defined(), "missing right wrist must stay undefined")
	assert.True(t, refAngles[0].Defined())
}

func TestFromModel_UnknownLandmarkRejected(t *testing.T) {
	m, err := ToModel(sampleRecord())
	require.NoError(t, err)

	m.ReferenceSnapshot = []byte(`{"LEFT_ANKLE":{"x":1,"y":2}}`)

	_, err = FromModel(m)
	assert.Error(t, err)
}

func TestFromModel_MalformedSnapshotRejected(t *testing.T) {
	m, err := ToModel(sampleRecord())
	require.NoError(t, err)

	m.PracticeSnapshot = []byte(`{broken`)

	_, err = FromModel(m)
	assert.Error(t, err)
}
