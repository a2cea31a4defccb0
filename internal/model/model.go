// internal/model/model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// FeedbackRecord is the database representation of one completed analysis.
// Snapshots and angle sequences are stored as JSON documents: the pipeline
// only ever reads whole records back, so there is nothing to query inside
// them.
type FeedbackRecord struct {
	ID                string `gorm:"primarykey"`
	ReferenceFrameID  string `gorm:"index"`
	PracticeFrameID   string `gorm:"index"`
	ReferenceSequence int
	PracticeSequence  int
	ReferenceSnapshot datatypes.JSON
	PracticeSnapshot  datatypes.JSON
	ReferenceAngles   datatypes.JSON
	PracticeAngles    datatypes.JSON
	Feedback          string
	Accuracy          float64
	CreatedAt         time.Time
}

// DatabaseModels lists every model migrated by the database manager.
var DatabaseModels = []any{
	&FeedbackRecord{},
}
