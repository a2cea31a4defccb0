// Package analyzer orchestrates one full analysis: angle extraction,
// comparison, prompt construction, feedback generation, validation and
// finally storage. Nothing is stored unless every hard check passes.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/poseform/coach/internal/llm"
	"github.com/poseform/coach/internal/monitor"
	"github.com/poseform/coach/internal/prompt"
	"github.com/poseform/coach/internal/score"
	"github.com/poseform/coach/internal/storage"
	"github.com/poseform/coach/internal/validate"
	"github.com/poseform/coach/pkg/core"
)

// Dependencies holds everything an Analyzer needs. Store and Completer
// are owned by the caller; the analyzer never opens or closes them.
type Dependencies struct {
	Store     storage.Store
	Completer llm.Completer
	Validator *validate.Validator
	Monitor   *monitor.Service
	Logger    *slog.Logger
	Model     string
}

// Analyzer runs reference/practice frame pairs through the pipeline.
type Analyzer struct {
	deps Dependencies
}

// New creates an analyzer. Monitor may be nil; Logger defaults to
// slog.Default when unset.
func New(deps Dependencies) *Analyzer {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Analyzer{deps: deps}
}

// newAnalysisID builds the record identifier from both frame IDs plus a
// random fragment, so repeated analyses of the same pair never collide.
func newAnalysisID(referenceID, practiceID string) string {
	fragment := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s:%s:%s", referenceID, practiceID, fragment)
}

// Analyze runs the complete pipeline for one frame pair and returns the
// identifier of the stored feedback record. On any hard failure nothing
// is stored and the error describes the stage that failed.
func (a *Analyzer) Analyze(ctx context.Context, reference, practice core.Frame) (string, error) {
	id := newAnalysisID(reference.ID, practice.ID)
	log := a.deps.Logger.With("analysisID", id)

	cmp := score.Compare(reference.Angles, practice.Angles)
	log.Debug("Compared angle sequences", "accuracy", cmp.Accuracy, "deltas", len(cmp.Deltas))

	p := prompt.Build(cmp, reference, practice)

	start := time.Now()
	feedback, err := a.deps.Completer.Complete(ctx, p)
	if err != nil {
		a.recordFailure()
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}
	if a.deps.Monitor != nil {
		a.deps.Monitor.RecordCompletion(ctx, id, a.deps.Model,
			time.Since(start), len(p), validate.WordCount(feedback))
	}

	// All checks run before anything is stored.
	warnings, err := a.deps.Validator.Validate(ctx, feedback)
	if err != nil {
		a.recordFailure()
		log.Warn("Generated feedback rejected", "error", err)
		return "", fmt.Errorf("feedback validation failed: %w", err)
	}
	if a.deps.Monitor != nil {
		for _, w := range warnings {
			a.deps.Monitor.RecordWarning(ctx, id, w.Check, w.Detail)
		}
	}

	record := &core.FeedbackRecord{
		ID:        id,
		Reference: reference,
		Practice:  practice,
		Feedback:  feedback,
		Accuracy:  cmp.Accuracy,
	}
	if err := a.deps.Store.Put(record); err != nil {
		a.recordFailure()
		return "", fmt.Errorf("storing feedback record: %w", err)
	}

	if a.deps.Monitor != nil {
		a.deps.Monitor.RecordAnalysis(ctx, id, cmp)
	}
	log.Info("Analysis complete", "accuracy", cmp.Accuracy)

	return id, nil
}

// GetFeedback returns the feedback text and accuracy for a stored record.
func (a *Analyzer) GetFeedback(id string) (string, float64, error) {
	record, err := a.deps.Store.Get(id)
	if err != nil {
		return "", 0, err
	}
	return record.Feedback, record.Accuracy, nil
}

func (a *Analyzer) recordFailure() {
	if a.deps.Monitor != nil {
		a.deps.Monitor.RecordFailure()
	}
}
