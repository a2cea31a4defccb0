// Package validate polices the free-text output of the text-generation
// service: a closed-vocabulary check (hard failure), a tone check and a
// length check (soft findings). Validation never mutates the feedback.
package validate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poseform/coach/internal/llm"
	"github.com/poseform/coach/pkg/core"
)

// ErrUnknownLandmark is returned when the generated feedback references
// anatomy outside the fixed landmark vocabulary.
var ErrUnknownLandmark = errors.New("unknown landmark reference in generated feedback")

// DefaultMaxWords is the feedback length ceiling before a warning is raised.
const DefaultMaxWords = 500

// Check names used in Warning.Check.
const (
	CheckExtraction = "extraction"
	CheckTone       = "tone"
	CheckLength     = "length"
)

// Warning is a soft validation finding. It never fails validation; the
// caller decides where to report it.
type Warning struct {
	Check  string
	Detail string
}

// Validator runs the three post-generation checks. Two of them issue
// constrained follow-up requests to the same completion service that
// produced the feedback.
type Validator struct {
	completer llm.Completer
	log       *slog.Logger
	maxWords  int
}

// New creates a validator. If maxWords is zero, DefaultMaxWords applies.
func New(completer llm.Completer, log *slog.Logger, maxWords int) *Validator {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if log == nil {
		log = slog.Default()
	}
	return &Validator{
		completer: completer,
		log:       log,
		maxWords:  maxWords,
	}
}

// Validate runs all three checks in order: vocabulary (hard), tone (soft),
// length (soft). The follow-up completions are strictly sequential. Any
// transport failure, or an out-of-vocabulary reference, is returned as an
// error; soft findings are logged and returned as warnings.
func (v *Validator) Validate(ctx context.Context, feedback string) ([]Warning, error) {
	warnings, err := v.CheckVocabulary(ctx, feedback)
	if err != nil {
		return nil, err
	}
	toneWarnings, err := v.CheckTone(ctx, feedback)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, toneWarnings...)
	warnings = append(warnings, v.CheckLength(feedback)...)
	return warnings, nil
}

// CheckVocabulary asks the service to list every joint name the feedback
// mentions and verifies each token against the landmark vocabulary.
// This is the only check that aborts processing.
func (v *Validator) CheckVocabulary(ctx context.Context, feedback string) ([]Warning, error) {
	resp, err := v.completer.Complete(ctx, extractionPrompt(feedback))
	if err != nil {
		return nil, fmt.Errorf("vocabulary extraction request failed: %w", err)
	}

	tokens, ok := ParseBracketedList(resp)
	if !ok {
		// Only out-of-vocabulary tokens abort; a response we cannot parse
		// yields an empty mention list and a warning.
		v.log.Warn("vocabulary extraction response had no bracketed list", "response", resp)
		return []Warning{{Check: CheckExtraction, Detail: "no bracketed list in extraction response"}}, nil
	}

	for _, tok := range tokens {
		if _, found := core.LandmarkByName(tok); !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLandmark, tok)
		}
	}
	return nil, nil
}

// CheckTone asks the service for a strict TRUE/FALSE judgment of whether
// the feedback tone is positive. A FALSE or malformed verdict is a
// warning; only a transport failure is returned as an error.
func (v *Validator) CheckTone(ctx context.Context, feedback string) ([]Warning, error) {
	resp, err := v.completer.Complete(ctx, tonePrompt(feedback))
	if err != nil {
		return nil, fmt.Errorf("tone check request failed: %w", err)
	}

	positive, ok := ParseStrictBool(resp)
	if !ok {
		v.log.Warn("tone check returned malformed verdict", "response", resp)
		return []Warning{{Check: CheckTone, Detail: "malformed tone verdict"}}, nil
	}
	if !positive {
		v.log.Warn("generated feedback judged not positive in tone")
		return []Warning{{Check: CheckTone, Detail: "feedback judged not positive"}}, nil
	}
	return nil, nil
}

// CheckLength warns when the feedback exceeds the word ceiling. The
// feedback is never truncated.
func (v *Validator) CheckLength(feedback string) []Warning {
	words := WordCount(feedback)
	if words <= v.maxWords {
		return nil
	}
	v.log.Warn("generated feedback exceeds length limit", "words", words, "limit", v.maxWords)
	return []Warning{{
		Check:  CheckLength,
		Detail: fmt.Sprintf("%d words exceeds limit of %d", words, v.maxWords),
	}}
}

// extractionPrompt builds the constrained vocabulary follow-up request.
func extractionPrompt(feedback string) string {
	return fmt.Sprintf(
		"The following text is coaching feedback about body pose:\n\n%s\n\n"+
			"List every joint or body-part name the text mentions, converted to upper-case "+
			"with words joined by underscores (for example LEFT_SHOULDER). Respond with only "+
			"a single bracketed, comma-separated list such as [LEFT_SHOULDER, RIGHT_WRIST]. "+
			"If no joints are mentioned, respond with [].",
		feedback,
	)
}

// tonePrompt builds the constrained tone follow-up request.
func tonePrompt(feedback string) string {
	return fmt.Sprintf(
		"Consider the following coaching feedback:\n\n%s\n\n"+
			"Is the overall tone of this feedback positive and encouraging? "+
			"Respond with exactly TRUE or FALSE and nothing else.",
		feedback,
	)
}
