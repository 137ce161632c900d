package prediction

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind classifies the outcome of a prediction request.
type Kind string

const (
	// KindPrompt means no title was supplied.
	KindPrompt Kind = "prompt"
	// KindNoMatch means no dataset title was similar enough to the query.
	KindNoMatch Kind = "no_match"
	// KindExtractionFailure means the matched row could not produce a feature vector.
	KindExtractionFailure Kind = "extraction_failure"
	// KindInferenceFailure means scaling, classification or decoding failed.
	KindInferenceFailure Kind = "inference_failure"
	// KindPredicted means a genre was predicted.
	KindPredicted Kind = "predicted"
)

// PromptMessage is shown when the user submits without a title.
const PromptMessage = "Please select a song title."

// Result is the outcome of one prediction request.
type Result struct {
	ID    uuid.UUID
	Kind  Kind
	Query string

	// Set once a title is matched.
	MatchedTitle string
	Similarity   float64

	// Set for KindPredicted.
	PredictedGenre string
	ActualGenre    string

	// Set for the failure kinds.
	Err error
}

// OK reports whether a genre was predicted.
func (r Result) OK() bool {
	return r.Kind == KindPredicted
}

// Message renders the result as plain text.
func (r Result) Message() string {
	switch r.Kind {
	case KindPrompt:
		return PromptMessage
	case KindNoMatch:
		return fmt.Sprintf("No matching song found for '%s'.", r.Query)
	case KindExtractionFailure, KindInferenceFailure:
		return fmt.Sprintf("Prediction error: %v", r.Err)
	case KindPredicted:
		return fmt.Sprintf("Predicted Genre for %s: %s\nActual Genre in Dataset: %s",
			r.MatchedTitle, r.PredictedGenre, r.ActualGenre)
	default:
		return ""
	}
}
