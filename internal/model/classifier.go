// Package model loads the offline-trained genre classifier, its feature
// scaler and its label encoder, and applies them at inference time.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrDimension is returned when a vector does not match an artifact's
// expected width.
var ErrDimension = errors.New("dimension mismatch")

// Classifier kinds understood by ReadClassifier.
const (
	KindRandomForest       = "random_forest"
	KindDecisionTree       = "decision_tree"
	KindLogisticRegression = "logistic_regression"
)

// Classifier maps a scaled feature vector to an encoded class id.
type Classifier interface {
	Predict(x []float64) (int, error)
	NumFeatures() int
	// Classes returns the encoded ids the classifier can predict.
	Classes() []int
}

// classifierFile is the JSON envelope shared by all classifier kinds.
type classifierFile struct {
	Kind      string      `json:"kind"`
	NFeatures int         `json:"n_features"`
	Classes   []int       `json:"classes"`
	Trees     []Tree      `json:"trees,omitempty"`
	Tree      *Tree       `json:"tree,omitempty"`
	Coef      [][]float64 `json:"coef,omitempty"`
	Intercept []float64   `json:"intercept,omitempty"`
}

// ReadClassifier decodes and validates a classifier artifact.
func ReadClassifier(r io.Reader) (Classifier, error) {
	var f classifierFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding classifier: %w", err)
	}

	if f.NFeatures <= 0 {
		return nil, fmt.Errorf("classifier n_features must be positive, got %d", f.NFeatures)
	}
	if len(f.Classes) == 0 {
		return nil, errors.New("classifier has no classes")
	}

	var (
		c   Classifier
		err error
	)
	switch f.Kind {
	case KindRandomForest:
		c, err = NewForest(f.NFeatures, f.Classes, f.Trees)
	case KindDecisionTree:
		if f.Tree == nil {
			return nil, errors.New("decision_tree artifact has no tree")
		}
		c, err = NewForest(f.NFeatures, f.Classes, []Tree{*f.Tree})
	case KindLogisticRegression:
		c, err = NewLogistic(f.NFeatures, f.Classes, f.Coef, f.Intercept)
	default:
		return nil, fmt.Errorf("unknown classifier kind %q", f.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", f.Kind, err)
	}
	return c, nil
}

// checkWidth verifies a vector has want elements.
func checkWidth(x []float64, want int) error {
	if len(x) != want {
		return fmt.Errorf("%w: got %d features, want %d", ErrDimension, len(x), want)
	}
	return nil
}

// argmax returns the index of the first maximum.
func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
