package model

import (
	"errors"
	"fmt"
	"slices"
)

// Logistic is a linear classifier. With two classes it carries a single
// coefficient row and predicts the second class for positive scores.
type Logistic struct {
	nFeatures int
	classes   []int
	coef      [][]float64
	intercept []float64
}

// NewLogistic validates coefficients and builds the classifier.
func NewLogistic(nFeatures int, classes []int, coef [][]float64, intercept []float64) (*Logistic, error) {
	if len(classes) < 2 {
		return nil, errors.New("logistic regression needs at least two classes")
	}
	wantRows := len(classes)
	if len(classes) == 2 {
		wantRows = 1
	}
	if len(coef) != wantRows || len(intercept) != wantRows {
		return nil, fmt.Errorf("%w: got %d coef rows and %d intercepts, want %d",
			ErrDimension, len(coef), len(intercept), wantRows)
	}
	for i, row := range coef {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("%w: coef row %d has %d values, want %d", ErrDimension, i, len(row), nFeatures)
		}
	}
	return &Logistic{nFeatures: nFeatures, classes: classes, coef: coef, intercept: intercept}, nil
}

// NumFeatures returns the expected input width.
func (l *Logistic) NumFeatures() int {
	return l.nFeatures
}

// Classes returns the encoded class ids in output order.
func (l *Logistic) Classes() []int {
	return slices.Clone(l.classes)
}

// Predict returns the class with the highest decision score.
func (l *Logistic) Predict(x []float64) (int, error) {
	if err := checkWidth(x, l.nFeatures); err != nil {
		return 0, err
	}

	scores := make([]float64, len(l.coef))
	for i, row := range l.coef {
		s := l.intercept[i]
		for j, w := range row {
			s += w * x[j]
		}
		scores[i] = s
	}

	if len(l.classes) == 2 {
		if scores[0] > 0 {
			return l.classes[1], nil
		}
		return l.classes[0], nil
	}
	return l.classes[argmax(scores)], nil
}
