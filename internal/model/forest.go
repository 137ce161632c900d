package model

import (
	"errors"
	"fmt"
	"slices"
)

// leaf marks a node without children in ChildrenLeft/ChildrenRight.
const leaf = -1

// Tree is a binary decision tree in sklearn's parallel-array layout:
// node i splits on Feature[i] at Threshold[i] (x <= threshold goes left)
// unless it is a leaf, in which case Value[i] holds per-class weights.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// validate checks array lengths and node references.
func (t Tree) validate(nFeatures, nClasses int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return errors.New("tree has no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("%w: tree arrays must all have %d nodes", ErrDimension, n)
	}

	for i := range n {
		left, right := t.ChildrenLeft[i], t.ChildrenRight[i]
		if left == leaf || right == leaf {
			if left != right {
				return fmt.Errorf("node %d has only one child", i)
			}
			if len(t.Value[i]) != nClasses {
				return fmt.Errorf("%w: leaf %d has %d class weights, want %d", ErrDimension, i, len(t.Value[i]), nClasses)
			}
			continue
		}
		// sklearn numbers children after their parent, which also rules out cycles.
		if left <= i || left >= n || right <= i || right >= n {
			return fmt.Errorf("node %d has invalid children %d/%d", i, left, right)
		}
		if f := t.Feature[i]; f < 0 || f >= nFeatures {
			return fmt.Errorf("node %d splits on feature %d, want [0,%d)", i, f, nFeatures)
		}
	}
	return nil
}

// proba returns the normalized class weights of the leaf x falls into.
func (t Tree) proba(x []float64) []float64 {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}

	weights := t.Value[node]
	var total float64
	for _, w := range weights {
		total += w
	}

	p := make([]float64, len(weights))
	for i, w := range weights {
		if total > 0 {
			p[i] = w / total
		}
	}
	return p
}

// Forest averages the leaf probabilities of its trees. A single-tree forest
// is a decision tree.
type Forest struct {
	nFeatures int
	classes   []int
	trees     []Tree
}

// NewForest validates trees and builds a forest.
func NewForest(nFeatures int, classes []int, trees []Tree) (*Forest, error) {
	if len(trees) == 0 {
		return nil, errors.New("forest has no trees")
	}
	for i, t := range trees {
		if err := t.validate(nFeatures, len(classes)); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return &Forest{nFeatures: nFeatures, classes: classes, trees: trees}, nil
}

// NumFeatures returns the expected input width.
func (f *Forest) NumFeatures() int {
	return f.nFeatures
}

// Classes returns the encoded class ids in output order.
func (f *Forest) Classes() []int {
	return slices.Clone(f.classes)
}

// Proba returns the mean class probabilities over all trees.
func (f *Forest) Proba(x []float64) ([]float64, error) {
	if err := checkWidth(x, f.nFeatures); err != nil {
		return nil, err
	}

	mean := make([]float64, len(f.classes))
	for _, t := range f.trees {
		for i, p := range t.proba(x) {
			mean[i] += p
		}
	}
	for i := range mean {
		mean[i] /= float64(len(f.trees))
	}
	return mean, nil
}

// Predict returns the encoded class with the highest mean probability.
func (f *Forest) Predict(x []float64) (int, error) {
	p, err := f.Proba(x)
	if err != nil {
		return 0, err
	}
	return f.classes[argmax(p)], nil
}
