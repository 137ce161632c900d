package model

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// stump splits on feature 0 at threshold: <= goes to class 0, > to class 1.
func stump(threshold float64) Tree {
	return Tree{
		ChildrenLeft:  []int{1, leaf, leaf},
		ChildrenRight: []int{2, leaf, leaf},
		Feature:       []int{0, -2, -2},
		Threshold:     []float64{threshold, -2, -2},
		Value:         [][]float64{{5, 5}, {3, 1}, {0, 2}},
	}
}

func TestForestPredict(t *testing.T) {
	forest, err := NewForest(2, []int{0, 1}, []Tree{stump(0.5)})
	if err != nil {
		t.Fatalf("NewForest() error = %v", err)
	}

	tests := []struct {
		name string
		x    []float64
		want int
	}{
		{"below threshold", []float64{0.1, 9}, 0},
		{"at threshold goes left", []float64{0.5, 9}, 0},
		{"above threshold", []float64{0.7, 9}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := forest.Predict(tt.x)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Predict(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestForestAveragesTrees(t *testing.T) {
	// For x=0.6 the first tree votes class 1 (p=1.0), the other two vote
	// class 0 (p=0.75 each): mean is 0.5 vs 0.5, first maximum wins.
	forest, err := NewForest(1, []int{7, 9}, []Tree{stump(0.5), stump(0.8), stump(0.9)})
	if err != nil {
		t.Fatalf("NewForest() error = %v", err)
	}

	p, err := forest.Proba([]float64{0.6})
	if err != nil {
		t.Fatalf("Proba() error = %v", err)
	}
	if math.Abs(p[0]-0.5) > 1e-12 || math.Abs(p[1]-0.5) > 1e-12 {
		t.Errorf("Proba() = %v, want [0.5 0.5]", p)
	}

	got, _ := forest.Predict([]float64{0.6})
	if got != 7 {
		t.Errorf("Predict() = %d, want first class on tie (7)", got)
	}
}

func TestForestDimension(t *testing.T) {
	forest, _ := NewForest(2, []int{0, 1}, []Tree{stump(0.5)})

	_, err := forest.Predict([]float64{1})
	if !errors.Is(err, ErrDimension) {
		t.Errorf("Predict() error = %v, want ErrDimension", err)
	}
}

func TestTreeValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tree)
	}{
		{"short arrays", func(tr *Tree) { tr.Threshold = tr.Threshold[:2] }},
		{"single child", func(tr *Tree) { tr.ChildrenRight[0] = leaf }},
		{"backward child", func(tr *Tree) { tr.ChildrenLeft[0] = 0 }},
		{"feature out of range", func(tr *Tree) { tr.Feature[0] = 5 }},
		{"leaf width", func(tr *Tree) { tr.Value[1] = []float64{1} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := stump(0.5)
			tt.mutate(&tr)
			if _, err := NewForest(2, []int{0, 1}, []Tree{tr}); err == nil {
				t.Error("NewForest() expected validation error")
			}
		})
	}

	if _, err := NewForest(2, []int{0, 1}, nil); err == nil {
		t.Error("NewForest() expected error for no trees")
	}
}

func TestLogisticPredict(t *testing.T) {
	multi, err := NewLogistic(2, []int{0, 1, 2},
		[][]float64{{1, 0}, {0, 1}, {-1, -1}},
		[]float64{0, 0, 0.5})
	if err != nil {
		t.Fatalf("NewLogistic() error = %v", err)
	}

	tests := []struct {
		x    []float64
		want int
	}{
		{[]float64{2, 1}, 0},
		{[]float64{1, 3}, 1},
		{[]float64{-1, -1}, 2},
	}
	for _, tt := range tests {
		got, err := multi.Predict(tt.x)
		if err != nil {
			t.Fatalf("Predict() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("Predict(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}

	binary, err := NewLogistic(1, []int{3, 4}, [][]float64{{2}}, []float64{-1})
	if err != nil {
		t.Fatalf("NewLogistic() binary error = %v", err)
	}
	if got, _ := binary.Predict([]float64{1}); got != 4 {
		t.Errorf("binary positive score = %d, want 4", got)
	}
	if got, _ := binary.Predict([]float64{0}); got != 3 {
		t.Errorf("binary negative score = %d, want 3", got)
	}
}

func TestNewLogisticErrors(t *testing.T) {
	if _, err := NewLogistic(2, []int{0}, nil, nil); err == nil {
		t.Error("expected error for a single class")
	}
	if _, err := NewLogistic(2, []int{0, 1, 2}, [][]float64{{1, 1}}, []float64{0}); !errors.Is(err, ErrDimension) {
		t.Errorf("error = %v, want ErrDimension", err)
	}
	if _, err := NewLogistic(2, []int{0, 1}, [][]float64{{1}}, []float64{0}); !errors.Is(err, ErrDimension) {
		t.Errorf("error = %v, want ErrDimension", err)
	}
}

func TestReadClassifier(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
		x       []float64
		want    int
	}{
		{
			name: "random forest",
			json: `{"kind":"random_forest","n_features":1,"classes":[0,1],"trees":[
				{"children_left":[1,-1,-1],"children_right":[2,-1,-1],"feature":[0,-2,-2],
				 "threshold":[0.5,-2,-2],"value":[[1,1],[1,0],[0,1]]}]}`,
			x:    []float64{1},
			want: 1,
		},
		{
			name: "decision tree",
			json: `{"kind":"decision_tree","n_features":1,"classes":[0,1],"tree":
				{"children_left":[1,-1,-1],"children_right":[2,-1,-1],"feature":[0,-2,-2],
				 "threshold":[0.5,-2,-2],"value":[[1,1],[1,0],[0,1]]}}`,
			x:    []float64{0},
			want: 0,
		},
		{
			name: "logistic regression",
			json: `{"kind":"logistic_regression","n_features":1,"classes":[0,1],"coef":[[1]],"intercept":[0]}`,
			x:    []float64{2},
			want: 1,
		},
		{name: "unknown kind", json: `{"kind":"svm","n_features":1,"classes":[0]}`, wantErr: true},
		{name: "no features", json: `{"kind":"random_forest","classes":[0]}`, wantErr: true},
		{name: "decision tree without tree", json: `{"kind":"decision_tree","n_features":1,"classes":[0]}`, wantErr: true},
		{name: "malformed", json: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ReadClassifier(strings.NewReader(tt.json))
			if tt.wantErr {
				if err == nil {
					t.Error("ReadClassifier() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadClassifier() error = %v", err)
			}
			got, err := c.Predict(tt.x)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Predict() = %d, want %d", got, tt.want)
			}
		})
	}
}
