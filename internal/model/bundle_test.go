package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const (
	testClassifierJSON = `{"kind":"random_forest","n_features":2,"classes":[0,1],"trees":[
		{"children_left":[1,-1,-1],"children_right":[2,-1,-1],"feature":[1,-2,-2],
		 "threshold":[0,-2,-2],"value":[[2,2],[2,0],[0,2]]}]}`
	testScalerJSON  = `{"kind":"standard","mean":[2000,50],"scale":[10,25]}`
	testEncoderJSON = `{"classes":["adult standards","dance pop"]}`
)

func writeArtifacts(t *testing.T, classifier, scaler, encoder string) Paths {
	t.Helper()
	dir := t.TempDir()
	paths := Paths{
		Classifier: filepath.Join(dir, "genre_model.json"),
		Scaler:     filepath.Join(dir, "scaler.json"),
		Encoder:    filepath.Join(dir, "label_encoder.json"),
	}
	for path, body := range map[string]string{
		paths.Classifier: classifier,
		paths.Scaler:     scaler,
		paths.Encoder:    encoder,
	} {
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestLoadAndPredict(t *testing.T) {
	bundle, err := Load(writeArtifacts(t, testClassifierJSON, testScalerJSON, testEncoderJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		x    []float64
		want string
	}{
		{"low second feature", []float64{2004, 30}, "adult standards"},
		{"mean second feature scales to zero", []float64{1990, 50}, "adult standards"},
		{"high second feature", []float64{2004, 80}, "dance pop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bundle.Predict(tt.x)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Predict(%v) = %q, want %q", tt.x, got, tt.want)
			}
		})
	}
}

// staticClassifier reports whatever classes it is given and always predicts id.
type staticClassifier struct {
	classes []int
	id      int
}

func (c staticClassifier) Predict([]float64) (int, error) { return c.id, nil }
func (c staticClassifier) NumFeatures() int               { return 2 }
func (c staticClassifier) Classes() []int                 { return c.classes }

func TestLoadRejectsClassesWithoutLabels(t *testing.T) {
	_, err := Load(writeArtifacts(t, testClassifierJSON, testScalerJSON, `{"classes":["only one"]}`))
	if !errors.Is(err, ErrDimension) {
		t.Errorf("Load() error = %v, want ErrDimension", err)
	}
}

func TestNewBundleClassRange(t *testing.T) {
	scaler, err := NewStandardScaler([]float64{0, 0}, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	encoder, err := NewLabelEncoder([]string{"pop", "rock"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		classes []int
		wantErr bool
	}{
		{"all ids labelled", []int{0, 1}, false},
		{"id past encoder", []int{0, 2}, true},
		{"negative id", []int{-1, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBundle(staticClassifier{classes: tt.classes}, scaler, encoder)
			if tt.wantErr && !errors.Is(err, ErrDimension) {
				t.Errorf("NewBundle() error = %v, want ErrDimension", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("NewBundle() error = %v", err)
			}
		})
	}
}

func TestBundlePredictUnknownLabel(t *testing.T) {
	// A classifier that lies about its classes still fails at decode time.
	scaler, err := NewStandardScaler([]float64{0, 0}, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	encoder, err := NewLabelEncoder([]string{"pop"})
	if err != nil {
		t.Fatal(err)
	}
	bundle, err := NewBundle(staticClassifier{classes: []int{0}, id: 5}, scaler, encoder)
	if err != nil {
		t.Fatalf("NewBundle() error = %v", err)
	}

	if _, err := bundle.Predict([]float64{1, 2}); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("Predict() error = %v, want ErrUnknownLabel", err)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("width mismatch", func(t *testing.T) {
		paths := writeArtifacts(t, testClassifierJSON, `{"mean":[1],"scale":[1]}`, testEncoderJSON)
		if _, err := Load(paths); !errors.Is(err, ErrDimension) {
			t.Errorf("Load() error = %v, want ErrDimension", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		paths := writeArtifacts(t, testClassifierJSON, testScalerJSON, testEncoderJSON)
		paths.Encoder = filepath.Join(t.TempDir(), "absent.json")
		if _, err := Load(paths); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Load() error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestScores(t *testing.T) {
	scores := Scores()
	if len(scores) != 5 {
		t.Fatalf("got %d scores, want 5", len(scores))
	}

	first := scores[0]
	if first.Model != "Gradient Boosting" || first.Accuracy != 0.694 || first.TrainingSeconds != 2.6375 {
		t.Errorf("first score = %+v", first)
	}

	last := scores[4]
	if last.Model != "Logistic Regression" || last.F1 != 0.595 || last.AUCROC != 0.930 {
		t.Errorf("last score = %+v", last)
	}
}
