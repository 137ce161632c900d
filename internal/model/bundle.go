package model

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Paths locates the three serialized artifacts.
type Paths struct {
	Classifier string
	Scaler     string
	Encoder    string
}

// Bundle holds the immutable inference artifacts.
type Bundle struct {
	Classifier Classifier
	Scaler     *Scaler
	Encoder    *LabelEncoder
}

// NewBundle checks that the artifacts agree on the feature width.
func NewBundle(c Classifier, s *Scaler, e *LabelEncoder) (*Bundle, error) {
	if c == nil || s == nil || e == nil {
		return nil, errors.New("bundle needs a classifier, scaler and encoder")
	}
	if c.NumFeatures() != s.NumFeatures() {
		return nil, fmt.Errorf("%w: classifier expects %d features, scaler %d",
			ErrDimension, c.NumFeatures(), s.NumFeatures())
	}
	for _, id := range c.Classes() {
		if id < 0 || id >= e.Len() {
			return nil, fmt.Errorf("%w: classifier class %d has no label (encoder has %d)",
				ErrDimension, id, e.Len())
		}
	}
	return &Bundle{Classifier: c, Scaler: s, Encoder: e}, nil
}

// Load reads all three artifacts from disk.
func Load(paths Paths) (*Bundle, error) {
	classifier, err := readFile(paths.Classifier, ReadClassifier)
	if err != nil {
		return nil, fmt.Errorf("loading classifier: %w", err)
	}
	scaler, err := readFile(paths.Scaler, ReadScaler)
	if err != nil {
		return nil, fmt.Errorf("loading scaler: %w", err)
	}
	encoder, err := readFile(paths.Encoder, ReadLabelEncoder)
	if err != nil {
		return nil, fmt.Errorf("loading label encoder: %w", err)
	}
	return NewBundle(classifier, scaler, encoder)
}

// Predict scales x, classifies it and decodes the genre.
func (b *Bundle) Predict(x []float64) (string, error) {
	scaled, err := b.Scaler.Transform(x)
	if err != nil {
		return "", fmt.Errorf("scaling features: %w", err)
	}
	id, err := b.Classifier.Predict(scaled)
	if err != nil {
		return "", fmt.Errorf("classifying: %w", err)
	}
	genre, err := b.Encoder.Decode(id)
	if err != nil {
		return "", fmt.Errorf("decoding prediction: %w", err)
	}
	return genre, nil
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
