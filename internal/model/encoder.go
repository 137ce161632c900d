package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownLabel is returned when an encoded id has no genre name.
var ErrUnknownLabel = errors.New("unknown label id")

// LabelEncoder maps encoded class ids to genre names. Id i decodes to
// the i-th class, as with sklearn's LabelEncoder.classes_.
type LabelEncoder struct {
	classes []string
}

type encoderFile struct {
	Classes []string `json:"classes"`
}

// NewLabelEncoder builds an encoder. Class names must be unique.
func NewLabelEncoder(classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, errors.New("label encoder has no classes")
	}
	seen := make(map[string]bool, len(classes))
	for _, c := range classes {
		if seen[c] {
			return nil, fmt.Errorf("duplicate label %q", c)
		}
		seen[c] = true
	}
	return &LabelEncoder{classes: append([]string(nil), classes...)}, nil
}

// ReadLabelEncoder decodes a label encoder artifact.
func ReadLabelEncoder(r io.Reader) (*LabelEncoder, error) {
	var f encoderFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding label encoder: %w", err)
	}
	return NewLabelEncoder(f.Classes)
}

// Len returns the number of classes.
func (e *LabelEncoder) Len() int {
	return len(e.classes)
}

// Decode returns the genre name for an encoded id.
func (e *LabelEncoder) Decode(id int) (string, error) {
	if id < 0 || id >= len(e.classes) {
		return "", fmt.Errorf("%w: %d (have %d classes)", ErrUnknownLabel, id, len(e.classes))
	}
	return e.classes[id], nil
}
