package model

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed scores.yaml
var scoresYAML []byte

// Score is one candidate model's offline evaluation.
type Score struct {
	Model           string  `yaml:"model"`
	Accuracy        float64 `yaml:"accuracy"`
	F1              float64 `yaml:"f1"`
	AUCROC          float64 `yaml:"auc_roc"`
	TrainingSeconds float64 `yaml:"training_seconds"`
}

// ParseScores decodes a score table.
func ParseScores(data []byte) ([]Score, error) {
	var scores []Score
	if err := yaml.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("parsing score table: %w", err)
	}
	return scores, nil
}

// Scores returns the embedded score table in display order.
func Scores() []Score {
	scores, err := ParseScores(scoresYAML)
	if err != nil {
		panic(err) // embedded at build time
	}
	return scores
}
