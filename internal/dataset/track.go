// Package dataset holds the immutable in-memory collection of tracks the
// dashboard is built from.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

// ErrMissingFeature is returned when a track lacks a value for one of the
// model features.
var ErrMissingFeature = errors.New("missing feature value")

// NumFeatures is the length of a feature vector.
const NumFeatures = 11

// Column names as they appear in the source dataset.
const (
	ColumnIndex        = "Index"
	ColumnTitle        = "Title"
	ColumnArtist       = "Artist"
	ColumnGenre        = "Top Genre"
	ColumnYear         = "Year"
	ColumnBPM          = "Beats Per Minute (BPM)"
	ColumnEnergy       = "Energy"
	ColumnDanceability = "Danceability"
	ColumnLoudness     = "Loudness (dB)"
	ColumnLiveness     = "Liveness"
	ColumnValence      = "Valence"
	ColumnLength       = "Length (Duration)"
	ColumnAcousticness = "Acousticness"
	ColumnSpeechiness  = "Speechiness"
	ColumnPopularity   = "Popularity"
)

// FeatureOrder is the column order the classifier was trained on.
// Reordering it silently produces wrong predictions.
var FeatureOrder = [NumFeatures]string{
	ColumnYear,
	ColumnBPM,
	ColumnEnergy,
	ColumnDanceability,
	ColumnLoudness,
	ColumnLiveness,
	ColumnValence,
	ColumnLength,
	ColumnAcousticness,
	ColumnSpeechiness,
	ColumnPopularity,
}

// Track is one row of the dataset. Missing numeric values are NaN.
type Track struct {
	Index  int
	Title  string
	Artist string
	Genre  string

	Year         float64
	BPM          float64
	Energy       float64
	Danceability float64
	Loudness     float64
	Liveness     float64
	Valence      float64
	Length       float64
	Acousticness float64
	Speechiness  float64
	Popularity   float64
}

// Features returns the track's feature vector in FeatureOrder.
// The genre is never part of the vector.
func (t Track) Features() ([]float64, error) {
	values := [NumFeatures]float64{
		t.Year,
		t.BPM,
		t.Energy,
		t.Danceability,
		t.Loudness,
		t.Liveness,
		t.Valence,
		t.Length,
		t.Acousticness,
		t.Speechiness,
		t.Popularity,
	}

	for i, v := range values {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %q for %q", ErrMissingFeature, FeatureOrder[i], t.Title)
		}
	}

	return values[:], nil
}

// setFeature assigns a numeric column by its dataset name.
func (t *Track) setFeature(column string, v float64) bool {
	switch column {
	case ColumnYear:
		t.Year = v
	case ColumnBPM:
		t.BPM = v
	case ColumnEnergy:
		t.Energy = v
	case ColumnDanceability:
		t.Danceability = v
	case ColumnLoudness:
		t.Loudness = v
	case ColumnLiveness:
		t.Liveness = v
	case ColumnValence:
		t.Valence = v
	case ColumnLength:
		t.Length = v
	case ColumnAcousticness:
		t.Acousticness = v
	case ColumnSpeechiness:
		t.Speechiness = v
	case ColumnPopularity:
		t.Popularity = v
	default:
		return false
	}
	return true
}
