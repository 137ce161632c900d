// Package views maps dashboard selector keys to prebuilt view content.
package views

import (
	"fmt"
	"log/slog"

	"github.com/justestif/go-spotify-genre-dashboard/internal/charts"
	"github.com/justestif/go-spotify-genre-dashboard/internal/clustering"
	"github.com/justestif/go-spotify-genre-dashboard/internal/dataset"
	"github.com/justestif/go-spotify-genre-dashboard/internal/model"
	"github.com/justestif/go-spotify-genre-dashboard/internal/spotify"
)

// Key identifies a dashboard view.
type Key string

const (
	KeyModels  Key = "models"
	KeyValence Key = "valence"
	KeyAudio   Key = "audio"
)

// DefaultKey is selected when the page first loads.
const DefaultKey = KeyModels

// Option is one entry of the view selector.
type Option struct {
	Key   Key
	Label string
}

// order is the selector order.
var order = []Key{KeyModels, KeyValence, KeyAudio}

var labels = map[Key]string{
	KeyModels:  "Model Performance & Prediction",
	KeyValence: "Valence Over Time",
	KeyAudio:   "Top 3 Most Popular Songs",
}

// Options returns the selector entries in display order.
func Options() []Option {
	opts := make([]Option, len(order))
	for i, k := range order {
		opts[i] = Option{Key: k, Label: Label(k)}
	}
	return opts
}

// Label returns the selector label for key, or "" if key is unknown.
func Label(key Key) string {
	return labels[key]
}

// View is the content for one key: the partial template that renders it and
// the data passed to that template.
type View struct {
	Key     Key
	Partial string
	Data    any
}

// ModelsData feeds the model comparison and prediction view.
type ModelsData struct {
	Figure      string // Plotly JSON
	Scores      []model.Score
	Titles      []string // sorted unique dataset titles
	Heading     string
	Placeholder string
}

// ValenceData feeds the temporal scatter view.
type ValenceData struct {
	Figure   string // Plotly JSON
	Moods    []clustering.MoodGroup
	Outliers int
}

// AudioData feeds the embedded players view.
type AudioData struct {
	Heading string
	Tracks  []spotify.EmbedTrack
}

// Inputs are the immutable sources the views are built from.
type Inputs struct {
	Store  *dataset.Store
	Scores []model.Score
	Embeds []spotify.EmbedTrack
	Mood   clustering.MoodConfig
}

// Router resolves keys to views built once at construction.
// It is read-only after NewRouter and safe for concurrent use.
type Router struct {
	views map[Key]View
}

// NewRouter builds every view from in.
func NewRouter(in Inputs) (*Router, error) {
	tracks := in.Store.Tracks()

	barJSON, err := charts.ModelComparison(in.Scores).JSON()
	if err != nil {
		return nil, fmt.Errorf("building model comparison chart: %w", err)
	}
	scatterJSON, err := charts.ValenceOverTime(tracks).JSON()
	if err != nil {
		return nil, fmt.Errorf("building valence chart: %w", err)
	}

	groups, outliers := clustering.DetectMoodGroups(tracks, in.Mood)
	slog.Info("Mood groups detected", "groups", len(groups), "outliers", len(outliers))

	r := &Router{views: map[Key]View{
		KeyModels: {
			Key:     KeyModels,
			Partial: "models",
			Data: ModelsData{
				Figure:      barJSON,
				Scores:      in.Scores,
				Titles:      in.Store.SortedTitles(),
				Heading:     "Predict a Genre from Songs in the Dataset:",
				Placeholder: "Select a Song Title",
			},
		},
		KeyValence: {
			Key:     KeyValence,
			Partial: "valence",
			Data: ValenceData{
				Figure:   scatterJSON,
				Moods:    groups,
				Outliers: len(outliers),
			},
		},
		KeyAudio: {
			Key:     KeyAudio,
			Partial: "audio",
			Data: AudioData{
				Heading: "Top 3 Most Popular Songs (Embed View)",
				Tracks:  in.Embeds,
			},
		},
	}}
	return r, nil
}

// Route returns the view for key. Unknown keys report false.
func (r *Router) Route(key string) (View, bool) {
	v, ok := r.views[Key(key)]
	return v, ok
}
