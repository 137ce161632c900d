// Package clustering groups dataset tracks by mood using audio features.
package clustering

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/justestif/go-spotify-genre-dashboard/internal/dataset"
)

// MoodConfig holds mood-based clustering parameters.
type MoodConfig struct {
	NumClusters    int // Number of clusters to create (default: 4)
	MinClusterSize int // Minimum tracks per group (smaller clusters become outliers)
}

// DefaultMoodConfig returns the recommended default configuration.
func DefaultMoodConfig() MoodConfig {
	return MoodConfig{
		NumClusters:    4,
		MinClusterSize: 3,
	}
}

// MoodGroup is a cluster of tracks with a similar vibe.
type MoodGroup struct {
	Category  MoodCategory
	Tracks    []dataset.Track
	Centroid  map[string]float64 // Average feature values, scaled to [0,1]
	FirstYear int
	LastYear  int
}

// Name returns the group's display name with its year span.
func (g MoodGroup) Name() string {
	return formatGroupName(g.Category.Name, g.FirstYear, g.LastYear)
}

// trackObservation wraps a Track to implement clusters.Observation interface.
type trackObservation struct {
	track  *dataset.Track
	coords clusters.Coordinates
}

func (o trackObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o trackObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// featureNames defines the audio features used for clustering.
var featureNames = []string{"energy", "valence", "danceability", "acousticness"}

// DetectMoodGroups clusters tracks by audio feature similarity using k-means.
// Returns groups ordered largest first and the tracks that fit none of them.
// Tracks missing any clustering feature are outliers.
func DetectMoodGroups(tracks []dataset.Track, cfg MoodConfig) ([]MoodGroup, []dataset.Track) {
	if len(tracks) == 0 {
		return nil, nil
	}

	if cfg.NumClusters <= 0 {
		cfg.NumClusters = DefaultMoodConfig().NumClusters
	}

	// Separate tracks with and without audio features
	var validTracks []*dataset.Track
	var missingFeatures []dataset.Track

	for i := range tracks {
		t := &tracks[i]
		if hasAudioFeatures(t) {
			validTracks = append(validTracks, t)
		} else {
			missingFeatures = append(missingFeatures, *t)
		}
	}

	// If fewer valid tracks than clusters, everything is an outlier
	if len(validTracks) < cfg.NumClusters {
		return nil, allOutliers(validTracks, missingFeatures)
	}

	var obs clusters.Observations
	for _, t := range validTracks {
		obs = append(obs, trackObservation{
			track:  t,
			coords: extractFeatures(t),
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumClusters)
	if err != nil {
		slog.Warn("k-means clustering failed", "err", err)
		return nil, allOutliers(validTracks, missingFeatures)
	}

	var groups []MoodGroup
	var outliers []dataset.Track

	for _, cluster := range result {
		var clusterTracks []dataset.Track
		for _, o := range cluster.Observations {
			if to, ok := o.(trackObservation); ok {
				clusterTracks = append(clusterTracks, *to.track)
			}
		}

		if len(clusterTracks) < cfg.MinClusterSize {
			outliers = append(outliers, clusterTracks...)
			continue
		}

		centroid := make(map[string]float64, len(featureNames))
		for i, name := range featureNames {
			centroid[name] = cluster.Center[i]
		}

		first, last := yearSpan(clusterTracks)
		groups = append(groups, MoodGroup{
			Category:  GetMoodCategory(centroid),
			Tracks:    clusterTracks,
			Centroid:  centroid,
			FirstYear: first,
			LastYear:  last,
		})
	}

	outliers = append(outliers, missingFeatures...)

	slices.SortFunc(groups, func(a, b MoodGroup) int {
		if c := cmp.Compare(len(b.Tracks), len(a.Tracks)); c != 0 {
			return c
		}
		return cmp.Compare(a.Category.Name, b.Category.Name)
	})

	return groups, outliers
}

func allOutliers(valid []*dataset.Track, missing []dataset.Track) []dataset.Track {
	outliers := make([]dataset.Track, 0, len(valid)+len(missing))
	for _, t := range valid {
		outliers = append(outliers, *t)
	}
	return append(outliers, missing...)
}

// hasAudioFeatures checks if a track has the required audio features for clustering.
func hasAudioFeatures(t *dataset.Track) bool {
	return !math.IsNaN(t.Energy) &&
		!math.IsNaN(t.Valence) &&
		!math.IsNaN(t.Danceability) &&
		!math.IsNaN(t.Acousticness)
}

// extractFeatures returns the clustering features scaled from the
// dataset's 0-100 range to [0,1].
func extractFeatures(t *dataset.Track) clusters.Coordinates {
	return clusters.Coordinates{
		t.Energy / 100,
		t.Valence / 100,
		t.Danceability / 100,
		t.Acousticness / 100,
	}
}

// yearSpan returns the earliest and latest known release years.
func yearSpan(tracks []dataset.Track) (int, int) {
	first, last := 0, 0
	for _, t := range tracks {
		if math.IsNaN(t.Year) {
			continue
		}
		y := int(t.Year)
		if first == 0 || y < first {
			first = y
		}
		if y > last {
			last = y
		}
	}
	return first, last
}

// formatGroupName combines a mood name with a year range.
func formatGroupName(moodName string, first, last int) string {
	switch {
	case first == 0:
		return moodName
	case first == last:
		return fmt.Sprintf("%s: %d", moodName, first)
	default:
		return fmt.Sprintf("%s: %d - %d", moodName, first, last)
	}
}
