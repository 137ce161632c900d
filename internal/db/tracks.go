package db

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/justestif/go-spotify-genre-dashboard/internal/dataset"
)

// DefaultTable is the table the dataset is read from.
const DefaultTable = "spotify_tracks"

// TrackRepository reads dataset rows.
type TrackRepository struct {
	pool *pgxpool.Pool
}

// textColumns and featureColumns are selected in this order. featureColumns
// follows dataset.FeatureOrder.
var (
	textColumns    = []string{"idx", "title", "artist", "top_genre"}
	featureColumns = [dataset.NumFeatures]string{
		"year", "bpm", "energy", "danceability", "loudness_db", "liveness",
		"valence", "length_s", "acousticness", "speechiness", "popularity",
	}
)

func trackColumns() []string {
	return append(slices.Clone(textColumns), featureColumns[:]...)
}

// selectTracksSQL builds the dataset query for table.
func selectTracksSQL(table string) string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY idx",
		strings.Join(trackColumns(), ", "), pgx.Identifier{table}.Sanitize())
}

// All returns every row of table ordered by index, in dataset form.
// Columns use the snake_case names of the dataset headers.
func (r *TrackRepository) All(ctx context.Context, table string) ([]dataset.Track, error) {
	if table == "" {
		table = DefaultTable
	}

	rows, err := r.pool.Query(ctx, selectTracksSQL(table))
	if err != nil {
		return nil, fmt.Errorf("querying tracks: %w", err)
	}
	defer rows.Close()

	var tracks []dataset.Track
	for rows.Next() {
		var row trackRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}
		tracks = append(tracks, row.track())
	}
	return tracks, rows.Err()
}

// trackRow is one scanned row. NULL cells stay nil.
type trackRow struct {
	idx          int
	title, genre string
	artist       *string
	features     [dataset.NumFeatures]*float64
}

// targets returns scan destinations in trackColumns order.
func (r *trackRow) targets() []any {
	dst := []any{&r.idx, &r.title, &r.artist, &r.genre}
	for i := range r.features {
		dst = append(dst, &r.features[i])
	}
	return dst
}

func (r *trackRow) track() dataset.Track {
	f := r.features
	t := dataset.Track{
		Index:        r.idx,
		Title:        r.title,
		Genre:        r.genre,
		Year:         nullable(f[0]),
		BPM:          nullable(f[1]),
		Energy:       nullable(f[2]),
		Danceability: nullable(f[3]),
		Loudness:     nullable(f[4]),
		Liveness:     nullable(f[5]),
		Valence:      nullable(f[6]),
		Length:       nullable(f[7]),
		Acousticness: nullable(f[8]),
		Speechiness:  nullable(f[9]),
		Popularity:   nullable(f[10]),
	}
	if r.artist != nil {
		t.Artist = *r.artist
	}
	return t
}

// nullable maps SQL NULL to NaN, the dataset's missing value.
func nullable(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
