package dataset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/parquet-go/parquet-go"
)

// parquetRow mirrors the dataset columns as written by pandas.to_parquet.
// Pointer fields are optional columns; nil becomes NaN.
type parquetRow struct {
	Index        *int64   `parquet:"Index,optional"`
	Title        string   `parquet:"Title"`
	Artist       string   `parquet:"Artist,optional"`
	Genre        string   `parquet:"Top Genre"`
	Year         *float64 `parquet:"Year,optional"`
	BPM          *float64 `parquet:"Beats Per Minute (BPM),optional"`
	Energy       *float64 `parquet:"Energy,optional"`
	Danceability *float64 `parquet:"Danceability,optional"`
	Loudness     *float64 `parquet:"Loudness (dB),optional"`
	Liveness     *float64 `parquet:"Liveness,optional"`
	Valence      *float64 `parquet:"Valence,optional"`
	Length       *float64 `parquet:"Length (Duration),optional"`
	Acousticness *float64 `parquet:"Acousticness,optional"`
	Speechiness  *float64 `parquet:"Speechiness,optional"`
	Popularity   *float64 `parquet:"Popularity,optional"`
}

// ReadParquet loads tracks from a Parquet file.
func ReadParquet(path string) ([]Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("opening parquet: %w", err)
	}

	for _, name := range requiredColumns {
		if _, ok := pf.Schema().Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	slog.Debug("Parquet file opened", "path", path, "num_rows", pf.NumRows())

	reader := parquet.NewGenericReader[parquetRow](pf)
	defer reader.Close()

	var tracks []Track
	rows := make([]parquetRow, 128)
	for {
		clear(rows)
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			tracks = append(tracks, row.track())
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading parquet rows: %w", err)
		}
	}

	return tracks, nil
}

func (r parquetRow) track() Track {
	t := Track{
		Title:        r.Title,
		Artist:       r.Artist,
		Genre:        r.Genre,
		Year:         orNaN(r.Year),
		BPM:          orNaN(r.BPM),
		Energy:       orNaN(r.Energy),
		Danceability: orNaN(r.Danceability),
		Loudness:     orNaN(r.Loudness),
		Liveness:     orNaN(r.Liveness),
		Valence:      orNaN(r.Valence),
		Length:       orNaN(r.Length),
		Acousticness: orNaN(r.Acousticness),
		Speechiness:  orNaN(r.Speechiness),
		Popularity:   orNaN(r.Popularity),
	}
	if r.Index != nil {
		t.Index = int(*r.Index)
	}
	return t
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
