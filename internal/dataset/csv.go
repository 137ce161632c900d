package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a required column is absent from the
// source header.
var ErrMissingColumn = errors.New("missing required column")

// requiredColumns must be present in every source.
var requiredColumns = append([]string{ColumnTitle, ColumnGenre}, FeatureOrder[:]...)

// ReadCSV parses tracks from CSV with a header row.
func ReadCSV(r io.Reader) ([]Track, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[name] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var tracks []Track
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		track, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

// parseRecord converts a CSV record into a Track.
func parseRecord(record []string, columns map[string]int) (Track, error) {
	// Text cells are kept verbatim so titles match exactly; numeric
	// cells are trimmed before parsing.
	text := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}
	cell := func(name string) string {
		return strings.TrimSpace(text(name))
	}

	t := Track{
		Title:  text(ColumnTitle),
		Artist: text(ColumnArtist),
		Genre:  text(ColumnGenre),
	}

	if raw := cell(ColumnIndex); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			return Track{}, fmt.Errorf("parsing %q: %w", ColumnIndex, err)
		}
		t.Index = idx
	}

	for _, name := range FeatureOrder {
		v, err := parseNumber(cell(name))
		if err != nil {
			return Track{}, fmt.Errorf("parsing %q: %w", name, err)
		}
		t.setFeature(name, v)
	}

	return t, nil
}

// parseNumber parses a numeric cell. Empty and NaN cells become NaN;
// thousands separators are ignored.
func parseNumber(raw string) (float64, error) {
	if raw == "" || strings.EqualFold(raw, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}
