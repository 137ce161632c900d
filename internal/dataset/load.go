package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a dataset file, choosing the format by extension
// (.parquet, otherwise CSV) and returns the resulting store.
func LoadFile(path string) (*Store, error) {
	var (
		tracks []Track
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		tracks, err = ReadParquet(path)
	default:
		tracks, err = readCSVFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading dataset %s: %w", path, err)
	}

	return NewStore(tracks), nil
}

func readCSVFile(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}
