package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Index,Title,Artist,Top Genre,Year,Beats Per Minute (BPM),Energy,Danceability,Loudness (dB),Liveness,Valence,Length (Duration),Acousticness,Speechiness,Popularity
1,Sunrise,Norah Jones,adult standards,2004,157,30,53,-14,11,68,201,94,3,71
2,Black Night,Deep Purple,album rock,2000,135,79,50,-11,17,81,207,17,7,39
3,Clint Eastwood,Gorillaz,alternative hip hop,2001,168,69,66,-9,7,52,341,2,17,69
4,Sunrise,Simply Red,adult standards,1999,106,66,72,-6,10,80,"1,121",10,3,50
5,Empty,Nobody,dance pop,2010,,50,50,-5,10,50,200,10,5,40
`

func TestReadCSV(t *testing.T) {
	tracks, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if len(tracks) != 5 {
		t.Fatalf("got %d tracks, want 5", len(tracks))
	}

	first := tracks[0]
	if first.Index != 1 || first.Title != "Sunrise" || first.Artist != "Norah Jones" {
		t.Errorf("first track = %+v", first)
	}
	if first.Genre != "adult standards" {
		t.Errorf("Genre = %q, want %q", first.Genre, "adult standards")
	}
	if first.Year != 2004 || first.BPM != 157 || first.Loudness != -14 || first.Popularity != 71 {
		t.Errorf("numeric fields = %+v", first)
	}

	if got := tracks[3].Length; got != 1121 {
		t.Errorf("Length with thousands separator = %v, want 1121", got)
	}

	if !math.IsNaN(tracks[4].BPM) {
		t.Errorf("empty BPM cell = %v, want NaN", tracks[4].BPM)
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	input := "Title,Top Genre,Year\nSong,pop,2000\n"

	_, err := ReadCSV(strings.NewReader(input))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ReadCSV() error = %v, want ErrMissingColumn", err)
	}
}

func TestReadCSVInvalidNumber(t *testing.T) {
	input := strings.Replace(sampleCSV, "2004,157", "2004,fast", 1)

	_, err := ReadCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("ReadCSV() expected error for non-numeric cell")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the line", err)
	}
}

func TestReadCSVKeepsTitleWhitespace(t *testing.T) {
	input := strings.Replace(sampleCSV, "3,Clint Eastwood,", "3,Clint Eastwood ,", 1)
	input = strings.Replace(input, "2001,168", "2001, 168 ", 1)

	tracks, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	store := NewStore(tracks)
	if _, ok := store.FirstByTitle("Clint Eastwood "); !ok {
		t.Error("padded title should be stored verbatim")
	}
	if _, ok := store.FirstByTitle("Clint Eastwood"); ok {
		t.Error("trimmed title should not match a padded cell")
	}
	if tracks[2].BPM != 168 {
		t.Errorf("BPM = %v, want 168 after trimming the numeric cell", tracks[2].BPM)
	}
}

func TestReadCSVByteOrderMark(t *testing.T) {
	tracks, err := ReadCSV(strings.NewReader("\ufeff" + sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if tracks[0].Index != 1 {
		t.Errorf("Index = %d, want 1", tracks[0].Index)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotify.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if store.Len() != 5 {
		t.Errorf("Len() = %d, want 5", store.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("LoadFile() expected error for missing file")
	}
}
