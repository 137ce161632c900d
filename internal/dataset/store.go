package dataset

import (
	"slices"
)

// Store is a read-only collection of tracks. It is safe for concurrent use
// because nothing mutates it after construction.
type Store struct {
	tracks  []Track
	byTitle map[string]int // index of first track with the title
	titles  []string       // unique titles in file order
	sorted  []string       // unique titles, sorted
}

// NewStore builds a store from tracks in file order. The slice is copied.
func NewStore(tracks []Track) *Store {
	s := &Store{
		tracks:  slices.Clone(tracks),
		byTitle: make(map[string]int, len(tracks)),
	}

	for i, t := range s.tracks {
		if _, seen := s.byTitle[t.Title]; seen {
			continue
		}
		s.byTitle[t.Title] = i
		s.titles = append(s.titles, t.Title)
	}

	s.sorted = slices.Clone(s.titles)
	slices.Sort(s.sorted)

	return s
}

// Len returns the number of tracks.
func (s *Store) Len() int {
	return len(s.tracks)
}

// Tracks returns a copy of all tracks in file order.
func (s *Store) Tracks() []Track {
	return slices.Clone(s.tracks)
}

// Titles returns the unique titles in file order.
func (s *Store) Titles() []string {
	return slices.Clone(s.titles)
}

// SortedTitles returns the unique titles in lexical order.
func (s *Store) SortedTitles() []string {
	return slices.Clone(s.sorted)
}

// FirstByTitle returns the first track whose title equals title exactly.
func (s *Store) FirstByTitle(title string) (Track, bool) {
	i, ok := s.byTitle[title]
	if !ok {
		return Track{}, false
	}
	return s.tracks[i], true
}

// Genres returns the distinct genres in order of first appearance.
func (s *Store) Genres() []string {
	seen := make(map[string]bool)
	var genres []string
	for _, t := range s.tracks {
		if seen[t.Genre] {
			continue
		}
		seen[t.Genre] = true
		genres = append(genres, t.Genre)
	}
	return genres
}
