// Package matching resolves free-text song titles to known dataset titles
// using difflib sequence-matching similarity.
package matching

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum similarity ratio a candidate must reach.
// It matches difflib's get_close_matches default.
const DefaultCutoff = 0.6

// memoTTL bounds how long a resolved query is remembered.
const memoTTL = 10 * time.Minute

// Match is the best candidate for a query.
type Match struct {
	Title string
	Ratio float64
}

// Matcher finds the closest title among a fixed candidate set.
// Results are memoized per query; it is safe for concurrent use.
type Matcher struct {
	candidates [][]string // candidates split into characters
	titles     []string
	cutoff     float64
	memo       *cache.Cache
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithCutoff sets the similarity floor. Values outside (0, 1] are ignored.
func WithCutoff(cutoff float64) Option {
	return func(m *Matcher) {
		if cutoff > 0 && cutoff <= 1 {
			m.cutoff = cutoff
		}
	}
}

// New creates a matcher over titles. Duplicate titles are harmless.
func New(titles []string, opts ...Option) *Matcher {
	m := &Matcher{
		candidates: make([][]string, len(titles)),
		titles:     append([]string(nil), titles...),
		cutoff:     DefaultCutoff,
		memo:       cache.New(memoTTL, 2*memoTTL),
	}
	for i, t := range titles {
		m.candidates[i] = splitChars(t)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Closest returns the candidate most similar to query. A candidate must
// clear the cutoff on the cheap upper bounds and on the full ratio; ties
// go to the lexically greater title.
func (m *Matcher) Closest(query string) (Match, bool) {
	if cached, ok := m.memo.Get(query); ok {
		match := cached.(Match)
		return match, match.Title != ""
	}

	match := m.closest(query)
	m.memo.SetDefault(query, match)
	return match, match.Title != ""
}

func (m *Matcher) closest(query string) Match {
	var best Match

	word := splitChars(query)
	matcher := difflib.NewMatcher(nil, word)
	for i, candidate := range m.candidates {
		matcher.SetSeq1(candidate)
		if matcher.RealQuickRatio() < m.cutoff || matcher.QuickRatio() < m.cutoff {
			continue
		}
		ratio := matcher.Ratio()
		if ratio < m.cutoff {
			continue
		}
		title := m.titles[i]
		if best.Title == "" || ratio > best.Ratio || (ratio == best.Ratio && title > best.Title) {
			best = Match{Title: title, Ratio: ratio}
		}
	}
	return best
}

// splitChars turns a string into a sequence of single-character elements.
func splitChars(s string) []string {
	return strings.Split(s, "")
}
