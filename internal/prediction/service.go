// Package prediction resolves a song title to a dataset row and predicts
// its genre with the loaded model bundle.
package prediction

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/justestif/go-spotify-genre-dashboard/internal/dataset"
	"github.com/justestif/go-spotify-genre-dashboard/internal/matching"
)

// ErrNoRow is returned when a matched title has no dataset row, which only
// a matcher built from other titles can produce.
var ErrNoRow = errors.New("no dataset row for title")

// TitleMatcher abstracts fuzzy title resolution for testing.
type TitleMatcher interface {
	Closest(query string) (matching.Match, bool)
}

// Predictor abstracts the model bundle for testing.
type Predictor interface {
	Predict(features []float64) (string, error)
}

// Service runs the title -> row -> features -> genre pipeline.
// It holds only read-only state and is safe for concurrent use.
type Service struct {
	store     *dataset.Store
	matcher   TitleMatcher
	predictor Predictor
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMatcher replaces the default matcher built from the store titles.
func WithMatcher(m TitleMatcher) Option {
	return func(s *Service) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithLogger sets the logger for prediction outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a prediction service over store and predictor.
func NewService(store *dataset.Store, predictor Predictor, opts ...Option) *Service {
	s := &Service{
		store:     store,
		predictor: predictor,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.matcher == nil {
		s.matcher = matching.New(store.Titles())
	}
	return s
}

// Predict resolves title and predicts its genre. Failures are reported in
// the result rather than as an error; the caller always gets something to
// show.
func (s *Service) Predict(title string) Result {
	res := s.predict(title)
	res.ID = uuid.New()

	attrs := []any{"id", res.ID, "kind", res.Kind, "query", res.Query}
	switch res.Kind {
	case KindPredicted:
		s.logger.Info("Genre predicted", append(attrs,
			"title", res.MatchedTitle, "predicted", res.PredictedGenre, "actual", res.ActualGenre)...)
	case KindExtractionFailure, KindInferenceFailure:
		s.logger.Warn("Prediction failed", append(attrs, "title", res.MatchedTitle, "err", res.Err)...)
	default:
		s.logger.Debug("Prediction skipped", attrs...)
	}
	return res
}

func (s *Service) predict(title string) Result {
	if strings.TrimSpace(title) == "" {
		return Result{Kind: KindPrompt, Query: title}
	}

	match, ok := s.matcher.Closest(title)
	if !ok {
		return Result{Kind: KindNoMatch, Query: title}
	}

	res := Result{Query: title, MatchedTitle: match.Title, Similarity: match.Ratio}

	track, ok := s.store.FirstByTitle(match.Title)
	if !ok {
		res.Kind = KindExtractionFailure
		res.Err = fmt.Errorf("%w: %q", ErrNoRow, match.Title)
		return res
	}
	res.ActualGenre = track.Genre

	features, err := track.Features()
	if err != nil {
		res.Kind = KindExtractionFailure
		res.Err = err
		return res
	}

	genre, err := s.predictor.Predict(features)
	if err != nil {
		res.Kind = KindInferenceFailure
		res.Err = err
		return res
	}

	res.Kind = KindPredicted
	res.PredictedGenre = genre
	return res
}
