package overlap

import (
	"context"
	"errors"
	"path/filepath"

	"fjacquet/find-overlap/internal/fileutils"
	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/models"
)

// Observer is notified as candidates are evaluated.
type Observer interface {
	Comparing(path string)
	Scored(path string, score float64)
}

// Selector ranks candidate files against an input transaction set.
type Selector struct {
	preparer    Preparer
	logger      logging.Logger
	skipInvalid bool
	observer    Observer
}

// Option configures a Selector.
type Option func(*Selector)

// WithSkipInvalid makes a candidate that fails to load or validate a warning
// instead of an error that ends the run.
func WithSkipInvalid(skip bool) Option {
	return func(s *Selector) {
		s.skipInvalid = skip
	}
}

// WithObserver registers an observer for progress callbacks.
func WithObserver(o Observer) Option {
	return func(s *Selector) {
		s.observer = o
	}
}

// NewSelector creates a selector.
func NewSelector(preparer Preparer, logger logging.Logger, opts ...Option) *Selector {
	if logger == nil {
		logger = logging.GetLogger()
	}
	s := &Selector{
		preparer: preparer,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prepares inFile, expands pattern and returns the best matching
// candidate.
func (s *Selector) Run(ctx context.Context, inFile, pattern string) (*models.MatchResult, error) {
	input, err := s.preparer.PrepareFile(ctx, inFile)
	if err != nil {
		return nil, err
	}

	candidates, err := fileutils.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if finder, ok := s.preparer.(MetaFileFinder); ok {
		candidates = s.withoutMetaFiles(candidates, finder)
	}
	s.logger.Debug("Expanded candidate pattern",
		logging.Field{Key: logging.FieldPattern, Value: pattern},
		logging.Field{Key: logging.FieldCount, Value: len(candidates)})

	result, err := s.BestMatch(ctx, input, candidates)
	if err != nil {
		return nil, err
	}
	result.Input = inFile
	result.Pattern = pattern
	return result, nil
}

// BestMatch scores input against each candidate in order. The highest score
// wins; on a tie the earlier candidate is kept. An empty candidate list is
// not an error: the result has NoCandidates set.
func (s *Selector) BestMatch(ctx context.Context, input models.TransactionSet, candidates []string) (*models.MatchResult, error) {
	result := &models.MatchResult{
		InputTransactions: input.Len(),
		Comparisons:       make([]models.Comparison, 0, len(candidates)),
	}
	if len(candidates) == 0 {
		result.NoCandidates = true
		return result, nil
	}

	bestScore := -1.0
	bestIndex := -1
	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.observer != nil {
			s.observer.Comparing(path)
		}

		set, err := s.preparer.PrepareFile(ctx, path)
		if err != nil {
			if !s.skipInvalid || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			s.logger.WithError(err).Warn("Skipping invalid candidate",
				logging.Field{Key: logging.FieldCandidate, Value: path})
			result.Skipped = append(result.Skipped, models.SkippedCandidate{Path: path, Reason: err.Error()})
			continue
		}

		score := Score(input, set)
		result.Comparisons = append(result.Comparisons, models.Comparison{
			Path:         path,
			Score:        score,
			Transactions: set.Len(),
		})
		if s.observer != nil {
			s.observer.Scored(path, score)
		}
		s.logger.Debug("Scored candidate",
			logging.Field{Key: logging.FieldCandidate, Value: path},
			logging.Field{Key: logging.FieldScore, Value: score})

		if score > bestScore {
			bestScore = score
			bestIndex = len(result.Comparisons) - 1
		}
	}

	if bestIndex >= 0 {
		best := result.Comparisons[bestIndex]
		result.Best = &best
	}
	return result, nil
}

// withoutMetaFiles drops the candidates that are the metadata file of another
// candidate.
func (s *Selector) withoutMetaFiles(candidates []string, finder MetaFileFinder) []string {
	metaFiles := make(map[string]struct{})
	for _, candidate := range candidates {
		if meta := finder.FindMetaFile(candidate); meta != "" {
			metaFiles[filepath.Clean(meta)] = struct{}{}
		}
	}
	if len(metaFiles) == 0 {
		return candidates
	}

	kept := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if _, isMeta := metaFiles[filepath.Clean(candidate)]; isMeta {
			s.logger.Debug("Ignoring metadata file",
				logging.Field{Key: logging.FieldCandidate, Value: candidate})
			continue
		}
		kept = append(kept, candidate)
	}
	return kept
}
