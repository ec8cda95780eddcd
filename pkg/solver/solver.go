package solver

import (
	"sync"
	"time"

	"github.com/bastiangx/jumble/pkg/dictionary"
	"github.com/bastiangx/jumble/pkg/format"
	"github.com/charmbracelet/log"
)

// Options tune how a Solver picks and runs its matchers.
type Options struct {
	// Threshold is the query length from which Signature is used under Auto.
	Threshold int
	// Strategy forces a matcher; Auto lets Select decide per query.
	Strategy Strategy
	// Prune stops permutation branches no dictionary word can extend.
	Prune bool
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Strategy:  Auto,
		Prune:     true,
	}
}

// Result is the ordered outcome of one query.
type Result struct {
	Query    string
	Strategy Strategy
	Words    []string
	Elapsed  time.Duration
}

// Info describes a solver's settings and which dictionaries it has loaded.
type Info struct {
	Source    string
	Threshold int
	Strategy  Strategy
	Prune     bool
	Flat      *dictionary.Stats
	Grouped   *dictionary.Stats
}

// FlatLoader and GroupedLoader build the two dictionary variants from a source.
type (
	FlatLoader    func(source string) (*dictionary.Flat, error)
	GroupedLoader func(source string) (*dictionary.Grouped, error)
)

// Solver runs the full pipeline against one word list. Each dictionary variant
// is built on first use and only read afterwards.
type Solver struct {
	source     string
	opts       Options
	loadFlat   FlatLoader
	loadGroups GroupedLoader

	mu      sync.Mutex
	flat    *dictionary.Flat
	grouped *dictionary.Grouped
}

// New creates a solver reading its word list from the file at source.
func New(source string, opts Options) *Solver {
	return &Solver{
		source:     source,
		opts:       opts,
		loadFlat:   dictionary.LoadFlatFile,
		loadGroups: dictionary.LoadGroupedFile,
	}
}

// NewWithLoaders creates a solver with custom dictionary loaders.
func NewWithLoaders(source string, opts Options, flat FlatLoader, grouped GroupedLoader) *Solver {
	s := New(source, opts)
	s.loadFlat = flat
	s.loadGroups = grouped
	return s
}

// Solve normalizes raw, picks a strategy, loads only the dictionary that
// strategy needs and returns the ordered matches. Queries too short to form a
// word return an empty result without touching the dictionary.
func (s *Solver) Solve(raw string) (Result, error) {
	return s.SolveWith(raw, s.opts.Strategy)
}

// SolveWith is Solve with forced in place of the configured strategy.
// Auto still defers to the threshold.
func (s *Solver) SolveWith(raw string, forced Strategy) (Result, error) {
	start := time.Now()
	q := NewQuery(raw)
	strategy := Resolve(forced, q.Len(), s.opts.Threshold)

	result := Result{
		Query:    q.Letters(),
		Strategy: strategy,
		Words:    []string{},
	}
	if q.TooShort() {
		log.Debugf("Query '%s' shorter than %d letters, nothing to match", q, MinWordLength)
		result.Elapsed = time.Since(start)
		return result, nil
	}

	matcher, err := s.Matcher(strategy)
	if err != nil {
		return result, err
	}

	log.Debug("Matching", "query", q.Letters(), "strategy", strategy, "threshold", s.opts.Threshold)
	matches := matcher.Match(q)
	result.Words = format.Order(matches.Words())
	result.Elapsed = time.Since(start)
	log.Debugf("Took [ %v ] for '%s': %d words", result.Elapsed, q, len(result.Words))
	return result, nil
}

// Matcher returns the matcher for strategy, loading its dictionary if needed.
// Auto is resolved against the threshold as if for an empty query.
func (s *Solver) Matcher(strategy Strategy) (Matcher, error) {
	if strategy == Auto {
		strategy = Select(0, s.opts.Threshold)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch strategy {
	case Signature:
		if s.grouped == nil {
			grouped, err := s.loadGroups(s.source)
			if err != nil {
				return nil, err
			}
			s.grouped = grouped
		}
		return NewSignatureMatcher(s.grouped), nil
	default:
		if s.flat == nil {
			flat, err := s.loadFlat(s.source)
			if err != nil {
				return nil, err
			}
			s.flat = flat
		}
		return NewPermutationMatcher(s.flat, s.opts.Prune), nil
	}
}

// Info reports settings and the stats of any dictionary loaded so far.
func (s *Solver) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := Info{
		Source:    s.source,
		Threshold: s.opts.Threshold,
		Strategy:  s.opts.Strategy,
		Prune:     s.opts.Prune,
	}
	if s.flat != nil {
		stats := s.flat.Stats()
		info.Flat = &stats
	}
	if s.grouped != nil {
		stats := s.grouped.Stats()
		info.Grouped = &stats
	}
	return info
}
