package cache

import "github.com/MortalEngineXXII/textshape"

// Shaper decorates a textshape.RunShaper with get-or-shape caching. It
// implements textshape.RunShaper itself, so it drops into ShapeText and
// ShapeRuns unchanged:
//
//	shaper := cache.NewShaper(gotext.NewShaper())
//	m, err := textshape.ShapeText(line, params, shaper)
//
// Backend errors are never cached. Under contention two goroutines may
// shape the same run before one of them stores it; the backend's
// determinism makes the duplicate work harmless.
type Shaper struct {
	backend textshape.RunShaper
	runs    *ShapedRuns
}

var _ textshape.RunShaper = (*Shaper)(nil)

// NewShaper wraps backend with a run cache.
func NewShaper(backend textshape.RunShaper, opts ...Option) *Shaper {
	return &Shaper{
		backend: backend,
		runs:    NewShapedRuns(opts...),
	}
}

// ShapeRun implements textshape.RunShaper.
func (s *Shaper) ShapeRun(run textshape.TextRun, text []uint16, params textshape.FontParams) (textshape.ShapedRun, error) {
	key := NewRunKey(run, text, params)
	if shaped, ok := s.runs.Get(key); ok {
		return shaped, nil
	}

	shaped, err := s.backend.ShapeRun(run, text, params)
	if err != nil {
		return textshape.ShapedRun{}, err
	}
	s.runs.Set(key, shaped)
	return shaped, nil
}

// Runs exposes the underlying cache for stats, clearing, and tuning.
func (s *Shaper) Runs() *ShapedRuns {
	return s.runs
}

// Stats returns the underlying cache statistics.
func (s *Shaper) Stats() Stats {
	return s.runs.Stats()
}
