package textshape

import (
	"strings"
	"unicode/utf16"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Itemizer splits single-line UTF-8 text into script- and
// direction-homogeneous runs over a UTF-16 backing buffer.
//
// An Itemizer is reusable: the underlying bidi paragraph and the level
// scratch buffers are fully reset on every call, so no state carries over
// between requests. It is not safe for concurrent use; concurrent
// paragraphs need one Itemizer each.
type Itemizer struct {
	cfg        itemizerConfig
	para       bidi.Paragraph
	runeLevels []int
	unitLevels []int
}

// NewItemizer creates an Itemizer.
func NewItemizer(opts ...ItemizerOption) *Itemizer {
	cfg := defaultItemizerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Itemizer{cfg: cfg}
}

// Itemize itemizes text with a one-shot Itemizer.
func Itemize(text string) (*TextRuns, error) {
	return NewItemizer().Itemize(text)
}

// Itemize transcodes text to UTF-16 and splits it into runs: first by bidi
// embedding level in logical order, then each level span by common script
// via ScriptInterval. The returned runs cover the whole buffer exactly
// once, contiguous and non-overlapping, each tagged with its dominant
// script and the direction derived from level parity (odd means
// right-to-left).
//
// The empty string and text containing \r or \n violate the single-line
// contract and return ErrEmptyText or ErrLineBreak. A failure inside bidi
// analysis is not an error: the result degrades to a single run spanning
// the whole paragraph with unknown script and invalid direction, and the
// condition is logged.
func (it *Itemizer) Itemize(text string) (*TextRuns, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if strings.ContainsAny(text, "\r\n") {
		return nil, ErrLineBreak
	}

	runes := []rune(text)
	runs := &TextRuns{Text: utf16.Encode(runes)}
	buf := runs.Text

	levels, err := it.bidiLevels(text, runes, len(buf))
	if err != nil {
		Logger().Warn("bidi analysis failed, degrading to a single run",
			"error", err, "units", len(buf))
		runs.Runs = []TextRun{{
			Start:     0,
			Length:    len(buf),
			Script:    language.Unknown,
			Direction: DirectionInvalid,
		}}
		return runs, nil
	}

	for bidiStart := 0; bidiStart < len(buf); {
		// The longest span at one embedding level from this point.
		level := levels[bidiStart]
		bidiEnd := bidiStart + 1
		for bidiEnd < len(buf) && levels[bidiEnd] == level {
			bidiEnd++
		}

		dir := DirectionLTR
		if level&1 == 1 {
			dir = DirectionRTL
		}

		// Carve script-homogeneous sub-runs out of the level span.
		for scriptStart := bidiStart; scriptStart < bidiEnd; {
			n, script, err := ScriptInterval(buf, scriptStart, bidiEnd-scriptStart)
			if err != nil {
				return nil, err
			}
			runs.Runs = append(runs.Runs, TextRun{
				Start:     scriptStart,
				Length:    n,
				Script:    script,
				Direction: dir,
			})
			scriptStart += n
		}

		bidiStart = bidiEnd
	}
	return runs, nil
}

// bidiLevels computes the embedding level parity of every UTF-16 unit.
// Levels are painted per rune from the paragraph ordering, then expanded so
// both halves of a surrogate pair share their rune's level.
func (it *Itemizer) bidiLevels(text string, runes []rune, units int) ([]int, error) {
	defaultDir := bidi.LeftToRight
	if it.cfg.baseDir == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}
	if _, err := it.para.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return nil, err
	}
	ordering, err := it.para.Order()
	if err != nil {
		return nil, err
	}

	it.runeLevels = resetLevels(it.runeLevels, len(runes))
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos() // rune indices, end inclusive
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < len(it.runeLevels); j++ {
			it.runeLevels[j] = level
		}
	}

	it.unitLevels = resetLevels(it.unitLevels, units)
	u := 0
	for i, r := range runes {
		w := runeLen16(r)
		for k := 0; k < w; k++ {
			it.unitLevels[u+k] = it.runeLevels[i]
		}
		u += w
	}
	return it.unitLevels, nil
}

// resetLevels returns s resized to n with every element zeroed, reusing the
// backing array when capacity allows.
func resetLevels(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}
