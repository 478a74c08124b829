package textshape

import "github.com/go-text/typesetting/language"

// TextRun is one script- and direction-homogeneous span of itemized text.
// Start and Length are in UTF-16 units into the owning TextRuns buffer.
// A valid run has Start >= 0, Length > 0, and Start+Length within the
// buffer; runs never overlap.
type TextRun struct {
	Start     int
	Length    int
	Script    language.Script
	Direction Direction
}

// End returns the offset one past the run's last UTF-16 unit.
func (r TextRun) End() int { return r.Start + r.Length }

// TextRuns owns the UTF-16 transcription of one itemized paragraph together
// with its runs, in logical order after itemization and in visual order
// after ReorderRTL. Runs hold offsets into Text; no sub-copies are made.
//
// A TextRuns value belongs to one shaping request: created by the itemizer,
// reordered in place, read-only afterward. It is not safe for concurrent
// mutation.
type TextRuns struct {
	Text []uint16
	Runs []TextRun
}

// Window returns the UTF-16 units covered by run r. The slice aliases Text.
func (t *TextRuns) Window(r TextRun) []uint16 {
	return t.Text[r.Start:r.End()]
}

// ReorderRTL rearranges the runs from logical order into visual order, in
// place. The paragraph's base direction is taken from the first run; there
// is no external direction hint. Every maximal contiguous span of runs
// whose direction differs from the base direction is reversed, and if the
// base direction is right-to-left the whole sequence is reversed afterward.
//
// This handles exactly one level of direction embedding. Runs carry only
// level parity by this stage, so full multi-level bidi reordering is not
// possible here; downstream rendering depends on this exact behavior.
func (t *TextRuns) ReorderRTL() {
	runs := t.Runs
	if len(runs) == 0 {
		return
	}
	base := runs[0].Direction
	for i := 0; i < len(runs); {
		if runs[i].Direction == base {
			i++
			continue
		}
		j := i + 1
		for j < len(runs) && runs[j].Direction != base {
			j++
		}
		reverseRuns(runs[i:j])
		i = j
	}
	if base != DirectionLTR {
		reverseRuns(runs)
	}
}

func reverseRuns(runs []TextRun) {
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
}
