package textshape

import "github.com/go-text/typesetting/language"

// ScriptInterval finds the longest prefix of text[start:start+length] whose
// code points share at least one common script, taking script extensions
// into account, and returns the prefix length in UTF-16 units together with
// the dominant script.
//
// Consider three characters with the script sets {Kana}, {Hira Kana},
// {Kana}. On primary script values alone each would start its own interval;
// with extensions one interval covers all three.
//
// The active set is seeded from the first code point's extensions. Every
// following code point either imposes no constraint (its set is exactly
// {Inherited}, or empty) or is intersected with the active set, preserving
// the active set's order. When an intersection comes up empty the interval
// ends before that code point, and the dominant script is the first element
// of the last non-empty active set. Otherwise the dominant script is the
// first element remaining after the final intersection. No priority
// weighting is applied; the result is deterministic for a given input.
//
// A scan of zero length or past the end of text is a caller contract
// violation and returns ErrZeroLengthScan or ErrScanOutOfRange.
func ScriptInterval(text []uint16, start, length int) (int, language.Script, error) {
	if length <= 0 {
		return 0, language.Unknown, ErrZeroLengthScan
	}
	if start < 0 || start+length > len(text) {
		return 0, language.Unknown, ErrScanOutOfRange
	}

	slice := text[start : start+length]

	r, w := nextRune(slice, 0)
	active := ScriptExtensions(r)

	for i := w; i < len(slice); i += w {
		r, w = nextRune(slice, i)
		ext := ScriptExtensions(r)
		if ext.Len() == 0 || ext.isInheritedOnly() {
			continue
		}
		first := active.First()
		active.intersect(&ext)
		if active.Len() == 0 {
			// The interval ends before this code point.
			return i, first, nil
		}
	}
	return length, active.First(), nil
}
