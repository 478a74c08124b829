package textshape

import "github.com/go-text/typesetting/language"

// maxScriptExtensions bounds the number of scripts one code point can carry.
// Real extension sets stay well under this; the largest (shared Indic
// punctuation) hold around twenty entries.
const maxScriptExtensions = 32

// ScriptSet is a small fixed-capacity ordered set of scripts attached to one
// code point during interval scanning. The zero value is empty. A ScriptSet
// never allocates; the scanner keeps it on the stack for the hot
// per-code-point loop.
//
// Order is significant: the first element of the active set after
// intersection is the interval's dominant script.
type ScriptSet struct {
	scripts [maxScriptExtensions]language.Script
	n       int
}

// Len returns the number of scripts in the set.
func (s *ScriptSet) Len() int { return s.n }

// At returns the i-th script in insertion order.
// It panics if i is out of range, like a slice index.
func (s *ScriptSet) At(i int) language.Script {
	if i < 0 || i >= s.n {
		panic("textshape: ScriptSet index out of range")
	}
	return s.scripts[i]
}

// First returns the first script in the set, or language.Unknown if the set
// is empty.
func (s *ScriptSet) First() language.Script {
	if s.n == 0 {
		return language.Unknown
	}
	return s.scripts[0]
}

// Contains reports whether the set holds c.
func (s *ScriptSet) Contains(c language.Script) bool {
	for i := 0; i < s.n; i++ {
		if s.scripts[i] == c {
			return true
		}
	}
	return false
}

// add appends c, preserving insertion order. Additions beyond capacity are
// dropped; extension data never comes close to the limit.
func (s *ScriptSet) add(c language.Script) {
	if s.n < maxScriptExtensions {
		s.scripts[s.n] = c
		s.n++
	}
}

// intersect removes from s every script not contained in other, preserving
// s's order. The result is a subset of s, so the length only shrinks.
func (s *ScriptSet) intersect(other *ScriptSet) {
	out := 0
	for i := 0; i < s.n; i++ {
		if other.Contains(s.scripts[i]) {
			s.scripts[out] = s.scripts[i]
			out++
		}
	}
	s.n = out
}

// isInheritedOnly reports whether the set is exactly {Inherited}.
// Such code points borrow the script of their context and impose no
// constraint during interval scanning.
func (s *ScriptSet) isInheritedOnly() bool {
	return s.n == 1 && s.scripts[0] == language.Inherited
}

// ScriptTag returns the four-letter ISO 15924 tag of s ("Latn", "Arab").
// The zero Script has no tag and formats as "Zzzz".
func ScriptTag(s language.Script) string {
	if s == 0 {
		return "Zzzz"
	}
	return string([]byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)})
}
