package textshape

import "unicode/utf16"

// replacementChar is returned by utf16.DecodeRune for invalid pairs.
const replacementChar = '�'

// nextRune decodes the code point starting at text[i] and returns it along
// with the number of UTF-16 units consumed (1 or 2). An unpaired surrogate
// is consumed as a single unit and returned as its own value, so the scanner
// makes progress on any input.
func nextRune(text []uint16, i int) (rune, int) {
	c := rune(text[i])
	if utf16.IsSurrogate(c) && i+1 < len(text) {
		if r := utf16.DecodeRune(c, rune(text[i+1])); r != replacementChar {
			return r, 2
		}
	}
	return c, 1
}

// runeLen16 returns the number of UTF-16 units r occupies when encoded.
// Runes outside the basic multilingual plane take a surrogate pair.
func runeLen16(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
