package textshape

import (
	"sort"

	"github.com/go-text/typesetting/language"
)

// scriptExtRange maps an inclusive code point range to its Script_Extensions
// set, in the property's own order.
type scriptExtRange struct {
	lo, hi  rune
	scripts []language.Script
}

// scriptExtTable is a curated subset of the Unicode Script_Extensions
// property: the shared punctuation, digits, and marks that decide whether
// adjacent intervals merge. Code points outside the table resolve to their
// primary Script property, which is exact for everything that belongs to a
// single script (including Common, Inherited, and unassigned code points).
//
// Ranges are sorted and non-overlapping; lookup is a binary search.
var scriptExtTable = []scriptExtRange{
	// Combining marks confined to a few scripts.
	{0x0342, 0x0342, []language.Script{language.Greek}},                   // perispomeni
	{0x0345, 0x0345, []language.Script{language.Greek}},                   // ypogegrammeni
	{0x0363, 0x036F, []language.Script{language.Latin}},                   // combining Latin letters
	{0x0483, 0x0483, []language.Script{language.Cyrillic, language.Old_Permic}}, // titlo
	{0x0484, 0x0484, []language.Script{language.Cyrillic, language.Glagolitic}}, // palatalization
	{0x0485, 0x0486, []language.Script{language.Cyrillic, language.Latin}},      // dasia, psili
	{0x0487, 0x0487, []language.Script{language.Cyrillic, language.Glagolitic}}, // pokrytie

	{0x0589, 0x0589, []language.Script{language.Armenian, language.Georgian}}, // Armenian full stop

	// Arabic punctuation, points, and digits shared across the Arabic
	// writing sphere.
	{0x060C, 0x060C, []language.Script{language.Arabic, language.Nko, language.Hanifi_Rohingya, language.Syriac, language.Thaana, language.Yezidi}}, // comma
	{0x061B, 0x061B, []language.Script{language.Arabic, language.Nko, language.Hanifi_Rohingya, language.Syriac, language.Thaana, language.Yezidi}}, // semicolon
	{0x061F, 0x061F, []language.Script{language.Adlam, language.Arabic, language.Nko, language.Hanifi_Rohingya, language.Syriac, language.Thaana, language.Yezidi}}, // question mark
	{0x0640, 0x0640, []language.Script{language.Adlam, language.Arabic, language.Mandaic, language.Manichaean, language.Psalter_Pahlavi, language.Hanifi_Rohingya, language.Sogdian, language.Syriac}}, // tatweel
	{0x064B, 0x0655, []language.Script{language.Arabic, language.Syriac}},                    // harakat
	{0x0660, 0x0669, []language.Script{language.Arabic, language.Thaana, language.Yezidi}},   // Arabic-Indic digits
	{0x0670, 0x0670, []language.Script{language.Arabic, language.Syriac}},                    // superscript alef
	{0x06D4, 0x06D4, []language.Script{language.Arabic, language.Hanifi_Rohingya}},           // full stop

	// Indic stress marks, danda, and digits shared across Brahmic scripts.
	{0x0951, 0x0952, []language.Script{language.Bengali, language.Devanagari, language.Grantha, language.Gujarati, language.Gurmukhi, language.Kannada, language.Latin, language.Malayalam, language.Oriya, language.Sharada, language.Tamil, language.Telugu, language.Tirhuta}},
	{0x0964, 0x0965, []language.Script{language.Bengali, language.Devanagari, language.Dogra, language.Gunjala_Gondi, language.Masaram_Gondi, language.Grantha, language.Gujarati, language.Gurmukhi, language.Kannada, language.Limbu, language.Mahajani, language.Malayalam, language.Nandinagari, language.Oriya, language.Khudawadi, language.Sinhala, language.Syloti_Nagri, language.Takri, language.Tamil, language.Telugu, language.Tirhuta}}, // danda, double danda
	{0x0966, 0x096F, []language.Script{language.Devanagari, language.Dogra, language.Kaithi, language.Mahajani}}, // Devanagari digits
	{0x09E6, 0x09EF, []language.Script{language.Bengali, language.Chakma, language.Syloti_Nagri}},                // Bengali digits
	{0x0BE6, 0x0BF2, []language.Script{language.Grantha, language.Tamil}},                                       // Tamil digits and numbers

	{0x1040, 0x1049, []language.Script{language.Chakma, language.Myanmar, language.Tai_Le}}, // Myanmar digits
	{0x10FB, 0x10FB, []language.Script{language.Georgian, language.Glagolitic, language.Latin}},
	{0x1735, 0x1736, []language.Script{language.Buhid, language.Hanunoo, language.Tagbanwa, language.Tagalog}}, // Philippine punctuation
	{0x1802, 0x1803, []language.Script{language.Mongolian, language.Phags_Pa}},
	{0x1805, 0x1805, []language.Script{language.Mongolian, language.Phags_Pa}},
	{0x1DC0, 0x1DC1, []language.Script{language.Greek}},
	{0x202F, 0x202F, []language.Script{language.Latin, language.Mongolian, language.Phags_Pa}}, // narrow no-break space
	{0x20F0, 0x20F0, []language.Script{language.Devanagari, language.Grantha, language.Latin}},

	// CJK punctuation and kana marks. These keep mixed hiragana, katakana,
	// and han intervals in one run instead of three.
	{0x3001, 0x3002, []language.Script{language.Bopomofo, language.Hangul, language.Han, language.Hiragana, language.Katakana, language.Yi}}, // ideographic comma, full stop
	{0x3003, 0x3003, []language.Script{language.Bopomofo, language.Hangul, language.Han, language.Hiragana, language.Katakana}},
	{0x3006, 0x3006, []language.Script{language.Han}},
	{0x3008, 0x3011, []language.Script{language.Bopomofo, language.Hangul, language.Han, language.Hiragana, language.Katakana, language.Mongolian, language.Yi}}, // brackets
	{0x3031, 0x3035, []language.Script{language.Hiragana, language.Katakana}}, // kana repeat marks
	{0x3099, 0x309C, []language.Script{language.Hiragana, language.Katakana}}, // voicing marks
	{0x30A0, 0x30A0, []language.Script{language.Hiragana, language.Katakana}}, // double hyphen
	{0x30FB, 0x30FB, []language.Script{language.Bopomofo, language.Hangul, language.Han, language.Hiragana, language.Katakana, language.Yi}}, // middle dot
	{0x30FC, 0x30FC, []language.Script{language.Hiragana, language.Katakana}}, // prolonged sound mark
	{0xA700, 0xA707, []language.Script{language.Han, language.Latin}},         // modifier tone letters
	{0xFE45, 0xFE46, []language.Script{language.Bopomofo, language.Hangul, language.Han, language.Hiragana, language.Katakana}}, // sesame dots
	{0xFF61, 0xFF65, []language.Script{language.Bopomofo, language.Hangul, language.Han, language.Hiragana, language.Katakana, language.Yi}}, // halfwidth punctuation
	{0xFF70, 0xFF70, []language.Script{language.Hiragana, language.Katakana}}, // halfwidth prolonged mark
	{0xFF9E, 0xFF9F, []language.Script{language.Hiragana, language.Katakana}}, // halfwidth voicing marks
}

// ScriptExtensions returns the ordered set of scripts r may participate in,
// per the Unicode Script_Extensions property. Code points without an
// extension entry yield a single-element set holding their primary Script
// property, which may be language.Common, language.Inherited, or
// language.Unknown. The result is a stack value; callers consume it
// immediately during interval scanning.
//
// ScriptExtensions is pure: no caching, no side effects. An empty set means
// "no constraint" to the scanner, though the current data never produces one.
func ScriptExtensions(r rune) ScriptSet {
	var set ScriptSet
	i := sort.Search(len(scriptExtTable), func(i int) bool { return scriptExtTable[i].hi >= r })
	if i < len(scriptExtTable) && scriptExtTable[i].lo <= r {
		for _, sc := range scriptExtTable[i].scripts {
			set.add(sc)
		}
		return set
	}
	set.add(language.LookupScript(r))
	return set
}
