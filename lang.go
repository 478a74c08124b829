package textshape

import xlanguage "golang.org/x/text/language"

// Lang is the application-internal numeric language index carried in
// FontParams. Index 0 is English, the pipeline's default; LangUnknown marks
// an unresolved language and yields the empty code.
type Lang int8

// LangUnknown is the out-of-table index.
const LangUnknown Lang = -1

// langCodes maps Lang indices to primary language subtags. The order is
// part of the external interface: indices are persisted by callers, so
// entries are append-only.
var langCodes = []string{
	"en", "ar", "be", "bg", "cs", "da", "de", "el",
	"es", "fa", "fi", "fr", "he", "hi", "hu", "it",
	"ja", "ko", "nl", "pl", "pt", "ro", "ru", "sv",
	"th", "tr", "uk", "vi", "zh",
}

// langIndex is the inverse of langCodes.
var langIndex = func() map[string]Lang {
	m := make(map[string]Lang, len(langCodes))
	for i, code := range langCodes {
		m[code] = Lang(i)
	}
	return m
}()

// Code returns the primary language subtag for l, or "" when l is outside
// the table.
func (l Lang) Code() string {
	if l < 0 || int(l) >= len(langCodes) {
		return ""
	}
	return langCodes[l]
}

// LangForCode returns the index of a primary language subtag, or
// LangUnknown when the code is not in the table.
func LangForCode(code string) Lang {
	if l, ok := langIndex[code]; ok {
		return l
	}
	return LangUnknown
}

// LangForTag resolves a full BCP-47 tag ("en-US", "zh-Hant-TW", "deu") to
// its table index by canonicalizing through golang.org/x/text/language and
// keeping the primary subtag. Unparseable or out-of-table tags return
// LangUnknown.
func LangForTag(tag string) Lang {
	if tag == "" {
		return LangUnknown
	}
	parsed, err := xlanguage.Parse(tag)
	if err != nil {
		return LangUnknown
	}
	base, _ := parsed.Base()
	return LangForCode(base.String())
}
