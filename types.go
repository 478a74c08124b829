package textshape

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the horizontal direction of a text run.
//
// The zero value is DirectionInvalid, the direction carried by degraded
// runs produced when bidi analysis fails. Valid runs are always LTR or RTL;
// vertical layouts are out of scope.
type Direction int

const (
	// DirectionInvalid marks a run whose direction could not be determined.
	DirectionInvalid Direction = iota
	// DirectionLTR is left-to-right text (Latin, Cyrillic, etc.)
	DirectionLTR
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionInvalid:
		return "Invalid"
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Valid reports whether d is a concrete text direction.
func (d Direction) Valid() bool {
	return d == DirectionLTR || d == DirectionRTL
}

// FontID identifies a font registered with a shaping backend.
// It is an opaque arena index; no font handles cross the core boundary.
// The zero value refers to the backend's first registered font.
type FontID int16

// GlyphID is a glyph index within one font. Fonts address at most 65535
// glyphs, and glyph 0 is the missing-glyph placeholder by OpenType
// convention.
type GlyphID uint16
