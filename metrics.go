package textshape

// TextMetrics is the final shaping result for one line: every positioned
// glyph in visual order plus the total advance width. The zero value is an
// empty line ready for accumulation.
type TextMetrics struct {
	// Width is the accumulated advance width in pixels.
	Width float64

	// Glyphs is the glyph sequence in visual order across all runs.
	Glyphs []ShapedGlyph
}

// AddGlyph appends one glyph and grows the width by its advance.
func (m *TextMetrics) AddGlyph(g ShapedGlyph) {
	m.Glyphs = append(m.Glyphs, g)
	m.Width += g.XAdvance
}

// AddRun appends a whole shaped run.
func (m *TextMetrics) AddRun(r ShapedRun) {
	m.Glyphs = append(m.Glyphs, r.Glyphs...)
	m.Width += r.Width
}
