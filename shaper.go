package textshape

// FontParams carries the per-run shaping configuration supplied by the
// caller. It is read-only for the duration of a request.
type FontParams struct {
	// Font identifies the face inside the backend's font arena.
	Font FontID

	// PixelSize is the requested font height in pixels.
	PixelSize int

	// Lang is the application's numeric language index, resolved to a
	// BCP-47 language by the backend.
	Lang Lang
}

// ShapedGlyph is one positioned glyph produced by a shaping backend.
// Offsets and the advance are pen-relative pixels; absolute positioning is
// the renderer's job.
type ShapedGlyph struct {
	// Font is the face the glyph was shaped with.
	Font FontID

	// GID is the glyph index inside that face.
	GID GlyphID

	// XOffset and YOffset displace the glyph from the current pen
	// position without moving the pen.
	XOffset float64
	YOffset float64

	// XAdvance moves the pen toward +x after the glyph is placed. Runs
	// arrive in visual order, so the pen always advances left to right.
	XAdvance float64
}

// ShapedRun is the shaping output for one TextRun.
type ShapedRun struct {
	// Glyphs is the positioned glyph sequence in visual order.
	Glyphs []ShapedGlyph

	// Width is the sum of the glyph x-advances, in pixels.
	Width float64
}

// RunShaper turns one itemized run into positioned glyphs. The text slice
// is the run's window into the paragraph buffer; implementations must not
// retain or mutate it.
//
// Implementations must be deterministic: equal run, window, and params
// yield equal output. Producing zero glyphs for non-empty input is a valid
// degraded result, not an error. The pipeline treats a ShapeRun error as
// run-local: the run contributes nothing and the paragraph completes.
type RunShaper interface {
	ShapeRun(run TextRun, text []uint16, params FontParams) (ShapedRun, error)
}
