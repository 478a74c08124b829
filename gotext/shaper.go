// Package gotext adapts go-text/typesetting's HarfBuzz implementation to
// the textshape.RunShaper interface.
package gotext

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"unicode/utf16"

	"github.com/MortalEngineXXII/textshape"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper implements textshape.RunShaper with HarfBuzz-level shaping.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning pairs (AV, To, etc.)
//   - Right-to-left text (Arabic, Hebrew)
//   - Complex scripts (Devanagari, Thai, etc.)
//
// Fonts are registered up front and addressed through textshape.FontID:
//
//	shaper := gotext.NewShaper()
//	id, err := shaper.RegisterFont(ttfData)
//
// Shaper is safe for concurrent use. It keeps parsed font.Font objects
// (which are thread-safe) in a read-mostly arena and creates lightweight
// font.Face instances per ShapeRun call (font.Face is NOT safe for
// concurrent use). The HarfbuzzShaper instances are pooled via sync.Pool
// since they also are not concurrent-safe.
type Shaper struct {
	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state (buffer) and is NOT safe for concurrent
	// use, but reusing across sequential calls is efficient.
	shaperPool sync.Pool

	// mu protects the font arena.
	mu sync.RWMutex

	// fonts is the arena indexed by textshape.FontID. font.Font is
	// read-only and safe for concurrent use, unlike font.Face.
	fonts []*font.Font

	cfg config
}

var _ textshape.RunShaper = (*Shaper)(nil)

// NewShaper creates a Shaper with an empty font arena.
func NewShaper(opts ...Option) *Shaper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		cfg: cfg,
	}
}

// RegisterFont parses TTF/OTF font data and adds it to the arena,
// returning the id callers put in FontParams. Fonts cannot be
// unregistered; ids stay valid for the shaper's lifetime.
func (s *Shaper) RegisterFont(data []byte) (textshape.FontID, error) {
	if len(data) == 0 {
		return 0, ErrEmptyFontData
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font; only
	// the Font is retained.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("gotext: parse font: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.fonts) >= math.MaxInt16 {
		return 0, ErrTooManyFonts
	}
	id := textshape.FontID(len(s.fonts))
	s.fonts = append(s.fonts, face.Font)
	return id, nil
}

// ShapeRun implements textshape.RunShaper. The run's UTF-16 window is
// decoded and shaped as one HarfBuzz input with the run's direction and
// script; glyphs come back in visual order for both directions. Producing
// zero glyphs for non-empty input is a valid degraded result and is only
// logged.
func (s *Shaper) ShapeRun(run textshape.TextRun, text []uint16, params textshape.FontParams) (textshape.ShapedRun, error) {
	if len(text) == 0 {
		return textshape.ShapedRun{}, nil
	}

	f, err := s.font(params.Font)
	if err != nil {
		return textshape.ShapedRun{}, err
	}

	runes := utf16.Decode(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(run.Direction),
		// font.Face is NOT safe for concurrent use, so each call gets
		// its own cheap wrapper around the shared *Font.
		Face:     font.NewFace(f),
		Size:     pixelsToFixed(params.PixelSize),
		Script:   shapingScript(run.Script, runes),
		Language: language.NewLanguage(langCode(params.Lang, s.cfg.fallbackLang)),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	shaped := convertGlyphs(out.Glyphs, params.Font)
	if len(shaped.Glyphs) == 0 {
		textshape.Logger().Warn("shaping produced no glyphs",
			"font", params.Font,
			"units", len(text),
			"script", textshape.ScriptTag(run.Script))
	}
	return shaped, nil
}

// font returns the arena entry for id.
func (s *Shaper) font(id textshape.FontID) (*font.Font, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 0 || int(id) >= len(s.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return s.fonts[id], nil
}

// mapDirection converts a run direction to go-text's di.Direction.
// Degraded runs carry an invalid direction and shape as LTR.
func mapDirection(d textshape.Direction) di.Direction {
	if d == textshape.DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// shapingScript resolves the script handed to HarfBuzz. Degraded runs
// carry language.Unknown; those fall back to the first non-space code
// point's script so OpenType feature selection still has something to
// work with.
func shapingScript(script language.Script, runes []rune) language.Script {
	if script != 0 && script != language.Unknown {
		return script
	}
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// langCode resolves the numeric language index, falling back to the
// configured default for unknown indices.
func langCode(l textshape.Lang, fallback string) string {
	if code := l.Code(); code != "" {
		return code
	}
	return fallback
}

// pixelsToFixed converts a pixel size to the 26.6 fixed point the shaper
// expects. The representation uses 6 fractional bits, so we multiply by 64.
func pixelsToFixed(px int) fixed.Int26_6 {
	return fixed.Int26_6(px << 6)
}

// fixedToPixels widens a 26.6 backend value to 16.16 and converts it to
// float pixels by dividing by 65536.
func fixedToPixels(v fixed.Int26_6) float64 {
	return (textshape.Fixed16(v) << 10).Float()
}

// convertGlyphs converts backend glyphs to textshape's pixel-space form.
// Glyphs arrive in visual order, so the pen always advances toward +x and
// the run width is the plain sum of advances.
func convertGlyphs(glyphs []shaping.Glyph, fontID textshape.FontID) textshape.ShapedRun {
	if len(glyphs) == 0 {
		return textshape.ShapedRun{}
	}

	run := textshape.ShapedRun{Glyphs: make([]textshape.ShapedGlyph, len(glyphs))}
	for i, g := range glyphs {
		sg := textshape.ShapedGlyph{
			Font:     fontID,
			GID:      textshape.GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph ids are 16-bit
			XOffset:  fixedToPixels(g.XOffset),
			YOffset:  fixedToPixels(g.YOffset),
			XAdvance: fixedToPixels(g.Advance),
		}
		run.Glyphs[i] = sg
		run.Width += sg.XAdvance
	}
	return run
}
