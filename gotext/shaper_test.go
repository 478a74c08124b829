package gotext

import (
	"errors"
	"sync"
	"testing"

	"github.com/MortalEngineXXII/textshape"
	"golang.org/x/image/font/gofont/goregular"
)

// testShaper creates a Shaper with Go Regular registered as the only font.
// Go Regular has Latin, Cyrillic, and Greek glyphs, including kerning
// tables.
func testShaper(t *testing.T) (*Shaper, textshape.FontID) {
	t.Helper()

	s := NewShaper()
	id, err := s.RegisterFont(goregular.TTF)
	if err != nil {
		t.Fatalf("RegisterFont: %v", err)
	}
	return s, id
}

// singleRun itemizes text and requires it to be one run.
func singleRun(t *testing.T, text string) (textshape.TextRun, []uint16) {
	t.Helper()

	runs, err := textshape.Itemize(text)
	if err != nil {
		t.Fatalf("Itemize(%q): %v", text, err)
	}
	if len(runs.Runs) != 1 {
		t.Fatalf("Itemize(%q): got %d runs, want 1", text, len(runs.Runs))
	}
	return runs.Runs[0], runs.Window(runs.Runs[0])
}

// TestShaper_BasicLatin shapes one Latin run and verifies glyph count,
// positive advances, and the width sum.
func TestShaper_BasicLatin(t *testing.T) {
	s, id := testShaper(t)
	run, window := singleRun(t, "Hello")

	shaped, err := s.ShapeRun(run, window, textshape.FontParams{Font: id, PixelSize: 16})
	if err != nil {
		t.Fatalf("ShapeRun: %v", err)
	}
	if len(shaped.Glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(shaped.Glyphs))
	}

	var sum float64
	for i, g := range shaped.Glyphs {
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d: XAdvance=%f, want > 0", i, g.XAdvance)
		}
		if g.Font != id {
			t.Errorf("glyph %d: font %d, want %d", i, g.Font, id)
		}
		sum += g.XAdvance
	}
	if shaped.Width != sum {
		t.Errorf("Width=%f, want advance sum %f", shaped.Width, sum)
	}
}

// TestShaper_Pipeline runs full lines through textshape.ShapeText with the
// real backend and checks glyph counts for simple Latin strings.
func TestShaper_Pipeline(t *testing.T) {
	s, id := testShaper(t)
	params := textshape.FontParams{Font: id, PixelSize: 16}

	tests := []struct {
		name    string
		text    string
		wantLen int
	}{
		{"single char", "A", 1},
		{"word", "Hello", 5},
		{"with space", "Hello World", 11},
		{"numbers", "12345", 5},
		{"punctuation", "Hello, World!", 13},
		{"cyrillic", "Привет", 6},
		{"greek", "αβγ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := textshape.ShapeText(tt.text, params, s)
			if err != nil {
				t.Fatalf("ShapeText(%q): %v", tt.text, err)
			}
			if len(m.Glyphs) != tt.wantLen {
				t.Errorf("ShapeText(%q): got %d glyphs, want %d", tt.text, len(m.Glyphs), tt.wantLen)
			}
			if m.Width <= 0 {
				t.Errorf("ShapeText(%q): width %f, want > 0", tt.text, m.Width)
			}
		})
	}
}

// TestShaper_Kerning checks that shaping "AV" together does not come out
// wider than shaping the letters separately. Go Regular has kerning
// tables, so the pair usually tightens; fonts without the pair are logged
// rather than failed.
func TestShaper_Kerning(t *testing.T) {
	s, id := testShaper(t)
	params := textshape.FontParams{Font: id, PixelSize: 16}

	widthOf := func(text string) float64 {
		t.Helper()
		m, err := textshape.ShapeText(text, params, s)
		if err != nil {
			t.Fatalf("ShapeText(%q): %v", text, err)
		}
		return m.Width
	}

	individual := widthOf("A") + widthOf("V")
	combined := widthOf("AV")

	if combined < individual {
		t.Logf("kerning detected: AV combined=%.2f < individual=%.2f", combined, individual)
	} else {
		t.Logf("no kerning for AV in this font: combined=%.2f, individual=%.2f", combined, individual)
	}
	if combined > individual*1.1 {
		t.Errorf("AV combined width %.2f is suspiciously larger than individual %.2f",
			combined, individual)
	}
}

// TestShaper_Sizes shapes the same run at increasing pixel sizes; larger
// sizes must produce larger widths.
func TestShaper_Sizes(t *testing.T) {
	s, id := testShaper(t)
	run, window := singleRun(t, "Hello")

	sizes := []int{8, 12, 16, 24, 32, 48}
	var prevWidth float64
	for _, size := range sizes {
		shaped, err := s.ShapeRun(run, window, textshape.FontParams{Font: id, PixelSize: size})
		if err != nil {
			t.Fatalf("ShapeRun at %d: %v", size, err)
		}
		if len(shaped.Glyphs) != 5 {
			t.Errorf("size %d: got %d glyphs, want 5", size, len(shaped.Glyphs))
			continue
		}
		if size > 8 && shaped.Width <= prevWidth {
			t.Errorf("size %d: width %f should be > previous %f", size, shaped.Width, prevWidth)
		}
		prevWidth = shaped.Width
	}
}

// TestShaper_MissingScript shapes Arabic with a font that has no Arabic
// glyphs. The backend substitutes .notdef; the run still completes.
func TestShaper_MissingScript(t *testing.T) {
	s, id := testShaper(t)

	m, err := textshape.ShapeText("اب", textshape.FontParams{Font: id, PixelSize: 16}, s)
	if err != nil {
		t.Fatalf("ShapeText: %v", err)
	}
	if len(m.Glyphs) == 0 {
		t.Fatal("got no glyphs, want .notdef substitutes")
	}
	t.Logf("missing-script shaping: %d glyphs, width %.2f", len(m.Glyphs), m.Width)
}

// TestShaper_EmptyWindow verifies the empty-window guard.
func TestShaper_EmptyWindow(t *testing.T) {
	s, id := testShaper(t)

	shaped, err := s.ShapeRun(textshape.TextRun{}, nil, textshape.FontParams{Font: id, PixelSize: 16})
	if err != nil {
		t.Fatalf("ShapeRun: %v", err)
	}
	if len(shaped.Glyphs) != 0 || shaped.Width != 0 {
		t.Errorf("got %+v, want empty run", shaped)
	}
}

// TestShaper_UnknownFont verifies the arena bounds check.
func TestShaper_UnknownFont(t *testing.T) {
	s, _ := testShaper(t)
	run, window := singleRun(t, "Hello")

	for _, id := range []textshape.FontID{-1, 7} {
		_, err := s.ShapeRun(run, window, textshape.FontParams{Font: id, PixelSize: 16})
		if !errors.Is(err, ErrUnknownFont) {
			t.Errorf("font %d: error = %v, want %v", id, err, ErrUnknownFont)
		}
	}
}

// TestRegisterFont exercises arena growth and the data preconditions.
func TestRegisterFont(t *testing.T) {
	s := NewShaper()

	if _, err := s.RegisterFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("empty data: error = %v, want %v", err, ErrEmptyFontData)
	}
	if _, err := s.RegisterFont([]byte("not a font")); err == nil {
		t.Error("garbage data: want a parse error")
	}

	first, err := s.RegisterFont(goregular.TTF)
	if err != nil {
		t.Fatalf("first RegisterFont: %v", err)
	}
	second, err := s.RegisterFont(goregular.TTF)
	if err != nil {
		t.Fatalf("second RegisterFont: %v", err)
	}
	if first != 0 || second != 1 {
		t.Errorf("ids = %d, %d, want 0, 1", first, second)
	}
}

// TestShaper_Concurrency shapes from many goroutines through one Shaper.
func TestShaper_Concurrency(t *testing.T) {
	s, id := testShaper(t)
	params := textshape.FontParams{Font: id, PixelSize: 16}
	run, window := singleRun(t, "Hello")

	var wg sync.WaitGroup
	failures := make(chan string, 500)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				shaped, err := s.ShapeRun(run, window, params)
				if err != nil {
					failures <- err.Error()
					continue
				}
				if len(shaped.Glyphs) != 5 {
					failures <- "wrong glyph count"
				}
			}
		}()
	}
	wg.Wait()
	close(failures)

	for msg := range failures {
		t.Error(msg)
	}
}

// TestShaper_Deterministic shapes the same input twice and requires
// identical output, the property the run cache depends on.
func TestShaper_Deterministic(t *testing.T) {
	s, id := testShaper(t)
	params := textshape.FontParams{Font: id, PixelSize: 16}
	run, window := singleRun(t, "Hello")

	a, err := s.ShapeRun(run, window, params)
	if err != nil {
		t.Fatalf("first ShapeRun: %v", err)
	}
	b, err := s.ShapeRun(run, window, params)
	if err != nil {
		t.Fatalf("second ShapeRun: %v", err)
	}
	if a.Width != b.Width || len(a.Glyphs) != len(b.Glyphs) {
		t.Fatalf("outputs differ: %+v vs %+v", a, b)
	}
	for i := range a.Glyphs {
		if a.Glyphs[i] != b.Glyphs[i] {
			t.Errorf("glyph %d differs: %+v vs %+v", i, a.Glyphs[i], b.Glyphs[i])
		}
	}
}
