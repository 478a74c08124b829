package cache

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"unicode/utf16"

	"github.com/MortalEngineXXII/textshape"
	"github.com/MortalEngineXXII/textshape/gotext"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/font/gofont/goregular"
)

var errShapeFailed = errors.New("shape failed")

// countingShaper is a deterministic fake backend that counts invocations.
// It emits one glyph of advance 10 per UTF-16 unit.
type countingShaper struct {
	calls atomic.Int32
	fail  bool
}

func (s *countingShaper) ShapeRun(run textshape.TextRun, text []uint16, params textshape.FontParams) (textshape.ShapedRun, error) {
	s.calls.Add(1)
	if s.fail {
		return textshape.ShapedRun{}, errShapeFailed
	}
	var out textshape.ShapedRun
	for i := range text {
		out.Glyphs = append(out.Glyphs, textshape.ShapedGlyph{
			Font:     params.Font,
			GID:      textshape.GlyphID(run.Start + i + 1),
			XAdvance: 10,
		})
		out.Width += 10
	}
	return out, nil
}

// =============================================================================
// Decorator Tests
// =============================================================================

func TestShaper_MissThenHit(t *testing.T) {
	backend := &countingShaper{}
	s := NewShaper(backend)

	units := utf16.Encode([]rune("hello"))
	run := textshape.TextRun{Length: len(units), Script: language.Latin, Direction: textshape.DirectionLTR}
	params := textshape.FontParams{Font: 1, PixelSize: 16}

	first, err := s.ShapeRun(run, units, params)
	if err != nil {
		t.Fatalf("first ShapeRun: %v", err)
	}
	second, err := s.ShapeRun(run, units, params)
	if err != nil {
		t.Fatalf("second ShapeRun: %v", err)
	}

	if got := backend.calls.Load(); got != 1 {
		t.Errorf("expected 1 backend call, got %d", got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached result should equal the shaped result")
	}

	stats := s.Stats()
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", stats.Hits)
	}
}

func TestShaper_DistinctRuns(t *testing.T) {
	backend := &countingShaper{}
	s := NewShaper(backend)

	hello := utf16.Encode([]rune("hello"))
	world := utf16.Encode([]rune("world"))
	run := func(units []uint16) textshape.TextRun {
		return textshape.TextRun{Length: len(units), Script: language.Latin, Direction: textshape.DirectionLTR}
	}

	if _, err := s.ShapeRun(run(hello), hello, textshape.FontParams{Font: 1, PixelSize: 16}); err != nil {
		t.Fatalf("ShapeRun: %v", err)
	}
	if _, err := s.ShapeRun(run(world), world, textshape.FontParams{Font: 1, PixelSize: 16}); err != nil {
		t.Fatalf("ShapeRun: %v", err)
	}
	// Same text at another size is a separate cache entry
	if _, err := s.ShapeRun(run(hello), hello, textshape.FontParams{Font: 1, PixelSize: 24}); err != nil {
		t.Fatalf("ShapeRun: %v", err)
	}

	if got := backend.calls.Load(); got != 3 {
		t.Errorf("expected 3 backend calls, got %d", got)
	}
	if got := s.Runs().Len(); got != 3 {
		t.Errorf("expected 3 cached entries, got %d", got)
	}
}

func TestShaper_ErrorNotCached(t *testing.T) {
	backend := &countingShaper{fail: true}
	s := NewShaper(backend)

	units := utf16.Encode([]rune("hello"))
	run := textshape.TextRun{Length: len(units), Script: language.Latin, Direction: textshape.DirectionLTR}
	params := textshape.FontParams{Font: 1, PixelSize: 16}

	for i := 0; i < 2; i++ {
		_, err := s.ShapeRun(run, units, params)
		if !errors.Is(err, errShapeFailed) {
			t.Fatalf("call %d: expected backend error, got %v", i, err)
		}
	}

	// Every failing call must reach the backend
	if got := backend.calls.Load(); got != 2 {
		t.Errorf("expected 2 backend calls, got %d", got)
	}
	if got := s.Runs().Len(); got != 0 {
		t.Errorf("failed shapes must not be stored, got len=%d", got)
	}
}

func TestShaper_Options(t *testing.T) {
	s := NewShaper(&countingShaper{}, WithCapacity(5))
	if got := s.Runs().Capacity(); got != 5 {
		t.Errorf("expected capacity=5, got %d", got)
	}
}

func TestShaper_WarmConcurrent(t *testing.T) {
	backend := &countingShaper{}
	s := NewShaper(backend)

	texts := []string{"alpha", "beta", "gamma", "delta"}
	params := textshape.FontParams{Font: 1, PixelSize: 16}
	windows := make([][]uint16, len(texts))
	runs := make([]textshape.TextRun, len(texts))
	for i, txt := range texts {
		windows[i] = utf16.Encode([]rune(txt))
		runs[i] = textshape.TextRun{Length: len(windows[i]), Script: language.Latin, Direction: textshape.DirectionLTR}
	}

	// Warm the cache serially
	for i := range texts {
		if _, err := s.ShapeRun(runs[i], windows[i], params); err != nil {
			t.Fatalf("warm ShapeRun: %v", err)
		}
	}
	warm := backend.calls.Load()

	var wg sync.WaitGroup
	for g := 0; g < 20; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				for j := range texts {
					if _, err := s.ShapeRun(runs[j], windows[j], params); err != nil {
						t.Errorf("concurrent ShapeRun: %v", err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	// A warm cache serves every concurrent request without the backend
	if got := backend.calls.Load(); got != warm {
		t.Errorf("expected %d backend calls after warm-up, got %d", warm, got)
	}
}

// =============================================================================
// Pipeline Integration
// =============================================================================

func TestShaper_DropInPipeline(t *testing.T) {
	backend := &countingShaper{}
	s := NewShaper(backend)
	params := textshape.FontParams{Font: 0, PixelSize: 16}

	// "hello world" itemizes into three runs: the space carries Common
	// script and closes the Latin interval on both sides.
	first, err := textshape.ShapeText("hello world", params, s)
	if err != nil {
		t.Fatalf("ShapeText: %v", err)
	}
	if got := backend.calls.Load(); got != 3 {
		t.Errorf("expected 3 backend calls after first ShapeText, got %d", got)
	}

	second, err := textshape.ShapeText("hello world", params, s)
	if err != nil {
		t.Fatalf("ShapeText: %v", err)
	}

	// The repeat is served entirely from cache.
	if got := backend.calls.Load(); got != 3 {
		t.Errorf("expected no new backend calls for repeated text, got %d", got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated ShapeText should produce identical metrics")
	}
	if stats := s.Stats(); stats.Hits < 3 {
		t.Errorf("expected at least 3 cache hits after repeat, got %d", stats.Hits)
	}
}

func TestShaper_GotextRoundTrip(t *testing.T) {
	backend := gotext.NewShaper()
	fontID, err := backend.RegisterFont(goregular.TTF)
	if err != nil {
		t.Fatalf("RegisterFont: %v", err)
	}
	s := NewShaper(backend)
	params := textshape.FontParams{Font: fontID, PixelSize: 16}

	first, err := textshape.ShapeText("Hello, World!", params, s)
	if err != nil {
		t.Fatalf("ShapeText: %v", err)
	}
	if len(first.Glyphs) == 0 || first.Width <= 0 {
		t.Fatalf("expected glyphs with positive width, got %d glyphs width %f",
			len(first.Glyphs), first.Width)
	}

	second, err := textshape.ShapeText("Hello, World!", params, s)
	if err != nil {
		t.Fatalf("ShapeText: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("cached shaping should match direct shaping exactly")
	}
	stats := s.Stats()
	if stats.Hits == 0 {
		t.Error("second ShapeText should hit the cache")
	}
	t.Logf("width=%.2f glyphs=%d stats=%+v", first.Width, len(first.Glyphs), stats)
}
