// Command itemize splits UTF-8 text into script and direction runs.
//
// Lines come from the arguments (joined into one line) or from -file, one
// line per input line. Each line is itemized and printed as per-run UTF-16
// offsets, script tag, and direction. With -shape every line is also shaped
// with an embedded fallback face (or -font) and the glyph ids, advances,
// and total width are printed.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/MortalEngineXXII/textshape"
	"github.com/MortalEngineXXII/textshape/cache"
	"github.com/MortalEngineXXII/textshape/gotext"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		file     = flag.String("file", "", "read lines from this file instead of the arguments")
		shape    = flag.Bool("shape", false, "shape each line and print glyphs")
		fontPath = flag.String("font", "", "TTF font for -shape (default: embedded Go Regular)")
		size     = flag.Int("size", 16, "font height in pixels for -shape")
		lang     = flag.String("lang", "en", "BCP-47 language tag for -shape")
		verbose  = flag.Bool("v", false, "log pipeline diagnostics to stderr")
	)
	flag.Parse()
	log.SetFlags(0)

	if *verbose {
		textshape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *file == "" && flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	lines, err := gatherLines(*file, flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	var (
		shaper textshape.RunShaper
		params textshape.FontParams
	)
	if *shape {
		shaper, params, err = newShaper(*fontPath, *size, *lang)
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, line := range lines {
		if err := itemizeLine(line, params, shaper); err != nil {
			log.Printf("%q: %v", line, err)
		}
	}
}

// gatherLines returns the input lines: the file's lines when path is set,
// otherwise the arguments joined into a single line.
func gatherLines(path string, args []string) ([]string, error) {
	if path == "" {
		return []string{strings.Join(args, " ")}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return textshape.SplitLines(string(data)), nil
}

// newShaper builds the shaping backend for -shape: the given TTF or the
// embedded Go Regular face, behind a run cache so repeated lines shape once.
func newShaper(path string, size int, lang string) (textshape.RunShaper, textshape.FontParams, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, textshape.FontParams{}, err
		}
	}

	backend := gotext.NewShaper(gotext.WithFallbackLanguage(lang))
	id, err := backend.RegisterFont(data)
	if err != nil {
		return nil, textshape.FontParams{}, err
	}

	params := textshape.FontParams{
		Font:      id,
		PixelSize: size,
		Lang:      textshape.LangForTag(lang),
	}
	return cache.NewShaper(backend), params, nil
}

func itemizeLine(line string, params textshape.FontParams, shaper textshape.RunShaper) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	runs, err := textshape.Itemize(line)
	if err != nil {
		return err
	}

	fmt.Println(line)
	for i, run := range runs.Runs {
		fmt.Printf("  [%d] %d+%d %s %s\n",
			i, run.Start, run.Length, textshape.ScriptTag(run.Script), run.Direction)
	}

	if shaper == nil {
		return nil
	}
	m, err := textshape.ShapeText(line, params, shaper)
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, g := range m.Glyphs {
		fmt.Fprintf(&sb, " %d:%.2f", g.GID, g.XAdvance)
	}
	fmt.Printf("  glyphs:%s\n  width: %.2f\n", sb.String(), m.Width)
	return nil
}
