// Package textshape itemizes bidirectional text and orchestrates run
// shaping.
//
// # Overview
//
// textshape turns one line of UTF-8 text into positioned glyphs with
// aggregate metrics. It owns the text analysis side of the problem
// (bidi levels, script intervals, run reordering) and delegates glyph
// production to a pluggable shaping backend.
//
// # Quick Start
//
//	import (
//	    "github.com/MortalEngineXXII/textshape"
//	    "github.com/MortalEngineXXII/textshape/gotext"
//	)
//
//	shaper := gotext.NewShaper()
//	fontID, err := shaper.RegisterFont(ttfData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err := textshape.ShapeText("Hello, السلام", textshape.FontParams{
//	    Font:      fontID,
//	    PixelSize: 18,
//	}, shaper)
//
// # Architecture
//
// The pipeline has four stages:
//   - Itemizer: UTF-16 transcoding, bidi embedding levels
//     (golang.org/x/text/unicode/bidi), Script_Extensions-aware interval
//     scanning; produces script- and direction-homogeneous runs
//   - TextRuns.ReorderRTL: logical to visual run order, one level of
//     direction embedding
//   - RunShaper: pluggable per-run shaping; package gotext implements it
//     with go-text/typesetting, package cache adds a caching decorator
//   - TextMetrics: visual-order concatenation and width accumulation
//
// Itemization alone is available through Itemize for callers that only
// need run boundaries.
//
// # Diagnostics
//
// Degraded results (failed bidi analysis, failed run shaping) never fail a
// request; they are reported through a package-level slog logger that is
// disabled by default. See SetLogger.
package textshape

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
