package textshape

import "strings"

// ShapeText runs the full pipeline on one line of text: itemize, reorder
// the runs into visual order, shape each run through shaper, and aggregate
// the results.
//
// Only precondition violations surface as errors (empty text, line breaks,
// nil shaper). A shaper failure is run-local: the run is logged and
// dropped, and the remaining runs still produce a result.
func ShapeText(text string, params FontParams, shaper RunShaper) (TextMetrics, error) {
	if shaper == nil {
		return TextMetrics{}, ErrNilShaper
	}
	runs, err := Itemize(text)
	if err != nil {
		return TextMetrics{}, err
	}
	runs.ReorderRTL()
	return ShapeRuns(runs, params, shaper), nil
}

// ShapeRuns shapes already itemized and reordered runs and aggregates them
// in order. Callers that shape the same paragraph at several sizes itemize
// once and call this directly with each FontParams.
func ShapeRuns(runs *TextRuns, params FontParams, shaper RunShaper) TextMetrics {
	var m TextMetrics
	for _, run := range runs.Runs {
		shaped, err := shaper.ShapeRun(run, runs.Window(run), params)
		if err != nil {
			Logger().Warn("run shaping failed, dropping run",
				"error", err,
				"start", run.Start,
				"length", run.Length,
				"script", ScriptTag(run.Script))
			continue
		}
		m.AddRun(shaped)
	}
	return m
}

// SplitLines splits multi-line text into lines the pipeline accepts:
// \r\n and bare \r normalize to \n, and empty lines are dropped. Line
// breaking beyond that is the caller's concern.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")
	lines := parts[:0]
	for _, line := range parts {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
