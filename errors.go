package textshape

import "errors"

// Sentinel errors for the textshape package. All of them are precondition
// violations: the caller handed the pipeline input it documents as
// unsupported. Degraded shaping conditions (bidi failure, zero-glyph runs)
// are not errors; they produce well-formed output and are logged instead.
var (
	// ErrEmptyText is returned when itemizing or shaping an empty string.
	ErrEmptyText = errors.New("textshape: empty text")

	// ErrLineBreak is returned when the input contains \r or \n.
	// The pipeline shapes a single line; line breaking is the caller's job.
	ErrLineBreak = errors.New("textshape: text contains line breaks")

	// ErrZeroLengthScan is returned for a script scan of zero length.
	ErrZeroLengthScan = errors.New("textshape: zero-length scan request")

	// ErrScanOutOfRange is returned when a scan window exceeds the text.
	ErrScanOutOfRange = errors.New("textshape: scan range exceeds text length")

	// ErrNilShaper is returned when shaping without a RunShaper.
	ErrNilShaper = errors.New("textshape: nil run shaper")
)
