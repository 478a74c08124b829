package gotext

import "errors"

var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("gotext: empty font data")

	// ErrUnknownFont is returned when a FontID was never registered with
	// this shaper.
	ErrUnknownFont = errors.New("gotext: unknown font id")

	// ErrTooManyFonts is returned when the font arena is full.
	ErrTooManyFonts = errors.New("gotext: font arena full")
)
