package parser

import "regexp"

// The site separates departure and arrival times with a spaced en dash
// (U+2013). The same marker doubles as the per-leg route separator the shape
// check counts, so its exact form matters.
const routeSeparator = " – "

var (
	// timingMarkerRe locates the first timing marker inside a raw block;
	// everything before it is banner noise.
	timingMarkerRe = regexp.MustCompile(`\d{2}:\d{2} – \d{2}:\d{2}`)

	// timingPartsRe captures the two clock times of a timing chunk.
	timingPartsRe = regexp.MustCompile(`^(\d{2}:\d{2}) – (\d{2}:\d{2})$`)

	// durationPartsRe captures hours and minutes of a duration chunk.
	durationPartsRe = regexp.MustCompile(`(\d+)h (\d+)m`)

	// stopsCountRe captures the stop count of a "<N> stop(s)" chunk.
	stopsCountRe = regexp.MustCompile(`^(\d+) stops?$`)

	// penaltyRe captures the day offset of an overnight-arrival marker.
	penaltyRe = regexp.MustCompile(`\+(\d)`)

	// nonDigitRe strips currency symbols and thousands separators from a raw
	// price string.
	nonDigitRe = regexp.MustCompile(`\D`)
)
