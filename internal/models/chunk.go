package models

import "regexp"

// ChunkKind tags what a text fragment looks like. Classification happens in
// one pass when a block is segmented, so the extractors match on kinds
// instead of re-probing every chunk with regexes.
type ChunkKind int

const (
	KindOther ChunkKind = iota
	KindTiming
	KindDuration
	KindAirport
	KindStops
	KindStopoverList
	KindPenalty
	KindAd
)

func (k ChunkKind) String() string {
	switch k {
	case KindTiming:
		return "timing"
	case KindDuration:
		return "duration"
	case KindAirport:
		return "airport"
	case KindStops:
		return "stops"
	case KindStopoverList:
		return "stopover_list"
	case KindPenalty:
		return "penalty"
	case KindAd:
		return "ad"
	default:
		return "other"
	}
}

// Chunk is one atomic text fragment from a scraped listing, positionally
// ordered within its block.
type Chunk struct {
	Pos  int
	Text string
	Kind ChunkKind
}

// The separator is a non-ASCII en dash; the site never uses a plain hyphen
// between times. An airport chunk is a 3-letter code glued to a capitalised
// station name, so exactly four leading capitals and no fifth.
var (
	timingRe   = regexp.MustCompile(`^\d{2}:\d{2} – \d{2}:\d{2}$`)
	durationRe = regexp.MustCompile(`^\d+h \d+m$`)
	airportRe  = regexp.MustCompile(`^[A-Z]{4}([^A-Z]|$)`)
	stopsRe    = regexp.MustCompile(`^(\d+) stops?$`)
	penaltyRe  = regexp.MustCompile(`^\+\d$`)
)

// ClassifyChunk assigns a kind to a single fragment. adMarker is the literal
// label the site puts on sponsored listings. KindStopoverList cannot be
// recognised here — it is positional (the chunk after a stops chunk) and gets
// tagged during leg extraction.
func ClassifyChunk(text string, adMarker string) ChunkKind {
	switch {
	case text == adMarker:
		return KindAd
	case timingRe.MatchString(text):
		return KindTiming
	case durationRe.MatchString(text):
		return KindDuration
	case text == "direct" || stopsRe.MatchString(text):
		return KindStops
	case penaltyRe.MatchString(text):
		return KindPenalty
	case airportRe.MatchString(text):
		return KindAirport
	default:
		return KindOther
	}
}
