package parser

import (
	"strings"

	"fpt/internal/models"
)

// Segment turns one raw text block into its ordered chunk sequence. Text
// before the first timing marker is promotional banner noise and gets
// discarded; the remainder splits on line breaks. A block without any timing
// marker comes back as a single chunk for downstream checks to reject.
func (p *Parser) Segment(block string) []models.Chunk {
	loc := timingMarkerRe.FindStringIndex(block)
	if loc == nil {
		return []models.Chunk{{
			Pos:  0,
			Text: block,
			Kind: models.ClassifyChunk(block, p.country.AdMarker),
		}}
	}

	lines := strings.Split(block[loc[0]:], "\n")
	chunks := make([]models.Chunk, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		chunks = append(chunks, models.Chunk{
			Pos:  len(chunks),
			Text: line,
			Kind: models.ClassifyChunk(line, p.country.AdMarker),
		})
	}
	return chunks
}
