package parser

import (
	"fpt/internal/models"
)

// SplitLegs partitions a chunk sequence into one sub-sequence per leg plus
// the trailing fare/meta sub-sequence. Timing chunks mark leg starts; the
// last leg ends at the last duration chunk after its timing chunk. A timing
// count that disagrees with the expected leg count fails the whole block.
func SplitLegs(chunks []models.Chunk, nLegs int) (legs [][]models.Chunk, meta []models.Chunk, err error) {
	var starts []int
	for i, c := range chunks {
		if c.Kind == models.KindTiming {
			starts = append(starts, i)
		}
	}

	if len(starts) != nLegs {
		return nil, nil, models.NewParseError("boundary",
			"found %d timing chunks, expected %d legs", len(starts), nLegs)
	}

	legs = make([][]models.Chunk, 0, nLegs)
	for k := 0; k+1 < len(starts); k++ {
		legs = append(legs, chunks[starts[k]:starts[k+1]])
	}

	last := starts[len(starts)-1]
	end := -1
	for i := last; i < len(chunks); i++ {
		if chunks[i].Kind == models.KindDuration {
			end = i
		}
	}
	if end < 0 {
		return nil, nil, models.NewParseError("boundary", "no duration chunk in final leg")
	}

	legs = append(legs, chunks[last:end+1])
	meta = chunks[end+1:]
	return legs, meta, nil
}
