package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testAdMarker = "Ad"

func TestClassifyChunk(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ChunkKind
	}{
		{"timing", "10:45 – 04:50", KindTiming},
		{"timing midnight", "00:00 – 23:59", KindTiming},
		{"duration", "14h 05m", KindDuration},
		{"duration long", "102h 0m", KindDuration},
		{"airport with name", "LHRHeathrow", KindAirport},
		{"airport all caps", "DELI", KindAirport},
		{"direct", "direct", KindStops},
		{"one stop", "1 stop", KindStops},
		{"two stops", "2 stops", KindStops},
		{"penalty", "+1", KindPenalty},
		{"penalty two days", "+2", KindPenalty},
		{"ad marker", "Ad", KindAd},
		{"airline name", "Emirates", KindOther},
		{"price", "£450", KindOther},
		{"stopover list", "DXB", KindOther},
		{"three caps only", "DXB is nice", KindOther},
		{"five caps rejected", "LGWLONDON GATWICK", KindOther},
		{"all caps name rejected", "LHRHEATHROW", KindOther},
		{"hyphen timing rejected", "10:45 - 04:50", KindOther},
		{"stops without count", "stops", KindOther},
		{"penalty double digit", "+10", KindOther},
		{"empty", "", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyChunk(tt.text, testAdMarker))
		})
	}
}

func TestClassifyChunk_AdMarkerIsConfigurable(t *testing.T) {
	assert.Equal(t, KindAd, ClassifyChunk("Anzeige", "Anzeige"))
	assert.Equal(t, KindOther, ClassifyChunk("Anzeige", testAdMarker))
}

func TestChunkKind_String(t *testing.T) {
	assert.Equal(t, "timing", KindTiming.String())
	assert.Equal(t, "stopover_list", KindStopoverList.String())
	assert.Equal(t, "other", KindOther.String())
}
