package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAd(t *testing.T) {
	p, _ := newTestParser()

	ad := "10:45 – 04:50\nLHRHeathrow\nDELIndira Gandhi Intl\ndirect\n14h 05m\nAd\nEmirates\n1\n2\n£450\nEconomy"
	assert.True(t, p.IsAd(p.Segment(ad)))
	assert.False(t, p.IsAd(p.Segment(oneWayBlock)))
}

func TestCheckShape_OneLeg(t *testing.T) {
	p, _ := newTestParser()
	chunks := p.Segment(oneWayBlock)

	assert.True(t, p.CheckShape(chunks, 1))
	assert.False(t, p.CheckShape(chunks, 2))
}

func TestCheckShape_RejectsMissingPrice(t *testing.T) {
	p, _ := newTestParser()

	noPrice := "10:45 – 04:50\nLHRHeathrow\nDELIndira Gandhi Intl\ndirect\n14h 05m\nEmirates\n1\n2\nEconomy"
	assert.False(t, p.CheckShape(p.Segment(noPrice), 1))
}

func TestCheckShape_RejectsTwoPrices(t *testing.T) {
	p, _ := newTestParser()

	twoPrices := "10:45 – 04:50\nLHRHeathrow\nDELIndira Gandhi Intl\ndirect\n14h 05m\nEmirates\n1\n2\n£450\n£99 per seat\nEconomy"
	assert.False(t, p.CheckShape(p.Segment(twoPrices), 1))
}

func TestCheckShape_RejectsBannerOnlyBlock(t *testing.T) {
	p, _ := newTestParser()

	chunks := p.Segment("Book now and save!")
	assert.False(t, p.CheckShape(chunks, 1))
}
