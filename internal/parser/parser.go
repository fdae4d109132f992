package parser

import (
	"errors"
	"time"

	"fpt/internal/models"
	"fpt/internal/providers"
	"fpt/internal/structures"
)

// Parser is the journey-text parsing engine: it reconstructs structured
// journeys from the ordered text fragments of one scraped result block.
// It holds no state between blocks; callers thread an accumulator through
// ParseBlocks.
type Parser struct {
	country structures.CountryConfig
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewParser(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) *Parser {
	return &Parser{
		country: conf.Country(),
		logger:  logger,
		metrics: metrics,
	}
}

// ParseBlock parses one raw block into a journey. A nil journey with nil
// error means the block was filtered (ad or wrong shape) — that is the
// expected fate of many blocks and not worth an error. A ParseError means
// the block looked like an itinerary but could not be decoded.
func (p *Parser) ParseBlock(block string, legDates []time.Time) (*models.Journey, error) {
	chunks := p.Segment(block)

	if p.IsAd(chunks) {
		p.metrics.IncBlocksDropped(providers.DropReasonAd)
		return nil, nil
	}
	if !p.CheckShape(chunks, len(legDates)) {
		p.metrics.IncBlocksDropped(providers.DropReasonShape)
		return nil, nil
	}

	legChunks, metaChunks, err := SplitLegs(chunks, len(legDates))
	if err != nil {
		return nil, err
	}

	journey := &models.Journey{Legs: make([]models.Leg, 0, len(legChunks))}
	for i, lc := range legChunks {
		leg, err := ExtractLeg(lc, legDates[i])
		if err != nil {
			return nil, err
		}
		journey.Legs = append(journey.Legs, leg)
	}

	meta, err := p.ExtractMeta(metaChunks, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	journey.Meta = meta

	return journey, nil
}

// ParseBlocks runs ParseBlock over a batch, appending survivors to acc.
// Parse failures are logged and skipped: one bad listing never aborts the
// batch, it just shrinks the result set.
func (p *Parser) ParseBlocks(blocks []string, legDates []time.Time, acc []models.Journey) []models.Journey {
	p.metrics.IncBlocksSeen(len(blocks))
	parsed := 0

	for i, block := range blocks {
		journey, err := p.ParseBlock(block, legDates)
		if err != nil {
			var perr *models.ParseError
			if errors.As(err, &perr) {
				p.metrics.IncBlocksDropped(providers.DropReasonParse)
				p.logger.Warnf(providers.TypeParse, "Skipping block %d: %s", i, perr)
				continue
			}
			p.logger.Errorf(providers.TypeParse, "Unexpected error on block %d: %s", i, err)
			continue
		}
		if journey == nil {
			continue
		}
		acc = append(acc, *journey)
		parsed++
	}

	p.metrics.IncJourneysParsed(parsed)
	return acc
}
