package parser

import (
	"strings"

	"fpt/internal/models"
)

// IsAd reports whether any chunk carries the sponsored-listing label. Such
// blocks yield no record; they are not errors.
func (p *Parser) IsAd(chunks []models.Chunk) bool {
	for _, c := range chunks {
		if c.Kind == models.KindAd {
			return true
		}
	}
	return false
}

// CheckShape cheaply rejects blocks that cannot be a complete itinerary for
// this search: exactly nLegs chunks must carry the route separator and
// exactly one chunk must carry the active currency symbol.
func (p *Parser) CheckShape(chunks []models.Chunk, nLegs int) bool {
	separators := 0
	currency := 0
	for _, c := range chunks {
		if strings.Contains(c.Text, routeSeparator) {
			separators++
		}
		if strings.Contains(c.Text, p.country.CurrencySymbol) {
			currency++
		}
	}
	return separators == nLegs && currency == 1
}
