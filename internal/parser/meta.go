package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"fpt/internal/models"
)

// ExtractMeta converts the trailing fare sub-sequence into a Meta record.
// After dropping the call-to-action button caption the sequence must reduce
// to exactly five fields in fixed order: airlines, cabin baggage, checked
// baggage, price, cabin classes.
func (p *Parser) ExtractMeta(chunks []models.Chunk, now time.Time) (models.Meta, error) {
	var meta models.Meta

	fields := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if c.Text == p.country.SelectLabel {
			continue
		}
		fields = append(fields, c.Text)
	}

	if len(fields) != 5 {
		return meta, models.NewParseError("fare", "got %d fare fields, want 5", len(fields))
	}

	meta.Airline = strings.Split(fields[0], ", ")

	cabin, err := strconv.Atoi(fields[1])
	if err != nil {
		return meta, models.NewParseError("fare", "bad cabin baggage count %q", fields[1])
	}
	meta.CabinBaggage = cabin

	checked, err := strconv.Atoi(fields[2])
	if err != nil {
		return meta, models.NewParseError("fare", "bad checked baggage count %q", fields[2])
	}
	meta.CheckedBaggage = checked

	// Stripping non-digits tolerates currency prefixes/suffixes and
	// thousands separators in any locale.
	digits := nonDigitRe.ReplaceAllString(fields[3], "")
	if digits == "" {
		return meta, models.NewParseError("fare", "price %q contains no digits", fields[3])
	}
	meta.Price = cast.ToInt(digits)

	meta.CabinClass = strings.Split(fields[4], ", ")
	meta.Currency = p.country.CurrencySymbol
	meta.ObservedAt = now

	return meta, nil
}
