package scrape

import (
	"strings"

	"fpt/internal/models"
	"fpt/internal/structures"
)

// BuildURLs builds the search page URL(s) for a validated flight search.
// Plain searches yield one URL; city-options searches yield one one-way URL
// per origin/destination pair so each combination gets its own result page.
func BuildURLs(fs *models.FlightSearch, country structures.CountryConfig, rules structures.SearchRules) ([]string, error) {
	if err := fs.Validate(rules); err != nil {
		return nil, err
	}

	flexAdd := ""
	if fs.Flex != "" {
		flexAdd = "-" + rules.PermittedFlex[fs.Flex]
	}

	base := country.BaseUrl

	switch fs.JourneyType {
	case "one-way":
		return []string{base + fs.Origin[0] + "-" + fs.Destination[0] + "/" + fs.LeaveDates[0] + flexAdd}, nil

	case "return":
		return []string{base + fs.Origin[0] + "-" + fs.Destination[0] +
			"/" + fs.LeaveDates[0] + flexAdd +
			"/" + fs.ReturnDate + flexAdd}, nil

	case "multi-city":
		var b strings.Builder
		b.WriteString(base)
		for i := range fs.Origin {
			b.WriteString(fs.Origin[i] + "-" + fs.Destination[i] + "/" + fs.LeaveDates[i] + "/")
		}
		return []string{b.String()}, nil

	case "city_options-one_way":
		var urls []string
		for _, o := range fs.Origin {
			for _, d := range fs.Destination {
				urls = append(urls, base+o+"-"+d+"/"+fs.LeaveDates[0]+flexAdd)
			}
		}
		return urls, nil
	}

	return nil, models.NewValidationError("journey_type", "no URL form for journey type %q", fs.JourneyType)
}
