package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"fpt/internal/models"
	"fpt/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate runs the struct tags first, then the cross-field checks the tags
// cannot express (country wiring, tracked searches against permitted values).
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	if _, ok := cv.conf.Countries[cv.conf.Trend.Country]; !ok {
		return fmt.Errorf("trend.country %q has no entry under countries", cv.conf.Trend.Country)
	}

	for i, s := range cv.conf.Searches {
		fs := models.FromSearchSpec(s)
		if err := fs.Validate(cv.conf.Rules); err != nil {
			return fmt.Errorf("searches[%d]: %w", i, err)
		}
	}

	return nil
}
