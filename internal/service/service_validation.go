package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"geonotes/models"
)

// validate is the shared validator instance. It is safe for concurrent use
// and caches struct metadata across calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateLocation checks an optional geo point against the coordinate
// ranges declared on models.GeoPoint. A nil location is valid: notes exist
// without one.
func validateLocation(location *models.GeoPoint) error {
	if location == nil {
		return nil
	}

	if err := validate.Struct(location); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationBadLocation, err)
	}

	return nil
}
