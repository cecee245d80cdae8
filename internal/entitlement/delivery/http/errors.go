package http

import (
	"errors"

	"wardrobe-assistant/internal/entitlement"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors. Taxonomy errors carry
// their own status mapping and pass through unchanged.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, entitlement.ErrAlreadySubscribed):
		return pkgErrors.NewHTTPError(409, entitlement.ErrAlreadySubscribed.Error())
	case errors.Is(err, entitlement.ErrNoPaidPlan):
		return pkgErrors.NewHTTPError(400, entitlement.ErrNoPaidPlan.Error())
	default:
		return err
	}
}
