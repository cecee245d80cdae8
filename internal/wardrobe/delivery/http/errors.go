package http

import (
	"errors"

	"wardrobe-assistant/internal/wardrobe"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors. Taxonomy errors carry
// their own status mapping and pass through unchanged.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, wardrobe.ErrItemNotFound):
		return pkgErrors.NewHTTPError(404, wardrobe.ErrItemNotFound.Error())
	case errors.Is(err, wardrobe.ErrOutfitNotFound):
		return pkgErrors.NewHTTPError(404, wardrobe.ErrOutfitNotFound.Error())
	case errors.Is(err, wardrobe.ErrNoActiveAvatar):
		return pkgErrors.NewHTTPError(404, wardrobe.ErrNoActiveAvatar.Error())
	default:
		return err
	}
}
