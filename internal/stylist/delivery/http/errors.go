package http

import (
	"errors"

	"wardrobe-assistant/internal/stylist"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// mapError translates pipeline errors into HTTP errors. Taxonomy errors carry
// their own status mapping and pass through unchanged.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, stylist.ErrNotEnoughItems):
		return pkgErrors.NewHTTPError(400, stylist.ErrNotEnoughItems.Error())
	case errors.Is(err, stylist.ErrInvocationNotFound):
		return pkgErrors.NewHTTPError(404, stylist.ErrInvocationNotFound.Error())
	default:
		return err
	}
}
