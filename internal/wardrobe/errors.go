package wardrobe

import "errors"

// Domain-specific errors for the wardrobe package.
var (
	ErrItemNotFound   = errors.New("clothing item not found")
	ErrOutfitNotFound = errors.New("outfit not found")
	ErrNoActiveAvatar = errors.New("no active avatar profile")
)
