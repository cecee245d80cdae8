package usecase

import (
	"fmt"
	"strings"

	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// validateItemFields rejects malformed item input before any I/O.
func validateItemFields(name string, category model.Category, colors []string, seasons []model.Season, occasions []model.Occasion) error {
	if strings.TrimSpace(name) == "" {
		return pkgErrors.NewValidationError("name", "must not be empty")
	}
	if !category.Valid() {
		return pkgErrors.NewValidationError("category", fmt.Sprintf("unknown category %q", category))
	}
	if len(colors) == 0 {
		return pkgErrors.NewValidationError("colors", "at least one color is required")
	}
	for _, c := range colors {
		if strings.TrimSpace(c) == "" {
			return pkgErrors.NewValidationError("colors", "colors must not be blank")
		}
	}
	for _, s := range seasons {
		if !s.Valid() {
			return pkgErrors.NewValidationError("seasons", fmt.Sprintf("unknown season %q", s))
		}
	}
	for _, o := range occasions {
		if !o.Valid() {
			return pkgErrors.NewValidationError("occasions", fmt.Sprintf("unknown occasion %q", o))
		}
	}
	return nil
}

func newItemFromInput(id string, input wardrobe.AddItemInput) model.ClothingItem {
	return model.ClothingItem{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Colors:      cloneStrings(input.Colors),
		Seasons:     cloneSeasons(input.Seasons),
		Occasions:   cloneOccasions(input.Occasions),
		Brand:       input.Brand,
		Tags:        cloneStrings(input.Tags),
		ImageURL:    input.ImageURL,
		Available:   true,
	}
}

// placementClause names where a garment sits when composing the avatar
// descriptor. One clause per category.
func placementClause(category model.Category) string {
	switch category {
	case model.CategoryUnderwear:
		return "worn underneath as a base layer"
	case model.CategoryTop:
		return "worn on the upper body"
	case model.CategoryBottom:
		return "worn on the lower body"
	case model.CategoryDress:
		return "worn as a full-length garment"
	case model.CategoryOuterwear:
		return "layered over the outfit"
	case model.CategoryShoes:
		return "worn on the feet"
	case model.CategoryAccessories:
		return "accessorizing the look"
	default:
		return "worn on the upper body"
	}
}

// buildCompositeDescriptor starts from the avatar's base descriptor and
// appends the garment with its placement clause.
func buildCompositeDescriptor(avatar model.AvatarProfile, item model.ClothingItem) string {
	return fmt.Sprintf("%s, with %s (%s) %s",
		avatar.BaseDescriptor,
		item.Name,
		strings.Join(item.Colors, ", "),
		placementClause(item.Category),
	)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneSeasons(in []model.Season) []model.Season {
	if in == nil {
		return nil
	}
	out := make([]model.Season, len(in))
	copy(out, in)
	return out
}

func cloneOccasions(in []model.Occasion) []model.Occasion {
	if in == nil {
		return nil
	}
	out := make([]model.Occasion, len(in))
	copy(out, in)
	return out
}
