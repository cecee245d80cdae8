package wardrobe

import (
	"time"

	"wardrobe-assistant/internal/model"
)

// AddItemInput is the input for adding a clothing item.
type AddItemInput struct {
	Name        string
	Category    model.Category
	Subcategory string
	Colors      []string
	Seasons     []model.Season
	Occasions   []model.Occasion
	Brand       string
	Tags        []string
	ImageURL    string
}

// UpdateItemInput replaces every mutable field of an existing item.
type UpdateItemInput struct {
	ID          string
	Name        string
	Category    model.Category
	Subcategory string
	Colors      []string
	Seasons     []model.Season
	Occasions   []model.Occasion
	Brand       string
	Tags        []string
	ImageURL    string
	Available   bool
}

// AddSharedItemInput is the input for receiving an item shared by another
// user. The item is copied into the local wardrobe with provenance attached.
type AddSharedItemInput struct {
	AddItemInput
	OriginUserID string
	OriginItemID string
}

// FilterCriteria narrows the item list. Every field is optional; zero values
// mean "any".
type FilterCriteria struct {
	Category  model.Category
	Season    model.Season
	Occasion  model.Occasion
	Color     string
	Available *bool
}

// CreateOutfitInput is the input for composing an outfit from existing items.
type CreateOutfitInput struct {
	Name      string
	ItemIDs   []string
	Occasion  model.Occasion
	Season    model.Season
	Generated bool
}

// RateOutfitInput attaches a 1-5 rating to an outfit.
type RateOutfitInput struct {
	OutfitID string
	Rating   int
}

// SaveAvatarInput creates or replaces the active avatar profile.
type SaveAvatarInput struct {
	Gender         string
	BodyType       model.BodyType
	SkinTone       string
	BaseDescriptor string
}

// TryOnOutput describes the association produced by a try-on.
type TryOnOutput struct {
	Association model.ClothingOnAvatar
	Item        model.ClothingItem
}

// ExportOutput is the full wardrobe snapshot for the export feature.
type ExportOutput struct {
	Items        []model.ClothingItem
	Outfits      []model.Outfit
	Avatar       *model.AvatarProfile
	Associations []model.ClothingOnAvatar
	ExportedAt   time.Time
}
