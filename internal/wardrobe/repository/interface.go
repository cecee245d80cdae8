package repository

import (
	"context"

	"wardrobe-assistant/internal/model"
)

// Gateway is the durable storage interface for the wardrobe. Each call is
// atomic for its single entity; there are no partial writes. The usecase owns
// the in-memory projection and only commits it after a Gateway write returns.
type Gateway interface {
	// Items
	GetItems(ctx context.Context) ([]model.ClothingItem, error)
	SaveItem(ctx context.Context, item model.ClothingItem) error
	DeleteItem(ctx context.Context, id string) error

	// Outfits
	GetOutfits(ctx context.Context) ([]model.Outfit, error)
	SaveOutfit(ctx context.Context, outfit model.Outfit) error
	DeleteOutfit(ctx context.Context, id string) error

	// Avatar
	GetAvatar(ctx context.Context) (*model.AvatarProfile, error)
	SaveAvatar(ctx context.Context, avatar model.AvatarProfile) error

	// Avatar-clothing associations, keyed by clothing item id.
	GetAssociations(ctx context.Context) ([]model.ClothingOnAvatar, error)
	SaveAssociation(ctx context.Context, assoc model.ClothingOnAvatar) error
	RemoveAssociation(ctx context.Context, itemID string) error

	// ExportAll returns the full stored snapshot in one round trip.
	ExportAll(ctx context.Context) (ExportSnapshot, error)

	// ClearAll wipes the stored wardrobe.
	ClearAll(ctx context.Context) error
}

// ExportSnapshot is the gateway-level full dump.
type ExportSnapshot struct {
	Items        []model.ClothingItem
	Outfits      []model.Outfit
	Avatar       *model.AvatarProfile
	Associations []model.ClothingOnAvatar
}
