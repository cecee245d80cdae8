package wardrobe

import (
	"context"

	"wardrobe-assistant/internal/model"
)

// UseCase defines the business logic interface for the wardrobe domain. All
// writes run validate, entitlement gate, durable write, then commit of the
// in-memory projection, in that order. Queries read only the projection.
type UseCase interface {
	// Load hydrates the in-memory projection from durable storage.
	Load(ctx context.Context) error

	// Items
	AddItem(ctx context.Context, sc model.Scope, input AddItemInput) (model.ClothingItem, error)
	AddSharedItem(ctx context.Context, sc model.Scope, input AddSharedItemInput) (model.ClothingItem, error)
	UpdateItem(ctx context.Context, sc model.Scope, input UpdateItemInput) (model.ClothingItem, error)
	RemoveItem(ctx context.Context, sc model.Scope, id string) error
	GetItem(ctx context.Context, sc model.Scope, id string) (model.ClothingItem, error)
	ListItems(ctx context.Context, sc model.Scope) ([]model.ClothingItem, error)
	Search(ctx context.Context, sc model.Scope, query string) ([]model.ClothingItem, error)
	Filter(ctx context.Context, sc model.Scope, criteria FilterCriteria) ([]model.ClothingItem, error)

	// Outfits
	CreateOutfit(ctx context.Context, sc model.Scope, input CreateOutfitInput) (model.Outfit, error)
	RateOutfit(ctx context.Context, sc model.Scope, input RateOutfitInput) (model.Outfit, error)
	DeleteOutfit(ctx context.Context, sc model.Scope, id string) error
	ListOutfits(ctx context.Context, sc model.Scope) ([]model.Outfit, error)

	// Avatar
	SaveAvatar(ctx context.Context, sc model.Scope, input SaveAvatarInput) (model.AvatarProfile, error)
	GetAvatar(ctx context.Context, sc model.Scope) (model.AvatarProfile, error)
	TryOnItem(ctx context.Context, sc model.Scope, itemID string) (TryOnOutput, error)
	RemoveFromAvatar(ctx context.Context, sc model.Scope, itemID string) error
	ListAvatarClothing(ctx context.Context, sc model.Scope) ([]model.ClothingOnAvatar, error)

	// Derived
	Stats(ctx context.Context, sc model.Scope) (model.WardrobeStats, error)
	ExportAll(ctx context.Context, sc model.Scope) (ExportOutput, error)
}
