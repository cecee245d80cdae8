package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// AddItem adds a clothing item: validate, entitlement gate, durable write,
// then projection commit. Any failure leaves the projection untouched.
func (uc *implUseCase) AddItem(ctx context.Context, sc model.Scope, input wardrobe.AddItemInput) (model.ClothingItem, error) {
	if err := validateItemFields(input.Name, input.Category, input.Colors, input.Seasons, input.Occasions); err != nil {
		return model.ClothingItem{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.gate.RequireCapacity(ctx, sc, entitlement.CollectionClothing, len(uc.items)); err != nil {
		return model.ClothingItem{}, err
	}

	item := newItemFromInput(uuid.NewString(), input)
	item.CreatedAt = time.Now()

	if err := uc.gateway.SaveItem(ctx, item); err != nil {
		return model.ClothingItem{}, err
	}

	uc.items[item.ID] = item
	uc.recomputeStatsLocked()
	uc.l.Infof(ctx, "AddItem: user=%s item=%s category=%s", sc.UserID, item.ID, item.Category)
	return item, nil
}

// AddSharedItem copies an item received from another user into the local
// wardrobe with provenance attached. Quota applies like any other add.
func (uc *implUseCase) AddSharedItem(ctx context.Context, sc model.Scope, input wardrobe.AddSharedItemInput) (model.ClothingItem, error) {
	if err := validateItemFields(input.Name, input.Category, input.Colors, input.Seasons, input.Occasions); err != nil {
		return model.ClothingItem{}, err
	}
	if input.OriginUserID == "" || input.OriginItemID == "" {
		return model.ClothingItem{}, pkgErrors.NewValidationError("provenance", "origin user id and origin item id are required")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.gate.RequireCapacity(ctx, sc, entitlement.CollectionClothing, len(uc.items)); err != nil {
		return model.ClothingItem{}, err
	}

	item := newItemFromInput(uuid.NewString(), input.AddItemInput)
	item.CreatedAt = time.Now()
	item.Provenance = &model.Provenance{
		OriginUserID: input.OriginUserID,
		OriginItemID: input.OriginItemID,
		ReceivedAt:   item.CreatedAt,
	}

	if err := uc.gateway.SaveItem(ctx, item); err != nil {
		return model.ClothingItem{}, err
	}

	uc.items[item.ID] = item
	uc.recomputeStatsLocked()
	uc.l.Infof(ctx, "AddSharedItem: user=%s item=%s origin=%s/%s", sc.UserID, item.ID, input.OriginUserID, input.OriginItemID)
	return item, nil
}

// UpdateItem replaces every mutable field of an existing item. Identity,
// creation time and provenance are immutable.
func (uc *implUseCase) UpdateItem(ctx context.Context, sc model.Scope, input wardrobe.UpdateItemInput) (model.ClothingItem, error) {
	if err := validateItemFields(input.Name, input.Category, input.Colors, input.Seasons, input.Occasions); err != nil {
		return model.ClothingItem{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, ok := uc.items[input.ID]
	if !ok {
		return model.ClothingItem{}, wardrobe.ErrItemNotFound
	}

	item := newItemFromInput(existing.ID, wardrobe.AddItemInput{
		Name:        input.Name,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Colors:      input.Colors,
		Seasons:     input.Seasons,
		Occasions:   input.Occasions,
		Brand:       input.Brand,
		Tags:        input.Tags,
		ImageURL:    input.ImageURL,
	})
	item.Available = input.Available
	item.CreatedAt = existing.CreatedAt
	item.Provenance = existing.Provenance

	if err := uc.gateway.SaveItem(ctx, item); err != nil {
		return model.ClothingItem{}, err
	}

	uc.items[item.ID] = item
	uc.recomputeStatsLocked()
	uc.l.Infof(ctx, "UpdateItem: user=%s item=%s", sc.UserID, item.ID)
	return item, nil
}

// RemoveItem deletes an item and, when present, its avatar association.
func (uc *implUseCase) RemoveItem(ctx context.Context, sc model.Scope, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.items[id]; !ok {
		return wardrobe.ErrItemNotFound
	}

	if _, ok := uc.associations[id]; ok {
		if err := uc.gateway.RemoveAssociation(ctx, id); err != nil {
			return err
		}
	}
	if err := uc.gateway.DeleteItem(ctx, id); err != nil {
		return err
	}

	delete(uc.associations, id)
	delete(uc.items, id)
	uc.recomputeStatsLocked()
	uc.l.Infof(ctx, "RemoveItem: user=%s item=%s", sc.UserID, id)
	return nil
}
