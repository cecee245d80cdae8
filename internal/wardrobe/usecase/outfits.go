package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// CreateOutfit composes an outfit from existing items. Items are copied by
// value; later wardrobe edits do not rewrite the outfit.
func (uc *implUseCase) CreateOutfit(ctx context.Context, sc model.Scope, input wardrobe.CreateOutfitInput) (model.Outfit, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Outfit{}, pkgErrors.NewValidationError("name", "must not be empty")
	}
	if len(input.ItemIDs) == 0 {
		return model.Outfit{}, pkgErrors.NewValidationError("item_ids", "at least one item is required")
	}
	if input.Occasion != "" && !input.Occasion.Valid() {
		return model.Outfit{}, pkgErrors.NewValidationError("occasion", fmt.Sprintf("unknown occasion %q", input.Occasion))
	}
	if input.Season != "" && !input.Season.Valid() {
		return model.Outfit{}, pkgErrors.NewValidationError("season", fmt.Sprintf("unknown season %q", input.Season))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]model.ClothingItem, 0, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		item, ok := uc.items[id]
		if !ok {
			return model.Outfit{}, pkgErrors.NewValidationError("item_ids", fmt.Sprintf("item %s does not exist", id))
		}
		items = append(items, item)
	}

	if err := uc.gate.RequireCapacity(ctx, sc, entitlement.CollectionOutfits, len(uc.outfits)); err != nil {
		return model.Outfit{}, err
	}

	outfit := model.Outfit{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Items:     items,
		Occasion:  input.Occasion,
		Season:    input.Season,
		Generated: input.Generated,
		CreatedAt: time.Now(),
	}

	if err := uc.gateway.SaveOutfit(ctx, outfit); err != nil {
		return model.Outfit{}, err
	}

	uc.outfits[outfit.ID] = outfit
	uc.recomputeStatsLocked()
	uc.l.Infof(ctx, "CreateOutfit: user=%s outfit=%s items=%d generated=%v", sc.UserID, outfit.ID, len(items), outfit.Generated)
	return outfit, nil
}

// RateOutfit attaches a 1-5 rating to an existing outfit.
func (uc *implUseCase) RateOutfit(ctx context.Context, sc model.Scope, input wardrobe.RateOutfitInput) (model.Outfit, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return model.Outfit{}, pkgErrors.NewValidationError("rating", "must be between 1 and 5")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	outfit, ok := uc.outfits[input.OutfitID]
	if !ok {
		return model.Outfit{}, wardrobe.ErrOutfitNotFound
	}

	rating := input.Rating
	outfit.Rating = &rating

	if err := uc.gateway.SaveOutfit(ctx, outfit); err != nil {
		return model.Outfit{}, err
	}

	uc.outfits[outfit.ID] = outfit
	uc.l.Infof(ctx, "RateOutfit: user=%s outfit=%s rating=%d", sc.UserID, outfit.ID, rating)
	return outfit, nil
}

// DeleteOutfit removes an outfit.
func (uc *implUseCase) DeleteOutfit(ctx context.Context, sc model.Scope, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.outfits[id]; !ok {
		return wardrobe.ErrOutfitNotFound
	}

	if err := uc.gateway.DeleteOutfit(ctx, id); err != nil {
		return err
	}

	delete(uc.outfits, id)
	uc.recomputeStatsLocked()
	uc.l.Infof(ctx, "DeleteOutfit: user=%s outfit=%s", sc.UserID, id)
	return nil
}

// ListOutfits returns every outfit, newest first.
func (uc *implUseCase) ListOutfits(ctx context.Context, sc model.Scope) ([]model.Outfit, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.Outfit, 0, len(uc.outfits))
	for _, outfit := range uc.outfits {
		out = append(out, outfit)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
