package usecase

import (
	"context"
	"sync"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe/repository"
	pkgLog "wardrobe-assistant/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	gateway repository.Gateway
	gate    entitlement.Gate

	// In-memory projection. Writers hold mu for the whole validate, gate,
	// persist, commit sequence; queries take read locks and never do I/O.
	mu           sync.RWMutex
	items        map[string]model.ClothingItem
	outfits      map[string]model.Outfit
	avatar       *model.AvatarProfile
	associations map[string]model.ClothingOnAvatar // keyed by clothing item id
	stats        model.WardrobeStats
}

// New creates a new wardrobe UseCase instance. Call Load before serving.
func New(l pkgLog.Logger, gateway repository.Gateway, gate entitlement.Gate) *implUseCase {
	return &implUseCase{
		l:            l,
		gateway:      gateway,
		gate:         gate,
		items:        make(map[string]model.ClothingItem),
		outfits:      make(map[string]model.Outfit),
		associations: make(map[string]model.ClothingOnAvatar),
	}
}

// Load hydrates the projection from durable storage. Associations pointing
// at items or avatars that no longer exist are dropped during hydration.
func (uc *implUseCase) Load(ctx context.Context) error {
	items, err := uc.gateway.GetItems(ctx)
	if err != nil {
		return err
	}
	outfits, err := uc.gateway.GetOutfits(ctx)
	if err != nil {
		return err
	}
	avatar, err := uc.gateway.GetAvatar(ctx)
	if err != nil {
		return err
	}
	assocs, err := uc.gateway.GetAssociations(ctx)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.items = make(map[string]model.ClothingItem, len(items))
	for _, item := range items {
		uc.items[item.ID] = item
	}
	uc.outfits = make(map[string]model.Outfit, len(outfits))
	for _, outfit := range outfits {
		uc.outfits[outfit.ID] = outfit
	}
	uc.avatar = avatar

	uc.associations = make(map[string]model.ClothingOnAvatar, len(assocs))
	for _, assoc := range assocs {
		if _, ok := uc.items[assoc.ClothingItemID]; !ok {
			uc.l.Warnf(ctx, "Load: dropping association %s for missing item %s", assoc.ID, assoc.ClothingItemID)
			continue
		}
		if avatar == nil || avatar.ID != assoc.AvatarID {
			uc.l.Warnf(ctx, "Load: dropping association %s for missing avatar %s", assoc.ID, assoc.AvatarID)
			continue
		}
		uc.associations[assoc.ClothingItemID] = assoc
	}

	uc.recomputeStatsLocked()
	uc.l.Infof(ctx, "Load: hydrated %d items, %d outfits, %d associations", len(uc.items), len(uc.outfits), len(uc.associations))
	return nil
}
