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

// SaveAvatar creates or replaces the active avatar. Replacing the avatar
// drops every existing try-on association, since composite descriptors are
// derived from the base descriptor being replaced.
func (uc *implUseCase) SaveAvatar(ctx context.Context, sc model.Scope, input wardrobe.SaveAvatarInput) (model.AvatarProfile, error) {
	if !input.BodyType.Valid() {
		return model.AvatarProfile{}, pkgErrors.NewValidationError("body_type", fmt.Sprintf("unknown body type %q", input.BodyType))
	}
	if strings.TrimSpace(input.BaseDescriptor) == "" {
		return model.AvatarProfile{}, pkgErrors.NewValidationError("base_descriptor", "must not be empty")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Only creating a new avatar counts against the quota; replacement does
	// not grow the collection.
	if uc.avatar == nil {
		if err := uc.gate.RequireCapacity(ctx, sc, entitlement.CollectionAvatars, 0); err != nil {
			return model.AvatarProfile{}, err
		}
	}

	avatar := model.AvatarProfile{
		ID:             uuid.NewString(),
		Gender:         input.Gender,
		BodyType:       input.BodyType,
		SkinTone:       input.SkinTone,
		BaseDescriptor: strings.TrimSpace(input.BaseDescriptor),
		CreatedAt:      time.Now(),
		Active:         true,
	}

	// Every gateway call completes before the projection changes; a failure
	// midway leaves the projection untouched.
	if err := uc.gateway.SaveAvatar(ctx, avatar); err != nil {
		return model.AvatarProfile{}, err
	}
	for itemID := range uc.associations {
		if err := uc.gateway.RemoveAssociation(ctx, itemID); err != nil {
			return model.AvatarProfile{}, err
		}
	}

	uc.associations = make(map[string]model.ClothingOnAvatar)
	uc.avatar = &avatar
	uc.l.Infof(ctx, "SaveAvatar: user=%s avatar=%s body_type=%s", sc.UserID, avatar.ID, avatar.BodyType)
	return avatar, nil
}

// GetAvatar returns the active avatar from the projection.
func (uc *implUseCase) GetAvatar(ctx context.Context, sc model.Scope) (model.AvatarProfile, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.avatar == nil {
		return model.AvatarProfile{}, wardrobe.ErrNoActiveAvatar
	}
	return *uc.avatar, nil
}

// TryOnItem associates an item with the active avatar. The layer order is a
// pure function of category; repeat try-on of the same item replaces the
// association.
func (uc *implUseCase) TryOnItem(ctx context.Context, sc model.Scope, itemID string) (wardrobe.TryOnOutput, error) {
	if err := uc.gate.RequireFeature(ctx, sc, entitlement.FeatureVirtualTryOn); err != nil {
		return wardrobe.TryOnOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.avatar == nil {
		return wardrobe.TryOnOutput{}, wardrobe.ErrNoActiveAvatar
	}
	item, ok := uc.items[itemID]
	if !ok {
		return wardrobe.TryOnOutput{}, wardrobe.ErrItemNotFound
	}

	assoc := model.ClothingOnAvatar{
		ID:             uuid.NewString(),
		AvatarID:       uc.avatar.ID,
		ClothingItemID: item.ID,
		LayerOrder:     model.LayerOrder(item.Category),
		Descriptor:     buildCompositeDescriptor(*uc.avatar, item),
		CreatedAt:      time.Now(),
	}

	if err := uc.gateway.SaveAssociation(ctx, assoc); err != nil {
		return wardrobe.TryOnOutput{}, err
	}

	uc.associations[item.ID] = assoc
	uc.l.Infof(ctx, "TryOnItem: user=%s item=%s layer=%d", sc.UserID, item.ID, assoc.LayerOrder)
	return wardrobe.TryOnOutput{Association: assoc, Item: item}, nil
}

// RemoveFromAvatar removes the association for an item. Removing an item
// that was never tried on is a no-op success; no storage call is made.
func (uc *implUseCase) RemoveFromAvatar(ctx context.Context, sc model.Scope, itemID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.associations[itemID]; !ok {
		return nil
	}

	if err := uc.gateway.RemoveAssociation(ctx, itemID); err != nil {
		return err
	}

	delete(uc.associations, itemID)
	uc.l.Infof(ctx, "RemoveFromAvatar: user=%s item=%s", sc.UserID, itemID)
	return nil
}

// ListAvatarClothing returns current associations ordered by layer, bottom
// of the stack first.
func (uc *implUseCase) ListAvatarClothing(ctx context.Context, sc model.Scope) ([]model.ClothingOnAvatar, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.ClothingOnAvatar, 0, len(uc.associations))
	for _, assoc := range uc.associations {
		out = append(out, assoc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LayerOrder != out[j].LayerOrder {
			return out[i].LayerOrder < out[j].LayerOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
