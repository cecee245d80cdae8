package closetapi

import (
	"context"
	"net/http"

	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe/repository"
)

// ExportAll fetches the full stored wardrobe in one round trip.
func (g *Gateway) ExportAll(ctx context.Context) (repository.ExportSnapshot, error) {
	var resp struct {
		Items        []itemDTO        `json:"items"`
		Outfits      []outfitDTO      `json:"outfits"`
		Avatar       *avatarDTO       `json:"avatar,omitempty"`
		Associations []associationDTO `json:"associations"`
	}
	if err := g.doJSON(ctx, http.MethodGet, "/api/v1/wardrobe/export", "export all", nil, &resp); err != nil {
		return repository.ExportSnapshot{}, err
	}

	snapshot := repository.ExportSnapshot{
		Items:        make([]model.ClothingItem, len(resp.Items)),
		Outfits:      make([]model.Outfit, len(resp.Outfits)),
		Associations: make([]model.ClothingOnAvatar, len(resp.Associations)),
	}
	for i, dto := range resp.Items {
		snapshot.Items[i] = fromItemDTO(dto)
	}
	for i, dto := range resp.Outfits {
		snapshot.Outfits[i] = fromOutfitDTO(dto)
	}
	for i, dto := range resp.Associations {
		snapshot.Associations[i] = fromAssociationDTO(dto)
	}
	if resp.Avatar != nil {
		avatar := fromAvatarDTO(*resp.Avatar)
		snapshot.Avatar = &avatar
	}
	return snapshot, nil
}

// ClearAll wipes the stored wardrobe.
func (g *Gateway) ClearAll(ctx context.Context) error {
	return g.doJSON(ctx, http.MethodDelete, "/api/v1/wardrobe", "clear all", nil, nil)
}
