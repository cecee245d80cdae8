package closetapi

import (
	"context"
	"net/http"

	"wardrobe-assistant/internal/model"
)

// GetOutfits fetches every stored outfit.
func (g *Gateway) GetOutfits(ctx context.Context) ([]model.Outfit, error) {
	var resp struct {
		Outfits []outfitDTO `json:"outfits"`
	}
	if err := g.doJSON(ctx, http.MethodGet, "/api/v1/wardrobe/outfits", "get outfits", nil, &resp); err != nil {
		return nil, err
	}

	outfits := make([]model.Outfit, len(resp.Outfits))
	for i, dto := range resp.Outfits {
		outfits[i] = fromOutfitDTO(dto)
	}
	return outfits, nil
}

// SaveOutfit upserts one outfit by id.
func (g *Gateway) SaveOutfit(ctx context.Context, outfit model.Outfit) error {
	return g.doJSON(ctx, http.MethodPut, "/api/v1/wardrobe/outfits/"+outfit.ID, "save outfit", toOutfitDTO(outfit), nil)
}

// DeleteOutfit removes one outfit by id.
func (g *Gateway) DeleteOutfit(ctx context.Context, id string) error {
	return g.doJSON(ctx, http.MethodDelete, "/api/v1/wardrobe/outfits/"+id, "delete outfit", nil, nil)
}
