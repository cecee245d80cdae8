package closetapi

import (
	"context"
	"net/http"

	"wardrobe-assistant/internal/model"
)

// GetAssociations fetches every avatar-clothing association.
func (g *Gateway) GetAssociations(ctx context.Context) ([]model.ClothingOnAvatar, error) {
	var resp struct {
		Associations []associationDTO `json:"associations"`
	}
	if err := g.doJSON(ctx, http.MethodGet, "/api/v1/wardrobe/associations", "get associations", nil, &resp); err != nil {
		return nil, err
	}

	assocs := make([]model.ClothingOnAvatar, len(resp.Associations))
	for i, dto := range resp.Associations {
		assocs[i] = fromAssociationDTO(dto)
	}
	return assocs, nil
}

// SaveAssociation upserts one association, keyed by clothing item id.
func (g *Gateway) SaveAssociation(ctx context.Context, assoc model.ClothingOnAvatar) error {
	return g.doJSON(ctx, http.MethodPut, "/api/v1/wardrobe/associations/"+assoc.ClothingItemID, "save association", toAssociationDTO(assoc), nil)
}

// RemoveAssociation deletes the association for an item. Deleting an absent
// association returns success; the closet service treats it as a no-op.
func (g *Gateway) RemoveAssociation(ctx context.Context, itemID string) error {
	return g.doJSON(ctx, http.MethodDelete, "/api/v1/wardrobe/associations/"+itemID, "remove association", nil, nil)
}
