package closetapi

import (
	"context"
	"net/http"

	"wardrobe-assistant/internal/model"
)

// GetItems fetches every stored clothing item.
func (g *Gateway) GetItems(ctx context.Context) ([]model.ClothingItem, error) {
	var resp struct {
		Items []itemDTO `json:"items"`
	}
	if err := g.doJSON(ctx, http.MethodGet, "/api/v1/wardrobe/items", "get items", nil, &resp); err != nil {
		return nil, err
	}

	items := make([]model.ClothingItem, len(resp.Items))
	for i, dto := range resp.Items {
		items[i] = fromItemDTO(dto)
	}
	return items, nil
}

// SaveItem upserts one clothing item by id.
func (g *Gateway) SaveItem(ctx context.Context, item model.ClothingItem) error {
	return g.doJSON(ctx, http.MethodPut, "/api/v1/wardrobe/items/"+item.ID, "save item", toItemDTO(item), nil)
}

// DeleteItem removes one clothing item by id.
func (g *Gateway) DeleteItem(ctx context.Context, id string) error {
	return g.doJSON(ctx, http.MethodDelete, "/api/v1/wardrobe/items/"+id, "delete item", nil, nil)
}
