package usecase

import (
	"context"
	"sort"
	"strings"

	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
)

// GetItem returns one item from the projection.
func (uc *implUseCase) GetItem(ctx context.Context, sc model.Scope, id string) (model.ClothingItem, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	item, ok := uc.items[id]
	if !ok {
		return model.ClothingItem{}, wardrobe.ErrItemNotFound
	}
	return item, nil
}

// ListItems returns every item, newest first.
func (uc *implUseCase) ListItems(ctx context.Context, sc model.Scope) ([]model.ClothingItem, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.sortedItemsLocked(), nil
}

// Search matches a case-insensitive substring against name, brand, tags and
// colors. It reads only the projection.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, query string) ([]model.ClothingItem, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if q == "" {
		return uc.sortedItemsLocked(), nil
	}

	var out []model.ClothingItem
	for _, item := range uc.sortedItemsLocked() {
		if itemMatches(item, q) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Filter narrows items by typed criteria. Zero-valued fields match anything.
func (uc *implUseCase) Filter(ctx context.Context, sc model.Scope, criteria wardrobe.FilterCriteria) ([]model.ClothingItem, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	var out []model.ClothingItem
	for _, item := range uc.sortedItemsLocked() {
		if matchesCriteria(item, criteria) {
			out = append(out, item)
		}
	}
	return out, nil
}

func itemMatches(item model.ClothingItem, q string) bool {
	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Brand), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, color := range item.Colors {
		if strings.Contains(strings.ToLower(color), q) {
			return true
		}
	}
	return false
}

func matchesCriteria(item model.ClothingItem, c wardrobe.FilterCriteria) bool {
	if c.Category != "" && item.Category != c.Category {
		return false
	}
	if c.Season != "" && !hasSeason(item.Seasons, c.Season) {
		return false
	}
	if c.Occasion != "" && !hasOccasion(item.Occasions, c.Occasion) {
		return false
	}
	if c.Color != "" && !hasColor(item.Colors, c.Color) {
		return false
	}
	if c.Available != nil && item.Available != *c.Available {
		return false
	}
	return true
}

func hasSeason(seasons []model.Season, want model.Season) bool {
	for _, s := range seasons {
		if s == want {
			return true
		}
	}
	return false
}

func hasOccasion(occasions []model.Occasion, want model.Occasion) bool {
	for _, o := range occasions {
		if o == want {
			return true
		}
	}
	return false
}

func hasColor(colors []string, want string) bool {
	for _, c := range colors {
		if strings.EqualFold(c, want) {
			return true
		}
	}
	return false
}

// sortedItemsLocked returns items newest first. Callers hold at least the
// read lock.
func (uc *implUseCase) sortedItemsLocked() []model.ClothingItem {
	out := make([]model.ClothingItem, 0, len(uc.items))
	for _, item := range uc.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
