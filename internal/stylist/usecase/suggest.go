package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/stylist"
	"wardrobe-assistant/internal/wardrobe"
	pkgErrors "wardrobe-assistant/pkg/errors"
	"wardrobe-assistant/pkg/vision"
)

const fallbackSuggestionConfidence = 0.5

// occasionCategoryOrder is the fixed category walk used by the fallback
// heuristic, one list per occasion.
var occasionCategoryOrder = map[model.Occasion][]model.Category{
	model.OccasionCasual: {model.CategoryTop, model.CategoryBottom, model.CategoryShoes},
	model.OccasionParty:  {model.CategoryDress, model.CategoryTop, model.CategoryBottom, model.CategoryShoes},
	model.OccasionFormal: {model.CategoryDress, model.CategoryTop, model.CategoryBottom, model.CategoryOuterwear, model.CategoryShoes},
	model.OccasionWork:   {model.CategoryTop, model.CategoryBottom, model.CategoryShoes, model.CategoryAccessories},
	model.OccasionSport:  {model.CategoryTop, model.CategoryBottom, model.CategoryShoes},
	model.OccasionTravel: {model.CategoryTop, model.CategoryBottom, model.CategoryOuterwear, model.CategoryShoes},
}

// SuggestOutfit runs Stage C (outfit synthesis). The returned item set is
// always a subset of the caller's available inventory: provider ids are
// validated against it, unknown ids dropped, short selections topped up, and
// an empty selection replaced by the category-coverage fallback.
func (uc *implUseCase) SuggestOutfit(ctx context.Context, sc model.Scope, input stylist.SuggestInput) (stylist.SuggestOutput, error) {
	if !input.Occasion.Valid() {
		return stylist.SuggestOutput{}, pkgErrors.NewValidationError("occasion", fmt.Sprintf("unknown occasion %q", input.Occasion))
	}
	if err := uc.gate.RequireFeature(ctx, sc, entitlement.FeatureAISuggestions); err != nil {
		return stylist.SuggestOutput{}, err
	}

	available := true
	inventory, err := uc.wardrobe.Filter(ctx, sc, wardrobe.FilterCriteria{Available: &available})
	if err != nil {
		uc.l.Errorf(ctx, "stylist.usecase.SuggestOutfit.Filter: %v", err)
		return stylist.SuggestOutput{}, err
	}
	if len(inventory) < 2 {
		return stylist.SuggestOutput{}, stylist.ErrNotEnoughItems
	}

	weatherEnabled := uc.weatherContextEnabled(ctx, sc)
	totalSteps := 2
	if weatherEnabled {
		totalSteps = 3
	}
	inv := uc.begin("suggest", totalSteps)
	out := stylist.SuggestOutput{InvocationID: inv.id}

	weatherSummary := ""
	if weatherEnabled {
		inv.enter("weather lookup")
		conditions, wErr := uc.weather.Current(ctx, uc.weatherCfg.Latitude, uc.weatherCfg.Longitude)
		if wErr != nil {
			uc.l.Warnf(ctx, "stylist.usecase.SuggestOutfit.weather: %v", wErr)
			inv.complete("weather unavailable, styled without it")
		} else {
			weatherSummary = conditions.Summary()
			inv.complete("weather considered: " + weatherSummary)
		}
	}

	byID := make(map[string]model.ClothingItem, len(inventory))
	for _, item := range inventory {
		byID[item.ID] = item
	}

	inv.enter("outfit synthesis")
	raw, err := uc.vision.SuggestOutfit(ctx, &vision.SuggestRequest{
		Occasion:       string(input.Occasion),
		InventoryLines: inventoryLines(inventory),
		Preferences:    input.Preferences,
		Weather:        weatherSummary,
	})

	var picked []model.ClothingItem
	switch {
	case err != nil:
		uc.l.Warnf(ctx, "stylist.usecase.SuggestOutfit.SuggestOutfit: %v", err)
	default:
		var parsed vision.ParsedSuggestion
		if jsonErr := json.Unmarshal([]byte(sanitizeJSONReply(raw)), &parsed); jsonErr != nil {
			uc.l.Warnf(ctx, "stylist.usecase.SuggestOutfit.parse: %v", jsonErr)
			break
		}
		for _, id := range parsed.ItemIDs {
			if item, ok := byID[id]; ok && !containsItem(picked, id) {
				picked = append(picked, item)
			}
		}
		if len(picked) > 0 {
			picked = topUp(picked, inventory)
			out.Reasoning = parsed.Reasoning
			out.Confidence = parsed.Confidence
			out.Alternatives = filterAlternatives(parsed.Alternatives, byID)
		}
	}

	if len(picked) == 0 {
		picked = coverageFallback(input.Occasion, inventory)
		out.Reasoning = fmt.Sprintf("Basic %s outfit assembled from your available wardrobe. Manual review recommended.", input.Occasion)
		out.Confidence = fallbackSuggestionConfidence
		out.Fallback = true
		inv.complete("stylist unavailable, assembled a basic outfit")
	} else {
		inv.complete("outfit composed")
	}

	out.Items = picked
	inv.enter("selection check")
	inv.complete(fmt.Sprintf("selected %d items", len(picked)))

	inv.finish()
	out.StepLog = inv.snapshot().StepLog
	uc.l.Infof(ctx, "SuggestOutfit: user=%s occasion=%s items=%d fallback=%t",
		sc.UserID, input.Occasion, len(out.Items), out.Fallback)
	return out, nil
}

// weatherContextEnabled reports whether the weather integration applies to
// this call. Denials and missing configuration downgrade silently.
func (uc *implUseCase) weatherContextEnabled(ctx context.Context, sc model.Scope) bool {
	if uc.weather == nil || !uc.weatherCfg.Enabled {
		return false
	}
	return uc.gate.RequireFeature(ctx, sc, entitlement.FeatureWeather) == nil
}

// inventoryLines formats one prompt line per available item.
func inventoryLines(items []model.ClothingItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("id=%s | %s | %s | colors: %s | occasions: %s",
			item.ID, item.Name, item.Category,
			strings.Join(item.Colors, ", "), joinOccasions(item.Occasions)))
	}
	return lines
}

// topUp extends a short selection to the minimum viable outfit size with
// arbitrary available items not already chosen.
func topUp(picked []model.ClothingItem, inventory []model.ClothingItem) []model.ClothingItem {
	for _, item := range inventory {
		if len(picked) >= 2 {
			break
		}
		if !containsItem(picked, item.ID) {
			picked = append(picked, item)
		}
	}
	return picked
}

// coverageFallback walks the fixed category list for the occasion and picks
// one available item per category. Deterministic given the same inventory.
func coverageFallback(occasion model.Occasion, inventory []model.ClothingItem) []model.ClothingItem {
	order, ok := occasionCategoryOrder[occasion]
	if !ok {
		order = []model.Category{model.CategoryTop, model.CategoryBottom, model.CategoryShoes}
	}

	var picked []model.ClothingItem
	for _, category := range order {
		for _, item := range inventory {
			if item.Category == category && !containsItem(picked, item.ID) {
				picked = append(picked, item)
				break
			}
		}
	}
	return topUp(picked, inventory)
}

func filterAlternatives(groups [][]string, byID map[string]model.ClothingItem) [][]string {
	var out [][]string
	for _, group := range groups {
		var kept []string
		for _, id := range group {
			if _, ok := byID[id]; ok {
				kept = append(kept, id)
			}
		}
		if len(kept) >= 2 {
			out = append(out, kept)
		}
	}
	return out
}

func containsItem(items []model.ClothingItem, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func joinOccasions(occasions []model.Occasion) string {
	parts := make([]string, len(occasions))
	for i, o := range occasions {
		parts[i] = string(o)
	}
	return strings.Join(parts, ", ")
}
