package usecase

import (
	"context"
	"time"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
)

const recentItemsLimit = 5

// Stats returns the derived wardrobe statistics from the projection.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (model.WardrobeStats, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.stats, nil
}

// ExportAll returns the full durable wardrobe snapshot. Export is a gated
// feature; the snapshot is read from storage, not the projection, so the
// caller gets exactly what survives a restart.
func (uc *implUseCase) ExportAll(ctx context.Context, sc model.Scope) (wardrobe.ExportOutput, error) {
	if err := uc.gate.RequireFeature(ctx, sc, entitlement.FeatureExport); err != nil {
		return wardrobe.ExportOutput{}, err
	}

	snapshot, err := uc.gateway.ExportAll(ctx)
	if err != nil {
		return wardrobe.ExportOutput{}, err
	}

	uc.l.Infof(ctx, "ExportAll: user=%s items=%d outfits=%d", sc.UserID, len(snapshot.Items), len(snapshot.Outfits))
	return wardrobe.ExportOutput{
		Items:        snapshot.Items,
		Outfits:      snapshot.Outfits,
		Avatar:       snapshot.Avatar,
		Associations: snapshot.Associations,
		ExportedAt:   time.Now(),
	}, nil
}

// recomputeStatsLocked rebuilds the derived stats. Callers hold the write
// lock.
func (uc *implUseCase) recomputeStatsLocked() {
	stats := model.WardrobeStats{
		TotalItems:      len(uc.items),
		TotalOutfits:    len(uc.outfits),
		ItemsByCategory: make(map[model.Category]int),
		ItemsByColor:    make(map[string]int),
	}

	for _, item := range uc.items {
		stats.ItemsByCategory[item.Category]++
		for _, color := range item.Colors {
			stats.ItemsByColor[color]++
		}
	}

	recent := uc.sortedItemsLocked()
	if len(recent) > recentItemsLimit {
		recent = recent[:recentItemsLimit]
	}
	stats.RecentItems = recent

	uc.stats = stats
}
