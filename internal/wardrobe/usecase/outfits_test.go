package usecase

import (
	"context"
	"errors"
	"testing"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

func TestCreateOutfit(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Items Copied By Value", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		top := addTestItem(t, uc, "Linen Shirt", model.CategoryTop, "Beige")
		bottom := addTestItem(t, uc, "Chinos", model.CategoryBottom, "Navy")

		outfit, err := uc.CreateOutfit(ctx, sc, wardrobe.CreateOutfitInput{
			Name:     "Summer Office",
			ItemIDs:  []string{top.ID, bottom.ID},
			Occasion: model.OccasionWork,
			Season:   model.SeasonSummer,
		})
		if err != nil {
			t.Fatalf("CreateOutfit: %v", err)
		}

		// Renaming the wardrobe item must not rewrite the composed outfit.
		if _, err := uc.UpdateItem(ctx, sc, wardrobe.UpdateItemInput{
			ID:        top.ID,
			Name:      "Old Shirt",
			Category:  model.CategoryTop,
			Colors:    []string{"Beige"},
			Available: true,
		}); err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}

		outfits, _ := uc.ListOutfits(ctx, sc)
		if len(outfits) != 1 {
			t.Fatalf("expected 1 outfit, got %d", len(outfits))
		}
		if outfits[0].Items[0].Name != "Linen Shirt" {
			t.Errorf("outfit item mutated by wardrobe edit: %q", outfits[0].Items[0].Name)
		}
		_ = outfit
	})

	t.Run("Unknown Item Rejected", func(t *testing.T) {
		gw := &mockGateway{}
		uc := New(&mockLogger{}, gw, allowAllGate())

		_, err := uc.CreateOutfit(ctx, sc, wardrobe.CreateOutfitInput{
			Name:    "Ghost Fit",
			ItemIDs: []string{"missing"},
		})
		var vErr *pkgErrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if gw.saveOutfitCalls != 0 {
			t.Errorf("validation failure must not reach the gateway")
		}
	})

	t.Run("Quota Denial", func(t *testing.T) {
		gate := allowAllGate()
		gate.maxOutfits = 0
		gw := &mockGateway{}
		uc := New(&mockLogger{}, gw, gate)
		shirt := addTestItem(t, uc, "Shirt", model.CategoryTop, "White")

		_, err := uc.CreateOutfit(ctx, sc, wardrobe.CreateOutfitInput{
			Name:    "Denied",
			ItemIDs: []string{shirt.ID},
		})
		var qErr *pkgErrors.QuotaExceededError
		if !errors.As(err, &qErr) {
			t.Fatalf("expected QuotaExceededError, got %v", err)
		}
		if gw.saveOutfitCalls != 0 {
			t.Errorf("quota denial must not reach the gateway")
		}
	})
}

func TestRateOutfit(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
	shirt := addTestItem(t, uc, "Shirt", model.CategoryTop, "White")
	outfit, err := uc.CreateOutfit(ctx, sc, wardrobe.CreateOutfitInput{Name: "Plain", ItemIDs: []string{shirt.ID}})
	if err != nil {
		t.Fatalf("CreateOutfit: %v", err)
	}

	t.Run("Valid Rating", func(t *testing.T) {
		rated, err := uc.RateOutfit(ctx, sc, wardrobe.RateOutfitInput{OutfitID: outfit.ID, Rating: 4})
		if err != nil {
			t.Fatalf("RateOutfit: %v", err)
		}
		if rated.Rating == nil || *rated.Rating != 4 {
			t.Errorf("rating not stored: %+v", rated.Rating)
		}
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := uc.RateOutfit(ctx, sc, wardrobe.RateOutfitInput{OutfitID: outfit.ID, Rating: 6})
		var vErr *pkgErrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})

	t.Run("Unknown Outfit", func(t *testing.T) {
		_, err := uc.RateOutfit(ctx, sc, wardrobe.RateOutfitInput{OutfitID: "missing", Rating: 3})
		if !errors.Is(err, wardrobe.ErrOutfitNotFound) {
			t.Errorf("expected ErrOutfitNotFound, got %v", err)
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
	addTestItem(t, uc, "Tee", model.CategoryTop, "White")
	addTestItem(t, uc, "Tank", model.CategoryTop, "White")
	jeans := addTestItem(t, uc, "Jeans", model.CategoryBottom, "Blue")
	if _, err := uc.CreateOutfit(ctx, sc, wardrobe.CreateOutfitInput{Name: "Basics", ItemIDs: []string{jeans.ID}}); err != nil {
		t.Fatalf("CreateOutfit: %v", err)
	}

	stats, err := uc.Stats(ctx, sc)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalItems != 3 || stats.TotalOutfits != 1 {
		t.Errorf("totals = %d items, %d outfits", stats.TotalItems, stats.TotalOutfits)
	}
	if stats.ItemsByCategory[model.CategoryTop] != 2 {
		t.Errorf("top count = %d, want 2", stats.ItemsByCategory[model.CategoryTop])
	}
	if stats.ItemsByColor["White"] != 2 {
		t.Errorf("white count = %d, want 2", stats.ItemsByColor["White"])
	}
	if len(stats.RecentItems) != 3 {
		t.Errorf("recent items = %d, want 3", len(stats.RecentItems))
	}
}

func TestExportAll(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Gated Feature", func(t *testing.T) {
		gate := allowAllGate()
		gate.denyFeatures = map[entitlement.Feature]bool{entitlement.FeatureExport: true}
		uc := New(&mockLogger{}, &mockGateway{}, gate)

		_, err := uc.ExportAll(ctx, sc)
		var qErr *pkgErrors.QuotaExceededError
		if !errors.As(err, &qErr) {
			t.Errorf("expected QuotaExceededError, got %v", err)
		}
	})

	t.Run("Returns Stored Snapshot", func(t *testing.T) {
		gw := &mockGateway{}
		gw.exportSnapshot.Items = []model.ClothingItem{{ID: "i1", Name: "Stored Tee"}}
		uc := New(&mockLogger{}, gw, allowAllGate())

		out, err := uc.ExportAll(ctx, sc)
		if err != nil {
			t.Fatalf("ExportAll: %v", err)
		}
		if len(out.Items) != 1 || out.Items[0].ID != "i1" {
			t.Errorf("unexpected export: %+v", out.Items)
		}
		if out.ExportedAt.IsZero() {
			t.Errorf("export timestamp missing")
		}
	})
}
