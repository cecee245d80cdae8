package usecase

import (
	"context"
	"errors"
	"testing"

	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

func addTestItem(t *testing.T, uc *implUseCase, name string, category model.Category, colors ...string) model.ClothingItem {
	t.Helper()
	item, err := uc.AddItem(context.Background(), model.Scope{UserID: "u1"}, wardrobe.AddItemInput{
		Name:     name,
		Category: category,
		Colors:   colors,
	})
	if err != nil {
		t.Fatalf("AddItem(%s): %v", name, err)
	}
	return item
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Success", func(t *testing.T) {
		gw := &mockGateway{}
		uc := New(&mockLogger{}, gw, allowAllGate())

		item, err := uc.AddItem(ctx, sc, wardrobe.AddItemInput{
			Name:      "White Tee",
			Category:  model.CategoryTop,
			Colors:    []string{"White"},
			Seasons:   []model.Season{model.SeasonSummer},
			Occasions: []model.Occasion{model.OccasionCasual},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == "" {
			t.Errorf("expected generated id")
		}
		if !item.Available {
			t.Errorf("new items must start available")
		}
		if gw.saveItemCalls != 1 {
			t.Errorf("expected 1 gateway save, got %d", gw.saveItemCalls)
		}

		got, err := uc.GetItem(ctx, sc, item.ID)
		if err != nil {
			t.Fatalf("GetItem: %v", err)
		}
		if got.Name != "White Tee" {
			t.Errorf("projection holds %q, want %q", got.Name, "White Tee")
		}
	})

	t.Run("Validation Rejects Before IO", func(t *testing.T) {
		gw := &mockGateway{}
		uc := New(&mockLogger{}, gw, allowAllGate())

		_, err := uc.AddItem(ctx, sc, wardrobe.AddItemInput{Name: "No Colors", Category: model.CategoryTop})
		var vErr *pkgErrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if gw.saveItemCalls != 0 {
			t.Errorf("validation failure must not reach the gateway")
		}
	})

	t.Run("Quota Denial Leaves Projection Untouched", func(t *testing.T) {
		gw := &mockGateway{}
		gate := allowAllGate()
		gate.maxClothing = 2
		uc := New(&mockLogger{}, gw, gate)

		addTestItem(t, uc, "One", model.CategoryTop, "White")
		addTestItem(t, uc, "Two", model.CategoryBottom, "Blue")
		savesBefore := gw.saveItemCalls

		_, err := uc.AddItem(ctx, sc, wardrobe.AddItemInput{
			Name:     "Three",
			Category: model.CategoryShoes,
			Colors:   []string{"Black"},
		})
		var qErr *pkgErrors.QuotaExceededError
		if !errors.As(err, &qErr) {
			t.Fatalf("expected QuotaExceededError, got %v", err)
		}
		if qErr.Max != 2 || qErr.Current != 2 {
			t.Errorf("denial must report the limit hit: %+v", qErr)
		}
		if gw.saveItemCalls != savesBefore {
			t.Errorf("quota denial must not reach the gateway")
		}

		items, _ := uc.ListItems(ctx, sc)
		if len(items) != 2 {
			t.Errorf("projection changed on quota denial: %d items", len(items))
		}
	})

	t.Run("Persistence Failure Leaves Projection Untouched", func(t *testing.T) {
		gw := &mockGateway{saveItemFunc: func(item model.ClothingItem) error {
			return &pkgErrors.PersistenceError{Op: "save item", Err: errors.New("closet down")}
		}}
		uc := New(&mockLogger{}, gw, allowAllGate())

		_, err := uc.AddItem(ctx, sc, wardrobe.AddItemInput{
			Name:     "Lost Jacket",
			Category: model.CategoryOuterwear,
			Colors:   []string{"Green"},
		})
		var pErr *pkgErrors.PersistenceError
		if !errors.As(err, &pErr) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}

		items, _ := uc.ListItems(ctx, sc)
		if len(items) != 0 {
			t.Errorf("projection advanced despite persistence failure")
		}
	})
}

func TestAddSharedItem(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Provenance Attached", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())

		item, err := uc.AddSharedItem(ctx, sc, wardrobe.AddSharedItemInput{
			AddItemInput: wardrobe.AddItemInput{
				Name:     "Borrowed Scarf",
				Category: model.CategoryAccessories,
				Colors:   []string{"Red"},
			},
			OriginUserID: "friend-1",
			OriginItemID: "item-9",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.Shared() {
			t.Fatalf("expected shared item")
		}
		if item.Provenance.OriginUserID != "friend-1" || item.Provenance.OriginItemID != "item-9" {
			t.Errorf("provenance not carried: %+v", item.Provenance)
		}
	})

	t.Run("Missing Provenance Rejected", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())

		_, err := uc.AddSharedItem(ctx, sc, wardrobe.AddSharedItemInput{
			AddItemInput: wardrobe.AddItemInput{
				Name:     "Mystery Hat",
				Category: model.CategoryAccessories,
				Colors:   []string{"Gray"},
			},
		})
		var vErr *pkgErrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Replaces Mutable Fields Keeps Identity", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		item := addTestItem(t, uc, "Jeans", model.CategoryBottom, "Blue")

		updated, err := uc.UpdateItem(ctx, sc, wardrobe.UpdateItemInput{
			ID:        item.ID,
			Name:      "Ripped Jeans",
			Category:  model.CategoryBottom,
			Colors:    []string{"Light Blue"},
			Available: false,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != item.ID {
			t.Errorf("identity must be immutable")
		}
		if !updated.CreatedAt.Equal(item.CreatedAt) {
			t.Errorf("creation time must be immutable")
		}
		if updated.Name != "Ripped Jeans" || updated.Available {
			t.Errorf("mutable fields not replaced: %+v", updated)
		}
	})

	t.Run("Unknown Item", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		_, err := uc.UpdateItem(ctx, sc, wardrobe.UpdateItemInput{
			ID:       "missing",
			Name:     "Ghost",
			Category: model.CategoryTop,
			Colors:   []string{"White"},
		})
		if !errors.Is(err, wardrobe.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Removes Item And Its Association", func(t *testing.T) {
		gw := &mockGateway{}
		uc := New(&mockLogger{}, gw, allowAllGate())

		if _, err := uc.SaveAvatar(ctx, sc, wardrobe.SaveAvatarInput{
			BodyType:       model.BodyTypeAverage,
			BaseDescriptor: "an average build person",
		}); err != nil {
			t.Fatalf("SaveAvatar: %v", err)
		}
		item := addTestItem(t, uc, "Boots", model.CategoryShoes, "Brown")
		if _, err := uc.TryOnItem(ctx, sc, item.ID); err != nil {
			t.Fatalf("TryOnItem: %v", err)
		}

		if err := uc.RemoveItem(ctx, sc, item.ID); err != nil {
			t.Fatalf("RemoveItem: %v", err)
		}
		if gw.removeAssocCalls != 1 {
			t.Errorf("expected association removal, got %d calls", gw.removeAssocCalls)
		}
		if _, err := uc.GetItem(ctx, sc, item.ID); !errors.Is(err, wardrobe.ErrItemNotFound) {
			t.Errorf("item still present after removal")
		}
		assocs, _ := uc.ListAvatarClothing(ctx, sc)
		if len(assocs) != 0 {
			t.Errorf("association still present after item removal")
		}
	})

	t.Run("Unknown Item", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		if err := uc.RemoveItem(ctx, sc, "missing"); !errors.Is(err, wardrobe.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestSearchAndFilter(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
	addTestItem(t, uc, "Blue Jeans", model.CategoryBottom, "Blue")
	addTestItem(t, uc, "White Sneakers", model.CategoryShoes, "White")
	denim := addTestItem(t, uc, "Denim Jacket", model.CategoryOuterwear, "Blue")

	t.Run("Search By Name Substring", func(t *testing.T) {
		got, err := uc.Search(ctx, sc, "jean")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Blue Jeans" {
			t.Errorf("unexpected search result: %+v", got)
		}
	})

	t.Run("Search By Color", func(t *testing.T) {
		got, _ := uc.Search(ctx, sc, "blue")
		if len(got) != 2 {
			t.Errorf("expected 2 blue matches, got %d", len(got))
		}
	})

	t.Run("Filter By Category", func(t *testing.T) {
		got, err := uc.Filter(ctx, sc, wardrobe.FilterCriteria{Category: model.CategoryOuterwear})
		if err != nil {
			t.Fatalf("Filter: %v", err)
		}
		if len(got) != 1 || got[0].ID != denim.ID {
			t.Errorf("unexpected filter result: %+v", got)
		}
	})

	t.Run("Filter By Availability", func(t *testing.T) {
		unavailable := false
		got, _ := uc.Filter(ctx, sc, wardrobe.FilterCriteria{Available: &unavailable})
		if len(got) != 0 {
			t.Errorf("expected no unavailable items, got %d", len(got))
		}
	})
}
