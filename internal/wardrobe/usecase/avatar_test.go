package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

func saveTestAvatar(t *testing.T, uc *implUseCase) model.AvatarProfile {
	t.Helper()
	avatar, err := uc.SaveAvatar(context.Background(), model.Scope{UserID: "u1"}, wardrobe.SaveAvatarInput{
		Gender:         "female",
		BodyType:       model.BodyTypeAthletic,
		SkinTone:       "medium",
		BaseDescriptor: "an athletic woman with medium skin tone and short dark hair",
	})
	if err != nil {
		t.Fatalf("SaveAvatar: %v", err)
	}
	return avatar
}

func TestSaveAvatar(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Create", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		avatar := saveTestAvatar(t, uc)
		if !avatar.Active {
			t.Errorf("saved avatar must be active")
		}

		got, err := uc.GetAvatar(ctx, sc)
		if err != nil {
			t.Fatalf("GetAvatar: %v", err)
		}
		if got.ID != avatar.ID {
			t.Errorf("projection holds a different avatar")
		}
	})

	t.Run("Quota Applies Only To Creation", func(t *testing.T) {
		gate := allowAllGate()
		gate.maxAvatars = 1
		uc := New(&mockLogger{}, &mockGateway{}, gate)

		saveTestAvatar(t, uc)
		// Replacement does not grow the collection, so the limit of one
		// avatar does not block it.
		if _, err := uc.SaveAvatar(ctx, sc, wardrobe.SaveAvatarInput{
			BodyType:       model.BodyTypeSlim,
			BaseDescriptor: "a slim person",
		}); err != nil {
			t.Errorf("replacement blocked by quota: %v", err)
		}
	})

	t.Run("Replacement Clears Associations", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		saveTestAvatar(t, uc)
		item := addTestItem(t, uc, "Coat", model.CategoryOuterwear, "Black")
		if _, err := uc.TryOnItem(ctx, sc, item.ID); err != nil {
			t.Fatalf("TryOnItem: %v", err)
		}

		saveTestAvatar(t, uc)
		assocs, _ := uc.ListAvatarClothing(ctx, sc)
		if len(assocs) != 0 {
			t.Errorf("associations survived avatar replacement: %d", len(assocs))
		}
	})

	t.Run("Replacement Removal Failure Leaves Projection Untouched", func(t *testing.T) {
		gateway := &mockGateway{}
		uc := New(&mockLogger{}, gateway, allowAllGate())
		before := saveTestAvatar(t, uc)
		coat := addTestItem(t, uc, "Coat", model.CategoryOuterwear, "Black")
		tee := addTestItem(t, uc, "Tee", model.CategoryTop, "White")
		if _, err := uc.TryOnItem(ctx, sc, coat.ID); err != nil {
			t.Fatalf("TryOnItem: %v", err)
		}
		if _, err := uc.TryOnItem(ctx, sc, tee.ID); err != nil {
			t.Fatalf("TryOnItem: %v", err)
		}

		removals := 0
		gateway.removeAssocFunc = func(itemID string) error {
			removals++
			if removals == 2 {
				return errors.New("closet down")
			}
			return nil
		}

		if _, err := uc.SaveAvatar(ctx, sc, wardrobe.SaveAvatarInput{
			BodyType:       model.BodyTypeSlim,
			BaseDescriptor: "a slim person",
		}); err == nil {
			t.Fatal("expected the removal failure to surface")
		}

		assocs, _ := uc.ListAvatarClothing(ctx, sc)
		if len(assocs) != 2 {
			t.Errorf("projection changed on persistence failure: expected 2 associations, got %d", len(assocs))
		}
		got, err := uc.GetAvatar(ctx, sc)
		if err != nil {
			t.Fatalf("GetAvatar: %v", err)
		}
		if got.ID != before.ID {
			t.Errorf("avatar replaced despite persistence failure")
		}
	})

	t.Run("Invalid Body Type", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		_, err := uc.SaveAvatar(ctx, sc, wardrobe.SaveAvatarInput{
			BodyType:       model.BodyType("robotic"),
			BaseDescriptor: "a robot",
		})
		var vErr *pkgErrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})
}

func TestTryOnItem(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Layer Order Follows Category Not Insertion Order", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		saveTestAvatar(t, uc)
		coat := addTestItem(t, uc, "Wool Coat", model.CategoryOuterwear, "Camel")
		tee := addTestItem(t, uc, "Plain Tee", model.CategoryTop, "White")

		coatOut, err := uc.TryOnItem(ctx, sc, coat.ID)
		if err != nil {
			t.Fatalf("TryOnItem(coat): %v", err)
		}
		teeOut, err := uc.TryOnItem(ctx, sc, tee.ID)
		if err != nil {
			t.Fatalf("TryOnItem(tee): %v", err)
		}

		if coatOut.Association.LayerOrder != 3 {
			t.Errorf("outerwear layer = %d, want 3", coatOut.Association.LayerOrder)
		}
		if teeOut.Association.LayerOrder != 2 {
			t.Errorf("top layer = %d, want 2", teeOut.Association.LayerOrder)
		}

		// ListAvatarClothing returns bottom of the stack first.
		assocs, _ := uc.ListAvatarClothing(ctx, sc)
		if len(assocs) != 2 || assocs[0].LayerOrder > assocs[1].LayerOrder {
			t.Errorf("associations not ordered by layer: %+v", assocs)
		}
	})

	t.Run("Composite Descriptor", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		avatar := saveTestAvatar(t, uc)
		boots := addTestItem(t, uc, "Leather Boots", model.CategoryShoes, "Brown")

		out, err := uc.TryOnItem(ctx, sc, boots.ID)
		if err != nil {
			t.Fatalf("TryOnItem: %v", err)
		}
		desc := out.Association.Descriptor
		if !strings.HasPrefix(desc, avatar.BaseDescriptor) {
			t.Errorf("descriptor must start with the base descriptor: %q", desc)
		}
		for _, want := range []string{"Leather Boots", "Brown", "feet"} {
			if !strings.Contains(desc, want) {
				t.Errorf("descriptor missing %q: %q", want, desc)
			}
		}
	})

	t.Run("Repeat Try-On Replaces Association", func(t *testing.T) {
		gw := &mockGateway{}
		uc := New(&mockLogger{}, gw, allowAllGate())
		saveTestAvatar(t, uc)
		hat := addTestItem(t, uc, "Cap", model.CategoryAccessories, "Navy")

		first, _ := uc.TryOnItem(ctx, sc, hat.ID)
		second, _ := uc.TryOnItem(ctx, sc, hat.ID)
		if first.Association.ID == second.Association.ID {
			t.Errorf("repeat try-on must produce a fresh association")
		}
		assocs, _ := uc.ListAvatarClothing(ctx, sc)
		if len(assocs) != 1 {
			t.Errorf("one association per (avatar, item) pair, got %d", len(assocs))
		}
	})

	t.Run("Feature Gate Denial", func(t *testing.T) {
		gw := &mockGateway{}
		gate := allowAllGate()
		gate.denyFeatures = map[entitlement.Feature]bool{entitlement.FeatureVirtualTryOn: true}
		uc := New(&mockLogger{}, gw, gate)
		saveTestAvatar(t, uc)
		shirt := addTestItem(t, uc, "Shirt", model.CategoryTop, "White")

		_, err := uc.TryOnItem(ctx, sc, shirt.ID)
		var qErr *pkgErrors.QuotaExceededError
		if !errors.As(err, &qErr) {
			t.Fatalf("expected QuotaExceededError, got %v", err)
		}
		if gw.saveAssocCalls != 0 {
			t.Errorf("gate denial must not reach the gateway")
		}
	})

	t.Run("No Active Avatar", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockGateway{}, allowAllGate())
		shirt := addTestItem(t, uc, "Shirt", model.CategoryTop, "White")

		_, err := uc.TryOnItem(ctx, sc, shirt.ID)
		if !errors.Is(err, wardrobe.ErrNoActiveAvatar) {
			t.Errorf("expected ErrNoActiveAvatar, got %v", err)
		}
	})
}

func TestRemoveFromAvatar(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Idempotent On Absent Association", func(t *testing.T) {
		gw := &mockGateway{}
		uc := New(&mockLogger{}, gw, allowAllGate())

		if err := uc.RemoveFromAvatar(ctx, sc, "never-tried-on"); err != nil {
			t.Fatalf("removal of absent association must succeed: %v", err)
		}
		if gw.removeAssocCalls != 0 {
			t.Errorf("absent removal must not call storage")
		}
	})

	t.Run("Removes Present Association", func(t *testing.T) {
		gw := &mockGateway{}
		uc := New(&mockLogger{}, gw, allowAllGate())
		saveTestAvatar(t, uc)
		scarf := addTestItem(t, uc, "Scarf", model.CategoryAccessories, "Red")
		if _, err := uc.TryOnItem(ctx, sc, scarf.ID); err != nil {
			t.Fatalf("TryOnItem: %v", err)
		}

		if err := uc.RemoveFromAvatar(ctx, sc, scarf.ID); err != nil {
			t.Fatalf("RemoveFromAvatar: %v", err)
		}
		if gw.removeAssocCalls != 1 {
			t.Errorf("expected one storage removal, got %d", gw.removeAssocCalls)
		}
		// Second removal is still a success.
		if err := uc.RemoveFromAvatar(ctx, sc, scarf.ID); err != nil {
			t.Errorf("second removal must succeed: %v", err)
		}
	})
}
