package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wardrobe-assistant/config"
	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/stylist"
	pkgErrors "wardrobe-assistant/pkg/errors"
	"wardrobe-assistant/pkg/renderprovider"
)

func newRenderUseCase(w *mockWardrobe, providers ...*mockRenderProvider) stylist.UseCase {
	return New(&mockLogger{}, &mockVision{}, nil, nil, config.WeatherConfig{}, testRegistry(providers...), w, &mockGate{})
}

func TestRenderTryOn(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	avatar := &model.AvatarProfile{
		ID:             "av-1",
		BodyType:       model.BodyTypeAthletic,
		BaseDescriptor: "a tall athletic woman with short dark hair and light-brown skin",
		Active:         true,
	}

	t.Run("Avatar Path Embeds Base Descriptor Verbatim", func(t *testing.T) {
		provider := &mockRenderProvider{name: "dalle"}
		w := &mockWardrobe{
			items:  []model.ClothingItem{testItem("i1", "Linen Shirt", model.CategoryTop, "White")},
			avatar: avatar,
		}
		uc := newRenderUseCase(w, provider)

		out, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{ItemIDs: []string{"i1"}, UseAvatar: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(provider.lastPrompt, avatar.BaseDescriptor) {
			t.Errorf("prompt must embed the base descriptor verbatim, got %q", provider.lastPrompt)
		}
		if !strings.Contains(provider.lastPrompt, "Linen Shirt") || !strings.Contains(provider.lastPrompt, "White") {
			t.Errorf("prompt must describe the garments, got %q", provider.lastPrompt)
		}
		if !strings.Contains(provider.lastPrompt, "Keep the person exactly as described") {
			t.Errorf("avatar path needs the consistency instructions, got %q", provider.lastPrompt)
		}
		if out.Confidence != 0.9 {
			t.Errorf("expected the avatar path confidence, got %v", out.Confidence)
		}
		if out.ImageURL == "" || out.Provider != "dalle" {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Generic Path Uses Body Type And Archetype", func(t *testing.T) {
		provider := &mockRenderProvider{name: "dalle"}
		w := &mockWardrobe{items: []model.ClothingItem{testItem("i1", "Linen Shirt", model.CategoryTop)}}
		uc := newRenderUseCase(w, provider)

		out, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{
			ItemIDs:        []string{"i1"},
			BodyType:       model.BodyTypeCurvy,
			ModelArchetype: "editorial",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(provider.lastPrompt, "editorial") || !strings.Contains(provider.lastPrompt, "curvy") {
			t.Errorf("prompt must describe the synthesized model, got %q", provider.lastPrompt)
		}
		if strings.Contains(provider.lastPrompt, "Keep the person exactly as described") {
			t.Error("generic path must not carry consistency instructions")
		}
		if out.Confidence != 0.75 {
			t.Errorf("expected the generic path confidence, got %v", out.Confidence)
		}
	})

	t.Run("Outfit Id Resolves Composed Items", func(t *testing.T) {
		provider := &mockRenderProvider{name: "dalle"}
		w := &mockWardrobe{
			outfits: []model.Outfit{{
				ID:   "o1",
				Name: "Weekend",
				Items: []model.ClothingItem{
					testItem("i1", "White Tee", model.CategoryTop),
					testItem("i2", "Jeans", model.CategoryBottom),
				},
			}},
		}
		uc := newRenderUseCase(w, provider)

		if _, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{OutfitID: "o1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(provider.lastPrompt, "White Tee") || !strings.Contains(provider.lastPrompt, "Jeans") {
			t.Errorf("prompt must list the outfit items, got %q", provider.lastPrompt)
		}
	})

	t.Run("Provider Failure Is A Hard Error Without Retry", func(t *testing.T) {
		primary := &mockRenderProvider{name: "dalle", renderFunc: func(ctx context.Context, req *renderprovider.Request) (*renderprovider.Response, error) {
			return nil, errors.New("billing hold")
		}}
		secondary := &mockRenderProvider{name: "stability"}
		w := &mockWardrobe{items: []model.ClothingItem{testItem("i1", "Linen Shirt", model.CategoryTop)}}
		uc := newRenderUseCase(w, primary, secondary)

		_, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{ItemIDs: []string{"i1"}})
		var provErr *pkgErrors.ProviderUnavailableError
		if !errors.As(err, &provErr) {
			t.Fatalf("expected a provider error, got %v", err)
		}
		if primary.renderCalls != 1 {
			t.Errorf("expected exactly 1 render attempt, got %d", primary.renderCalls)
		}
		if secondary.renderCalls != 0 {
			t.Errorf("secondary provider must never be tried automatically, got %d calls", secondary.renderCalls)
		}
	})

	t.Run("Explicit Secondary Provider Is A Fresh Invocation", func(t *testing.T) {
		primary := &mockRenderProvider{name: "dalle", renderFunc: func(ctx context.Context, req *renderprovider.Request) (*renderprovider.Response, error) {
			return nil, errors.New("billing hold")
		}}
		secondary := &mockRenderProvider{name: "stability"}
		w := &mockWardrobe{items: []model.ClothingItem{testItem("i1", "Linen Shirt", model.CategoryTop)}}
		uc := newRenderUseCase(w, primary, secondary)

		if _, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{ItemIDs: []string{"i1"}}); err == nil {
			t.Fatal("expected the primary to fail")
		}
		out, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{ItemIDs: []string{"i1"}, Provider: "stability"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Provider != "stability" {
			t.Errorf("expected the named provider, got %q", out.Provider)
		}
	})

	t.Run("Unknown Provider Rejected", func(t *testing.T) {
		w := &mockWardrobe{items: []model.ClothingItem{testItem("i1", "Linen Shirt", model.CategoryTop)}}
		uc := newRenderUseCase(w, &mockRenderProvider{name: "dalle"})

		_, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{ItemIDs: []string{"i1"}, Provider: "midjourney"})
		var valErr *pkgErrors.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})

	t.Run("Avatar Path Without Avatar Fails", func(t *testing.T) {
		provider := &mockRenderProvider{name: "dalle"}
		w := &mockWardrobe{items: []model.ClothingItem{testItem("i1", "Linen Shirt", model.CategoryTop)}}
		uc := newRenderUseCase(w, provider)

		if _, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{ItemIDs: []string{"i1"}, UseAvatar: true}); err == nil {
			t.Fatal("expected an error without an active avatar")
		}
		if provider.renderCalls != 0 {
			t.Errorf("render must not be attempted, got %d calls", provider.renderCalls)
		}
	})

	t.Run("Feature Gate Denial Blocks Render", func(t *testing.T) {
		provider := &mockRenderProvider{name: "dalle"}
		w := &mockWardrobe{items: []model.ClothingItem{testItem("i1", "Linen Shirt", model.CategoryTop)}}
		gate := &mockGate{denyFeatures: map[entitlement.Feature]bool{entitlement.FeatureVirtualTryOn: true}}
		uc := New(&mockLogger{}, &mockVision{}, nil, nil, config.WeatherConfig{}, testRegistry(provider), w, gate)

		_, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{ItemIDs: []string{"i1"}})
		var quotaErr *pkgErrors.QuotaExceededError
		if !errors.As(err, &quotaErr) {
			t.Fatalf("expected a quota denial, got %v", err)
		}
		if provider.renderCalls != 0 {
			t.Errorf("render must not be attempted, got %d calls", provider.renderCalls)
		}
	})

	t.Run("Invocation Tracks Completion", func(t *testing.T) {
		provider := &mockRenderProvider{name: "dalle"}
		w := &mockWardrobe{items: []model.ClothingItem{testItem("i1", "Linen Shirt", model.CategoryTop)}}
		uc := newRenderUseCase(w, provider)

		out, err := uc.RenderTryOn(ctx, sc, stylist.RenderInput{ItemIDs: []string{"i1"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		inv, err := uc.GetInvocation(ctx, sc, out.InvocationID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != stylist.StatusCompleted || inv.Percent != 100 {
			t.Errorf("expected a completed invocation at 100%%, got %+v", inv)
		}
	})

	t.Run("Unknown Invocation Not Found", func(t *testing.T) {
		uc := newRenderUseCase(&mockWardrobe{}, &mockRenderProvider{name: "dalle"})
		if _, err := uc.GetInvocation(ctx, sc, "missing"); !errors.Is(err, stylist.ErrInvocationNotFound) {
			t.Fatalf("expected ErrInvocationNotFound, got %v", err)
		}
	})
}
