package usecase

import (
	"context"
	"fmt"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
	"wardrobe-assistant/pkg/bgremoval"
	pkgErrors "wardrobe-assistant/pkg/errors"
	"wardrobe-assistant/pkg/renderprovider"
	"wardrobe-assistant/pkg/vision"
	"wardrobe-assistant/pkg/weather"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockVision scripts the raw replies of the vision provider.
type mockVision struct {
	analyzeFunc  func(ctx context.Context, req *vision.AnalyzeRequest) (string, error)
	suggestFunc  func(ctx context.Context, req *vision.SuggestRequest) (string, error)
	analyzeCalls int
	suggestCalls int
	lastSuggest  *vision.SuggestRequest
}

func (m *mockVision) AnalyzeImage(ctx context.Context, req *vision.AnalyzeRequest) (string, error) {
	m.analyzeCalls++
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, req)
	}
	return "{}", nil
}

func (m *mockVision) SuggestOutfit(ctx context.Context, req *vision.SuggestRequest) (string, error) {
	m.suggestCalls++
	m.lastSuggest = req
	if m.suggestFunc != nil {
		return m.suggestFunc(ctx, req)
	}
	return "{}", nil
}

func (m *mockVision) Model() string { return "mock-vision" }

// mockBgRemoval scripts the background removal provider.
type mockBgRemoval struct {
	removeFunc  func(ctx context.Context, req bgremoval.Request) (string, error)
	removeCalls int
}

func (m *mockBgRemoval) RemoveBackground(ctx context.Context, req bgremoval.Request) (string, error) {
	m.removeCalls++
	if m.removeFunc != nil {
		return m.removeFunc(ctx, req)
	}
	return "https://img.example/cutout.png", nil
}

// mockWeather scripts the current-conditions provider.
type mockWeather struct {
	currentFunc  func(ctx context.Context, lat, lon float64) (*weather.Conditions, error)
	currentCalls int
}

func (m *mockWeather) Current(ctx context.Context, lat, lon float64) (*weather.Conditions, error) {
	m.currentCalls++
	if m.currentFunc != nil {
		return m.currentFunc(ctx, lat, lon)
	}
	return &weather.Conditions{TemperatureC: 18}, nil
}

// mockRenderProvider scripts one render provider inside a registry.
type mockRenderProvider struct {
	name        string
	renderFunc  func(ctx context.Context, req *renderprovider.Request) (*renderprovider.Response, error)
	renderCalls int
	lastPrompt  string
}

func (m *mockRenderProvider) Render(ctx context.Context, req *renderprovider.Request) (*renderprovider.Response, error) {
	m.renderCalls++
	m.lastPrompt = req.Prompt
	if m.renderFunc != nil {
		return m.renderFunc(ctx, req)
	}
	return &renderprovider.Response{
		ImageURL:     "https://img.example/render.png",
		ProviderName: m.name,
		ModelName:    "mock-model",
	}, nil
}

func (m *mockRenderProvider) Name() string  { return m.name }
func (m *mockRenderProvider) Model() string { return "mock-model" }

// mockGate answers entitlement questions from fixed tables.
type mockGate struct {
	tier         model.Tier
	denyFeatures map[entitlement.Feature]bool
}

func (m *mockGate) Tier(ctx context.Context, sc model.Scope) model.Tier {
	if m.tier == "" {
		return model.TierPro
	}
	return m.tier
}

func (m *mockGate) RequireFeature(ctx context.Context, sc model.Scope, feature entitlement.Feature) error {
	if m.denyFeatures[feature] {
		return &pkgErrors.QuotaExceededError{Limit: string(feature)}
	}
	return nil
}

func (m *mockGate) RequireCapacity(ctx context.Context, sc model.Scope, collection entitlement.Collection, current int) error {
	return nil
}

// mockWardrobe fakes the slice of the wardrobe interface the pipeline reads.
type mockWardrobe struct {
	wardrobe.UseCase

	items   []model.ClothingItem
	outfits []model.Outfit
	avatar  *model.AvatarProfile
}

func (m *mockWardrobe) Filter(ctx context.Context, sc model.Scope, criteria wardrobe.FilterCriteria) ([]model.ClothingItem, error) {
	var out []model.ClothingItem
	for _, item := range m.items {
		if criteria.Available != nil && item.Available != *criteria.Available {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *mockWardrobe) GetItem(ctx context.Context, sc model.Scope, id string) (model.ClothingItem, error) {
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return model.ClothingItem{}, wardrobe.ErrItemNotFound
}

func (m *mockWardrobe) ListOutfits(ctx context.Context, sc model.Scope) ([]model.Outfit, error) {
	return m.outfits, nil
}

func (m *mockWardrobe) GetAvatar(ctx context.Context, sc model.Scope) (model.AvatarProfile, error) {
	if m.avatar == nil {
		return model.AvatarProfile{}, wardrobe.ErrNoActiveAvatar
	}
	return *m.avatar, nil
}

func testItem(id, name string, category model.Category, colors ...string) model.ClothingItem {
	if len(colors) == 0 {
		colors = []string{"Black"}
	}
	return model.ClothingItem{
		ID:        id,
		Name:      name,
		Category:  category,
		Colors:    colors,
		Seasons:   []model.Season{model.SeasonSummer},
		Occasions: []model.Occasion{model.OccasionCasual},
		Available: true,
	}
}

func testRegistry(providers ...*mockRenderProvider) *renderprovider.Registry {
	ps := make([]renderprovider.Provider, len(providers))
	for i, p := range providers {
		ps[i] = p
	}
	registry, err := renderprovider.NewRegistry(ps)
	if err != nil {
		panic(fmt.Sprintf("test registry: %v", err))
	}
	return registry
}
