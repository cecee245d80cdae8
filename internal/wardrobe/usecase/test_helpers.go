package usecase

import (
	"context"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe/repository"
	pkgErrors "wardrobe-assistant/pkg/errors"
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

// mockGateway counts calls and lets individual operations be overridden.
type mockGateway struct {
	saveItemFunc    func(item model.ClothingItem) error
	saveOutfitFunc  func(outfit model.Outfit) error
	removeAssocFunc func(itemID string) error

	saveItemCalls    int
	deleteItemCalls  int
	saveOutfitCalls  int
	saveAvatarCalls  int
	saveAssocCalls   int
	removeAssocCalls int

	exportSnapshot repository.ExportSnapshot
}

func (m *mockGateway) GetItems(ctx context.Context) ([]model.ClothingItem, error) { return nil, nil }

func (m *mockGateway) SaveItem(ctx context.Context, item model.ClothingItem) error {
	m.saveItemCalls++
	if m.saveItemFunc != nil {
		return m.saveItemFunc(item)
	}
	return nil
}

func (m *mockGateway) DeleteItem(ctx context.Context, id string) error {
	m.deleteItemCalls++
	return nil
}

func (m *mockGateway) GetOutfits(ctx context.Context) ([]model.Outfit, error) { return nil, nil }

func (m *mockGateway) SaveOutfit(ctx context.Context, outfit model.Outfit) error {
	m.saveOutfitCalls++
	if m.saveOutfitFunc != nil {
		return m.saveOutfitFunc(outfit)
	}
	return nil
}

func (m *mockGateway) DeleteOutfit(ctx context.Context, id string) error { return nil }

func (m *mockGateway) GetAvatar(ctx context.Context) (*model.AvatarProfile, error) {
	return nil, nil
}

func (m *mockGateway) SaveAvatar(ctx context.Context, avatar model.AvatarProfile) error {
	m.saveAvatarCalls++
	return nil
}

func (m *mockGateway) GetAssociations(ctx context.Context) ([]model.ClothingOnAvatar, error) {
	return nil, nil
}

func (m *mockGateway) SaveAssociation(ctx context.Context, assoc model.ClothingOnAvatar) error {
	m.saveAssocCalls++
	return nil
}

func (m *mockGateway) RemoveAssociation(ctx context.Context, itemID string) error {
	m.removeAssocCalls++
	if m.removeAssocFunc != nil {
		return m.removeAssocFunc(itemID)
	}
	return nil
}

func (m *mockGateway) ExportAll(ctx context.Context) (repository.ExportSnapshot, error) {
	return m.exportSnapshot, nil
}

func (m *mockGateway) ClearAll(ctx context.Context) error { return nil }

// mockGate answers entitlement questions from fixed fields.
type mockGate struct {
	tier         model.Tier
	denyFeatures map[entitlement.Feature]bool
	maxClothing  int
	maxOutfits   int
	maxAvatars   int
}

func allowAllGate() *mockGate {
	return &mockGate{
		tier:        model.TierPro,
		maxClothing: entitlement.Unlimited,
		maxOutfits:  entitlement.Unlimited,
		maxAvatars:  entitlement.Unlimited,
	}
}

func (m *mockGate) Tier(ctx context.Context, sc model.Scope) model.Tier {
	return m.tier
}

func (m *mockGate) RequireFeature(ctx context.Context, sc model.Scope, feature entitlement.Feature) error {
	if m.denyFeatures[feature] {
		return &pkgErrors.QuotaExceededError{Limit: string(feature)}
	}
	return nil
}

func (m *mockGate) RequireCapacity(ctx context.Context, sc model.Scope, collection entitlement.Collection, current int) error {
	var max int
	switch collection {
	case entitlement.CollectionClothing:
		max = m.maxClothing
	case entitlement.CollectionOutfits:
		max = m.maxOutfits
	case entitlement.CollectionAvatars:
		max = m.maxAvatars
	}
	if max == entitlement.Unlimited || current < max {
		return nil
	}
	return &pkgErrors.QuotaExceededError{Limit: string(collection), Max: max, Current: current}
}
