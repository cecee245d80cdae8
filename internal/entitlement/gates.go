package entitlement

import (
	"wardrobe-assistant/internal/model"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// FeatureEnabled answers "is feature X enabled for this tier". Pure lookup,
// no side effects.
func FeatureEnabled(tier model.Tier, feature Feature) bool {
	limits := LimitsFor(tier)
	switch feature {
	case FeatureAISuggestions:
		return limits.AISuggestions
	case FeatureWeather:
		return limits.Weather
	case FeatureVirtualTryOn:
		return limits.VirtualTryOn
	case FeatureExport:
		return limits.Export
	case FeaturePriority:
		return limits.Priority
	case FeatureCommunity:
		return limits.Community
	default:
		return false
	}
}

// CheckFeature returns a quota-denied error when the feature is not enabled
// for the tier.
func CheckFeature(tier model.Tier, feature Feature) error {
	if FeatureEnabled(tier, feature) {
		return nil
	}
	return &pkgErrors.QuotaExceededError{Limit: string(feature)}
}

// CanAdd answers "can collection Y grow past its current count" for the
// tier. The caller supplies the current count; Unlimited always passes.
func CanAdd(tier model.Tier, collection Collection, current int) error {
	limits := LimitsFor(tier)

	var max int
	switch collection {
	case CollectionAvatars:
		max = limits.MaxAvatars
	case CollectionClothing:
		max = limits.MaxClothingItems
	case CollectionOutfits:
		max = limits.MaxOutfits
	default:
		return pkgErrors.NewValidationError("collection", "unknown collection "+string(collection))
	}

	if max == Unlimited || current < max {
		return nil
	}
	return &pkgErrors.QuotaExceededError{Limit: string(collection), Max: max, Current: current}
}
