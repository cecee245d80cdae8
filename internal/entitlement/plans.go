package entitlement

import (
	"time"

	"wardrobe-assistant/internal/model"
)

// tierLimits is the fixed capability/limit table. Quantity limits use
// Unlimited (-1) for "no cap".
var tierLimits = map[model.Tier]Limits{
	model.TierFree: {
		MaxAvatars:       1,
		MaxClothingItems: 20,
		MaxOutfits:       5,
	},
	model.TierPremium: {
		MaxAvatars:       3,
		MaxClothingItems: 200,
		MaxOutfits:       50,
		AISuggestions:    true,
		Weather:          true,
		VirtualTryOn:     true,
		Export:           true,
	},
	model.TierPro: {
		MaxAvatars:       Unlimited,
		MaxClothingItems: Unlimited,
		MaxOutfits:       Unlimited,
		AISuggestions:    true,
		Weather:          true,
		VirtualTryOn:     true,
		Export:           true,
		Priority:         true,
		Community:        true,
	},
}

// plans is the purchasable plan catalog.
var plans = map[string]Plan{
	"free": {
		ID:   "free",
		Name: "Free",
		Tier: model.TierFree,
	},
	"premium_monthly": {
		ID:            "premium_monthly",
		Name:          "Premium Monthly",
		Tier:          model.TierPremium,
		PriceCents:    499,
		Interval:      "month",
		TrialDays:     7,
		StripePriceID: "price_premium_monthly",
	},
	"premium_yearly": {
		ID:            "premium_yearly",
		Name:          "Premium Yearly",
		Tier:          model.TierPremium,
		PriceCents:    4999,
		Interval:      "year",
		TrialDays:     7,
		StripePriceID: "price_premium_yearly",
	},
	"pro_monthly": {
		ID:            "pro_monthly",
		Name:          "Pro Monthly",
		Tier:          model.TierPro,
		PriceCents:    999,
		Interval:      "month",
		StripePriceID: "price_pro_monthly",
	},
}

// LimitsFor returns the capability table for a tier. Unknown tiers get the
// FREE table.
func LimitsFor(tier model.Tier) Limits {
	if limits, ok := tierLimits[tier]; ok {
		return limits
	}
	return tierLimits[model.TierFree]
}

// PlanByID looks up a plan in the catalog.
func PlanByID(id string) (Plan, bool) {
	p, ok := plans[id]
	return p, ok
}

// Plans returns the full plan catalog.
func Plans() []Plan {
	out := make([]Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, p)
	}
	return out
}

// EffectiveTier derives the tier a subscription actually grants at the given
// time. A nil subscription is the implicit free subscription. Expiry coercion
// applies on every read path, regardless of the stored status or tier.
func EffectiveTier(sub *model.UserSubscription, now time.Time) model.Tier {
	if sub == nil {
		return model.TierFree
	}
	if !sub.Entitled(now) {
		return model.TierFree
	}
	return sub.Tier
}
