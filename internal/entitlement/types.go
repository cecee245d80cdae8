package entitlement

import (
	"time"

	"wardrobe-assistant/internal/model"
)

// Unlimited is the sentinel for quantity limits without an upper bound.
const Unlimited = -1

// Feature identifies a boolean capability gated by tier.
type Feature string

const (
	FeatureAISuggestions Feature = "ai_suggestions"
	FeatureWeather       Feature = "weather_integration"
	FeatureVirtualTryOn  Feature = "virtual_try_on"
	FeatureExport        Feature = "wardrobe_export"
	FeaturePriority      Feature = "priority_support"
	FeatureCommunity     Feature = "community_features"
)

// Collection identifies a bounded collection gated by tier.
type Collection string

const (
	CollectionAvatars  Collection = "avatars"
	CollectionClothing Collection = "clothing_items"
	CollectionOutfits  Collection = "outfits"
)

// Limits is the per-tier capability and quantity table.
type Limits struct {
	MaxAvatars       int
	MaxClothingItems int
	MaxOutfits       int

	AISuggestions bool
	Weather       bool
	VirtualTryOn  bool
	Export        bool
	Priority      bool
	Community     bool
}

// Plan is a purchasable subscription plan.
type Plan struct {
	ID            string
	Name          string
	Tier          model.Tier
	PriceCents    int
	Interval      string // "month" or "year"
	TrialDays     int
	StripePriceID string
}

// Free reports whether the plan costs nothing.
func (p Plan) Free() bool {
	return p.Tier == model.TierFree
}

// SubscribeInput is the input for subscribing to a plan.
type SubscribeInput struct {
	PlanID string
	Email  string // used to create the billing customer on first subscribe
	Name   string
}

// UpdatePlanInput is the input for switching an active subscription's plan.
type UpdatePlanInput struct {
	PlanID string
}

// PaymentSheetInput is the input for preparing a client payment sheet.
type PaymentSheetInput struct {
	PlanID string
	Email  string // used to create the billing customer on first payment
	Name   string
}

// PaymentSheetOutput carries the client secrets a mobile payment sheet needs.
type PaymentSheetOutput struct {
	CustomerID          string
	EphemeralKey        string
	PaymentIntentID     string
	PaymentIntentSecret string
	AmountCents         int
	Currency            string
}

// SubscriptionOutput describes the caller's subscription state.
type SubscriptionOutput struct {
	Subscription  model.UserSubscription
	EffectiveTier model.Tier
	Limits        Limits
	ExpiresAt     *time.Time
}
