package entitlement

import (
	"context"

	"wardrobe-assistant/internal/model"
)

// UseCase defines the business logic interface for the entitlement domain.
type UseCase interface {
	// Current returns the caller's subscription with expiry coercion applied.
	Current(ctx context.Context, sc model.Scope) (SubscriptionOutput, error)

	// Subscribe moves the implicit free subscription to a paid plan.
	Subscribe(ctx context.Context, sc model.Scope, input SubscribeInput) (SubscriptionOutput, error)

	// Cancel clears auto-renew now; the tier stays entitled until period end.
	Cancel(ctx context.Context, sc model.Scope) (SubscriptionOutput, error)

	// UpdatePlan switches an active subscription to a different paid plan.
	UpdatePlan(ctx context.Context, sc model.Scope, input UpdatePlanInput) (SubscriptionOutput, error)

	// Refresh reconciles local state against the payment processor.
	Refresh(ctx context.Context, sc model.Scope) (SubscriptionOutput, error)

	// PaymentSheet prepares a payment intent and ephemeral key so a client
	// can collect payment for a paid plan.
	PaymentSheet(ctx context.Context, sc model.Scope, input PaymentSheetInput) (PaymentSheetOutput, error)

	Gate
}

// Gate is the synchronous, side-effect-free entitlement checking surface
// consumed by the wardrobe store and the stylist pipeline.
type Gate interface {
	// Tier returns the caller's effective tier (expiry coercion applied).
	Tier(ctx context.Context, sc model.Scope) model.Tier

	// RequireFeature returns a quota-denied error when the feature is not
	// enabled for the caller's effective tier.
	RequireFeature(ctx context.Context, sc model.Scope, feature Feature) error

	// RequireCapacity returns a quota-denied error when the collection
	// cannot grow past the caller-supplied current count.
	RequireCapacity(ctx context.Context, sc model.Scope, collection Collection, current int) error
}
