package usecase

import (
	"context"
	"time"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
)

// Tier returns the effective tier at this instant. Storage failures
// degrade to FREE rather than blocking the caller.
func (uc *implUseCase) Tier(ctx context.Context, sc model.Scope) model.Tier {
	sub, err := uc.loadSubscription(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "entitlement.usecase.Tier.loadSubscription: %v", err)
		return model.TierFree
	}

	return entitlement.EffectiveTier(sub, time.Now())
}

func (uc *implUseCase) RequireFeature(ctx context.Context, sc model.Scope, feature entitlement.Feature) error {
	tier := uc.Tier(ctx, sc)
	if err := entitlement.CheckFeature(tier, feature); err != nil {
		uc.l.Infof(ctx, "entitlement.usecase.RequireFeature: user %s denied %s on tier %s", sc.UserID, feature, tier)
		return err
	}

	return nil
}

func (uc *implUseCase) RequireCapacity(ctx context.Context, sc model.Scope, collection entitlement.Collection, current int) error {
	tier := uc.Tier(ctx, sc)
	if err := entitlement.CanAdd(tier, collection, current); err != nil {
		uc.l.Infof(ctx, "entitlement.usecase.RequireCapacity: user %s denied add to %s on tier %s (current %d)", sc.UserID, collection, tier, current)
		return err
	}

	return nil
}
