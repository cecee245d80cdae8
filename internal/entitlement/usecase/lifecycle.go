package usecase

import (
	"context"
	"fmt"
	"time"

	"wardrobe-assistant/internal/billing"
	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	pkgErrors "wardrobe-assistant/pkg/errors"

	"github.com/google/uuid"
)

// cachedSubscription distinguishes "not loaded yet" from "loaded, none stored".
type cachedSubscription struct {
	sub *model.UserSubscription
}

// loadSubscription returns the local replica, reading through to the
// repository on first use. A nil subscription is the implicit free
// subscription that never expires.
func (uc *implUseCase) loadSubscription(ctx context.Context) (*model.UserSubscription, error) {
	uc.mu.RLock()
	cached := uc.cached
	uc.mu.RUnlock()
	if cached != nil {
		return cached.sub, nil
	}

	sub, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	uc.mu.Lock()
	uc.cached = &cachedSubscription{sub: sub}
	uc.mu.Unlock()
	return sub, nil
}

// commit persists the subscription, then updates the replica. The replica is
// never advanced when the write fails.
func (uc *implUseCase) commit(ctx context.Context, sub model.UserSubscription) error {
	if err := uc.repo.Save(ctx, sub); err != nil {
		return err
	}
	uc.mu.Lock()
	uc.cached = &cachedSubscription{sub: &sub}
	uc.mu.Unlock()
	return nil
}

func (uc *implUseCase) output(sub *model.UserSubscription) entitlement.SubscriptionOutput {
	now := time.Now()
	tier := entitlement.EffectiveTier(sub, now)

	out := entitlement.SubscriptionOutput{
		EffectiveTier: tier,
		Limits:        entitlement.LimitsFor(tier),
	}
	if sub != nil {
		out.Subscription = *sub
		out.ExpiresAt = sub.EndDate
	} else {
		out.Subscription = model.UserSubscription{
			PlanID: "free",
			Tier:   model.TierFree,
			Status: model.StatusActive,
		}
	}
	return out
}

// Current returns the caller's subscription with expiry coercion applied.
func (uc *implUseCase) Current(ctx context.Context, sc model.Scope) (entitlement.SubscriptionOutput, error) {
	sub, err := uc.loadSubscription(ctx)
	if err != nil {
		return entitlement.SubscriptionOutput{}, err
	}
	return uc.output(sub), nil
}

// Subscribe moves the implicit free subscription to a paid plan.
func (uc *implUseCase) Subscribe(ctx context.Context, sc model.Scope, input entitlement.SubscribeInput) (entitlement.SubscriptionOutput, error) {
	plan, ok := entitlement.PlanByID(input.PlanID)
	if !ok {
		return entitlement.SubscriptionOutput{}, pkgErrors.NewValidationError("plan_id", entitlement.ErrPlanNotFound.Error())
	}

	// Subscribing to the free plan is a no-op.
	if plan.Free() {
		sub, err := uc.loadSubscription(ctx)
		if err != nil {
			return entitlement.SubscriptionOutput{}, err
		}
		return uc.output(sub), nil
	}

	existing, err := uc.loadSubscription(ctx)
	if err != nil {
		return entitlement.SubscriptionOutput{}, err
	}
	if entitlement.EffectiveTier(existing, time.Now()) != model.TierFree {
		return entitlement.SubscriptionOutput{}, entitlement.ErrAlreadySubscribed
	}

	// Reuse the billing customer from a previous subscription when present.
	customerID := ""
	if existing != nil {
		customerID = existing.StripeCustomerID
	}
	if customerID == "" {
		customerID, err = uc.billing.CreateCustomer(ctx, input.Email, input.Name)
		if err != nil {
			return entitlement.SubscriptionOutput{}, err
		}
	}

	provSub, err := uc.billing.CreateSubscription(ctx, billing.CreateSubscriptionOptions{
		CustomerID: customerID,
		PriceID:    plan.StripePriceID,
		TrialDays:  plan.TrialDays,
	})
	if err != nil {
		return entitlement.SubscriptionOutput{}, err
	}

	now := time.Now()
	endDate := provSub.CurrentPeriodEnd
	sub := model.UserSubscription{
		ID:                   uuid.NewString(),
		PlanID:               plan.ID,
		Tier:                 plan.Tier,
		Status:               statusFromProvider(provSub.Status),
		StartDate:            now,
		EndDate:              &endDate,
		AutoRenew:            true,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: provSub.ID,
	}

	if err := uc.commit(ctx, sub); err != nil {
		return entitlement.SubscriptionOutput{}, err
	}

	uc.l.Infof(ctx, "Subscribe: user=%s plan=%s status=%s", sc.UserID, plan.ID, sub.Status)
	return uc.output(&sub), nil
}

// Cancel clears auto-renew immediately; the tier stays entitled until the
// current period end.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope) (entitlement.SubscriptionOutput, error) {
	sub, err := uc.loadSubscription(ctx)
	if err != nil {
		return entitlement.SubscriptionOutput{}, err
	}
	if sub == nil || sub.StripeSubscriptionID == "" {
		return entitlement.SubscriptionOutput{}, entitlement.ErrNoPaidPlan
	}

	if _, err := uc.billing.CancelSubscription(ctx, sub.StripeSubscriptionID); err != nil {
		return entitlement.SubscriptionOutput{}, err
	}

	updated := *sub
	updated.Status = model.StatusCancelled
	updated.AutoRenew = false

	if err := uc.commit(ctx, updated); err != nil {
		return entitlement.SubscriptionOutput{}, err
	}

	uc.l.Infof(ctx, "Cancel: user=%s effective at period end", sc.UserID)
	return uc.output(&updated), nil
}

// UpdatePlan switches an active subscription to a different paid plan.
func (uc *implUseCase) UpdatePlan(ctx context.Context, sc model.Scope, input entitlement.UpdatePlanInput) (entitlement.SubscriptionOutput, error) {
	plan, ok := entitlement.PlanByID(input.PlanID)
	if !ok {
		return entitlement.SubscriptionOutput{}, pkgErrors.NewValidationError("plan_id", entitlement.ErrPlanNotFound.Error())
	}
	if plan.Free() {
		return entitlement.SubscriptionOutput{}, pkgErrors.NewValidationError("plan_id", "use cancel to move back to the free plan")
	}

	sub, err := uc.loadSubscription(ctx)
	if err != nil {
		return entitlement.SubscriptionOutput{}, err
	}
	if sub == nil || sub.StripeSubscriptionID == "" || !sub.Entitled(time.Now()) {
		return entitlement.SubscriptionOutput{}, entitlement.ErrNoPaidPlan
	}

	provSub, err := uc.billing.UpdateSubscription(ctx, sub.StripeSubscriptionID, plan.StripePriceID)
	if err != nil {
		return entitlement.SubscriptionOutput{}, err
	}

	updated := *sub
	updated.PlanID = plan.ID
	updated.Tier = plan.Tier
	updated.Status = statusFromProvider(provSub.Status)
	endDate := provSub.CurrentPeriodEnd
	updated.EndDate = &endDate

	if err := uc.commit(ctx, updated); err != nil {
		return entitlement.SubscriptionOutput{}, err
	}

	uc.l.Infof(ctx, "UpdatePlan: user=%s plan=%s", sc.UserID, plan.ID)
	return uc.output(&updated), nil
}

// Refresh reconciles the local replica against the payment processor.
func (uc *implUseCase) Refresh(ctx context.Context, sc model.Scope) (entitlement.SubscriptionOutput, error) {
	sub, err := uc.loadSubscription(ctx)
	if err != nil {
		return entitlement.SubscriptionOutput{}, err
	}
	if sub == nil || sub.StripeSubscriptionID == "" {
		return uc.output(sub), nil
	}

	provSub, err := uc.billing.GetSubscription(ctx, sub.StripeSubscriptionID)
	if err != nil {
		return entitlement.SubscriptionOutput{}, err
	}

	updated := *sub
	updated.Status = statusFromProvider(provSub.Status)
	if provSub.CancelAtPeriodEnd {
		updated.Status = model.StatusCancelled
		updated.AutoRenew = false
	}
	if !provSub.CurrentPeriodEnd.IsZero() {
		endDate := provSub.CurrentPeriodEnd
		updated.EndDate = &endDate
	}

	if err := uc.commit(ctx, updated); err != nil {
		return entitlement.SubscriptionOutput{}, err
	}

	uc.l.Infof(ctx, "Refresh: user=%s status=%s", sc.UserID, updated.Status)
	return uc.output(&updated), nil
}

// statusFromProvider maps provider status strings onto the local lifecycle.
func statusFromProvider(status string) model.SubscriptionStatus {
	switch status {
	case "trialing":
		return model.StatusTrialing
	case "active":
		return model.StatusActive
	case "past_due":
		return model.StatusPastDue
	case "canceled", "cancelled":
		return model.StatusCancelled
	case "incomplete_expired", "unpaid":
		return model.StatusExpired
	default:
		return model.StatusInactive
	}
}
