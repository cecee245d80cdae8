package usecase

import (
	"context"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

const paymentCurrency = "usd"

// PaymentSheet prepares a payment intent for the plan price and an ephemeral
// key scoped to the billing customer. The customer from a previous
// subscription is reused when present.
func (uc *implUseCase) PaymentSheet(ctx context.Context, sc model.Scope, input entitlement.PaymentSheetInput) (entitlement.PaymentSheetOutput, error) {
	plan, ok := entitlement.PlanByID(input.PlanID)
	if !ok {
		return entitlement.PaymentSheetOutput{}, pkgErrors.NewValidationError("plan_id", entitlement.ErrPlanNotFound.Error())
	}
	if plan.Free() {
		return entitlement.PaymentSheetOutput{}, pkgErrors.NewValidationError("plan_id", "the free plan requires no payment")
	}

	sub, err := uc.loadSubscription(ctx)
	if err != nil {
		return entitlement.PaymentSheetOutput{}, err
	}

	customerID := ""
	if sub != nil {
		customerID = sub.StripeCustomerID
	}
	if customerID == "" {
		customerID, err = uc.billing.CreateCustomer(ctx, input.Email, input.Name)
		if err != nil {
			return entitlement.PaymentSheetOutput{}, err
		}
	}

	intent, err := uc.billing.CreatePaymentIntent(ctx, customerID, int64(plan.PriceCents), paymentCurrency)
	if err != nil {
		return entitlement.PaymentSheetOutput{}, err
	}

	key, err := uc.billing.CreateEphemeralKey(ctx, customerID)
	if err != nil {
		return entitlement.PaymentSheetOutput{}, err
	}

	uc.l.Infof(ctx, "PaymentSheet: user=%s plan=%s intent=%s", sc.UserID, plan.ID, intent.ID)
	return entitlement.PaymentSheetOutput{
		CustomerID:          customerID,
		EphemeralKey:        key,
		PaymentIntentID:     intent.ID,
		PaymentIntentSecret: intent.ClientSecret,
		AmountCents:         plan.PriceCents,
		Currency:            paymentCurrency,
	}, nil
}
