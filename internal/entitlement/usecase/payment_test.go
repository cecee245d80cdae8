package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-assistant/internal/billing"
	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

func TestPaymentSheet(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Unknown Plan", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		_, err := uc.PaymentSheet(ctx, sc, entitlement.PaymentSheetInput{PlanID: "gold_weekly"})
		var vErr *pkgErrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "plan_id", vErr.Field)
	})

	t.Run("Free Plan Rejected", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		_, err := uc.PaymentSheet(ctx, sc, entitlement.PaymentSheetInput{PlanID: "free"})
		var vErr *pkgErrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("Intent Carries The Plan Price", func(t *testing.T) {
		proc := &mockProcessor{
			createPaymentIntentFunc: func(customerID string, amountCents int64, currency string) (*billing.PaymentIntent, error) {
				assert.Equal(t, int64(999), amountCents)
				assert.Equal(t, "usd", currency)
				return &billing.PaymentIntent{ID: "pi_pro", ClientSecret: "cs_pro"}, nil
			},
		}
		uc := New(&mockLogger{}, &mockSubRepo{}, proc)
		out, err := uc.PaymentSheet(ctx, sc, entitlement.PaymentSheetInput{PlanID: "pro_monthly", Email: "u@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "pi_pro", out.PaymentIntentID)
		assert.Equal(t, "cs_pro", out.PaymentIntentSecret)
		assert.Equal(t, "ek_test", out.EphemeralKey)
		assert.Equal(t, 999, out.AmountCents)
		assert.Equal(t, "usd", out.Currency)
	})

	t.Run("Existing Billing Customer Is Reused", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(24 * time.Hour)), nil
		}}
		var createdCustomer bool
		proc := &mockProcessor{createCustomerFunc: func(email, name string) (string, error) {
			createdCustomer = true
			return "cus_new", nil
		}}
		uc := New(&mockLogger{}, repo, proc)
		out, err := uc.PaymentSheet(ctx, sc, entitlement.PaymentSheetInput{PlanID: "premium_yearly"})
		require.NoError(t, err)
		assert.False(t, createdCustomer)
		assert.Equal(t, "cus_test", out.CustomerID)
	})

	t.Run("Provider Failure Surfaces", func(t *testing.T) {
		proc := &mockProcessor{
			createEphemeralKeyFunc: func(customerID string) (string, error) {
				return "", &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: errors.New("stripe down")}
			},
		}
		uc := New(&mockLogger{}, &mockSubRepo{}, proc)
		_, err := uc.PaymentSheet(ctx, sc, entitlement.PaymentSheetInput{PlanID: "pro_monthly"})
		var pErr *pkgErrors.ProviderUnavailableError
		assert.ErrorAs(t, err, &pErr)
	})
}
