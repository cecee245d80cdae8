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

type mockSubRepo struct {
	getFunc  func() (*model.UserSubscription, error)
	saveFunc func(sub model.UserSubscription) error
	saved    []model.UserSubscription
}

func (m *mockSubRepo) Get(ctx context.Context) (*model.UserSubscription, error) {
	if m.getFunc != nil {
		return m.getFunc()
	}
	return nil, nil
}

func (m *mockSubRepo) Save(ctx context.Context, sub model.UserSubscription) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(sub); err != nil {
			return err
		}
	}
	m.saved = append(m.saved, sub)
	return nil
}

type mockProcessor struct {
	createCustomerFunc      func(email, name string) (string, error)
	createPaymentIntentFunc func(customerID string, amountCents int64, currency string) (*billing.PaymentIntent, error)
	createEphemeralKeyFunc  func(customerID string) (string, error)
	createSubscriptionFunc  func(opt billing.CreateSubscriptionOptions) (*billing.Subscription, error)
	updateSubscriptionFunc  func(subscriptionID, priceID string) (*billing.Subscription, error)
	cancelSubscriptionFunc  func(subscriptionID string) (*billing.Subscription, error)
	getSubscriptionFunc     func(subscriptionID string) (*billing.Subscription, error)
}

func (m *mockProcessor) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	if m.createCustomerFunc != nil {
		return m.createCustomerFunc(email, name)
	}
	return "cus_test", nil
}

func (m *mockProcessor) CreatePaymentIntent(ctx context.Context, customerID string, amountCents int64, currency string) (*billing.PaymentIntent, error) {
	if m.createPaymentIntentFunc != nil {
		return m.createPaymentIntentFunc(customerID, amountCents, currency)
	}
	return &billing.PaymentIntent{ID: "pi_test", ClientSecret: "secret"}, nil
}

func (m *mockProcessor) CreateEphemeralKey(ctx context.Context, customerID string) (string, error) {
	if m.createEphemeralKeyFunc != nil {
		return m.createEphemeralKeyFunc(customerID)
	}
	return "ek_test", nil
}

func (m *mockProcessor) CreateSubscription(ctx context.Context, opt billing.CreateSubscriptionOptions) (*billing.Subscription, error) {
	if m.createSubscriptionFunc != nil {
		return m.createSubscriptionFunc(opt)
	}
	return &billing.Subscription{ID: "sub_test", CustomerID: opt.CustomerID, Status: "active", CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour)}, nil
}

func (m *mockProcessor) UpdateSubscription(ctx context.Context, subscriptionID, priceID string) (*billing.Subscription, error) {
	if m.updateSubscriptionFunc != nil {
		return m.updateSubscriptionFunc(subscriptionID, priceID)
	}
	return &billing.Subscription{ID: subscriptionID, Status: "active", CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour)}, nil
}

func (m *mockProcessor) CancelSubscription(ctx context.Context, subscriptionID string) (*billing.Subscription, error) {
	if m.cancelSubscriptionFunc != nil {
		return m.cancelSubscriptionFunc(subscriptionID)
	}
	return &billing.Subscription{ID: subscriptionID, Status: "active", CancelAtPeriodEnd: true}, nil
}

func (m *mockProcessor) GetSubscription(ctx context.Context, subscriptionID string) (*billing.Subscription, error) {
	if m.getSubscriptionFunc != nil {
		return m.getSubscriptionFunc(subscriptionID)
	}
	return &billing.Subscription{ID: subscriptionID, Status: "active"}, nil
}

func premiumSub(endDate time.Time) *model.UserSubscription {
	return &model.UserSubscription{
		ID:                   "sub-local",
		PlanID:               "premium_monthly",
		Tier:                 model.TierPremium,
		Status:               model.StatusActive,
		StartDate:            endDate.Add(-30 * 24 * time.Hour),
		EndDate:              &endDate,
		AutoRenew:            true,
		StripeCustomerID:     "cus_test",
		StripeSubscriptionID: "sub_test",
	}
}

func TestCurrent(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("No Stored Subscription Is Implicit Free", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		out, err := uc.Current(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.TierFree, out.EffectiveTier)
		assert.Equal(t, 20, out.Limits.MaxClothingItems)
		assert.False(t, out.Limits.AISuggestions)
	})

	t.Run("Active Premium", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(24 * time.Hour)), nil
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		out, err := uc.Current(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.TierPremium, out.EffectiveTier)
		assert.True(t, out.Limits.AISuggestions)
	})

	t.Run("Expired Premium Coerces To Free", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(-time.Hour)), nil
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		out, err := uc.Current(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.TierFree, out.EffectiveTier)
		// Stored record is untouched; only the derived tier changes.
		assert.Equal(t, model.TierPremium, out.Subscription.Tier)
		assert.False(t, out.Limits.VirtualTryOn)
	})

	t.Run("Repository Error", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return nil, errors.New("closet unreachable")
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		_, err := uc.Current(ctx, sc)
		assert.Error(t, err)
	})
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Unknown Plan", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		_, err := uc.Subscribe(ctx, sc, entitlement.SubscribeInput{PlanID: "gold_weekly"})
		var vErr *pkgErrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "plan_id", vErr.Field)
	})

	t.Run("Free Plan Is No-Op", func(t *testing.T) {
		repo := &mockSubRepo{}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		out, err := uc.Subscribe(ctx, sc, entitlement.SubscribeInput{PlanID: "free"})
		require.NoError(t, err)
		assert.Equal(t, model.TierFree, out.EffectiveTier)
		assert.Empty(t, repo.saved)
	})

	t.Run("Already Subscribed", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(24 * time.Hour)), nil
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		_, err := uc.Subscribe(ctx, sc, entitlement.SubscribeInput{PlanID: "pro_monthly"})
		assert.ErrorIs(t, err, entitlement.ErrAlreadySubscribed)
	})

	t.Run("Expired Subscription Allows Resubscribe", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(-time.Hour)), nil
		}}
		var createdCustomer bool
		proc := &mockProcessor{createCustomerFunc: func(email, name string) (string, error) {
			createdCustomer = true
			return "cus_new", nil
		}}
		uc := New(&mockLogger{}, repo, proc)
		out, err := uc.Subscribe(ctx, sc, entitlement.SubscribeInput{PlanID: "premium_monthly"})
		require.NoError(t, err)
		assert.Equal(t, model.TierPremium, out.EffectiveTier)
		// The existing billing customer is reused, not recreated.
		assert.False(t, createdCustomer)
		assert.Equal(t, "cus_test", out.Subscription.StripeCustomerID)
	})

	t.Run("Successful First Subscribe", func(t *testing.T) {
		repo := &mockSubRepo{}
		end := time.Now().Add(7 * 24 * time.Hour)
		proc := &mockProcessor{
			createSubscriptionFunc: func(opt billing.CreateSubscriptionOptions) (*billing.Subscription, error) {
				assert.Equal(t, "price_premium_monthly", opt.PriceID)
				assert.Equal(t, 7, opt.TrialDays)
				return &billing.Subscription{ID: "sub_new", CustomerID: opt.CustomerID, Status: "trialing", CurrentPeriodEnd: end}, nil
			},
		}
		uc := New(&mockLogger{}, repo, proc)
		out, err := uc.Subscribe(ctx, sc, entitlement.SubscribeInput{PlanID: "premium_monthly", Email: "u@example.com"})
		require.NoError(t, err)
		assert.Equal(t, model.TierPremium, out.EffectiveTier)
		assert.Equal(t, model.StatusTrialing, out.Subscription.Status)
		require.Len(t, repo.saved, 1)
		assert.Equal(t, "sub_new", repo.saved[0].StripeSubscriptionID)
	})

	t.Run("Billing Failure Leaves Replica Free", func(t *testing.T) {
		repo := &mockSubRepo{}
		proc := &mockProcessor{
			createSubscriptionFunc: func(opt billing.CreateSubscriptionOptions) (*billing.Subscription, error) {
				return nil, &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: errors.New("card declined")}
			},
		}
		uc := New(&mockLogger{}, repo, proc)
		_, err := uc.Subscribe(ctx, sc, entitlement.SubscribeInput{PlanID: "pro_monthly"})
		require.Error(t, err)
		assert.Empty(t, repo.saved)
		assert.Equal(t, model.TierFree, uc.Tier(ctx, sc))
	})

	t.Run("Persist Failure Leaves Replica Free", func(t *testing.T) {
		repo := &mockSubRepo{saveFunc: func(sub model.UserSubscription) error {
			return &pkgErrors.PersistenceError{Op: "save subscription", Err: errors.New("write failed")}
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		_, err := uc.Subscribe(ctx, sc, entitlement.SubscribeInput{PlanID: "pro_monthly"})
		require.Error(t, err)
		assert.Equal(t, model.TierFree, uc.Tier(ctx, sc))
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("No Paid Plan", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		_, err := uc.Cancel(ctx, sc)
		assert.ErrorIs(t, err, entitlement.ErrNoPaidPlan)
	})

	t.Run("Cancelled Stays Entitled Until Period End", func(t *testing.T) {
		end := time.Now().Add(10 * 24 * time.Hour)
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(end), nil
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		out, err := uc.Cancel(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, out.Subscription.Status)
		assert.False(t, out.Subscription.AutoRenew)
		assert.Equal(t, model.TierPremium, out.EffectiveTier)
		require.NotNil(t, out.ExpiresAt)
		assert.True(t, out.ExpiresAt.Equal(end))
	})

	t.Run("Billing Failure Leaves Replica Untouched", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(24 * time.Hour)), nil
		}}
		proc := &mockProcessor{cancelSubscriptionFunc: func(subscriptionID string) (*billing.Subscription, error) {
			return nil, errors.New("stripe down")
		}}
		uc := New(&mockLogger{}, repo, proc)
		_, err := uc.Cancel(ctx, sc)
		require.Error(t, err)
		out, err := uc.Current(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, out.Subscription.Status)
		assert.Empty(t, repo.saved)
	})
}

func TestUpdatePlan(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Switch To Free Rejected", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(24 * time.Hour)), nil
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		_, err := uc.UpdatePlan(ctx, sc, entitlement.UpdatePlanInput{PlanID: "free"})
		var vErr *pkgErrors.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("Upgrade To Pro", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(24 * time.Hour)), nil
		}}
		proc := &mockProcessor{updateSubscriptionFunc: func(subscriptionID, priceID string) (*billing.Subscription, error) {
			assert.Equal(t, "price_pro_monthly", priceID)
			return &billing.Subscription{ID: subscriptionID, Status: "active", CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour)}, nil
		}}
		uc := New(&mockLogger{}, repo, proc)
		out, err := uc.UpdatePlan(ctx, sc, entitlement.UpdatePlanInput{PlanID: "pro_monthly"})
		require.NoError(t, err)
		assert.Equal(t, model.TierPro, out.EffectiveTier)
		assert.Equal(t, "pro_monthly", out.Subscription.PlanID)
	})

	t.Run("No Active Subscription", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		_, err := uc.UpdatePlan(ctx, sc, entitlement.UpdatePlanInput{PlanID: "pro_monthly"})
		assert.ErrorIs(t, err, entitlement.ErrNoPaidPlan)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Provider Cancel At Period End Is Adopted", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(24 * time.Hour)), nil
		}}
		end := time.Now().Add(12 * time.Hour)
		proc := &mockProcessor{getSubscriptionFunc: func(subscriptionID string) (*billing.Subscription, error) {
			return &billing.Subscription{ID: subscriptionID, Status: "active", CurrentPeriodEnd: end, CancelAtPeriodEnd: true}, nil
		}}
		uc := New(&mockLogger{}, repo, proc)
		out, err := uc.Refresh(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, out.Subscription.Status)
		assert.False(t, out.Subscription.AutoRenew)
		require.NotNil(t, out.ExpiresAt)
		assert.True(t, out.ExpiresAt.Equal(end))
	})

	t.Run("No Paid Subscription Is No-Op", func(t *testing.T) {
		repo := &mockSubRepo{}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		out, err := uc.Refresh(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, model.TierFree, out.EffectiveTier)
		assert.Empty(t, repo.saved)
	})
}

func TestGate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Tier Degrades To Free On Load Error", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return nil, errors.New("closet unreachable")
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		assert.Equal(t, model.TierFree, uc.Tier(ctx, sc))
	})

	t.Run("Feature Denied On Free", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		err := uc.RequireFeature(ctx, sc, entitlement.FeatureAISuggestions)
		var qErr *pkgErrors.QuotaExceededError
		require.ErrorAs(t, err, &qErr)
		assert.Equal(t, string(entitlement.FeatureAISuggestions), qErr.Limit)
	})

	t.Run("Feature Allowed On Premium", func(t *testing.T) {
		repo := &mockSubRepo{getFunc: func() (*model.UserSubscription, error) {
			return premiumSub(time.Now().Add(24 * time.Hour)), nil
		}}
		uc := New(&mockLogger{}, repo, &mockProcessor{})
		assert.NoError(t, uc.RequireFeature(ctx, sc, entitlement.FeatureVirtualTryOn))
	})

	t.Run("Capacity Denied At Limit", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		err := uc.RequireCapacity(ctx, sc, entitlement.CollectionClothing, 20)
		var qErr *pkgErrors.QuotaExceededError
		require.ErrorAs(t, err, &qErr)
		assert.Equal(t, 20, qErr.Max)
	})

	t.Run("Capacity Allowed Below Limit", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockSubRepo{}, &mockProcessor{})
		assert.NoError(t, uc.RequireCapacity(ctx, sc, entitlement.CollectionClothing, 19))
	})
}
