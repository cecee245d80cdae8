package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	customerpkg "github.com/stripe/stripe-go/v82/customer"
	ephemeralkeypkg "github.com/stripe/stripe-go/v82/ephemeralkey"
	paymentintentpkg "github.com/stripe/stripe-go/v82/paymentintent"
	subscriptionpkg "github.com/stripe/stripe-go/v82/subscription"

	"wardrobe-assistant/pkg/log"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// StripeProcessor implements Processor on top of the Stripe API.
type StripeProcessor struct {
	l log.Logger
}

// NewStripeProcessor sets the Stripe API key and returns the processor.
func NewStripeProcessor(l log.Logger, cfg Config) (*StripeProcessor, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	stripe.Key = cfg.SecretKey
	return &StripeProcessor{l: l}, nil
}

// CreateCustomer creates a Stripe customer and returns its opaque id.
func (p *StripeProcessor) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	cust, err := customerpkg.New(params)
	if err != nil {
		return "", &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: err}
	}
	return cust.ID, nil
}

// CreatePaymentIntent creates a payment intent for the customer.
func (p *StripeProcessor) CreatePaymentIntent(ctx context.Context, customerID string, amountCents int64, currency string) (*PaymentIntent, error) {
	if currency == "" {
		currency = "usd"
	}
	params := &stripe.PaymentIntentParams{
		Customer: stripe.String(customerID),
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	intent, err := paymentintentpkg.New(params)
	if err != nil {
		return nil, &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: err}
	}
	return &PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

// CreateEphemeralKey issues a short-lived client secret scoped to a customer.
func (p *StripeProcessor) CreateEphemeralKey(ctx context.Context, customerID string) (string, error) {
	params := &stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(stripe.APIVersion),
	}
	params.Context = ctx

	key, err := ephemeralkeypkg.New(params)
	if err != nil {
		return "", &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: err}
	}
	return key.Secret, nil
}

// CreateSubscription creates a provider subscription for the customer.
func (p *StripeProcessor) CreateSubscription(ctx context.Context, opt CreateSubscriptionOptions) (*Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(opt.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(opt.PriceID)},
		},
	}
	if opt.TrialDays > 0 {
		params.TrialPeriodDays = stripe.Int64(int64(opt.TrialDays))
	}
	params.Context = ctx

	sub, err := subscriptionpkg.New(params)
	if err != nil {
		return nil, &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: err}
	}
	return fromStripeSubscription(sub), nil
}

// UpdateSubscription switches the subscription to a different price.
func (p *StripeProcessor) UpdateSubscription(ctx context.Context, subscriptionID, priceID string) (*Subscription, error) {
	current, err := subscriptionpkg.Get(subscriptionID, nil)
	if err != nil {
		return nil, &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: err}
	}
	if len(current.Items.Data) == 0 {
		return nil, &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: fmt.Errorf("subscription %s has no items", subscriptionID)}
	}

	params := &stripe.SubscriptionParams{
		Items: []*stripe.SubscriptionItemsParams{
			{
				ID:    stripe.String(current.Items.Data[0].ID),
				Price: stripe.String(priceID),
			},
		},
		ProrationBehavior: stripe.String("create_prorations"),
	}
	params.Context = ctx

	sub, err := subscriptionpkg.Update(subscriptionID, params)
	if err != nil {
		return nil, &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: err}
	}
	return fromStripeSubscription(sub), nil
}

// CancelSubscription schedules cancellation at the current period end.
func (p *StripeProcessor) CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	params.Context = ctx

	sub, err := subscriptionpkg.Update(subscriptionID, params)
	if err != nil {
		return nil, &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: err}
	}
	return fromStripeSubscription(sub), nil
}

// GetSubscription fetches the provider subscription state.
func (p *StripeProcessor) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	sub, err := subscriptionpkg.Get(subscriptionID, params)
	if err != nil {
		return nil, &pkgErrors.ProviderUnavailableError{Provider: "stripe", Err: err}
	}
	return fromStripeSubscription(sub), nil
}

// fromStripeSubscription maps the Stripe object to the local Subscription.
// Period end lives on the subscription item in this API version.
func fromStripeSubscription(sub *stripe.Subscription) *Subscription {
	out := &Subscription{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		out.CurrentPeriodEnd = time.Unix(sub.Items.Data[0].CurrentPeriodEnd, 0)
	}
	return out
}
