package billing

import "context"

// Processor is the payment processor collaborator. All operations are keyed
// by opaque provider identifiers persisted locally. Failures are surfaced
// verbatim; no retry is attempted here.
type Processor interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)

	CreatePaymentIntent(ctx context.Context, customerID string, amountCents int64, currency string) (*PaymentIntent, error)
	CreateEphemeralKey(ctx context.Context, customerID string) (string, error)

	CreateSubscription(ctx context.Context, opt CreateSubscriptionOptions) (*Subscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID, priceID string) (*Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
}
