package billing

import "time"

// Config holds the payment processor configuration.
type Config struct {
	SecretKey string
}

// CreateSubscriptionOptions holds the parameters for creating a provider
// subscription.
type CreateSubscriptionOptions struct {
	CustomerID string
	PriceID    string
	TrialDays  int
}

// Subscription is the provider-side subscription state.
type Subscription struct {
	ID                string
	CustomerID        string
	Status            string // provider status string, e.g. "active", "trialing", "past_due"
	CurrentPeriodEnd  time.Time
	CancelAtPeriodEnd bool
}

// PaymentIntent carries the client secret the mobile client needs to confirm
// a payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}
