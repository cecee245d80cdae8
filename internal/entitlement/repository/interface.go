package repository

import (
	"context"

	"wardrobe-assistant/internal/model"
)

// SubscriptionRepository persists the local subscription replica. The payment
// processor stays the source of truth; this copy is reconciled on explicit
// refresh only.
type SubscriptionRepository interface {
	// Get returns the stored subscription, or nil when none was ever stored.
	Get(ctx context.Context) (*model.UserSubscription, error)

	// Save stores the subscription, replacing any previous record.
	Save(ctx context.Context, sub model.UserSubscription) error
}
