package model

import "time"

// Tier is the subscription tier.
type Tier string

const (
	TierFree    Tier = "FREE"
	TierPremium Tier = "PREMIUM"
	TierPro     Tier = "PRO"
)

// SubscriptionStatus is the stored lifecycle status of a subscription.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "ACTIVE"
	StatusTrialing  SubscriptionStatus = "TRIALING"
	StatusCancelled SubscriptionStatus = "CANCELLED"
	StatusExpired   SubscriptionStatus = "EXPIRED"
	StatusInactive  SubscriptionStatus = "INACTIVE"
	StatusPastDue   SubscriptionStatus = "PAST_DUE"
)

// UserSubscription is the stored subscription record. The effective tier is
// derived from it (expiry coercion applies), never read raw.
type UserSubscription struct {
	ID        string
	PlanID    string
	Tier      Tier
	Status    SubscriptionStatus
	StartDate time.Time
	EndDate   *time.Time // nil means the subscription never expires
	AutoRenew bool

	// External billing identifiers, opaque to this service.
	StripeCustomerID     string
	StripeSubscriptionID string
}

// Expired reports whether the stored end date has passed at the given time.
func (s UserSubscription) Expired(now time.Time) bool {
	return s.EndDate != nil && now.After(*s.EndDate)
}

// Entitled reports whether the subscription still grants its tier at the
// given time. A cancelled subscription stays entitled until its period end.
func (s UserSubscription) Entitled(now time.Time) bool {
	if s.Expired(now) {
		return false
	}
	switch s.Status {
	case StatusActive, StatusTrialing, StatusCancelled:
		return true
	default:
		return false
	}
}
