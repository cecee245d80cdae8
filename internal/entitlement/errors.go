package entitlement

import "errors"

// Domain-specific errors for the entitlement package.
var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrAlreadySubscribed = errors.New("an active paid subscription already exists")
	ErrNoPaidPlan        = errors.New("no active paid subscription to modify")
)
