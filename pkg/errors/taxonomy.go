package errors

import "fmt"

// ValidationError marks malformed input rejected before any I/O.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// QuotaExceededError marks an entitlement gate denial. The write was rejected
// before any I/O; retrying with the same input cannot succeed.
type QuotaExceededError struct {
	Limit   string // which limit was hit, e.g. "clothing_items"
	Max     int
	Current int
}

func (e *QuotaExceededError) Error() string {
	if e.Max == 0 && e.Current == 0 {
		// Feature gate denial rather than a count limit.
		return fmt.Sprintf("%s is not included in your current plan, upgrade to unlock it", e.Limit)
	}
	return fmt.Sprintf("quota exceeded for %s: %d of %d used, upgrade your plan to add more", e.Limit, e.Current, e.Max)
}

// ProviderUnavailableError marks a network/auth/rate-limit failure from an
// external provider.
type ProviderUnavailableError struct {
	Provider string
	Err      error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Err)
}

func (e *ProviderUnavailableError) Unwrap() error { return e.Err }

// MalformedResponseError marks a provider reply that failed schema validation.
// Stages with a defined fallback recover from it locally.
type MalformedResponseError struct {
	Provider string
	Raw      string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("provider %s returned malformed response: %v", e.Provider, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// PersistenceError marks a durable write that failed after entitlement passed.
// The in-memory projection is never advanced when one occurs.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
