package renderprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no render providers configured")

	// ErrProviderNotFound indicates the requested provider name is unknown
	ErrProviderNotFound = errors.New("render provider not found")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid render request")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
