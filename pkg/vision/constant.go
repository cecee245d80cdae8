package vision

import "time"

const (
	// DefaultModel is the default vision model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
