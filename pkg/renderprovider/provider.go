package renderprovider

import "context"

// Provider defines the interface for image synthesis providers
type Provider interface {
	// Render sends a synthesis request and returns a response
	Render(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "dalle", "stability")
	Name() string

	// Model returns the model or engine being used
	Model() string
}

// Request represents a normalized image synthesis request
type Request struct {
	Prompt  string
	Size    string // e.g. "1024x1024"
	Quality string // "standard" or "hd"; providers without a quality knob ignore it
}

// Response represents a normalized image synthesis response
type Response struct {
	ImageURL     string
	ProviderName string
	ModelName    string
}
