package vision

import "context"

// IVision defines the interface for the vision+language provider.
// Implementations are safe for concurrent use.
type IVision interface {
	// AnalyzeImage sends a garment photo for analysis and returns the raw
	// model reply. Callers are responsible for parsing and salvage.
	AnalyzeImage(ctx context.Context, req *AnalyzeRequest) (string, error)

	// SuggestOutfit asks the reasoning model for an outfit and returns the
	// raw model reply.
	SuggestOutfit(ctx context.Context, req *SuggestRequest) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new vision client with the given configuration
func New(cfg Config) (IVision, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newVisionImpl(cfg), nil
}
