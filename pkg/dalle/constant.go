package dalle

const (
	// DefaultBaseURL is the default OpenAI images API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default image model to use
	DefaultModel = "dall-e-3"

	// DefaultSize is used when the caller does not specify one
	DefaultSize = "1024x1024"

	// DefaultQuality is used when the caller does not specify one
	DefaultQuality = "standard"
)
