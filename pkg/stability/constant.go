package stability

const (
	// DefaultBaseURL is the default Stability API endpoint
	DefaultBaseURL = "https://api.stability.ai"

	// DefaultEngine is the default generation engine
	DefaultEngine = "stable-diffusion-xl-1024-v1-0"
)
