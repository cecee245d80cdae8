package stability

// Config holds the client configuration.
type Config struct {
	APIKey  string
	Engine  string
	BaseURL string
}

// Request is an image generation request.
type Request struct {
	Prompt string
	Width  int
	Height int
}

// Response is an image generation result. The image comes back base64-encoded
// and is exposed as a data URL.
type Response struct {
	ImageURL string
}

// --- wire types ---

type apiRequest struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Samples     int          `json:"samples"`
}

type textPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type apiResponse struct {
	Artifacts []artifact `json:"artifacts"`
}

type artifact struct {
	Base64       string `json:"base64"`
	FinishReason string `json:"finishReason"`
}
