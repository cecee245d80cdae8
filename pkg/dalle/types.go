package dalle

// Config holds the client configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Request is an image generation request.
type Request struct {
	Prompt  string
	Size    string // e.g. "1024x1024"
	Quality string // "standard" or "hd"
}

// Response is an image generation result.
type Response struct {
	ImageURL      string
	RevisedPrompt string
}

// --- wire types ---

type apiRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality,omitempty"`
}

type apiResponse struct {
	Data []apiImage `json:"data"`
}

type apiImage struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt"`
}

// ErrorResponse is the API error envelope.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
