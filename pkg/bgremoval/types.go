package bgremoval

import "net/http"

const (
	// DefaultEndpoint is the background removal API endpoint
	DefaultEndpoint = "https://api.remove.bg/v1.0/removebg"
)

// Request is the background removal request body.
type Request struct {
	ImageURL        string `json:"image_url,omitempty"`
	ImageFileBase64 string `json:"image_file_b64,omitempty"`
	Size            string `json:"size"`
	Format          string `json:"format"`
}

// Response is the background removal JSON response.
type Response struct {
	Data struct {
		ResultB64 string `json:"result_b64"`
	} `json:"data"`
}

// Client is the background removal API client.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}
