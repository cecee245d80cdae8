package stability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client implements IStability interface
type Client struct {
	apiKey  string
	engine  string
	baseURL string
	client  *http.Client
}

// New creates a new Stability client
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Engine == "" {
		cfg.Engine = DefaultEngine
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:  cfg.APIKey,
		engine:  cfg.Engine,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// Render sends a text-to-image request
func (c *Client) Render(ctx context.Context, req *Request) (*Response, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	width, height := req.Width, req.Height
	if width == 0 {
		width = 1024
	}
	if height == 0 {
		height = 1024
	}

	body, err := json.Marshal(apiRequest{
		TextPrompts: []textPrompt{{Text: req.Prompt, Weight: 1}},
		Width:       width,
		Height:      height,
		Samples:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", c.baseURL, c.engine)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(raw))
	}

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Artifacts) == 0 || result.Artifacts[0].Base64 == "" {
		return nil, fmt.Errorf("no image returned")
	}

	return &Response{
		ImageURL: "data:image/png;base64," + result.Artifacts[0].Base64,
	}, nil
}
