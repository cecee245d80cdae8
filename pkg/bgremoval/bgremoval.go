package bgremoval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// New creates a new background removal client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("bgremoval: API key is required")
	}
	return &Client{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
	}, nil
}

// SetEndpoint overrides the API endpoint (used in tests).
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// RemoveBackground strips the background from the given image and returns a
// data URL of the processed image.
func (c *Client) RemoveBackground(ctx context.Context, req Request) (string, error) {
	if req.ImageURL == "" && req.ImageFileBase64 == "" {
		return "", fmt.Errorf("bgremoval: an image is required")
	}
	if req.Size == "" {
		req.Size = "auto"
	}
	if req.Format == "" {
		req.Format = "png"
	}

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call background removal API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("background removal API returned status: %d, body: %s", resp.StatusCode, string(raw))
	}

	var parsedResp Response
	if err := json.NewDecoder(resp.Body).Decode(&parsedResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal background removal response: %w", err)
	}

	if parsedResp.Data.ResultB64 == "" {
		return "", fmt.Errorf("background removal returned no image")
	}

	return "data:image/png;base64," + parsedResp.Data.ResultB64, nil
}
