package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type visionImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// newVisionImpl creates a new vision implementation
func newVisionImpl(cfg Config) *visionImpl {
	return &visionImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// AnalyzeImage sends a garment photo plus the analysis prompt and returns the
// raw model reply.
func (v *visionImpl) AnalyzeImage(ctx context.Context, req *AnalyzeRequest) (string, error) {
	parts := []visionPart{{Text: BuildAnalysisPrompt(req.Hint)}}
	if req.ImageData != "" {
		mime := req.MimeType
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, visionPart{InlineData: &inlineData{MimeType: mime, Data: req.ImageData}})
	}

	return v.generate(ctx, visionRequest{
		Contents: []visionContent{{Role: "user", Parts: parts}},
		GenerationConfig: &generationConfig{
			Temperature:     0.2, // low temperature for deterministic JSON output
			MaxOutputTokens: 1024,
		},
	})
}

// SuggestOutfit sends the outfit composition prompt and returns the raw model reply.
func (v *visionImpl) SuggestOutfit(ctx context.Context, req *SuggestRequest) (string, error) {
	return v.generate(ctx, visionRequest{
		Contents: []visionContent{{
			Role:  "user",
			Parts: []visionPart{{Text: BuildOutfitPrompt(req)}},
		}},
		GenerationConfig: &generationConfig{
			Temperature:     0.4,
			MaxOutputTokens: 2048,
		},
	})
}

// Model returns the model being used
func (v *visionImpl) Model() string {
	return v.model
}

// generate sends a generation request and extracts the first candidate text.
func (v *visionImpl) generate(ctx context.Context, req visionRequest) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", v.apiURL, v.model, v.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("vision: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("vision: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("vision: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("vision: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("vision: failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("vision: empty response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
