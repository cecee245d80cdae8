package vision

import (
	"fmt"
	"net/http"
)

// Config holds the vision client configuration.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("vision: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// AnalyzeRequest is a garment-photo analysis request.
type AnalyzeRequest struct {
	ImageData string // base64-encoded image bytes
	MimeType  string // e.g. "image/jpeg"
	Hint      string // optional free-text hint from the user
}

// SuggestRequest is an outfit suggestion request.
type SuggestRequest struct {
	Occasion       string
	InventoryLines []string // one formatted line per available item
	Preferences    string   // free-text style preferences
	Weather        string   // optional weather context, empty when unknown
}

// ParsedGarment is the structured garment record the model is asked to emit.
type ParsedGarment struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Colors      []string `json:"colors"`
	Seasons     []string `json:"seasons"`
	Occasions   []string `json:"occasions"`
	Tags        []string `json:"tags"`
	Brand       string   `json:"brand"`
}

// ParsedSuggestion is the structured outfit suggestion the model is asked to emit.
type ParsedSuggestion struct {
	ItemIDs      []string   `json:"item_ids"`
	Reasoning    string     `json:"reasoning"`
	Confidence   float64    `json:"confidence"`
	Alternatives [][]string `json:"alternatives"`
}

// --- wire types ---

type visionRequest struct {
	Contents         []visionContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type visionContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []visionPart `json:"parts"`
}

type visionPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type visionResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content visionContent `json:"content"`
}
