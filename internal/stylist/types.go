package stylist

import (
	"time"

	"wardrobe-assistant/internal/model"
)

// InvocationStatus is the lifecycle state of one pipeline invocation.
type InvocationStatus string

const (
	StatusIdle      InvocationStatus = "idle"
	StatusRunning   InvocationStatus = "running"
	StatusCompleted InvocationStatus = "completed"
	StatusFailed    InvocationStatus = "failed"
)

// Invocation is a point-in-time snapshot of a pipeline invocation. Percent is
// completed sub-steps over the total known at start.
type Invocation struct {
	ID         string
	Kind       string
	Status     InvocationStatus
	Step       string
	Percent    int
	StepLog    []string
	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
}

// AnalyzeInput is a garment-photo analysis request.
type AnalyzeInput struct {
	ImageData        string // base64-encoded image bytes
	MimeType         string
	Hint             string
	RemoveBackground bool
}

// GarmentDraft is the structured analysis result. Every field has already
// passed vocabulary coercion and can feed an add-item mutation as-is.
type GarmentDraft struct {
	Name        string
	Category    model.Category
	Subcategory string
	Colors      []string
	Seasons     []model.Season
	Occasions   []model.Occasion
	Tags        []string
	Brand       string
	ImageURL    string
}

// AnalyzeOutput is the Stage A result plus recovery markers.
type AnalyzeOutput struct {
	InvocationID string
	Draft        GarmentDraft
	Salvaged     bool // parse failure recovered by keyword scan
	Fallback     bool // provider failure replaced by the deterministic record
	StepLog      []string
}

// SuggestInput is an outfit synthesis request.
type SuggestInput struct {
	Occasion    model.Occasion
	Preferences string
}

// SuggestOutput is the Stage C result. Items are value copies from the
// wardrobe projection, always a subset of the available inventory.
type SuggestOutput struct {
	InvocationID string
	Items        []model.ClothingItem
	Reasoning    string
	Confidence   float64
	Alternatives [][]string
	Fallback     bool
	StepLog      []string
}

// RenderInput is a try-on render request. Exactly one of OutfitID and ItemIDs
// selects the garments. Provider names a configured render provider; empty
// selects the default.
type RenderInput struct {
	OutfitID       string
	ItemIDs        []string
	Pose           string
	Background     string
	UseAvatar      bool
	Provider       string
	ModelArchetype string
	BodyType       model.BodyType // generic path only
}

// RenderOutput is the Stage D result. Confidence is a fixed policy constant
// per prompt path, not a measured quantity.
type RenderOutput struct {
	InvocationID string
	ImageURL     string
	Provider     string
	Model        string
	Confidence   float64
	Latency      time.Duration
	StepLog      []string
}
