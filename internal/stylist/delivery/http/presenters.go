package http

import (
	"time"

	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/stylist"
)

type analyzeReq struct {
	ImageData        string `json:"image_data" binding:"required"`
	MimeType         string `json:"mime_type"`
	Hint             string `json:"hint"`
	RemoveBackground bool   `json:"remove_background"`
}

func (r analyzeReq) toInput() stylist.AnalyzeInput {
	return stylist.AnalyzeInput{
		ImageData:        r.ImageData,
		MimeType:         r.MimeType,
		Hint:             r.Hint,
		RemoveBackground: r.RemoveBackground,
	}
}

type suggestReq struct {
	Occasion    string `json:"occasion" binding:"required"`
	Preferences string `json:"preferences"`
}

func (r suggestReq) toInput() stylist.SuggestInput {
	return stylist.SuggestInput{
		Occasion:    model.Occasion(r.Occasion),
		Preferences: r.Preferences,
	}
}

type renderReq struct {
	OutfitID       string   `json:"outfit_id"`
	ItemIDs        []string `json:"item_ids"`
	Pose           string   `json:"pose"`
	Background     string   `json:"background"`
	UseAvatar      bool     `json:"use_avatar"`
	Provider       string   `json:"provider"`
	ModelArchetype string   `json:"model_archetype"`
	BodyType       string   `json:"body_type"`
}

func (r renderReq) toInput() stylist.RenderInput {
	return stylist.RenderInput{
		OutfitID:       r.OutfitID,
		ItemIDs:        r.ItemIDs,
		Pose:           r.Pose,
		Background:     r.Background,
		UseAvatar:      r.UseAvatar,
		Provider:       r.Provider,
		ModelArchetype: r.ModelArchetype,
		BodyType:       model.BodyType(r.BodyType),
	}
}

type draftResp struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Colors      []string `json:"colors"`
	Seasons     []string `json:"seasons"`
	Occasions   []string `json:"occasions"`
	Tags        []string `json:"tags,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type analyzeResp struct {
	InvocationID string    `json:"invocation_id"`
	Draft        draftResp `json:"draft"`
	Salvaged     bool      `json:"salvaged"`
	Fallback     bool      `json:"fallback"`
	Steps        []string  `json:"steps"`
}

func newAnalyzeResp(out stylist.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		InvocationID: out.InvocationID,
		Draft: draftResp{
			Name:        out.Draft.Name,
			Category:    string(out.Draft.Category),
			Subcategory: out.Draft.Subcategory,
			Colors:      out.Draft.Colors,
			Seasons:     seasonStrings(out.Draft.Seasons),
			Occasions:   occasionStrings(out.Draft.Occasions),
			Tags:        out.Draft.Tags,
			Brand:       out.Draft.Brand,
			ImageURL:    out.Draft.ImageURL,
		},
		Salvaged: out.Salvaged,
		Fallback: out.Fallback,
		Steps:    out.StepLog,
	}
}

type suggestedItemResp struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Colors   []string `json:"colors"`
	ImageURL string   `json:"image_url,omitempty"`
}

type suggestResp struct {
	InvocationID string              `json:"invocation_id"`
	Items        []suggestedItemResp `json:"items"`
	Reasoning    string              `json:"reasoning"`
	Confidence   float64             `json:"confidence"`
	Alternatives [][]string          `json:"alternatives,omitempty"`
	Fallback     bool                `json:"fallback"`
	Steps        []string            `json:"steps"`
}

func newSuggestResp(out stylist.SuggestOutput) suggestResp {
	items := make([]suggestedItemResp, 0, len(out.Items))
	for _, item := range out.Items {
		items = append(items, suggestedItemResp{
			ID:       item.ID,
			Name:     item.Name,
			Category: string(item.Category),
			Colors:   item.Colors,
			ImageURL: item.ImageURL,
		})
	}
	return suggestResp{
		InvocationID: out.InvocationID,
		Items:        items,
		Reasoning:    out.Reasoning,
		Confidence:   out.Confidence,
		Alternatives: out.Alternatives,
		Fallback:     out.Fallback,
		Steps:        out.StepLog,
	}
}

type renderResp struct {
	InvocationID string   `json:"invocation_id"`
	ImageURL     string   `json:"image_url"`
	Provider     string   `json:"provider"`
	Model        string   `json:"model"`
	Confidence   float64  `json:"confidence"`
	LatencyMs    int64    `json:"latency_ms"`
	Steps        []string `json:"steps"`
}

func newRenderResp(out stylist.RenderOutput) renderResp {
	return renderResp{
		InvocationID: out.InvocationID,
		ImageURL:     out.ImageURL,
		Provider:     out.Provider,
		Model:        out.Model,
		Confidence:   out.Confidence,
		LatencyMs:    out.Latency.Milliseconds(),
		Steps:        out.StepLog,
	}
}

type invocationResp struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Status     string     `json:"status"`
	Step       string     `json:"step,omitempty"`
	Percent    int        `json:"percent"`
	Steps      []string   `json:"steps"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

func newInvocationResp(inv stylist.Invocation) invocationResp {
	resp := invocationResp{
		ID:        inv.ID,
		Kind:      inv.Kind,
		Status:    string(inv.Status),
		Step:      inv.Step,
		Percent:   inv.Percent,
		Steps:     inv.StepLog,
		StartedAt: inv.StartedAt,
		Error:     inv.Error,
	}
	if !inv.FinishedAt.IsZero() {
		finished := inv.FinishedAt
		resp.FinishedAt = &finished
	}
	return resp
}

func seasonStrings(seasons []model.Season) []string {
	out := make([]string, len(seasons))
	for i, s := range seasons {
		out[i] = string(s)
	}
	return out
}

func occasionStrings(occasions []model.Occasion) []string {
	out := make([]string, len(occasions))
	for i, o := range occasions {
		out[i] = string(o)
	}
	return out
}
