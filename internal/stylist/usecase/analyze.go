package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/stylist"
	"wardrobe-assistant/pkg/bgremoval"
	pkgErrors "wardrobe-assistant/pkg/errors"
	"wardrobe-assistant/pkg/vision"
)

const fallbackItemName = "New clothing item"

// AnalyzeGarment runs Stage A (image analysis) and the optional Stage B
// (background removal). Neither stage surfaces provider errors: analysis
// degrades to a salvaged or deterministic fallback draft, background removal
// downgrades to the original image with a step log entry.
func (uc *implUseCase) AnalyzeGarment(ctx context.Context, sc model.Scope, input stylist.AnalyzeInput) (stylist.AnalyzeOutput, error) {
	if input.ImageData == "" {
		return stylist.AnalyzeOutput{}, pkgErrors.NewValidationError("image", "image data is required")
	}
	if input.MimeType == "" {
		input.MimeType = "image/jpeg"
	}

	totalSteps := 2
	if input.RemoveBackground {
		totalSteps = 3
	}
	inv := uc.begin("analyze", totalSteps)

	out := stylist.AnalyzeOutput{InvocationID: inv.id}

	inv.enter("image analysis")
	raw, err := uc.vision.AnalyzeImage(ctx, &vision.AnalyzeRequest{
		ImageData: input.ImageData,
		MimeType:  input.MimeType,
		Hint:      input.Hint,
	})
	if err != nil {
		uc.l.Warnf(ctx, "stylist.usecase.AnalyzeGarment.AnalyzeImage: %v", err)
		out.Draft = fallbackDraft(input.Hint)
		out.Fallback = true
		inv.complete("image analysis failed, used a basic record, manual review recommended")
	} else {
		parsed, salvaged := parseGarmentReply(raw, input.Hint)
		out.Draft = parsed
		out.Salvaged = salvaged
		if salvaged {
			inv.complete("analysis reply was unreadable, recovered what we could, manual review recommended")
		} else {
			inv.complete("image analyzed")
		}
	}

	inv.enter("vocabulary check")
	out.Draft = coerceDraft(out.Draft)
	inv.complete("garment details validated")

	if input.RemoveBackground {
		inv.enter("background removal")
		ref, bgErr := uc.removeBackground(ctx, input.ImageData)
		if bgErr != nil {
			uc.l.Warnf(ctx, "stylist.usecase.AnalyzeGarment.removeBackground: %v", bgErr)
			inv.complete("background removal unavailable, kept the original photo")
		} else {
			out.Draft.ImageURL = ref
			inv.complete("background removed")
		}
	}

	inv.finish()
	out.StepLog = inv.snapshot().StepLog
	uc.l.Infof(ctx, "AnalyzeGarment: user=%s category=%s salvaged=%t fallback=%t",
		sc.UserID, out.Draft.Category, out.Salvaged, out.Fallback)
	return out, nil
}

func (uc *implUseCase) removeBackground(ctx context.Context, imageData string) (string, error) {
	if uc.bgRemoval == nil {
		return "", fmt.Errorf("background removal is not configured")
	}
	return uc.bgRemoval.RemoveBackground(ctx, bgremoval.Request{
		ImageFileBase64: imageData,
		Size:            "auto",
		Format:          "png",
	})
}

// parseGarmentReply parses the raw model reply, falling back to the keyword
// salvage scan when the reply is not valid JSON. The salvage path is
// deterministic: the same reply always yields the same draft.
func parseGarmentReply(raw, hint string) (stylist.GarmentDraft, bool) {
	cleaned := sanitizeJSONReply(raw)

	var parsed vision.ParsedGarment
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return salvageDraft(raw, hint), true
	}

	return stylist.GarmentDraft{
		Name:        parsed.Name,
		Category:    model.Category(parsed.Category),
		Subcategory: parsed.Subcategory,
		Colors:      parsed.Colors,
		Seasons:     toSeasons(parsed.Seasons),
		Occasions:   toOccasions(parsed.Occasions),
		Tags:        parsed.Tags,
		Brand:       parsed.Brand,
	}, false
}

// sanitizeJSONReply strips markdown code fences and surrounding prose,
// keeping the outermost JSON object.
func sanitizeJSONReply(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return strings.TrimSpace(s)
}

// salvageCategoryKeywords maps reply substrings to categories, checked in
// order; the first match wins.
var salvageCategoryKeywords = []struct {
	keyword  string
	category model.Category
}{
	{"jeans", model.CategoryBottom},
	{"trousers", model.CategoryBottom},
	{"pants", model.CategoryBottom},
	{"shorts", model.CategoryBottom},
	{"skirt", model.CategoryBottom},
	{"leggings", model.CategoryBottom},
	{"dress", model.CategoryDress},
	{"gown", model.CategoryDress},
	{"coat", model.CategoryOuterwear},
	{"jacket", model.CategoryOuterwear},
	{"blazer", model.CategoryOuterwear},
	{"parka", model.CategoryOuterwear},
	{"sneakers", model.CategoryShoes},
	{"boots", model.CategoryShoes},
	{"heels", model.CategoryShoes},
	{"sandals", model.CategoryShoes},
	{"shoes", model.CategoryShoes},
	{"scarf", model.CategoryAccessories},
	{"belt", model.CategoryAccessories},
	{"hat", model.CategoryAccessories},
	{"bag", model.CategoryAccessories},
	{"t-shirt", model.CategoryTop},
	{"shirt", model.CategoryTop},
	{"blouse", model.CategoryTop},
	{"sweater", model.CategoryTop},
	{"hoodie", model.CategoryTop},
	{"top", model.CategoryTop},
}

// salvageColorKeywords maps reply substrings to display colors, checked in
// order; every match is collected.
var salvageColorKeywords = []struct {
	keyword string
	color   string
}{
	{"black", "Black"},
	{"white", "White"},
	{"navy", "Navy"},
	{"blue", "Blue"},
	{"red", "Red"},
	{"green", "Green"},
	{"yellow", "Yellow"},
	{"brown", "Brown"},
	{"beige", "Beige"},
	{"grey", "Grey"},
	{"gray", "Grey"},
	{"pink", "Pink"},
	{"purple", "Purple"},
	{"orange", "Orange"},
}

// salvageDraft scans an unparsable reply for known category and color
// keywords, building a degraded but valid draft.
func salvageDraft(raw, hint string) stylist.GarmentDraft {
	lowered := strings.ToLower(raw)

	draft := stylist.GarmentDraft{Name: strings.TrimSpace(hint)}
	for _, entry := range salvageCategoryKeywords {
		if strings.Contains(lowered, entry.keyword) {
			draft.Category = entry.category
			break
		}
	}
	for _, entry := range salvageColorKeywords {
		if strings.Contains(lowered, entry.keyword) {
			if !containsFold(draft.Colors, entry.color) {
				draft.Colors = append(draft.Colors, entry.color)
			}
		}
	}
	return draft
}

// fallbackDraft is the deterministic record returned when the provider call
// itself fails.
func fallbackDraft(hint string) stylist.GarmentDraft {
	name := strings.TrimSpace(hint)
	if name == "" {
		name = fallbackItemName
	}
	return stylist.GarmentDraft{
		Name:      name,
		Category:  model.CategoryTop,
		Colors:    []string{"Unknown"},
		Seasons:   cloneSeasons(model.AllSeasons),
		Occasions: cloneOccasions(model.AllOccasions),
	}
}

// coerceDraft validates every field against the closed vocabularies,
// replacing invalid values with category-appropriate defaults.
func coerceDraft(draft stylist.GarmentDraft) stylist.GarmentDraft {
	if strings.TrimSpace(draft.Name) == "" {
		draft.Name = fallbackItemName
	}
	if !draft.Category.Valid() {
		draft.Category = model.CategoryTop
	}

	colors := draft.Colors[:0:0]
	for _, c := range draft.Colors {
		if strings.TrimSpace(c) != "" {
			colors = append(colors, strings.TrimSpace(c))
		}
	}
	if len(colors) == 0 {
		colors = []string{"Unknown"}
	}
	draft.Colors = colors

	seasons := draft.Seasons[:0:0]
	for _, s := range draft.Seasons {
		if s.Valid() {
			seasons = append(seasons, s)
		}
	}
	if len(seasons) == 0 {
		seasons = cloneSeasons(model.AllSeasons)
	}
	draft.Seasons = seasons

	occasions := draft.Occasions[:0:0]
	for _, o := range draft.Occasions {
		if o.Valid() {
			occasions = append(occasions, o)
		}
	}
	if len(occasions) == 0 {
		occasions = []model.Occasion{model.OccasionCasual}
	}
	draft.Occasions = occasions

	return draft
}

func toSeasons(values []string) []model.Season {
	out := make([]model.Season, 0, len(values))
	for _, v := range values {
		out = append(out, model.Season(strings.ToLower(strings.TrimSpace(v))))
	}
	return out
}

func toOccasions(values []string) []model.Occasion {
	out := make([]model.Occasion, 0, len(values))
	for _, v := range values {
		out = append(out, model.Occasion(strings.ToLower(strings.TrimSpace(v))))
	}
	return out
}

func cloneSeasons(in []model.Season) []model.Season {
	out := make([]model.Season, len(in))
	copy(out, in)
	return out
}

func cloneOccasions(in []model.Occasion) []model.Occasion {
	out := make([]model.Occasion, len(in))
	copy(out, in)
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
