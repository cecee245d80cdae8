package vision

import (
	"fmt"
	"strings"
)

// GarmentAnalysisSystemPrompt is the system instruction for garment analysis.
// The category/season/occasion vocabularies are closed; the model must not
// invent values outside them.
const GarmentAnalysisSystemPrompt = `You are a clothing analysis assistant. Examine the photo and describe the single main garment.

RULES:
1. category MUST be exactly one of: "top", "bottom", "dress", "shoes", "outerwear", "accessories", "underwear"
2. seasons MUST be a subset of: "spring", "summer", "fall", "winter"
3. occasions MUST be a subset of: "casual", "formal", "work", "party", "sport", "travel"
4. colors is an ordered array, dominant color first, capitalized (e.g. "Blue", "Dark Green")
5. name is a short human-friendly garment name
6. brand is the visible brand name or an empty string
7. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text.

EXAMPLE OUTPUT:
{
  "name": "Slim-fit denim jeans",
  "category": "bottom",
  "subcategory": "jeans",
  "colors": ["Blue"],
  "seasons": ["spring", "fall", "winter"],
  "occasions": ["casual"],
  "tags": ["denim", "slim-fit"],
  "brand": ""
}`

// BuildAnalysisPrompt builds the full garment analysis prompt.
func BuildAnalysisPrompt(hint string) string {
	if hint == "" {
		return GarmentAnalysisSystemPrompt + "\n\nNow analyze the attached photo and return ONLY the JSON object."
	}
	return GarmentAnalysisSystemPrompt +
		"\n\nUSER HINT (may be incomplete or wrong, trust the photo first): " + hint +
		"\n\nNow analyze the attached photo and return ONLY the JSON object."
}

// OutfitSuggestionSystemPrompt is the system instruction for outfit suggestion.
const OutfitSuggestionSystemPrompt = `You are a personal stylist. Compose one outfit from the wardrobe inventory below.

RULES:
1. Use ONLY item ids that appear in the inventory. Never invent ids.
2. An outfit has at least 2 items and covers the occasion sensibly (e.g. a top needs a bottom unless a dress is chosen).
3. confidence is a number between 0 and 1.
4. alternatives is an optional array of alternative id groupings.
5. Return ONLY a valid JSON object. No markdown, no code blocks, no explanation text.

EXAMPLE OUTPUT:
{
  "item_ids": ["a1", "b2", "c3"],
  "reasoning": "Light layers fit a casual spring afternoon.",
  "confidence": 0.85,
  "alternatives": [["a1", "b4", "c3"]]
}`

// BuildOutfitPrompt builds the full outfit suggestion prompt from the request.
func BuildOutfitPrompt(req *SuggestRequest) string {
	var sb strings.Builder
	sb.WriteString(OutfitSuggestionSystemPrompt)
	sb.WriteString("\n\nOCCASION: ")
	sb.WriteString(req.Occasion)
	if req.Preferences != "" {
		sb.WriteString("\nSTYLE PREFERENCES: ")
		sb.WriteString(req.Preferences)
	}
	if req.Weather != "" {
		sb.WriteString("\nWEATHER: ")
		sb.WriteString(req.Weather)
	}
	sb.WriteString("\n\nINVENTORY:\n")
	for _, line := range req.InventoryLines {
		sb.WriteString(fmt.Sprintf("- %s\n", line))
	}
	sb.WriteString("\nNow compose the outfit and return ONLY the JSON object.")
	return sb.String()
}
