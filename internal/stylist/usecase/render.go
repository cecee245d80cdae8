package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wardrobe-assistant/internal/entitlement"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/stylist"
	pkgErrors "wardrobe-assistant/pkg/errors"
	"wardrobe-assistant/pkg/renderprovider"
)

// Confidence is a policy constant per prompt path, not a measured quantity.
const (
	avatarRenderConfidence  = 0.9
	genericRenderConfidence = 0.75
)

// RenderTryOn runs Stage D (try-on render). Provider failure surfaces as a
// hard error with no automatic retry; the caller may re-invoke naming the
// secondary provider explicitly.
func (uc *implUseCase) RenderTryOn(ctx context.Context, sc model.Scope, input stylist.RenderInput) (stylist.RenderOutput, error) {
	if err := uc.gate.RequireFeature(ctx, sc, entitlement.FeatureVirtualTryOn); err != nil {
		return stylist.RenderOutput{}, err
	}

	items, err := uc.resolveRenderItems(ctx, sc, input)
	if err != nil {
		return stylist.RenderOutput{}, err
	}

	provider, err := uc.renders.Get(input.Provider)
	if err != nil {
		return stylist.RenderOutput{}, pkgErrors.NewValidationError("provider", err.Error())
	}

	inv := uc.begin("render", 2)
	out := stylist.RenderOutput{InvocationID: inv.id}

	inv.enter("prompt construction")
	var prompt string
	if input.UseAvatar {
		avatar, avatarErr := uc.wardrobe.GetAvatar(ctx, sc)
		if avatarErr != nil {
			inv.fail(avatarErr)
			return stylist.RenderOutput{}, avatarErr
		}
		prompt = avatarRenderPrompt(avatar, items, input.Pose, input.Background)
		out.Confidence = avatarRenderConfidence
		inv.complete("personalized prompt built")
	} else {
		prompt = genericRenderPrompt(input.BodyType, input.ModelArchetype, items, input.Pose, input.Background)
		out.Confidence = genericRenderConfidence
		inv.complete("generic prompt built")
	}

	inv.enter("image synthesis")
	start := time.Now()
	resp, err := provider.Render(ctx, &renderprovider.Request{
		Prompt:  prompt,
		Size:    "1024x1024",
		Quality: "standard",
	})
	out.Latency = time.Since(start)
	if err != nil {
		uc.l.Errorf(ctx, "stylist.usecase.RenderTryOn.Render: %v", err)
		provErr := &pkgErrors.ProviderUnavailableError{Provider: provider.Name(), Err: err}
		inv.fail(provErr)
		return stylist.RenderOutput{}, provErr
	}
	inv.complete("image rendered")

	out.ImageURL = resp.ImageURL
	out.Provider = resp.ProviderName
	out.Model = resp.ModelName
	inv.finish()
	out.StepLog = inv.snapshot().StepLog
	uc.l.Infof(ctx, "RenderTryOn: user=%s provider=%s items=%d latency=%s",
		sc.UserID, out.Provider, len(items), out.Latency)
	return out, nil
}

// resolveRenderItems loads the garments named by outfit id or explicit item
// ids, in that priority.
func (uc *implUseCase) resolveRenderItems(ctx context.Context, sc model.Scope, input stylist.RenderInput) ([]model.ClothingItem, error) {
	if input.OutfitID != "" {
		outfits, err := uc.wardrobe.ListOutfits(ctx, sc)
		if err != nil {
			return nil, err
		}
		for _, outfit := range outfits {
			if outfit.ID == input.OutfitID {
				return outfit.Items, nil
			}
		}
		return nil, pkgErrors.NewValidationError("outfit_id", fmt.Sprintf("unknown outfit %q", input.OutfitID))
	}

	if len(input.ItemIDs) == 0 {
		return nil, pkgErrors.NewValidationError("items", "an outfit id or at least one item id is required")
	}
	items := make([]model.ClothingItem, 0, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		item, err := uc.wardrobe.GetItem(ctx, sc, id)
		if err != nil {
			return nil, pkgErrors.NewValidationError("items", fmt.Sprintf("unknown item %q", id))
		}
		items = append(items, item)
	}
	return items, nil
}

// avatarRenderPrompt embeds the avatar's base descriptor verbatim and
// instructs the renderer to preserve its stated traits.
func avatarRenderPrompt(avatar model.AvatarProfile, items []model.ClothingItem, pose, background string) string {
	var sb strings.Builder
	sb.WriteString("Full-body fashion photograph of ")
	sb.WriteString(avatar.BaseDescriptor)
	sb.WriteString(".\nThe person is wearing:\n")
	writeOutfitLines(&sb, items)
	writeSceneClauses(&sb, pose, background)
	sb.WriteString("Keep the person exactly as described: same build, same skin tone, same facial features and hair in every detail. Do not alter any stated physical trait.")
	return sb.String()
}

// genericRenderPrompt synthesizes a model description from body type and
// archetype, with no consistency constraint.
func genericRenderPrompt(bodyType model.BodyType, archetype string, items []model.ClothingItem, pose, background string) string {
	if !bodyType.Valid() {
		bodyType = model.BodyTypeAverage
	}
	if archetype == "" {
		archetype = "fashion"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Full-body fashion photograph of a %s model with a %s build.\nThe model is wearing:\n", archetype, bodyType)
	writeOutfitLines(&sb, items)
	writeSceneClauses(&sb, pose, background)
	return sb.String()
}

// writeOutfitLines appends one line per garment: name, category, colors,
// occasions.
func writeOutfitLines(sb *strings.Builder, items []model.ClothingItem) {
	for _, item := range items {
		fmt.Fprintf(sb, "- %s (%s), colors: %s, suited for: %s\n",
			item.Name, item.Category, strings.Join(item.Colors, ", "), joinOccasions(item.Occasions))
	}
}

func writeSceneClauses(sb *strings.Builder, pose, background string) {
	if pose == "" {
		pose = "standing, natural relaxed pose"
	}
	if background == "" {
		background = "plain studio background"
	}
	fmt.Fprintf(sb, "Pose: %s.\nBackground: %s.\n", pose, background)
}
