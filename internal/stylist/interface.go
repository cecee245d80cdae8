package stylist

import (
	"context"

	"wardrobe-assistant/internal/model"
)

// UseCase defines the business logic interface for the stylist pipeline.
// Each invocation is request-scoped and shares no mutable state with any
// other; the wardrobe projection is the only serialization point. Issued
// provider calls are never aborted once in flight.
type UseCase interface {
	// AnalyzeGarment runs image analysis with optional background removal
	// and returns a vocabulary-coerced garment draft. Provider and parse
	// failures degrade to deterministic results, never errors.
	AnalyzeGarment(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)

	// SuggestOutfit composes one outfit from the available inventory.
	// Rejects with ErrNotEnoughItems before any provider call when fewer
	// than 2 available items exist.
	SuggestOutfit(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)

	// RenderTryOn produces a try-on image. Provider failure is a hard
	// error; the caller may re-invoke naming another provider.
	RenderTryOn(ctx context.Context, sc model.Scope, input RenderInput) (RenderOutput, error)

	// GetInvocation returns the tracked state of a pipeline invocation.
	GetInvocation(ctx context.Context, sc model.Scope, id string) (Invocation, error)
}
