package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"wardrobe-assistant/config"
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/stylist"
	"wardrobe-assistant/pkg/bgremoval"
	"wardrobe-assistant/pkg/vision"
)

func newAnalyzeUseCase(v *mockVision, bg *mockBgRemoval) stylist.UseCase {
	uc := New(&mockLogger{}, v, nil, nil, config.WeatherConfig{},
		testRegistry(&mockRenderProvider{name: "dalle"}), &mockWardrobe{}, &mockGate{})
	if bg != nil {
		uc.(*implUseCase).bgRemoval = bg
	}
	return uc
}

func TestAnalyzeGarment(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Success Parses Structured Reply", func(t *testing.T) {
		v := &mockVision{analyzeFunc: func(ctx context.Context, req *vision.AnalyzeRequest) (string, error) {
			return "```json\n{\"name\":\"Denim Jacket\",\"category\":\"outerwear\",\"colors\":[\"Blue\"],\"seasons\":[\"spring\",\"fall\"],\"occasions\":[\"casual\"]}\n```", nil
		}}
		uc := newAnalyzeUseCase(v, nil)

		out, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{ImageData: "aGk=", MimeType: "image/jpeg"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Salvaged || out.Fallback {
			t.Fatalf("expected clean parse, got salvaged=%t fallback=%t", out.Salvaged, out.Fallback)
		}
		if out.Draft.Name != "Denim Jacket" || out.Draft.Category != model.CategoryOuterwear {
			t.Errorf("unexpected draft: %+v", out.Draft)
		}
		if len(out.Draft.Seasons) != 2 {
			t.Errorf("expected 2 seasons, got %v", out.Draft.Seasons)
		}
	})

	t.Run("Salvage Recovers Category And Color From Unparsable Reply", func(t *testing.T) {
		v := &mockVision{analyzeFunc: func(ctx context.Context, req *vision.AnalyzeRequest) (string, error) {
			return "Sure! This looks like a lovely pair of blue jeans for everyday wear.", nil
		}}
		uc := newAnalyzeUseCase(v, nil)

		out, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{ImageData: "aGk="})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Salvaged {
			t.Fatal("expected the salvage path")
		}
		if out.Draft.Category != model.CategoryBottom {
			t.Errorf("expected category bottom, got %s", out.Draft.Category)
		}
		if !reflect.DeepEqual(out.Draft.Colors, []string{"Blue"}) {
			t.Errorf("expected colors [Blue], got %v", out.Draft.Colors)
		}
	})

	t.Run("Salvage Is Deterministic", func(t *testing.T) {
		reply := "maybe a green sweater? or a grey coat, hard to tell"
		v := &mockVision{analyzeFunc: func(ctx context.Context, req *vision.AnalyzeRequest) (string, error) {
			return reply, nil
		}}
		uc := newAnalyzeUseCase(v, nil)

		first, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{ImageData: "aGk="})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{ImageData: "aGk="})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first.Draft, second.Draft) {
			t.Errorf("salvage not deterministic: %+v vs %+v", first.Draft, second.Draft)
		}
	})

	t.Run("Provider Failure Returns Deterministic Fallback", func(t *testing.T) {
		v := &mockVision{analyzeFunc: func(ctx context.Context, req *vision.AnalyzeRequest) (string, error) {
			return "", errors.New("upstream 503")
		}}
		uc := newAnalyzeUseCase(v, nil)

		out, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{ImageData: "aGk="})
		if err != nil {
			t.Fatalf("provider failure must not surface: %v", err)
		}
		if !out.Fallback {
			t.Fatal("expected the fallback record")
		}
		if out.Draft.Category != model.CategoryTop {
			t.Errorf("expected fallback category top, got %s", out.Draft.Category)
		}
		if !reflect.DeepEqual(out.Draft.Colors, []string{"Unknown"}) {
			t.Errorf("expected colors [Unknown], got %v", out.Draft.Colors)
		}
		if len(out.Draft.Seasons) != len(model.AllSeasons) {
			t.Errorf("expected the wide season set, got %v", out.Draft.Seasons)
		}
	})

	t.Run("Invalid Vocabulary Values Are Coerced", func(t *testing.T) {
		v := &mockVision{analyzeFunc: func(ctx context.Context, req *vision.AnalyzeRequest) (string, error) {
			return `{"name":"Thing","category":"swimwear","colors":[],"seasons":["monsoon"],"occasions":["clubbing"]}`, nil
		}}
		uc := newAnalyzeUseCase(v, nil)

		out, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{ImageData: "aGk="})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Draft.Category != model.CategoryTop {
			t.Errorf("invalid category must coerce to top, got %s", out.Draft.Category)
		}
		if !reflect.DeepEqual(out.Draft.Colors, []string{"Unknown"}) {
			t.Errorf("empty colors must coerce to [Unknown], got %v", out.Draft.Colors)
		}
		if len(out.Draft.Seasons) != len(model.AllSeasons) {
			t.Errorf("invalid seasons must coerce to the full set, got %v", out.Draft.Seasons)
		}
		if !reflect.DeepEqual(out.Draft.Occasions, []model.Occasion{model.OccasionCasual}) {
			t.Errorf("invalid occasions must coerce to casual, got %v", out.Draft.Occasions)
		}
	})

	t.Run("Background Removal Success Substitutes Image", func(t *testing.T) {
		v := &mockVision{analyzeFunc: func(ctx context.Context, req *vision.AnalyzeRequest) (string, error) {
			return `{"name":"Tee","category":"top","colors":["White"]}`, nil
		}}
		bg := &mockBgRemoval{}
		uc := newAnalyzeUseCase(v, bg)

		out, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{ImageData: "aGk=", RemoveBackground: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bg.removeCalls != 1 {
			t.Fatalf("expected 1 removal call, got %d", bg.removeCalls)
		}
		if out.Draft.ImageURL != "https://img.example/cutout.png" {
			t.Errorf("expected the processed image reference, got %q", out.Draft.ImageURL)
		}
	})

	t.Run("Background Removal Failure Downgrades With Step Log Entry", func(t *testing.T) {
		v := &mockVision{analyzeFunc: func(ctx context.Context, req *vision.AnalyzeRequest) (string, error) {
			return `{"name":"Tee","category":"top","colors":["White"]}`, nil
		}}
		bg := &mockBgRemoval{removeFunc: func(ctx context.Context, req bgremoval.Request) (string, error) {
			return "", errors.New("quota exhausted")
		}}
		uc := newAnalyzeUseCase(v, bg)

		out, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{ImageData: "aGk=", RemoveBackground: true})
		if err != nil {
			t.Fatalf("downgrade must not surface: %v", err)
		}
		if out.Draft.ImageURL != "" {
			t.Errorf("expected the original image kept, got %q", out.Draft.ImageURL)
		}
		found := false
		for _, line := range out.StepLog {
			if strings.Contains(line, "background removal unavailable") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a downgrade entry in the step log, got %v", out.StepLog)
		}
	})

	t.Run("Missing Image Rejected", func(t *testing.T) {
		v := &mockVision{}
		uc := newAnalyzeUseCase(v, nil)
		if _, err := uc.AnalyzeGarment(ctx, sc, stylist.AnalyzeInput{}); err == nil {
			t.Fatal("expected a validation error")
		}
		if v.analyzeCalls != 0 {
			t.Errorf("validation must reject before any provider call, got %d calls", v.analyzeCalls)
		}
	})
}
