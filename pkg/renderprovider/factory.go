package renderprovider

import (
	"fmt"
	"sort"

	"wardrobe-assistant/config"
	"wardrobe-assistant/pkg/dalle"
	"wardrobe-assistant/pkg/stability"
)

// InitializeRegistry creates a provider Registry from config.RenderConfig.
// Providers are sorted by priority (ascending) with disabled providers
// filtered out. Providers that fail to initialize are skipped instead of
// failing the entire service.
func InitializeRegistry(cfg *config.RenderConfig) (*Registry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("render config is nil")
	}

	var enabled []config.RenderProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			fmt.Printf("Warning: failed to initialize render provider %s (priority %d): %v\n", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no render providers successfully initialized")
	}

	return NewRegistry(providers)
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.RenderProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case "dalle", "openai":
		client, err := dalle.New(dalle.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create dalle client: %w", err)
		}
		model := cfg.Model
		if model == "" {
			model = dalle.DefaultModel
		}
		return NewDalleAdapter(client, model), nil

	case "stability":
		client, err := stability.New(stability.Config{
			APIKey:  cfg.APIKey,
			Engine:  cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create stability client: %w", err)
		}
		engine := cfg.Model
		if engine == "" {
			engine = stability.DefaultEngine
		}
		return NewStabilityAdapter(client, engine), nil

	default:
		return nil, fmt.Errorf("unknown render provider: %s", cfg.Name)
	}
}
