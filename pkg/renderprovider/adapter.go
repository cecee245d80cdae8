package renderprovider

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wardrobe-assistant/pkg/dalle"
	"wardrobe-assistant/pkg/stability"
)

// DalleAdapter adapts pkg/dalle to renderprovider.Provider interface
type DalleAdapter struct {
	client dalle.IDalle
	model  string
}

// NewDalleAdapter creates a new DALL-E adapter
func NewDalleAdapter(client dalle.IDalle, model string) *DalleAdapter {
	return &DalleAdapter{client: client, model: model}
}

// Render implements Provider interface
func (a *DalleAdapter) Render(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Render(ctx, &dalle.Request{
		Prompt:  req.Prompt,
		Size:    req.Size,
		Quality: req.Quality,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		ImageURL:     resp.ImageURL,
		ProviderName: a.Name(),
		ModelName:    a.model,
	}, nil
}

// Name returns provider name
func (a *DalleAdapter) Name() string {
	return "dalle"
}

// Model returns model name
func (a *DalleAdapter) Model() string {
	return a.model
}

// StabilityAdapter adapts pkg/stability to renderprovider.Provider interface
type StabilityAdapter struct {
	client stability.IStability
	engine string
}

// NewStabilityAdapter creates a new Stability adapter
func NewStabilityAdapter(client stability.IStability, engine string) *StabilityAdapter {
	return &StabilityAdapter{client: client, engine: engine}
}

// Render implements Provider interface
func (a *StabilityAdapter) Render(ctx context.Context, req *Request) (*Response, error) {
	width, height, err := parseSize(req.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	resp, err := a.client.Render(ctx, &stability.Request{
		Prompt: req.Prompt,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		ImageURL:     resp.ImageURL,
		ProviderName: a.Name(),
		ModelName:    a.engine,
	}, nil
}

// Name returns provider name
func (a *StabilityAdapter) Name() string {
	return "stability"
}

// Model returns engine name
func (a *StabilityAdapter) Model() string {
	return a.engine
}

// parseSize converts "1024x1024" into width and height.
func parseSize(size string) (int, int, error) {
	if size == "" {
		return 1024, 1024, nil
	}
	parts := strings.SplitN(size, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad size %q", size)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad width %q", parts[0])
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad height %q", parts[1])
	}
	return width, height, nil
}
