package stability

import "context"

// IStability defines the interface for the Stability image generation client
type IStability interface {
	Render(ctx context.Context, req *Request) (*Response, error)
}
