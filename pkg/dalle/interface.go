package dalle

import "context"

// IDalle defines the interface for the OpenAI image generation client
type IDalle interface {
	Render(ctx context.Context, req *Request) (*Response, error)
}
