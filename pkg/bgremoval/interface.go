package bgremoval

import "context"

// IBgRemoval defines the interface for the background removal provider.
// Implementations are safe for concurrent use.
type IBgRemoval interface {
	// RemoveBackground returns a reference to the background-free image.
	RemoveBackground(ctx context.Context, req Request) (string, error)
}
