package closetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	pkgErrors "wardrobe-assistant/pkg/errors"
	pkgLog "wardrobe-assistant/pkg/log"
)

// Gateway is the closet-service-backed wardrobe store.
type Gateway struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	l           pkgLog.Logger
}

// New creates a new wardrobe gateway against the closet service.
func New(baseURL, accessToken string, l pkgLog.Logger) *Gateway {
	return &Gateway{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
		l:           l,
	}
}

// doJSON issues one closet API call. A non-nil out is decoded from the
// response body. A nil response body (204) with non-nil out is an error.
func (g *Gateway) doJSON(ctx context.Context, method, path, op string, in, out any) error {
	url := g.baseURL + path

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		body = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.accessToken))

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return &pkgErrors.PersistenceError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return &pkgErrors.PersistenceError{
			Op:  op,
			Err: fmt.Errorf("closet API error %d: %s", resp.StatusCode, string(raw)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &pkgErrors.PersistenceError{Op: op, Err: err}
		}
	}
	return nil
}
