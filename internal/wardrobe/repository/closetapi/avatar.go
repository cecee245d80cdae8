package closetapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"wardrobe-assistant/internal/model"
	pkgErrors "wardrobe-assistant/pkg/errors"
)

// GetAvatar fetches the stored avatar, or nil when none was ever saved.
func (g *Gateway) GetAvatar(ctx context.Context) (*model.AvatarProfile, error) {
	url := g.baseURL + "/api/v1/wardrobe/avatar"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get avatar request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.accessToken))

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, &pkgErrors.PersistenceError{Op: "get avatar", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &pkgErrors.PersistenceError{
			Op:  "get avatar",
			Err: fmt.Errorf("closet API error %d: %s", resp.StatusCode, string(raw)),
		}
	}

	var dto avatarDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, &pkgErrors.PersistenceError{Op: "get avatar", Err: err}
	}

	avatar := fromAvatarDTO(dto)
	return &avatar, nil
}

// SaveAvatar replaces the stored avatar.
func (g *Gateway) SaveAvatar(ctx context.Context, avatar model.AvatarProfile) error {
	return g.doJSON(ctx, http.MethodPut, "/api/v1/wardrobe/avatar", "save avatar", toAvatarDTO(avatar), nil)
}
