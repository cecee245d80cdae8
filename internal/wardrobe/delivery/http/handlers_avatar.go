package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/middleware"
	"wardrobe-assistant/pkg/response"
)

// SaveAvatar godoc
// @Summary     Create or replace the avatar
// @Description Saves the active avatar profile. Replacing the avatar clears existing try-on associations.
// @Tags        Avatar
// @Accept      json
// @Produce     json
// @Param       body body saveAvatarReq true "Avatar data"
// @Success     200 {object} avatarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Quota exceeded"
// @Router      /api/v1/wardrobe/avatar [PUT]
func (h *handler) SaveAvatar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveAvatarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	avatar, err := h.uc.SaveAvatar(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveAvatar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAvatarResp(avatar))
}

// GetAvatar godoc
// @Summary     Get the active avatar
// @Tags        Avatar
// @Produce     json
// @Success     200 {object} avatarResp
// @Failure     404 {object} response.Resp "No active avatar"
// @Router      /api/v1/wardrobe/avatar [GET]
func (h *handler) GetAvatar(c *gin.Context) {
	ctx := c.Request.Context()

	avatar, err := h.uc.GetAvatar(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAvatarResp(avatar))
}

// TryOnItem godoc
// @Summary     Try an item on the avatar
// @Description Associates a clothing item with the active avatar. Layer order is derived from the category.
// @Tags        Avatar
// @Produce     json
// @Param       itemId path string true "Clothing item ID"
// @Success     200 {object} tryOnResp
// @Failure     403 {object} response.Resp "Try-on not entitled"
// @Failure     404 {object} response.Resp "Item or avatar not found"
// @Router      /api/v1/wardrobe/avatar/tryon/{itemId} [POST]
func (h *handler) TryOnItem(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.TryOnItem(ctx, middleware.GetScope(c), c.Param("itemId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.TryOnItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, tryOnResp{
		Association: newAssociationResp(out.Association),
		Item:        newItemResp(out.Item),
	})
}

// RemoveFromAvatar godoc
// @Summary     Remove an item from the avatar
// @Description Deletes the try-on association for the item. Removing an absent association succeeds.
// @Tags        Avatar
// @Produce     json
// @Param       itemId path string true "Clothing item ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/wardrobe/avatar/tryon/{itemId} [DELETE]
func (h *handler) RemoveFromAvatar(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveFromAvatar(ctx, middleware.GetScope(c), c.Param("itemId")); err != nil {
		h.l.Errorf(ctx, "uc.RemoveFromAvatar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ListAvatarClothing godoc
// @Summary     List items on the avatar
// @Description Returns current try-on associations ordered by layer, bottom first.
// @Tags        Avatar
// @Produce     json
// @Success     200 {object} associationsResp
// @Router      /api/v1/wardrobe/avatar/clothing [GET]
func (h *handler) ListAvatarClothing(c *gin.Context) {
	ctx := c.Request.Context()

	assocs, err := h.uc.ListAvatarClothing(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	resp := associationsResp{Associations: make([]associationResp, len(assocs))}
	for i, assoc := range assocs {
		resp.Associations[i] = newAssociationResp(assoc)
	}
	response.OK(c, resp)
}

// Stats godoc
// @Summary     Wardrobe statistics
// @Description Returns derived counts by category and color plus recent items.
// @Tags        Wardrobe
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/wardrobe/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatsResp(stats))
}

// Export godoc
// @Summary     Export the wardrobe
// @Description Returns the full durable wardrobe snapshot. Gated by the export feature.
// @Tags        Wardrobe
// @Produce     json
// @Success     200 {object} exportResp
// @Failure     403 {object} response.Resp "Export not entitled"
// @Router      /api/v1/wardrobe/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ExportAll(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newExportResp(out))
}
