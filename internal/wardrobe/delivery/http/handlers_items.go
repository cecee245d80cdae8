package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/middleware"
	"wardrobe-assistant/pkg/response"
)

// AddItem godoc
// @Summary     Add a clothing item
// @Description Adds a new clothing item to the wardrobe, subject to the tier's item quota.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       body body itemReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Quota exceeded"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wardrobe/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.AddItem(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// AddSharedItem godoc
// @Summary     Receive a shared clothing item
// @Description Copies an item shared by another user into the wardrobe with provenance attached.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       body body sharedItemReq true "Shared item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Quota exceeded"
// @Router      /api/v1/wardrobe/items/shared [POST]
func (h *handler) AddSharedItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSharedItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.AddSharedItem(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddSharedItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// UpdateItem godoc
// @Summary     Update a clothing item
// @Description Replaces every mutable field of an item. Identity and provenance are immutable.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Item ID"
// @Param       body body updateItemReq true "Replacement fields"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/wardrobe/items/{id} [PUT]
func (h *handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.UpdateItem(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// RemoveItem godoc
// @Summary     Remove a clothing item
// @Description Deletes an item and any avatar association it holds.
// @Tags        Wardrobe
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/wardrobe/items/{id} [DELETE]
func (h *handler) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.RemoveItem(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.RemoveItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// GetItem godoc
// @Summary     Get one clothing item
// @Tags        Wardrobe
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/wardrobe/items/{id} [GET]
func (h *handler) GetItem(c *gin.Context) {
	ctx := c.Request.Context()

	item, err := h.uc.GetItem(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// ListItems godoc
// @Summary     List clothing items
// @Description Returns every item in the wardrobe, newest first.
// @Tags        Wardrobe
// @Produce     json
// @Success     200 {object} itemsResp
// @Router      /api/v1/wardrobe/items [GET]
func (h *handler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.ListItems(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemsResp(items))
}

// SearchItems godoc
// @Summary     Search clothing items
// @Description Case-insensitive substring search over name, brand, tags and colors.
// @Tags        Wardrobe
// @Produce     json
// @Param       query query string true "Search text"
// @Success     200 {object} itemsResp
// @Router      /api/v1/wardrobe/items/search [GET]
func (h *handler) SearchItems(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.Search(ctx, middleware.GetScope(c), c.Query("query"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemsResp(items))
}

// FilterItems godoc
// @Summary     Filter clothing items
// @Description Filters items by typed criteria; omitted parameters match anything.
// @Tags        Wardrobe
// @Produce     json
// @Param       category  query string false "Category"
// @Param       season    query string false "Season"
// @Param       occasion  query string false "Occasion"
// @Param       color     query string false "Color"
// @Param       available query bool   false "Availability"
// @Success     200 {object} itemsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/wardrobe/items/filter [GET]
func (h *handler) FilterItems(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFilterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.uc.Filter(ctx, middleware.GetScope(c), req.toCriteria())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemsResp(items))
}
