package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-assistant/internal/middleware"
	"wardrobe-assistant/internal/wardrobe"
	"wardrobe-assistant/pkg/response"
)

// CreateOutfit godoc
// @Summary     Create an outfit
// @Description Composes a named outfit from existing wardrobe items, subject to the outfit quota.
// @Tags        Outfits
// @Accept      json
// @Produce     json
// @Param       body body createOutfitReq true "Outfit data"
// @Success     200 {object} outfitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Quota exceeded"
// @Router      /api/v1/wardrobe/outfits [POST]
func (h *handler) CreateOutfit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateOutfitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outfit, err := h.uc.CreateOutfit(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateOutfit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newOutfitResp(outfit))
}

// RateOutfit godoc
// @Summary     Rate an outfit
// @Description Attaches a 1-5 rating to an outfit.
// @Tags        Outfits
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Outfit ID"
// @Param       body body rateOutfitReq true "Rating"
// @Success     200 {object} outfitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/wardrobe/outfits/{id}/rating [PUT]
func (h *handler) RateOutfit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRateOutfitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outfit, err := h.uc.RateOutfit(ctx, middleware.GetScope(c), wardrobe.RateOutfitInput{
		OutfitID: req.OutfitID,
		Rating:   req.Rating,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.RateOutfit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newOutfitResp(outfit))
}

// DeleteOutfit godoc
// @Summary     Delete an outfit
// @Tags        Outfits
// @Produce     json
// @Param       id path string true "Outfit ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/wardrobe/outfits/{id} [DELETE]
func (h *handler) DeleteOutfit(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteOutfit(ctx, middleware.GetScope(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteOutfit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ListOutfits godoc
// @Summary     List outfits
// @Description Returns every outfit, newest first.
// @Tags        Outfits
// @Produce     json
// @Success     200 {object} outfitsResp
// @Router      /api/v1/wardrobe/outfits [GET]
func (h *handler) ListOutfits(c *gin.Context) {
	ctx := c.Request.Context()

	outfits, err := h.uc.ListOutfits(ctx, middleware.GetScope(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newOutfitsResp(outfits))
}
